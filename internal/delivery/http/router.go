package http

import (
	"time"

	"github.com/epimer007/course-management-app/internal/delivery/http/controllers"
	coursecontroller "github.com/epimer007/course-management-app/internal/delivery/http/controllers/course"
	"github.com/epimer007/course-management-app/internal/delivery/http/controllers/middleware"
	"github.com/epimer007/course-management-app/internal/service"
	"github.com/epimer007/course-management-app/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitRoutes(l logger.Log, u service.Collection) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	config := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(config))
	r.Use(middleware.LoggingMiddleware(l))

	statusController := controllers.NewStatusHandler()
	queryController := coursecontroller.NewQueryHandler(l, u.CourseService)
	managementController := coursecontroller.NewManagementHandler(l, u.CourseService)
	recommendationsController := controllers.NewRecommendationsHandler(l, u.RecommendService)

	r.GET("/status", statusController.Status)

	courses := r.Group("/courses")
	{
		courses.GET("", queryController.ListCourses)
		courses.POST("", managementController.CreateCourse)
		courses.GET("/:id", queryController.CourseByID)
		courses.PUT("/:id", managementController.UpdateCourse)
		courses.DELETE("/:id", managementController.DeleteCourse)
	}

	r.GET("/categories", queryController.Categories)
	r.POST("/recommendations", recommendationsController.Recommend)

	return r
}
