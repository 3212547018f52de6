package course

import (
	"context"
	"errors"
	"net/http"

	"github.com/epimer007/course-management-app/internal/app_errors"
	"github.com/epimer007/course-management-app/internal/models"
	"github.com/epimer007/course-management-app/internal/service/catalog"
	"github.com/epimer007/course-management-app/pkg/logger"
	"github.com/gin-gonic/gin"
)

type QueryService interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	CourseByID(ctx context.Context, id string) (*models.Course, error)
}

type QueryHandler struct {
	log     logger.Log
	service QueryService
}

func NewQueryHandler(log logger.Log, s QueryService) *QueryHandler {
	return &QueryHandler{
		log:     log,
		service: s,
	}
}

// ListCourses returns the whole collection. Optional query parameters
// narrow and order it; with none present the response is the full
// list in store order.
func (h *QueryHandler) ListCourses(c *gin.Context) {
	courses, err := h.service.ListCourses(c.Request.Context())
	if err != nil {
		h.log.ErrorErr("ListCourses failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch courses"})
		return
	}

	opts := catalog.Options{
		Search:     c.Query("search"),
		Level:      c.Query("level"),
		Category:   c.Query("category"),
		PriceRange: c.Query("price"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("order"),
	}
	c.JSON(http.StatusOK, catalog.Apply(courses, opts))
}

// Categories lists the distinct categories present, for the category
// filter dropdown.
func (h *QueryHandler) Categories(c *gin.Context) {
	courses, err := h.service.ListCourses(c.Request.Context())
	if err != nil {
		h.log.ErrorErr("Categories failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, catalog.Categories(courses))
}

func (h *QueryHandler) CourseByID(c *gin.Context) {
	id := c.Param("id")

	course, err := h.service.CourseByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, app_errors.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		h.log.ErrorErr("CourseByID failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch course"})
		return
	}
	c.JSON(http.StatusOK, course)
}
