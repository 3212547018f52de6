package course

import (
	"context"
	"errors"
	"net/http"

	"github.com/epimer007/course-management-app/internal/app_errors"
	"github.com/epimer007/course-management-app/internal/models"
	"github.com/epimer007/course-management-app/pkg/logger"
	"github.com/gin-gonic/gin"
)

type ManagementService interface {
	CreateCourse(ctx context.Context, course models.Course) (*models.Course, error)
	UpdateCourse(ctx context.Context, id string, update models.CourseUpdate) (*models.Course, error)
	DeleteCourse(ctx context.Context, id string) (bool, error)
}

type ManagementHandler struct {
	log     logger.Log
	service ManagementService
}

func NewManagementHandler(l logger.Log, s ManagementService) *ManagementHandler {
	return &ManagementHandler{
		log:     l,
		service: s,
	}
}

type newCourseRequest struct {
	Title            string   `json:"title" binding:"required"`
	Description      string   `json:"description" binding:"required"`
	Instructor       string   `json:"instructor" binding:"required"`
	Duration         float64  `json:"duration" binding:"required,gt=0"`
	Level            string   `json:"level" binding:"required"`
	Category         string   `json:"category" binding:"required"`
	Price            float64  `json:"price" binding:"gte=0"`
	Rating           float64  `json:"rating" binding:"gte=0,lte=5"`
	EnrolledStudents int      `json:"enrolledStudents" binding:"gte=0"`
	Tags             []string `json:"tags"`
}

func (h *ManagementHandler) CreateCourse(c *gin.Context) {
	var input newCourseRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course := models.Course{
		Title:            input.Title,
		Description:      input.Description,
		Instructor:       input.Instructor,
		Duration:         input.Duration,
		Level:            input.Level,
		Category:         input.Category,
		Price:            input.Price,
		Rating:           input.Rating,
		EnrolledStudents: input.EnrolledStudents,
		Tags:             input.Tags,
	}

	created, err := h.service.CreateCourse(c.Request.Context(), course)
	if err != nil {
		if isValidationErr(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.ErrorErr("CreateCourse failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create course"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ManagementHandler) UpdateCourse(c *gin.Context) {
	id := c.Param("id")

	var update models.CourseUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.UpdateCourse(c.Request.Context(), id, update)
	if err != nil {
		switch {
		case errors.Is(err, app_errors.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		case isValidationErr(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.log.ErrorErr("UpdateCourse failed", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update course"})
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ManagementHandler) DeleteCourse(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.service.DeleteCourse(c.Request.Context(), id)
	if err != nil {
		h.log.ErrorErr("DeleteCourse failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete course"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course deleted successfully"})
}
