package controllers

import (
	"context"
	"net/http"

	"github.com/epimer007/course-management-app/internal/models"
	"github.com/epimer007/course-management-app/pkg/logger"
	"github.com/gin-gonic/gin"
)

type RecommendService interface {
	Recommend(ctx context.Context, prefs *models.Preferences) ([]models.Course, error)
}

type RecommendationsHandler struct {
	log     logger.Log
	service RecommendService
}

func NewRecommendationsHandler(l logger.Log, s RecommendService) *RecommendationsHandler {
	return &RecommendationsHandler{
		log:     l,
		service: s,
	}
}

func (h *RecommendationsHandler) Recommend(c *gin.Context) {
	var prefs *models.Preferences
	if c.Request.ContentLength > 0 {
		var body models.Preferences
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		prefs = &body
	}

	courses, err := h.service.Recommend(c.Request.Context(), prefs)
	if err != nil {
		h.log.ErrorErr("Recommend failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get recommendations"})
		return
	}
	c.JSON(http.StatusOK, courses)
}
