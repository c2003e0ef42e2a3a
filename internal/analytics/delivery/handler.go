package delivery

import (
	"errors"
	"net/http"

	"creatorboard-backend/internal/analytics/domain"
	"creatorboard-backend/internal/analytics/repository"
	"creatorboard-backend/internal/analytics/usecase"
	authdelivery "creatorboard-backend/internal/auth/delivery"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsUsecase usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(analyticsUsecase usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUsecase: analyticsUsecase,
	}
}

func (h *AnalyticsHandler) AnalyzeChannel(c *gin.Context) {
	analysis, err := h.analyticsUsecase.AnalyzeChannel(c.Query("url"))
	if err != nil {
		if errors.Is(err, usecase.ErrChannelURLRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please enter a channel URL"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Analysis failed"})
		return
	}

	c.JSON(http.StatusOK, analysis)
}

type scheduleRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Category    string `json:"category"`
}

func (h *AnalyticsHandler) AddScheduledVideo(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextKeyUserID)

	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	video, err := h.analyticsUsecase.AddScheduledVideo(userID, req.Title, req.Description, req.Date, req.Time, req.Category)
	if err != nil {
		if errors.Is(err, usecase.ErrScheduleValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to schedule video"})
		return
	}

	c.JSON(http.StatusCreated, video)
}

func (h *AnalyticsHandler) ListScheduledVideos(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextKeyUserID)

	videos, err := h.analyticsUsecase.ListScheduledVideos(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to list scheduled videos"})
		return
	}
	if videos == nil {
		videos = []*domain.ScheduledVideo{}
	}

	c.JSON(http.StatusOK, gin.H{"videos": videos})
}

func (h *AnalyticsHandler) UpdateScheduledVideo(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextKeyUserID)
	id := c.Param("id")

	var updates usecase.ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	video, err := h.analyticsUsecase.UpdateScheduledVideo(userID, id, updates)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Scheduled video not found"})
		case errors.Is(err, usecase.ErrScheduleValidation):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update scheduled video"})
		}
		return
	}

	c.JSON(http.StatusOK, video)
}

func (h *AnalyticsHandler) RemoveScheduledVideo(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextKeyUserID)
	id := c.Param("id")

	if err := h.analyticsUsecase.RemoveScheduledVideo(userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Scheduled video not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to remove scheduled video"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
