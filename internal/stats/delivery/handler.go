package delivery

import (
	"errors"
	"log"
	"net/http"

	"creatorboard-backend/internal/stats/usecase"
	"creatorboard-backend/pkg/youtube"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/googleapi"
)

type StatsHandler struct {
	statsUsecase usecase.StatsUsecase
	development  bool
}

func NewStatsHandler(statsUsecase usecase.StatsUsecase, development bool) *StatsHandler {
	return &StatsHandler{
		statsUsecase: statsUsecase,
		development:  development,
	}
}

func (h *StatsHandler) GetVideoStats(c *gin.Context) {
	videoID := c.Param("videoId")

	stats, err := h.statsUsecase.GetVideoStats(c.Request.Context(), videoID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidVideoID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Video ID is required"})
		case errors.Is(err, youtube.ErrVideoNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		default:
			log.Printf("Video stats error for %q: %v", videoID, err)
			body := gin.H{"error": "Failed to fetch statistics"}
			var apiErr *googleapi.Error
			if errors.As(err, &apiErr) {
				if h.development {
					body["details"] = apiErr.Message
					body["code"] = apiErr.Code
				}
				c.JSON(http.StatusBadGateway, body)
				return
			}
			if h.development {
				body["details"] = err.Error()
			}
			c.JSON(http.StatusInternalServerError, body)
		}
		return
	}

	c.JSON(http.StatusOK, stats)
}
