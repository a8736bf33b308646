package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/Alecrity/tough-as-a-tank-final/internal/services"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	participantService *services.ParticipantService
}

func NewHealthHandler(participantService *services.ParticipantService) *HealthHandler {
	return &HealthHandler{participantService: participantService}
}

type HealthResponse struct {
	Status             string    `json:"status" example:"healthy"`
	ParticipantCount   int64     `json:"participant_count"`
	ScoredParticipants int64     `json:"scored_participants"`
	Timestamp          time.Time `json:"timestamp"`
}

// Health godoc
// @Summary      Health check
// @Description  Service status with participant counts
// @Tags         health
// @Produce      json
// @Success      200 {object} HealthResponse
// @Router       /api/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	stats, err := h.participantService.Stats()
	if err != nil {
		log.Printf("health stats failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "database unavailable"})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:             "healthy",
		ParticipantCount:   stats.ParticipantCount,
		ScoredParticipants: stats.ScoredParticipants,
		Timestamp:          time.Now().UTC(),
	})
}
