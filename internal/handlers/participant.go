package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Alecrity/tough-as-a-tank-final/internal/metrics"
	"github.com/Alecrity/tough-as-a-tank-final/internal/services"

	"github.com/gin-gonic/gin"
)

type ParticipantHandler struct {
	participantService *services.ParticipantService
}

func NewParticipantHandler(participantService *services.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{participantService: participantService}
}

type RegisterRequest struct {
	Name    string `json:"name" binding:"required" example:"Alice Smith"`
	Email   string `json:"email" binding:"required" example:"alice@example.com"`
	Phone   string `json:"phone" example:"555-0134"`
	Company string `json:"company" example:"Acme Trucking"`
}

type UpdateScoreRequest struct {
	Score *float64 `json:"score" binding:"required" example:"72.5"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

// Register godoc
// @Summary      Register a participant
// @Description  Register a contest entrant from the popup form
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      201 {object} Participant
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/register [post]
func (h *ParticipantHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name and email are required"})
		return
	}

	participant, err := h.participantService.Register(services.RegisterInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNameRequired), errors.Is(err, services.ErrEmailRequired):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrEmailTaken):
			metrics.DuplicateRegistrations.Inc()
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			log.Printf("register failed: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "registration failed"})
		}
		return
	}

	metrics.Registrations.Inc()
	c.JSON(http.StatusCreated, participant)
}

// Count godoc
// @Summary      Participant count
// @Description  Total number of registered participants, shown by the popup
// @Tags         participants
// @Produce      json
// @Success      200 {object} CountResponse
// @Router       /api/participant-count [get]
func (h *ParticipantHandler) Count(c *gin.Context) {
	count, err := h.participantService.Count()
	if err != nil {
		log.Printf("count failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not load participant count"})
		return
	}
	c.JSON(http.StatusOK, CountResponse{Count: count})
}

// List godoc
// @Summary      List participants
// @Description  All participants, newest first
// @Tags         participants
// @Produce      json
// @Success      200 {array} Participant
// @Router       /api/participants [get]
func (h *ParticipantHandler) List(c *gin.Context) {
	participants, err := h.participantService.List()
	if err != nil {
		log.Printf("list failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not load participants"})
		return
	}
	c.JSON(http.StatusOK, participants)
}

// UpdateScore godoc
// @Summary      Submit a grip score
// @Description  Records the score only if it beats the participant's current best
// @Tags         scores
// @Accept       json
// @Produce      json
// @Param        id path int true "Participant ID"
// @Param        request body UpdateScoreRequest true "Score data"
// @Success      200 {object} services.ScoreResult
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/scores/{id} [post]
func (h *ParticipantHandler) UpdateScore(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid participant id"})
		return
	}

	var req UpdateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "score is required"})
		return
	}

	metrics.ScoreSubmissions.Inc()
	result, err := h.participantService.UpdateScore(uint(id), *req.Score)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidScore):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrParticipantNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		default:
			log.Printf("score update failed: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "score update failed"})
		}
		return
	}

	if result.Accepted {
		metrics.AcceptedScores.Inc()
	}
	c.JSON(http.StatusOK, result)
}

// Leaderboard godoc
// @Summary      Get leaderboard
// @Description  Scored participants sorted by best score
// @Tags         scores
// @Produce      json
// @Success      200 {array} services.LeaderboardEntry
// @Router       /api/leaderboard [get]
func (h *ParticipantHandler) Leaderboard(c *gin.Context) {
	entries, err := h.participantService.Leaderboard()
	if err != nil {
		log.Printf("leaderboard failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not load leaderboard"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Delete godoc
// @Summary      Delete a participant
// @Description  Removes a participant and returns the removed record
// @Tags         participants
// @Produce      json
// @Param        id path int true "Participant ID"
// @Success      200 {object} Participant
// @Failure      404 {object} ErrorResponse
// @Router       /api/participants/{id} [delete]
func (h *ParticipantHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid participant id"})
		return
	}

	participant, err := h.participantService.Delete(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrParticipantNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		log.Printf("delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "delete failed"})
		return
	}

	c.JSON(http.StatusOK, participant)
}
