package handlers

import (
	"encoding/csv"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Alecrity/tough-as-a-tank-final/internal/services"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	participantService *services.ParticipantService
}

func NewExportHandler(participantService *services.ParticipantService) *ExportHandler {
	return &ExportHandler{participantService: participantService}
}

var exportHeader = []string{"id", "name", "email", "phone", "company", "score", "created_at", "updated_at"}

// ExportCSV godoc
// @Summary      Export participants as CSV
// @Description  Download all participants, best scores first, unscored entrants last
// @Tags         participants
// @Produce      text/csv
// @Success      200 {string} string "CSV attachment"
// @Router       /api/export-csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	participants, err := h.participantService.Export()
	if err != nil {
		log.Printf("export failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "export failed"})
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="tank_challenge_participants.csv"`)

	w := csv.NewWriter(c.Writer)
	w.Write(exportHeader)

	for _, p := range participants {
		score := ""
		if p.Score != nil {
			score = strconv.FormatFloat(*p.Score, 'f', -1, 64)
		}
		w.Write([]string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.Name,
			p.Email,
			p.Phone,
			p.Company,
			score,
			p.CreatedAt.Format(time.RFC3339),
			p.UpdatedAt.Format(time.RFC3339),
		})
	}
	w.Flush()
}
