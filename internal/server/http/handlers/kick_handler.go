package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/kicktracker/internal/domain/model"
	"github.com/polkiloo/kicktracker/internal/server/http/dto"
)

// KickHandler manages kick endpoints. Every route expects AuthRequired upstream.
type KickHandler struct {
	facade KickFacade
}

// NewKickHandler constructs KickHandler.
func NewKickHandler(facade KickFacade) *KickHandler {
	return &KickHandler{facade: facade}
}

// Record handles POST /api/kicks. An empty body records a kick at the current time.
func (h *KickHandler) Record(c *gin.Context) {
	var req dto.KickRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondMessage(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	kick, err := h.facade.RecordKick(c.Request.Context(), CurrentUserID(c), req.Timestamp, req.Note)
	if err != nil {
		respondError(c, err, msgKickNotFound)
		return
	}
	c.JSON(http.StatusOK, toKickResponse(*kick))
}

// List handles GET /api/kicks with an optional ?date=YYYY-MM-DD filter.
func (h *KickHandler) List(c *gin.Context) {
	kicks, err := h.facade.Kicks(c.Request.Context(), CurrentUserID(c), c.Query("date"))
	if err != nil {
		respondError(c, err, msgKickNotFound)
		return
	}

	response := make([]dto.KickResponse, 0, len(kicks))
	for _, k := range kicks {
		response = append(response, toKickResponse(k))
	}
	c.JSON(http.StatusOK, response)
}

// Remove handles DELETE /api/kicks/:id.
func (h *KickHandler) Remove(c *gin.Context) {
	if err := h.facade.RemoveKick(c.Request.Context(), CurrentUserID(c), c.Param("id")); err != nil {
		respondError(c, err, msgKickNotFound)
		return
	}
	respondMessage(c, http.StatusOK, msgKickRemoved)
}

// Stats handles GET /api/kicks/stats.
func (h *KickHandler) Stats(c *gin.Context) {
	totals, err := h.facade.DailyTotals(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err, msgKickNotFound)
		return
	}

	response := make([]dto.DailyTotalResponse, 0, len(totals))
	for _, d := range totals {
		response = append(response, dto.DailyTotalResponse{Date: d.Date, Count: d.Count})
	}
	c.JSON(http.StatusOK, response)
}

// Summary handles GET /api/kicks/summary with an optional ?date= parameter.
func (h *KickHandler) Summary(c *gin.Context) {
	summary, err := h.facade.DailySummary(c.Request.Context(), CurrentUserID(c), c.Query("date"))
	if err != nil {
		respondError(c, err, msgKickNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.SummaryResponse{
		Date:      summary.Date,
		Count:     summary.Count,
		Target:    summary.Target,
		Remaining: summary.Remaining,
		GoalMet:   summary.GoalMet,
	})
}

func toKickResponse(kick model.Kick) dto.KickResponse {
	return dto.KickResponse{
		ID:        kick.ID,
		UserID:    kick.UserID,
		Timestamp: kick.Timestamp,
		Note:      kick.Note,
		CreatedAt: kick.CreatedAt,
	}
}
