package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tech-sunvi/gas-gomission/internal/dto"
	"github.com/tech-sunvi/gas-gomission/internal/service"
	"github.com/tech-sunvi/gas-gomission/pkg/docs"
	"github.com/tech-sunvi/gas-gomission/pkg/response"
)

// MissionHandler soumission des ordres de mission et exports associés
type MissionHandler struct {
	missionSvc service.MissionService
	exportSvc  service.ExportService
}

// NewMissionHandler crée MissionHandler
func NewMissionHandler(missionSvc service.MissionService, exportSvc service.ExportService) *MissionHandler {
	return &MissionHandler{missionSvc: missionSvc, exportSvc: exportSvc}
}

// Submit enregistre la mission puis assemble le document final
// POST /api/v1/missions
func (h *MissionHandler) Submit(c *gin.Context) {
	var req dto.SubmitMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "corps de requête invalide")
		return
	}

	result, err := h.missionSvc.Submit(c.Request.Context(), &req)
	if err != nil {
		h.handleMissionError(c, err)
		return
	}

	response.Created(c, result)
}

// Calendar exporte une mission au format iCalendar
// GET /api/v1/missions/:id/calendar
func (h *MissionHandler) Calendar(c *gin.Context) {
	missionID := c.Param("id")
	if missionID == "" {
		response.BadRequest(c, 10001, "identifiant de mission requis")
		return
	}

	buf, filename, err := h.exportSvc.MissionCalendar(c.Request.Context(), missionID)
	if err != nil {
		h.handleMissionError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}

func (h *MissionHandler) handleMissionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDates):
		response.BadRequest(c, 13001, "dates de mission invalides")
	case errors.Is(err, service.ErrNoTravelers):
		response.BadRequest(c, 13002, "aucun voyageur dans la demande")
	case errors.Is(err, service.ErrMissionNotFound):
		response.NotFound(c, 13003, "mission introuvable")
	case errors.Is(err, service.ErrExportMissionDates):
		response.BadRequest(c, 13004, "dates de mission inexploitables pour l'export")
	case errors.Is(err, docs.ErrTemplateNotFound):
		response.Error(c, http.StatusInternalServerError, 13005, "modèle de document introuvable")
	default:
		response.InternalError(c)
	}
}
