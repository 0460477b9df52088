package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tech-sunvi/gas-gomission/internal/dto"
	"github.com/tech-sunvi/gas-gomission/internal/service"
	"github.com/tech-sunvi/gas-gomission/pkg/response"
)

// PersonnelHandler consultation et mise à jour des dossiers du personnel
type PersonnelHandler struct {
	personnelSvc service.PersonnelService
}

// NewPersonnelHandler crée PersonnelHandler
func NewPersonnelHandler(personnelSvc service.PersonnelService) *PersonnelHandler {
	return &PersonnelHandler{personnelSvc: personnelSvc}
}

// GetRecord retourne le dossier complet d'un agent
// GET /api/v1/personnel/:id
func (h *PersonnelHandler) GetRecord(c *gin.Context) {
	employeeID := c.Param("id")
	if employeeID == "" {
		response.BadRequest(c, 10001, "identifiant d'agent requis")
		return
	}

	record, err := h.personnelSvc.GetRecord(c.Request.Context(), employeeID)
	if err != nil {
		h.handlePersonnelError(c, err)
		return
	}

	response.OK(c, record)
}

// UpsertRecord crée ou met à jour un dossier à partir du formulaire soumis.
// L'issue est toujours un 200 portant {success, message}.
// POST /api/v1/personnel
func (h *PersonnelHandler) UpsertRecord(c *gin.Context) {
	var form dto.UpsertPersonnelRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, 10001, "corps de requête invalide")
		return
	}

	result := h.personnelSvc.UpsertRecord(c.Request.Context(), form)
	response.OK(c, result)
}

func (h *PersonnelHandler) handlePersonnelError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPersonnelNotFound):
		response.NotFound(c, 12001, "dossier du personnel introuvable")
	default:
		response.InternalError(c)
	}
}
