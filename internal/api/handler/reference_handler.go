package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tech-sunvi/gas-gomission/internal/dto"
	"github.com/tech-sunvi/gas-gomission/internal/service"
	"github.com/tech-sunvi/gas-gomission/pkg/response"
)

// ReferenceHandler enrichissement des tables de référence
type ReferenceHandler struct {
	referenceSvc service.ReferenceService
}

// NewReferenceHandler crée ReferenceHandler
func NewReferenceHandler(referenceSvc service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceSvc: referenceSvc}
}

// AddDestination ajoute une destination à la table de référence
// POST /api/v1/destinations
func (h *ReferenceHandler) AddDestination(c *gin.Context) {
	var req dto.AddDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "corps de requête invalide")
		return
	}

	if err := h.referenceSvc.AddDestination(c.Request.Context(), req.Destination); err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, gin.H{"destination": req.Destination})
}

// AddVehicle ajoute un moyen de transport à la table de référence
// POST /api/v1/vehicles
func (h *ReferenceHandler) AddVehicle(c *gin.Context) {
	var req dto.AddVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "corps de requête invalide")
		return
	}

	if err := h.referenceSvc.AddVehicle(c.Request.Context(), req.Vehicle); err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, gin.H{"vehicle": req.Vehicle})
}
