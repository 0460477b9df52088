package handler

import (
	"github.com/tech-sunvi/gas-gomission/internal/service"
	"github.com/tech-sunvi/gas-gomission/pkg/docs"
)

// Handler point d'entrée agrégé de tous les handlers HTTP
type Handler struct {
	Search    *SearchHandler
	Personnel *PersonnelHandler
	Mission   *MissionHandler
	Reference *ReferenceHandler
	Document  *DocumentHandler
}

// NewHandler crée l'agrégat des handlers
func NewHandler(svc *service.Service, docStore *docs.Store) *Handler {
	return &Handler{
		Search:    NewSearchHandler(svc.Search),
		Personnel: NewPersonnelHandler(svc.Personnel),
		Mission:   NewMissionHandler(svc.Mission, svc.Export),
		Reference: NewReferenceHandler(svc.Reference),
		Document:  NewDocumentHandler(docStore),
	}
}
