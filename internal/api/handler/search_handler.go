package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/tech-sunvi/gas-gomission/internal/dto"
	"github.com/tech-sunvi/gas-gomission/internal/service"
	"github.com/tech-sunvi/gas-gomission/pkg/response"
)

// SearchHandler autocomplétion des tables de référence
type SearchHandler struct {
	searchSvc service.SearchService
}

// NewSearchHandler crée SearchHandler
func NewSearchHandler(searchSvc service.SearchService) *SearchHandler {
	return &SearchHandler{searchSvc: searchSvc}
}

// Employees recherche d'employés par indice de nom
// GET /api/v1/search/employees?hint=
func (h *SearchHandler) Employees(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	matches, err := h.searchSvc.Employees(c.Request.Context(), req.Hint)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": matches})
}

// Destinations recherche de destinations
// GET /api/v1/search/destinations?hint=
func (h *SearchHandler) Destinations(c *gin.Context) {
	h.columnSearch(c, h.searchSvc.Destinations)
}

// TransportMeans recherche de moyens de transport
// GET /api/v1/search/transport?hint=
func (h *SearchHandler) TransportMeans(c *gin.Context) {
	h.columnSearch(c, h.searchSvc.TransportMeans)
}

// Budgets recherche de budgets
// GET /api/v1/search/budgets?hint=
func (h *SearchHandler) Budgets(c *gin.Context) {
	h.columnSearch(c, h.searchSvc.Budgets)
}

func (h *SearchHandler) columnSearch(c *gin.Context, search func(ctx context.Context, hint string) ([]string, error)) {
	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	results, err := search(c.Request.Context(), req.Hint)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": results})
}
