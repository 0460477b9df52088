package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tech-sunvi/gas-gomission/pkg/docs"
	"github.com/tech-sunvi/gas-gomission/pkg/response"
)

// DocumentHandler consultation des documents générés
type DocumentHandler struct {
	store *docs.Store
}

// NewDocumentHandler crée DocumentHandler
func NewDocumentHandler(store *docs.Store) *DocumentHandler {
	return &DocumentHandler{store: store}
}

// Get retourne un document assemblé par son identifiant
// GET /api/v1/documents/:id
func (h *DocumentHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "identifiant de document requis")
		return
	}

	doc, err := h.store.Open(id)
	if err != nil {
		if errors.Is(err, docs.ErrDocumentNotFound) {
			response.NotFound(c, 14001, "document introuvable")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, doc)
}
