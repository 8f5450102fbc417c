package handlers

import (
	"context"
	"net/http"

	"everafter/models"
	ai "everafter/services/intelligence"

	"github.com/gin-gonic/gin"
)

// Asker answers a single question about a vendor.
type Asker interface {
	Ask(ctx context.Context, req models.AIRequest) (*models.AIResponse, error)
}

type AIHandler struct {
	Assistant Asker
}

func NewAIHandler(a Asker) *AIHandler {
	return &AIHandler{Assistant: a}
}

// AskVendorHandler handles POST /api/vendors/:slug/assistant.
func (h *AIHandler) AskVendorHandler(c *gin.Context) {
	var req models.AIRequest
	if !bindJSON(c, &req) {
		return
	}
	req.VendorSlug = c.Param("slug")

	resp, err := h.Assistant.Ask(c.Request.Context(), req)
	if err != nil {
		respondError(c, "The assistant could not answer right now", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

var _ Asker = (*ai.Assistant)(nil)
