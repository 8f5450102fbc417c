package handlers

import (
	"errors"
	"io"
	"net/http"

	"everafter/services/content"
	"everafter/utils"

	"github.com/gin-gonic/gin"
)

const maxContentPatchBytes = 256 << 10

// ContentHandler serves homepage content and the admin draft/publish API.
type ContentHandler struct {
	Service content.ContentService
}

func NewContentHandler(s content.ContentService) *ContentHandler {
	return &ContentHandler{Service: s}
}

// GetPublicContentHandler handles GET /api/content/:slug.
func (h *ContentHandler) GetPublicContentHandler(c *gin.Context) {
	resp, err := h.Service.Public(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, "Failed to load content", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetAdminContentHandler handles GET /api/admin/content/:slug.
func (h *ContentHandler) GetAdminContentHandler(c *gin.Context) {
	resp, err := h.Service.Workspace(c.Request.Context(), c.GetString("adminID"), c.Param("slug"))
	if err != nil {
		respondError(c, "Failed to load content", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EditSectionHandler handles PATCH /api/admin/content/:slug/:section.
// Object sections take a partial object, list sections take the full list.
func (h *ContentHandler) EditSectionHandler(c *gin.Context) {
	section, err := content.ParseSection(c.Param("section"))
	if err != nil {
		respondError(c, "Unknown section", err)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxContentPatchBytes)
	body, err := io.ReadAll(c.Request.Body)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		utils.JSONError(c, http.StatusRequestEntityTooLarge, "Content patch is too large", "")
		return
	}
	if err != nil || len(body) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Request body is required", "")
		return
	}
	resp, err := h.Service.Edit(c.Request.Context(), c.GetString("adminID"), c.Param("slug"), section, body)
	if err != nil {
		respondError(c, "Failed to update content", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SaveDraftHandler handles POST /api/admin/content/:slug/draft.
func (h *ContentHandler) SaveDraftHandler(c *gin.Context) {
	resp, err := h.Service.SaveDraft(c.Request.Context(), c.GetString("adminID"), c.Param("slug"))
	if err != nil {
		respondError(c, "Failed to save draft", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PublishHandler handles POST /api/admin/content/:slug/publish.
func (h *ContentHandler) PublishHandler(c *gin.Context) {
	resp, err := h.Service.Publish(c.Request.Context(), c.GetString("adminID"), c.Param("slug"))
	if err != nil {
		respondError(c, "Failed to publish", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DiscardHandler handles DELETE /api/admin/content/:slug/workspace.
func (h *ContentHandler) DiscardHandler(c *gin.Context) {
	if err := h.Service.Discard(c.Request.Context(), c.GetString("adminID"), c.Param("slug")); err != nil {
		respondError(c, "Failed to discard changes", err)
		return
	}
	c.Status(http.StatusNoContent)
}
