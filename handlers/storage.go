package handlers

import (
	"net/http"

	"everafter/services/storage"
	"everafter/utils"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 20 << 20

// StorageHandler handles admin media uploads.
type StorageHandler struct {
	Storage storage.MediaStorage
}

func NewStorageHandler(s storage.MediaStorage) *StorageHandler {
	return &StorageHandler{Storage: s}
}

// UploadMediaHandler handles POST /api/admin/media/:section/:entityId with a
// multipart "file" field.
func (h *StorageHandler) UploadMediaHandler(c *gin.Context) {
	if h.Storage == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Media storage is not configured", "")
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "File not provided", err.Error())
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Unable to read file", err.Error())
		return
	}
	defer file.Close()

	upload, err := h.Storage.Upload(c.Request.Context(), file, c.Param("section"), c.Param("entityId"), fileHeader.Filename)
	if err != nil {
		respondError(c, "Failed to upload file", err)
		return
	}
	c.JSON(http.StatusCreated, upload)
}

// DeleteMediaHandler handles DELETE /api/admin/media?path=.
func (h *StorageHandler) DeleteMediaHandler(c *gin.Context) {
	if h.Storage == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Media storage is not configured", "")
		return
	}
	path := c.Query("path")
	if path == "" {
		utils.JSONError(c, http.StatusBadRequest, "path is required", "")
		return
	}
	if err := h.Storage.Delete(c.Request.Context(), path); err != nil {
		respondError(c, "Failed to delete file", err)
		return
	}
	c.Status(http.StatusNoContent)
}
