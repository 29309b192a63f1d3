package handlers

import (
	"net/http"
	"strings"

	rentsessionRepo "medonrent/database/repository/rentsession"
	"medonrent/services/storage"
	"medonrent/utils"

	"github.com/gin-gonic/gin"
)

// UploadHandler stores standalone file uploads and serves downloads of
// artifacts attached to rent sessions.
type UploadHandler struct {
	Storage     storage.StorageService
	SessionRepo rentsessionRepo.RentSessionRepository
}

// NewUploadHandler creates a new UploadHandler instance.
func NewUploadHandler(store storage.StorageService, sessions rentsessionRepo.RentSessionRepository) *UploadHandler {
	return &UploadHandler{Storage: store, SessionRepo: sessions}
}

// Upload handles POST /api/uploads. The returned path is what callers
// record on a rent session (patientConsentFilePath or report.path).
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file not provided", err.Error())
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read file", err.Error())
		return
	}
	defer src.Close()

	path, err := h.Storage.Save(c.Request.Context(), src, fileHeader.Filename)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to store file", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"filePath": path})
}

// Download handles GET /api/uploads/download?path=...; only the creator of
// the owning rent session may fetch an attached artifact.
func (h *UploadHandler) Download(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		utils.JSONError(c, http.StatusBadRequest, "path is required", "")
		return
	}

	session, err := h.SessionRepo.FindByFilePath(c.Request.Context(), path)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "file lookup failed", err.Error())
		return
	}
	if session == nil {
		utils.JSONError(c, http.StatusNotFound, "File not found", "")
		return
	}
	if session.CreatedBy != "" && session.CreatedBy != actorID(c) {
		utils.JSONError(c, http.StatusForbidden, "You do not have permission to access this file", "")
		return
	}

	url, err := h.Storage.DownloadURL(c.Request.Context(), path)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "File not found", err.Error())
		return
	}
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		c.JSON(http.StatusOK, gin.H{"downloadURL": url})
		return
	}
	c.File(url)
}
