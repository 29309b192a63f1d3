package handlers

import (
	"net/http"

	"medonrent/models"
	"medonrent/services/device"
	"medonrent/utils"

	"github.com/gin-gonic/gin"
)

// DeviceHandler exposes device CRUD over HTTP.
type DeviceHandler struct {
	Service device.DeviceService
}

// NewDeviceHandler creates a new DeviceHandler instance.
func NewDeviceHandler(svc device.DeviceService) *DeviceHandler {
	return &DeviceHandler{Service: svc}
}

// Create handles POST /api/devices.
func (h *DeviceHandler) Create(c *gin.Context) {
	var input models.CreateDeviceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	created, err := h.Service.Create(c.Request.Context(), &input, actorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/devices/:id.
func (h *DeviceHandler) Update(c *gin.Context) {
	var patch models.UpdateDeviceInput
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), c.Param("id"), &patch, actorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/devices/:id.
func (h *DeviceHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Device deleted successfully"})
}

// GetByID handles GET /api/devices/:id.
func (h *DeviceHandler) GetByID(c *gin.Context) {
	found, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// GetAll handles GET /api/devices.
func (h *DeviceHandler) GetAll(c *gin.Context) {
	devices, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, devices)
}
