package handlers

import (
	"net/http"

	"medonrent/models"
	"medonrent/services/patient"
	"medonrent/utils"

	"github.com/gin-gonic/gin"
)

// PatientHandler exposes patient CRUD over HTTP.
type PatientHandler struct {
	Service patient.PatientService
}

// NewPatientHandler creates a new PatientHandler instance.
func NewPatientHandler(svc patient.PatientService) *PatientHandler {
	return &PatientHandler{Service: svc}
}

// Create handles POST /api/patients.
func (h *PatientHandler) Create(c *gin.Context) {
	var input models.CreatePatientInput
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

// Update handles PUT /api/patients/:id.
func (h *PatientHandler) Update(c *gin.Context) {
	var patch models.UpdatePatientInput
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

// Delete handles DELETE /api/patients/:id.
func (h *PatientHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted successfully"})
}

// GetByID handles GET /api/patients/:id.
func (h *PatientHandler) GetByID(c *gin.Context) {
	found, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// GetAll handles GET /api/patients.
func (h *PatientHandler) GetAll(c *gin.Context) {
	patients, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}
