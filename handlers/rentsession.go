package handlers

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strings"

	"medonrent/models"
	"medonrent/services/invoice"
	"medonrent/services/rentsession"
	"medonrent/services/storage"
	"medonrent/utils"

	"github.com/gin-gonic/gin"
)

// RentSessionHandler exposes the rent session lifecycle over HTTP.
type RentSessionHandler struct {
	Service    rentsession.RentSessionService
	Storage    storage.StorageService
	InvoiceSvc invoice.InvoiceService
}

// NewRentSessionHandler creates a new RentSessionHandler instance.
func NewRentSessionHandler(svc rentsession.RentSessionService, store storage.StorageService, inv invoice.InvoiceService) *RentSessionHandler {
	return &RentSessionHandler{Service: svc, Storage: store, InvoiceSvc: inv}
}

// bindInput decodes the request body into out. JSON bodies decode
// directly; multipart forms are flattened into a JSON object first so the
// same lenient field coercion applies to both, then any attached files are
// stored and their paths written back onto the form object.
func (h *RentSessionHandler) bindInput(c *gin.Context, out interface{}) error {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		return c.ShouldBindJSON(out)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return err
	}
	fields := make(map[string]interface{}, len(form.Value))
	for key, values := range form.Value {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}

	if path, err := h.storeFormFile(c, form, "patientConsentFile"); err != nil {
		return err
	} else if path != "" {
		fields["patientConsentFilePath"] = path
	}
	if path, err := h.storeFormFile(c, form, "reportFile"); err != nil {
		return err
	} else if path != "" {
		fields["report"] = map[string]interface{}{"path": path}
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (h *RentSessionHandler) storeFormFile(c *gin.Context, form *multipart.Form, field string) (string, error) {
	headers := form.File[field]
	if len(headers) == 0 {
		return "", nil
	}
	src, err := headers[0].Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	return h.Storage.Save(c.Request.Context(), src, headers[0].Filename)
}

// Create handles POST /api/rent-sessions.
func (h *RentSessionHandler) Create(c *gin.Context) {
	var input models.CreateRentSessionInput
	if err := h.bindInput(c, &input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	session, err := h.Service.Create(c.Request.Context(), &input, actorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// Update handles PUT /api/rent-sessions/:id.
func (h *RentSessionHandler) Update(c *gin.Context) {
	var patch models.UpdateRentSessionInput
	if err := h.bindInput(c, &patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	session, err := h.Service.Update(c.Request.Context(), c.Param("id"), &patch, actorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Delete handles DELETE /api/rent-sessions/:id (soft delete).
func (h *RentSessionHandler) Delete(c *gin.Context) {
	session, err := h.Service.SoftDelete(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Rent session deleted successfully",
		"rentSession": session,
	})
}

// GetByID handles GET /api/rent-sessions/:id.
func (h *RentSessionHandler) GetByID(c *gin.Context) {
	session, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetAll handles GET /api/rent-sessions.
func (h *RentSessionHandler) GetAll(c *gin.Context) {
	sessions, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// CheckConflict handles GET /api/rent-sessions/conflict. It answers
// whether a (patient, device, dateFrom, dateTo) window would collide with
// an existing booking, optionally excluding one session by ID.
func (h *RentSessionHandler) CheckConflict(c *gin.Context) {
	patient := c.Query("patient")
	device := c.Query("device")
	dateFrom := c.Query("dateFrom")
	dateTo := c.Query("dateTo")
	if patient == "" || device == "" || dateFrom == "" || dateTo == "" {
		utils.JSONError(c, http.StatusBadRequest, "patient, device, dateFrom and dateTo are required", "")
		return
	}

	conflict, err := h.Service.HasConflict(c.Request.Context(), device, patient, dateFrom, dateTo, c.Query("excludeId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conflict": conflict})
}

// GenerateInvoice handles POST /api/rent-sessions/:id/invoice.
func (h *RentSessionHandler) GenerateInvoice(c *gin.Context) {
	session, path, err := h.InvoiceSvc.Generate(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"invoiceFilePath": path,
		"rentSession":     session,
	})
}
