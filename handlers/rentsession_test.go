package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medonrent/models"
	"medonrent/services/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessionService struct {
	session *models.RentSession
	list    []models.RentSession
	err     error
}

func (s *stubSessionService) Create(ctx context.Context, input *models.CreateRentSessionInput, actorID string) (*models.RentSession, error) {
	return s.session, s.err
}

func (s *stubSessionService) Update(ctx context.Context, id string, patch *models.UpdateRentSessionInput, actorID string) (*models.RentSession, error) {
	return s.session, s.err
}

func (s *stubSessionService) SoftDelete(ctx context.Context, id, actorID string) (*models.RentSession, error) {
	return s.session, s.err
}

func (s *stubSessionService) GetByID(ctx context.Context, id string) (*models.RentSession, error) {
	return s.session, s.err
}

func (s *stubSessionService) GetAll(ctx context.Context) ([]models.RentSession, error) {
	return s.list, s.err
}

func (s *stubSessionService) HasConflict(ctx context.Context, deviceRef, patientRef, dateFrom, dateTo, excludeID string) (bool, error) {
	return s.session != nil, s.err
}

func newSessionRouter(svc *stubSessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewRentSessionHandler(svc, nil, nil)
	r := gin.New()
	r.POST("/api/rent-sessions", h.Create)
	r.PUT("/api/rent-sessions/:id", h.Update)
	r.DELETE("/api/rent-sessions/:id", h.Delete)
	r.GET("/api/rent-sessions/:id", h.GetByID)
	r.GET("/api/rent-sessions", h.GetAll)
	r.GET("/api/rent-sessions-conflict", h.CheckConflict)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateReturnsCreated(t *testing.T) {
	svc := &stubSessionService{session: &models.RentSession{RentSessionID: "RENT0000001"}}
	r := newSessionRouter(svc)

	w := doJSON(r, http.MethodPost, "/api/rent-sessions",
		`{"patient":"P0000001","device":"D0000001","dateFrom":"2024-03-05","dateTo":"2024-03-12"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	var got models.RentSession
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "RENT0000001", got.RentSessionID)
}

func TestCreateMapsConflictTo409(t *testing.T) {
	svc := &stubSessionService{err: apperrors.NewConflict("A rent session already exists for this patient, device, and date range.")}
	r := newSessionRouter(svc)

	w := doJSON(r, http.MethodPost, "/api/rent-sessions",
		`{"patient":"P0000001","device":"D0000001","dateFrom":"2024-03-05","dateTo":"2024-03-12"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestCreateMapsValidationTo400(t *testing.T) {
	svc := &stubSessionService{err: apperrors.NewValidation("Billing must include totalCharges and paymentType.")}
	r := newSessionRouter(svc)

	w := doJSON(r, http.MethodPost, "/api/rent-sessions", `{"patient":"P0000001"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRejectsMalformedJSON(t *testing.T) {
	svc := &stubSessionService{}
	r := newSessionRouter(svc)

	w := doJSON(r, http.MethodPost, "/api/rent-sessions", `{"patient":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateMapsStateErrorTo400(t *testing.T) {
	svc := &stubSessionService{err: apperrors.NewState("Rent session is deleted and cannot be modified")}
	r := newSessionRouter(svc)

	w := doJSON(r, http.MethodPut, "/api/rent-sessions/RENT0000001", `{"remarks":"x"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "deleted and cannot be modified")
}

func TestGetByIDMapsNotFoundTo404(t *testing.T) {
	svc := &stubSessionService{err: apperrors.NewNotFound("Rent session not found")}
	r := newSessionRouter(svc)

	w := doJSON(r, http.MethodGet, "/api/rent-sessions/RENT0000042", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteReturnsSessionAndMessage(t *testing.T) {
	svc := &stubSessionService{session: &models.RentSession{RentSessionID: "RENT0000001", IsDeleted: true}}
	r := newSessionRouter(svc)

	w := doJSON(r, http.MethodDelete, "/api/rent-sessions/RENT0000001", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Rent session deleted successfully")
}

func TestStorageErrorMapsTo503(t *testing.T) {
	svc := &stubSessionService{err: apperrors.NewStorage("rent session lookup failed", context.DeadlineExceeded)}
	r := newSessionRouter(svc)

	w := doJSON(r, http.MethodGet, "/api/rent-sessions", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCheckConflictRequiresQueryParams(t *testing.T) {
	svc := &stubSessionService{}
	r := newSessionRouter(svc)

	w := doJSON(r, http.MethodGet, "/api/rent-sessions-conflict?patient=P0000001", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckConflictReportsCollision(t *testing.T) {
	svc := &stubSessionService{session: &models.RentSession{RentSessionID: "RENT0000001"}}
	r := newSessionRouter(svc)

	w := doJSON(r, http.MethodGet,
		"/api/rent-sessions-conflict?patient=P0000001&device=D0000001&dateFrom=2024-03-05&dateTo=2024-03-12", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"conflict":true`)
}
