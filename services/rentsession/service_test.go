package rentsession

import (
	"context"
	"fmt"
	"testing"
	"time"

	deviceRepo "medonrent/database/repository/device"
	patientRepo "medonrent/database/repository/patient"
	rentsessionRepo "medonrent/database/repository/rentsession"
	"medonrent/models"
	"medonrent/services/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeSessionRepo struct {
	sessions map[string]*models.RentSession
	lastSet  bson.M
	lastKey  *rentsessionRepo.ConflictKey
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*models.RentSession)}
}

func (r *fakeSessionRepo) overlapping(key rentsessionRepo.ConflictKey) *models.RentSession {
	for _, s := range r.sessions {
		if s.IsDeleted || s.Patient != key.Patient || s.Device != key.Device {
			continue
		}
		if key.ExcludeID != "" && s.RentSessionID == key.ExcludeID {
			continue
		}
		if Overlaps(key.DateFrom, key.DateTo, s.DateFrom, s.DateTo) {
			return s
		}
	}
	return nil
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *models.RentSession) error {
	key := rentsessionRepo.ConflictKey{
		Patient: session.Patient, Device: session.Device,
		DateFrom: session.DateFrom, DateTo: session.DateTo,
	}
	if r.overlapping(key) != nil {
		return rentsessionRepo.ErrOverlap
	}
	r.sessions[session.RentSessionID] = session
	return nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, id string, set bson.M, key *rentsessionRepo.ConflictKey) (*models.RentSession, error) {
	r.lastSet = set
	r.lastKey = key
	session, ok := r.sessions[id]
	if !ok {
		return nil, rentsessionRepo.ErrNotFound
	}
	if key != nil && r.overlapping(*key) != nil {
		return nil, rentsessionRepo.ErrOverlap
	}
	if v, ok := set["isDeleted"].(bool); ok {
		session.IsDeleted = v
	}
	if v, ok := set["billing"].(*models.Billing); ok {
		session.Billing = v
	}
	if v, ok := set["remarks"].(string); ok {
		session.Remarks = v
	}
	if v, ok := set["dateTo"].(string); ok {
		session.DateTo = v
	}
	return session, nil
}

func (r *fakeSessionRepo) GetByID(ctx context.Context, id string) (*models.RentSession, error) {
	session, ok := r.sessions[id]
	if !ok {
		return nil, rentsessionRepo.ErrNotFound
	}
	return session, nil
}

func (r *fakeSessionRepo) GetActiveByID(ctx context.Context, id string) (*models.RentSession, error) {
	session, ok := r.sessions[id]
	if !ok || session.IsDeleted {
		return nil, rentsessionRepo.ErrNotFound
	}
	return session, nil
}

func (r *fakeSessionRepo) GetAll(ctx context.Context) ([]models.RentSession, error) {
	var out []models.RentSession
	for _, s := range r.sessions {
		if !s.IsDeleted {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) FindOverlapping(ctx context.Context, key rentsessionRepo.ConflictKey) (*models.RentSession, error) {
	return r.overlapping(key), nil
}

func (r *fakeSessionRepo) FindByFilePath(ctx context.Context, path string) (*models.RentSession, error) {
	for _, s := range r.sessions {
		if s.IsDeleted {
			continue
		}
		if s.PatientConsentFilePath == path || (s.Report != nil && s.Report.Path == path) {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) Count(ctx context.Context, filter bson.M) (int64, error) {
	return int64(len(r.sessions)), nil
}

func (r *fakeSessionRepo) FinancialTotalsSince(ctx context.Context, since time.Time) (*models.FinancialTotals, error) {
	return &models.FinancialTotals{}, nil
}

func (r *fakeSessionRepo) PaymentBreakdown(ctx context.Context) ([]models.PaymentStatusGroup, error) {
	return nil, nil
}

func (r *fakeSessionRepo) Recent(ctx context.Context, limit int64) ([]models.RentSession, error) {
	return nil, nil
}

type fakePatientRepo struct {
	patients map[string]*models.Patient
}

func (r *fakePatientRepo) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	p, ok := r.patients[id]
	if !ok {
		return nil, patientRepo.ErrNotFound
	}
	return p, nil
}

func (r *fakePatientRepo) GetByMobile(ctx context.Context, mobileNo string) (*models.Patient, error) {
	for _, p := range r.patients {
		if p.MobileNo == mobileNo {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePatientRepo) Create(ctx context.Context, patient *models.Patient) error {
	r.patients[patient.PatientID] = patient
	return nil
}

func (r *fakePatientRepo) Update(ctx context.Context, id string, set bson.M) (*models.Patient, error) {
	p, ok := r.patients[id]
	if !ok {
		return nil, patientRepo.ErrNotFound
	}
	return p, nil
}

func (r *fakePatientRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.patients[id]; !ok {
		return patientRepo.ErrNotFound
	}
	delete(r.patients, id)
	return nil
}

func (r *fakePatientRepo) GetAll(ctx context.Context) ([]models.Patient, error) {
	var out []models.Patient
	for _, p := range r.patients {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePatientRepo) Count(ctx context.Context, filter bson.M) (int64, error) {
	return int64(len(r.patients)), nil
}

type fakeDeviceRepo struct {
	devices map[string]*models.Device
}

func (r *fakeDeviceRepo) GetByID(ctx context.Context, id string) (*models.Device, error) {
	d, ok := r.devices[id]
	if !ok {
		return nil, deviceRepo.ErrNotFound
	}
	return d, nil
}

func (r *fakeDeviceRepo) GetBySerial(ctx context.Context, serialNumber string) (*models.Device, error) {
	for _, d := range r.devices {
		if d.SerialNumber == serialNumber {
			return d, nil
		}
	}
	return nil, nil
}

func (r *fakeDeviceRepo) Create(ctx context.Context, device *models.Device) error {
	r.devices[device.DeviceID] = device
	return nil
}

func (r *fakeDeviceRepo) Update(ctx context.Context, id string, update bson.M) (*models.Device, error) {
	d, ok := r.devices[id]
	if !ok {
		return nil, deviceRepo.ErrNotFound
	}
	return d, nil
}

func (r *fakeDeviceRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.devices[id]; !ok {
		return deviceRepo.ErrNotFound
	}
	delete(r.devices, id)
	return nil
}

func (r *fakeDeviceRepo) GetAll(ctx context.Context) ([]models.Device, error) {
	var out []models.Device
	for _, d := range r.devices {
		out = append(out, *d)
	}
	return out, nil
}

func (r *fakeDeviceRepo) Count(ctx context.Context, filter bson.M) (int64, error) {
	return int64(len(r.devices)), nil
}

func (r *fakeDeviceRepo) TypeBreakdown(ctx context.Context) ([]models.DeviceTypeGroup, error) {
	return nil, nil
}

type fakeAllocator struct {
	next int64
}

func (a *fakeAllocator) Allocate(ctx context.Context, counterName string) (int64, error) {
	a.next++
	return a.next, nil
}

func (a *fakeAllocator) PatientID(ctx context.Context) (string, error) {
	seq, _ := a.Allocate(ctx, "patientID")
	return fmt.Sprintf("P%07d", seq), nil
}

func (a *fakeAllocator) DeviceID(ctx context.Context) (string, error) {
	seq, _ := a.Allocate(ctx, "deviceID")
	return fmt.Sprintf("D%07d", seq), nil
}

func (a *fakeAllocator) RentSessionID(ctx context.Context) (string, error) {
	seq, _ := a.Allocate(ctx, "RentSessionID")
	return fmt.Sprintf("RENT%07d", seq), nil
}

func newTestService() (*DefaultRentSessionService, *fakeSessionRepo) {
	sessions := newFakeSessionRepo()
	svc := &DefaultRentSessionService{
		Repo: sessions,
		PatientRepo: &fakePatientRepo{patients: map[string]*models.Patient{
			"P0000001": {PatientID: "P0000001", PatientName: "Asha Verma", MobileNo: "9876543210"},
		}},
		DeviceRepo: &fakeDeviceRepo{devices: map[string]*models.Device{
			"D0000001": {DeviceID: "D0000001", Name: "CPAP Unit", Type: "cpap", Status: models.DeviceAvailable},
			"D0000002": {DeviceID: "D0000002", Name: "BiPAP Unit", Type: "bipap", Status: models.DeviceMaintenance},
		}},
		Seq: &fakeAllocator{},
	}
	return svc, sessions
}

func validCreateInput() *models.CreateRentSessionInput {
	return &models.CreateRentSessionInput{
		Patient:  "P0000001",
		Device:   "D0000001",
		DateFrom: "2024-03-05",
		DateTo:   "2024-03-12",
	}
}

func TestCreateMintsIDAndDefaults(t *testing.T) {
	svc, _ := newTestService()

	session, err := svc.Create(context.Background(), validCreateInput(), "admin-1")
	require.NoError(t, err)

	assert.Equal(t, "RENT0000001", session.RentSessionID)
	assert.Equal(t, models.InstallationPending, session.InstallationStatus)
	assert.Equal(t, "admin-1", session.CreatedBy)
	assert.False(t, session.IsDeleted)
	assert.Nil(t, session.Billing)
}

func TestCreateRequiresPatient(t *testing.T) {
	svc, _ := newTestService()

	input := validCreateInput()
	input.Patient = "   "
	_, err := svc.Create(context.Background(), input, "admin-1")

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Missing required fields: patient, device, dates, or totalHours.", verr.Message)
}

func TestCreateUnknownPatient(t *testing.T) {
	svc, _ := newTestService()

	input := validCreateInput()
	input.Patient = "P9999999"
	_, err := svc.Create(context.Background(), input, "admin-1")

	var nferr *apperrors.NotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "Patient not found.", nferr.Message)
}

func TestCreateRejectsUnavailableDevice(t *testing.T) {
	svc, _ := newTestService()

	input := validCreateInput()
	input.Device = "D0000002"
	_, err := svc.Create(context.Background(), input, "admin-1")

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Device is not available (current status: maintenance).", verr.Message)
}

func TestCreateRejectsBadDateWindow(t *testing.T) {
	svc, _ := newTestService()

	input := validCreateInput()
	input.DateFrom = "2024-03-12"
	input.DateTo = "2024-03-05"
	_, err := svc.Create(context.Background(), input, "admin-1")

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "dateFrom must not be after dateTo.", verr.Message)
}

func TestCreateConflictOnOverlap(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, validCreateInput(), "admin-1")
	require.NoError(t, err)

	input := validCreateInput()
	input.DateFrom = "2024-03-10"
	input.DateTo = "2024-03-20"
	_, err = svc.Create(ctx, input, "admin-1")

	var cerr *apperrors.ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "A rent session already exists for this patient, device, and date range.", cerr.Message)
}

func TestCreateConflictOnSharedBoundaryDay(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, validCreateInput(), "admin-1")
	require.NoError(t, err)

	input := validCreateInput()
	input.DateFrom = "2024-03-12"
	input.DateTo = "2024-03-20"
	_, err = svc.Create(ctx, input, "admin-1")

	var cerr *apperrors.ConflictError
	require.ErrorAs(t, err, &cerr)
}

func TestCreateAllowsSameDeviceDifferentPatient(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	svc.PatientRepo.(*fakePatientRepo).patients["P0000002"] =
		&models.Patient{PatientID: "P0000002", PatientName: "Ravi Kumar"}

	_, err := svc.Create(ctx, validCreateInput(), "admin-1")
	require.NoError(t, err)

	input := validCreateInput()
	input.Patient = "P0000002"
	_, err = svc.Create(ctx, input, "admin-1")
	assert.NoError(t, err)
}

func TestCreateDerivesTotalHours(t *testing.T) {
	svc, _ := newTestService()

	input := validCreateInput()
	input.DateTo = "2024-03-06"
	input.InstallTime = "10:00"
	input.UninstallTime = "10:00"
	hours := models.FlexFloat(5)
	input.TotalHours = &hours

	session, err := svc.Create(context.Background(), input, "admin-1")
	require.NoError(t, err)
	// Derived hours win over the caller-supplied figure.
	assert.Equal(t, 24.0, session.TotalHours)
}

func TestUpdateRejectsDeletedSession(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	session, err := svc.Create(ctx, validCreateInput(), "admin-1")
	require.NoError(t, err)
	repo.sessions[session.RentSessionID].IsDeleted = true

	remarks := "late return"
	_, err = svc.Update(ctx, session.RentSessionID, &models.UpdateRentSessionInput{Remarks: &remarks}, "admin-1")

	var serr *apperrors.StateError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "Rent session is deleted and cannot be modified", serr.Message)
}

func TestUpdateNeverWritesCreatedBy(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	session, err := svc.Create(ctx, validCreateInput(), "admin-1")
	require.NoError(t, err)

	remarks := "swapped mask size"
	_, err = svc.Update(ctx, session.RentSessionID, &models.UpdateRentSessionInput{Remarks: &remarks}, "admin-2")
	require.NoError(t, err)

	assert.NotContains(t, repo.lastSet, "createdBy")
	assert.Equal(t, "admin-2", repo.lastSet["updatedBy"])
}

func TestUpdateSkipsConflictKeyWhenWindowUntouched(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	session, err := svc.Create(ctx, validCreateInput(), "admin-1")
	require.NoError(t, err)

	remarks := "ok"
	_, err = svc.Update(ctx, session.RentSessionID, &models.UpdateRentSessionInput{Remarks: &remarks}, "admin-1")
	require.NoError(t, err)
	assert.Nil(t, repo.lastKey)

	dateTo := "2024-03-15"
	_, err = svc.Update(ctx, session.RentSessionID, &models.UpdateRentSessionInput{DateTo: &dateTo}, "admin-1")
	require.NoError(t, err)
	require.NotNil(t, repo.lastKey)
	assert.Equal(t, session.RentSessionID, repo.lastKey.ExcludeID)
}

func TestUpdateExtendingOwnWindowIsNotAConflict(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	session, err := svc.Create(ctx, validCreateInput(), "admin-1")
	require.NoError(t, err)

	dateTo := "2024-03-20"
	updated, err := svc.Update(ctx, session.RentSessionID, &models.UpdateRentSessionInput{DateTo: &dateTo}, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-20", updated.DateTo)
}

func TestUpdateReaffirmsPaidStatus(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	input := validCreateInput()
	input.Billing = &models.BillingInput{
		TotalCharges: flex(1000),
		PaymentType:  "cash",
		PaymentDate:  "2024-03-05",
	}
	session, err := svc.Create(ctx, input, "admin-1")
	require.NoError(t, err)
	// Simulate drift in the stored record.
	repo.sessions[session.RentSessionID].Billing.PaymentStatus = models.PaymentStatusUnpaid

	remarks := "follow-up call done"
	_, err = svc.Update(ctx, session.RentSessionID, &models.UpdateRentSessionInput{Remarks: &remarks}, "admin-1")
	require.NoError(t, err)

	billing, ok := repo.lastSet["billing"].(*models.Billing)
	require.True(t, ok)
	assert.Equal(t, models.PaymentStatusPaid, billing.PaymentStatus)
}

func TestSoftDeleteTwice(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	session, err := svc.Create(ctx, validCreateInput(), "admin-1")
	require.NoError(t, err)

	deleted, err := svc.SoftDelete(ctx, session.RentSessionID, "admin-1")
	require.NoError(t, err)
	assert.True(t, deleted.IsDeleted)

	_, err = svc.SoftDelete(ctx, session.RentSessionID, "admin-1")
	var serr *apperrors.StateError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "Rent session already deleted", serr.Message)
}

func TestSoftDeleteFreesWindowForRebooking(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	session, err := svc.Create(ctx, validCreateInput(), "admin-1")
	require.NoError(t, err)
	_, err = svc.SoftDelete(ctx, session.RentSessionID, "admin-1")
	require.NoError(t, err)

	_, err = svc.Create(ctx, validCreateInput(), "admin-1")
	assert.NoError(t, err)
}

func TestGetByIDExcludesDeleted(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	session, err := svc.Create(ctx, validCreateInput(), "admin-1")
	require.NoError(t, err)
	_, err = svc.SoftDelete(ctx, session.RentSessionID, "admin-1")
	require.NoError(t, err)

	_, err = svc.GetByID(ctx, session.RentSessionID)
	var nferr *apperrors.NotFoundError
	require.ErrorAs(t, err, &nferr)
}
