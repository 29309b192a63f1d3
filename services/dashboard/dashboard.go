// Package dashboard assembles aggregate statistics across patients,
// devices, and rent sessions.
package dashboard

import (
	"context"
	"encoding/json"
	"time"

	deviceRepo "medonrent/database/repository/device"
	patientRepo "medonrent/database/repository/patient"
	rentsessionRepo "medonrent/database/repository/rentsession"
	"medonrent/models"
	"medonrent/services/apperrors"
	"medonrent/services/rentsession"
	"medonrent/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 60 * time.Second
	recentLimit   = 10
)

// DashboardService computes the dashboard stats payload.
type DashboardService interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
}

// DefaultDashboardService implements DashboardService. Cache is optional;
// when nil every call recomputes.
type DefaultDashboardService struct {
	SessionRepo rentsessionRepo.RentSessionRepository
	PatientRepo patientRepo.PatientRepository
	DeviceRepo  deviceRepo.DeviceRepository
	Cache       *redis.Client
}

// Stats returns the dashboard payload, served from cache when a snapshot
// less than a minute old exists.
func (s *DefaultDashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, statsCacheKey).Result(); err == nil {
			var cached models.DashboardStats
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return &cached, nil
			}
		}
	}

	stats, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.Cache.Set(ctx, statsCacheKey, raw, statsCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("dashboard cache write failed", zap.Error(err))
			}
		}
	}
	return stats, nil
}

func (s *DefaultDashboardService) compute(ctx context.Context) (*models.DashboardStats, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	stats := &models.DashboardStats{}

	totalPatients, err := s.PatientRepo.Count(ctx, bson.M{})
	if err != nil {
		return nil, apperrors.NewStorage("patient count failed", err)
	}
	patientsThisMonth, err := s.PatientRepo.Count(ctx, bson.M{"createdAt": bson.M{"$gte": monthStart}})
	if err != nil {
		return nil, apperrors.NewStorage("patient count failed", err)
	}
	patientsThisYear, err := s.PatientRepo.Count(ctx, bson.M{"createdAt": bson.M{"$gte": yearStart}})
	if err != nil {
		return nil, apperrors.NewStorage("patient count failed", err)
	}

	totalDevices, err := s.DeviceRepo.Count(ctx, bson.M{})
	if err != nil {
		return nil, apperrors.NewStorage("device count failed", err)
	}
	availableDevices, err := s.DeviceRepo.Count(ctx, bson.M{"status": models.DeviceAvailable})
	if err != nil {
		return nil, apperrors.NewStorage("device count failed", err)
	}
	rentedDevices, err := s.DeviceRepo.Count(ctx, bson.M{"status": models.DeviceRented})
	if err != nil {
		return nil, apperrors.NewStorage("device count failed", err)
	}
	maintenanceDevices, err := s.DeviceRepo.Count(ctx, bson.M{"status": models.DeviceMaintenance})
	if err != nil {
		return nil, apperrors.NewStorage("device count failed", err)
	}
	devicesThisMonth, err := s.DeviceRepo.Count(ctx, bson.M{"createdAt": bson.M{"$gte": monthStart}})
	if err != nil {
		return nil, apperrors.NewStorage("device count failed", err)
	}

	active := bson.M{"isDeleted": false}
	totalSessions, err := s.SessionRepo.Count(ctx, active)
	if err != nil {
		return nil, apperrors.NewStorage("session count failed", err)
	}
	sessionsThisMonth, err := s.SessionRepo.Count(ctx, bson.M{"isDeleted": false, "createdAt": bson.M{"$gte": monthStart}})
	if err != nil {
		return nil, apperrors.NewStorage("session count failed", err)
	}
	completedSessions, err := s.SessionRepo.Count(ctx, bson.M{"isDeleted": false, "installationStatus": models.InstallationCompleted})
	if err != nil {
		return nil, apperrors.NewStorage("session count failed", err)
	}
	pendingSessions, err := s.SessionRepo.Count(ctx, bson.M{"isDeleted": false, "installationStatus": models.InstallationPending})
	if err != nil {
		return nil, apperrors.NewStorage("session count failed", err)
	}
	cancelledSessions, err := s.SessionRepo.Count(ctx, bson.M{"isDeleted": false, "installationStatus": models.InstallationCancelled})
	if err != nil {
		return nil, apperrors.NewStorage("session count failed", err)
	}

	monthly, err := s.SessionRepo.FinancialTotalsSince(ctx, monthStart)
	if err != nil {
		return nil, apperrors.NewStorage("financial aggregation failed", err)
	}
	if monthly == nil {
		monthly = &models.FinancialTotals{}
	}
	monthlyRevenue := rentsession.Revenue(monthly.TotalCharges, monthly.TotalDiscount, monthly.TotalGST)
	monthlyProfit := rentsession.Profit(monthly.TotalCharges, monthly.TotalDiscount, monthly.TotalGST, monthly.TotalDoctorCommission)

	stats.Overview.TotalPatients = totalPatients
	stats.Overview.TotalDevices = totalDevices
	stats.Overview.TotalRentSessions = totalSessions
	stats.Overview.MonthlyRevenue = monthlyRevenue
	stats.Overview.MonthlyProfit = monthlyProfit
	stats.Overview.AvailableDevices = availableDevices

	stats.PatientStats.TotalPatients = totalPatients
	stats.PatientStats.NewPatientsThisMonth = patientsThisMonth
	stats.PatientStats.NewPatientsThisYear = patientsThisYear

	stats.DeviceStats.TotalDevices = totalDevices
	stats.DeviceStats.AvailableDevices = availableDevices
	stats.DeviceStats.RentedDevices = rentedDevices
	stats.DeviceStats.MaintenanceDevices = maintenanceDevices
	stats.DeviceStats.NewDevicesThisMonth = devicesThisMonth
	stats.DeviceStats.UtilizationRate = ratePercent(rentedDevices, totalDevices)

	stats.RentSessionStats.TotalSessions = totalSessions
	stats.RentSessionStats.NewSessionsThisMonth = sessionsThisMonth
	stats.RentSessionStats.CompletedSessions = completedSessions
	stats.RentSessionStats.PendingSessions = pendingSessions
	stats.RentSessionStats.CancelledSessions = cancelledSessions
	stats.RentSessionStats.CompletionRate = ratePercent(completedSessions, totalSessions)

	stats.FinancialStats.MonthlyRevenue = monthlyRevenue
	stats.FinancialStats.MonthlyProfit = monthlyProfit
	stats.FinancialStats.TotalCharges = monthly.TotalCharges
	stats.FinancialStats.TotalDiscount = monthly.TotalDiscount
	stats.FinancialStats.TotalGST = monthly.TotalGST
	stats.FinancialStats.TotalDoctorCommission = monthly.TotalDoctorCommission
	stats.FinancialStats.SessionsThisMonth = monthly.Count
	if monthly.Count > 0 {
		stats.FinancialStats.AverageRevenuePerSession = rentsession.Round2(monthlyRevenue / float64(monthly.Count))
		stats.FinancialStats.AverageProfitPerSession = rentsession.Round2(monthlyProfit / float64(monthly.Count))
	}
	if monthlyRevenue != 0 {
		stats.FinancialStats.ProfitMargin = rentsession.Round2(monthlyProfit / monthlyRevenue * 100)
	}

	breakdown, err := s.DeviceRepo.TypeBreakdown(ctx)
	if err != nil {
		return nil, apperrors.NewStorage("device breakdown failed", err)
	}
	stats.DeviceTypeBreakdown = breakdown

	paymentGroups, err := s.SessionRepo.PaymentBreakdown(ctx)
	if err != nil {
		return nil, apperrors.NewStorage("payment breakdown failed", err)
	}
	stats.PaymentStats = make(map[string]models.PaymentStatusGroup, len(paymentGroups))
	for _, g := range paymentGroups {
		status := g.Status
		if status == "" {
			status = "unknown"
		}
		stats.PaymentStats[status] = g
	}

	recent, err := s.SessionRepo.Recent(ctx, recentLimit)
	if err != nil {
		return nil, apperrors.NewStorage("recent sessions lookup failed", err)
	}
	stats.RecentActivity = s.recentActivity(ctx, recent)

	return stats, nil
}

// recentActivity resolves patient and device names for the recent session
// list. Missing references render as "N/A" rather than failing the whole
// dashboard.
func (s *DefaultDashboardService) recentActivity(ctx context.Context, sessions []models.RentSession) []models.RecentActivity {
	activity := make([]models.RecentActivity, 0, len(sessions))
	for _, session := range sessions {
		item := models.RecentActivity{
			RentSessionID: session.RentSessionID,
			PatientName:   "N/A",
			DeviceName:    "N/A",
			DeviceID:      session.Device,
			DateFrom:      session.DateFrom,
			DateTo:        session.DateTo,
			TotalHours:    session.TotalHours,
			Status:        session.InstallationStatus,
			CreatedAt:     session.CreatedAt,
		}
		if patient, err := s.PatientRepo.GetByID(ctx, session.Patient); err == nil && patient != nil {
			item.PatientName = patient.PatientName
		}
		if session.Device != "" {
			if device, err := s.DeviceRepo.GetByID(ctx, session.Device); err == nil && device != nil {
				item.DeviceName = device.Name
			}
		}
		activity = append(activity, item)
	}
	return activity
}

// ratePercent is part/total as a percentage, rounded to 2 decimal places.
// Zero when total is zero.
func ratePercent(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return rentsession.Round2(float64(part) / float64(total) * 100)
}
