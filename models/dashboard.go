package models

import "time"

// FinancialTotals holds summed billing figures from an aggregation run.
type FinancialTotals struct {
	TotalCharges          float64 `bson:"totalCharges" json:"totalCharges"`
	TotalDiscount         float64 `bson:"totalDiscount" json:"totalDiscount"`
	TotalGST              float64 `bson:"totalGST" json:"totalGST"`
	TotalDoctorCommission float64 `bson:"totalDoctorCommission" json:"totalDoctorCommission"`
	Count                 int64   `bson:"count" json:"count"`
}

// DeviceTypeGroup is one row of the device-type breakdown aggregation.
type DeviceTypeGroup struct {
	Type      string `bson:"_id" json:"type"`
	Count     int64  `bson:"count" json:"count"`
	Available int64  `bson:"available" json:"available"`
	Rented    int64  `bson:"rented" json:"rented"`
}

// PaymentStatusGroup is one row of the payment-status breakdown aggregation.
type PaymentStatusGroup struct {
	Status      string  `bson:"_id" json:"status"`
	Count       int64   `bson:"count" json:"count"`
	TotalAmount float64 `bson:"totalAmount" json:"totalAmount"`
}

// RecentActivity is a trimmed view of a recent rent session for the dashboard.
type RecentActivity struct {
	RentSessionID string    `json:"rentSessionId"`
	PatientName   string    `json:"patientName"`
	DeviceName    string    `json:"deviceName"`
	DeviceID      string    `json:"deviceId"`
	DateFrom      string    `json:"dateFrom"`
	DateTo        string    `json:"dateTo"`
	TotalHours    float64   `json:"totalHours"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// DashboardStats is the full dashboard payload.
type DashboardStats struct {
	Overview struct {
		TotalPatients     int64   `json:"totalPatients"`
		TotalDevices      int64   `json:"totalDevices"`
		TotalRentSessions int64   `json:"totalRentSessions"`
		MonthlyRevenue    float64 `json:"monthlyRevenue"`
		MonthlyProfit     float64 `json:"monthlyProfit"`
		AvailableDevices  int64   `json:"availableDevices"`
	} `json:"overview"`

	PatientStats struct {
		TotalPatients       int64 `json:"totalPatients"`
		NewPatientsThisMonth int64 `json:"newPatientsThisMonth"`
		NewPatientsThisYear  int64 `json:"newPatientsThisYear"`
	} `json:"patientStats"`

	DeviceStats struct {
		TotalDevices       int64   `json:"totalDevices"`
		AvailableDevices   int64   `json:"availableDevices"`
		RentedDevices      int64   `json:"rentedDevices"`
		MaintenanceDevices int64   `json:"maintenanceDevices"`
		NewDevicesThisMonth int64  `json:"newDevicesThisMonth"`
		UtilizationRate    float64 `json:"utilizationRate"`
	} `json:"deviceStats"`

	RentSessionStats struct {
		TotalSessions       int64   `json:"totalSessions"`
		NewSessionsThisMonth int64  `json:"newSessionsThisMonth"`
		CompletedSessions   int64   `json:"completedSessions"`
		PendingSessions     int64   `json:"pendingSessions"`
		CancelledSessions   int64   `json:"cancelledSessions"`
		CompletionRate      float64 `json:"completionRate"`
	} `json:"rentSessionStats"`

	FinancialStats struct {
		MonthlyRevenue           float64 `json:"monthlyRevenue"`
		MonthlyProfit            float64 `json:"monthlyProfit"`
		TotalCharges             float64 `json:"totalCharges"`
		TotalDiscount            float64 `json:"totalDiscount"`
		TotalGST                 float64 `json:"totalGST"`
		TotalDoctorCommission    float64 `json:"totalDoctorCommission"`
		SessionsThisMonth        int64   `json:"sessionsThisMonth"`
		AverageRevenuePerSession float64 `json:"averageRevenuePerSession"`
		AverageProfitPerSession  float64 `json:"averageProfitPerSession"`
		ProfitMargin             float64 `json:"profitMargin"`
	} `json:"financialStats"`

	DeviceTypeBreakdown []DeviceTypeGroup             `json:"deviceTypeBreakdown"`
	PaymentStats        map[string]PaymentStatusGroup `json:"paymentStats"`
	RecentActivity      []RecentActivity              `json:"recentActivity"`
}
