package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bookly_backend/internal/mailer"
	"bookly_backend/internal/models"
	"bookly_backend/internal/repositories"
	"bookly_backend/pkg/utils"
)

// --- Custom Service Errors for Reports ---
var (
	ErrTenantListFailed     = errors.New("failed to retrieve tenant list")
	ErrReportTenantNotFound = errors.New("tenant not found")
	ErrReportMonthFormat    = errors.New("invalid report month, expected YYYY-MM")
)

// --- ReportService Interface ---
type ReportService interface {
	// RunMonthlyReports processes every active tenant for the calendar month
	// preceding now. Per-tenant failures are logged and isolated; only a
	// tenant-list retrieval failure fails the run.
	RunMonthlyReports(now time.Time, force bool) (*models.RunResult, error)
	// PreviewMonthlyReport renders the report HTML for one tenant without
	// sending anything. month is "YYYY-MM"; empty means the previous month.
	PreviewMonthlyReport(tenantID int64, month string) (string, error)
	// GetTenantDashboard returns month-to-date metrics for one tenant.
	GetTenantDashboard(tenantID int64, now time.Time) (*models.TenantDashboard, error)
}

type tenantOutcome int

const (
	outcomeSent tenantOutcome = iota
	outcomeSkipped
	outcomeFailed
)

// --- reportService Implementation ---
type reportService struct {
	tenantRepo   repositories.TenantRepository
	apptRepo     repositories.AppointmentRepository
	deliveryRepo repositories.DeliveryRepository
	mail         mailer.Mailer
	fromAddress  string
	db           *sql.DB
}

// NewReportService creates a new instance of ReportService.
func NewReportService(
	tr repositories.TenantRepository,
	ar repositories.AppointmentRepository,
	dr repositories.DeliveryRepository,
	m mailer.Mailer,
	fromAddress string,
	db *sql.DB,
) ReportService {
	return &reportService{
		tenantRepo:   tr,
		apptRepo:     ar,
		deliveryRepo: dr,
		mail:         m,
		fromAddress:  fromAddress,
		db:           db,
	}
}

func (s *reportService) RunMonthlyReports(now time.Time, force bool) (*models.RunResult, error) {
	start, end := MonthlyWindow(now)
	startDate := start.Format(ReportDateLayout)
	endDate := end.Format(ReportDateLayout)
	period := start.Format(ReportPeriodLayout)
	monthLabel := start.Format(ReportMonthLabelLayout)

	tenants, err := s.tenantRepo.GetActiveTenants()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTenantListFailed, err)
	}

	utils.LogInfo("Starting monthly report run", map[string]interface{}{
		"period":  period,
		"tenants": len(tenants),
		"force":   force,
	})

	result := &models.RunResult{}
	for i := range tenants {
		result.TenantsProcessed++
		switch s.processTenant(&tenants[i], startDate, endDate, period, monthLabel, force) {
		case outcomeSent:
			result.EmailsSent++
		case outcomeSkipped:
			result.TenantsSkipped++
		case outcomeFailed:
			result.TenantsFailed++
		}
	}

	utils.LogInfo("Monthly report run finished", map[string]interface{}{
		"period":    period,
		"processed": result.TenantsProcessed,
		"sent":      result.EmailsSent,
		"skipped":   result.TenantsSkipped,
		"failed":    result.TenantsFailed,
	})
	return result, nil
}

// processTenant runs the query-aggregate-render-send sequence for a single
// tenant. Every error is absorbed here so one tenant can never abort the
// batch for the others.
func (s *reportService) processTenant(tenant *models.Tenant, startDate, endDate, period, monthLabel string, force bool) tenantOutcome {
	logFields := map[string]interface{}{"tenant_id": tenant.ID, "period": period}

	if !force {
		sent, err := s.deliveryRepo.WasReportSent(tenant.ID, period)
		if err != nil {
			utils.LogError(err, "Failed to check report delivery marker")
			return outcomeFailed
		}
		if sent {
			utils.LogDebug("Report already sent for period, skipping", logFields)
			return outcomeSkipped
		}
	}

	appointments, err := s.apptRepo.GetForTenantInRange(tenant.ID, startDate, endDate)
	if err != nil {
		utils.LogError(err, "Failed to fetch appointments for tenant")
		return outcomeFailed
	}

	summary := Aggregate(appointments, tenant.Currency)
	if summary.InvalidAmountCount > 0 {
		fields := map[string]interface{}{"tenant_id": tenant.ID, "invalid_amounts": summary.InvalidAmountCount}
		utils.LogWarn("Tenant has appointments with non-numeric amounts, coerced to zero", fields)
	}

	// Nothing happened, or nowhere to send it. Not an error.
	if summary.TotalCount == 0 || utils.IsEmpty(tenant.ContactEmail()) {
		utils.LogDebug("Skipping tenant report", logFields)
		return outcomeSkipped
	}

	html, err := RenderMonthlyReport(tenant.Name, monthLabel, summary)
	if err != nil {
		utils.LogError(err, "Failed to render report for tenant")
		return outcomeFailed
	}

	msg := mailer.Message{
		From:    s.fromAddress,
		To:      []string{tenant.ContactEmail()},
		Subject: fmt.Sprintf("Your monthly report for %s", monthLabel),
		HTML:    html,
	}
	if err := s.mail.Send(msg); err != nil {
		utils.LogError(err, "Failed to send report email for tenant")
		return outcomeFailed
	}

	// The email already went out; a marker failure only risks a duplicate on
	// a later re-run, so it does not fail the tenant.
	if err := s.deliveryRepo.MarkReportSent(s.db, tenant.ID, period); err != nil {
		utils.LogError(err, "Failed to record report delivery marker")
	}

	utils.LogInfo("Monthly report sent", logFields)
	return outcomeSent
}

func (s *reportService) PreviewMonthlyReport(tenantID int64, month string) (string, error) {
	tenant, err := s.tenantRepo.GetTenantByID(tenantID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrReportTenantNotFound
		}
		return "", fmt.Errorf("failed to fetch tenant for preview: %w", err)
	}

	var start time.Time
	if month == "" {
		start, _ = MonthlyWindow(time.Now())
	} else {
		start, err = time.ParseInLocation(ReportPeriodLayout, month, time.Local)
		if err != nil {
			return "", ErrReportMonthFormat
		}
	}
	end := start.AddDate(0, 1, -1)

	appointments, err := s.apptRepo.GetForTenantInRange(tenant.ID, start.Format(ReportDateLayout), end.Format(ReportDateLayout))
	if err != nil {
		return "", fmt.Errorf("failed to fetch appointments for preview: %w", err)
	}

	summary := Aggregate(appointments, tenant.Currency)
	return RenderMonthlyReport(tenant.Name, start.Format(ReportMonthLabelLayout), summary)
}

func (s *reportService) GetTenantDashboard(tenantID int64, now time.Time) (*models.TenantDashboard, error) {
	tenant, err := s.tenantRepo.GetTenantByID(tenantID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrReportTenantNotFound
		}
		return nil, fmt.Errorf("failed to fetch tenant for dashboard: %w", err)
	}

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	appointments, err := s.apptRepo.GetForTenantInRange(tenant.ID, startOfMonth.Format(ReportDateLayout), now.Format(ReportDateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments for dashboard: %w", err)
	}

	summary := Aggregate(appointments, tenant.Currency)
	pending := summary.TotalCount - summary.CompletedCount - summary.CancelledCount
	if pending < 0 {
		pending = 0
	}

	return &models.TenantDashboard{
		TenantID:          tenant.ID,
		TenantName:        tenant.Name,
		Month:             startOfMonth.Format(ReportMonthLabelLayout),
		TotalAppointments: summary.TotalCount,
		CompletedCount:    summary.CompletedCount,
		PendingCount:      pending,
		CancelledCount:    summary.CancelledCount,
		CompletedRevenue:  summary.CompletedRevenue,
		DistinctCustomers: summary.DistinctCustomers,
		TopServices:       summary.TopServices,
		Currency:          summary.Currency,
	}, nil
}
