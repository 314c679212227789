package services

import (
	"context"
	"fmt"
	"time"

	"github.com/invoiceflow/backend/internal/apperrors"
	"github.com/invoiceflow/backend/internal/core/domain"
	portsrepo "github.com/invoiceflow/backend/internal/core/ports/repositories"
	portssvc "github.com/invoiceflow/backend/internal/core/ports/services"
	"github.com/invoiceflow/backend/internal/utils/pricing"
	"github.com/shopspring/decimal"
)

const (
	recentDocumentLimit = 5
	recentActivityLimit = 8
	topClientLimit      = 5
	cashflowMonths      = 12
)

type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
	activityRepo  portsrepo.ActivityRepository
}

// NewReportingService creates the read-only aggregation service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, activityRepo portsrepo.ActivityRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo, activityRepo: activityRepo}
}

func intToDecimal(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

// monthStart returns the first instant of the calendar month containing t, UTC.
func monthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// periodStart returns the first instant of the calendar period containing t, UTC.
func periodStart(period domain.ReportPeriod, t time.Time) (time.Time, error) {
	t = t.UTC()
	switch period {
	case domain.PeriodMonth:
		return monthStart(t), nil
	case domain.PeriodQuarter:
		quarterMonth := time.Month((int(t.Month())-1)/3*3 + 1)
		return time.Date(t.Year(), quarterMonth, 1, 0, 0, 0, 0, time.UTC), nil
	case domain.PeriodYear:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("unknown report period %q: %w", period, apperrors.ErrValidation)
}

func (s *reportingService) Dashboard(ctx context.Context, userID string, now time.Time) (*domain.Dashboard, error) {
	metrics, err := s.reportingRepo.GetLifetimeMetrics(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard metrics: %w", err)
	}

	// Change figures compare the current calendar month with the previous
	// one, not a sliding 30-day window.
	currentStart := monthStart(now)
	previousStart := currentStart.AddDate(0, -1, 0)
	nextStart := currentStart.AddDate(0, 1, 0)

	current, err := s.reportingRepo.GetPeriodStats(ctx, userID, currentStart, nextStart)
	if err != nil {
		return nil, fmt.Errorf("failed to get current month stats: %w", err)
	}
	previous, err := s.reportingRepo.GetPeriodStats(ctx, userID, previousStart, currentStart)
	if err != nil {
		return nil, fmt.Errorf("failed to get previous month stats: %w", err)
	}

	metrics.RevenueChange = pricing.PercentChange(current.Revenue, previous.Revenue)
	metrics.InvoicesChange = pricing.PercentChange(
		intToDecimal(current.InvoiceCount), intToDecimal(previous.InvoiceCount))
	metrics.ClientsChange = pricing.PercentChange(
		intToDecimal(current.NewClients), intToDecimal(previous.NewClients))
	metrics.PendingChange = pricing.PercentChange(current.PendingAmount, previous.PendingAmount)

	recentInvoices, err := s.reportingRepo.ListRecentInvoices(ctx, userID, recentDocumentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent invoices: %w", err)
	}
	recentQuotes, err := s.reportingRepo.ListRecentQuotes(ctx, userID, recentDocumentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent quotes: %w", err)
	}
	recentActivities, err := s.activityRepo.ListRecentActivities(ctx, userID, recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent activities: %w", err)
	}
	topClients, err := s.reportingRepo.ListTopClients(ctx, userID, topClientLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list top clients: %w", err)
	}
	expensesByCategory, err := s.reportingRepo.GetExpensesByCategory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate expenses by category: %w", err)
	}

	return &domain.Dashboard{
		Metrics:            *metrics,
		RecentInvoices:     recentInvoices,
		RecentQuotes:       recentQuotes,
		RecentActivities:   recentActivities,
		TopClients:         topClients,
		ExpensesByCategory: expensesByCategory,
	}, nil
}

func (s *reportingService) FinancialReport(ctx context.Context, userID string, period domain.ReportPeriod, now time.Time) (*domain.FinancialReport, error) {
	from, err := periodStart(period, now)
	if err != nil {
		return nil, err
	}

	data, err := s.reportingRepo.GetFinancialReportData(ctx, userID, from)
	if err != nil {
		return nil, fmt.Errorf("failed to get financial report data: %w", err)
	}

	return &domain.FinancialReport{
		Period:          period,
		PeriodStart:     from,
		Revenue:         data.Revenue,
		Expenses:        data.Expenses,
		Profit:          data.Revenue.Sub(data.Expenses),
		PaidInvoices:    data.PaidInvoices,
		PendingInvoices: data.PendingInvoices,
		AcceptedQuotes:  data.AcceptedQuotes,
		PendingQuotes:   data.PendingQuotes,
	}, nil
}

// Cashflow returns the trailing twelve calendar months, oldest first. Months
// with no activity are zero-filled so the series always has twelve buckets.
func (s *reportingService) Cashflow(ctx context.Context, userID string, now time.Time) ([]domain.CashflowMonth, error) {
	currentStart := monthStart(now)
	from := currentStart.AddDate(0, -(cashflowMonths - 1), 0)
	to := currentStart.AddDate(0, 1, 0)

	rows, err := s.reportingRepo.GetMonthlyCashflow(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly cashflow: %w", err)
	}

	byMonth := make(map[time.Time]domain.MonthlyCashflowRow, len(rows))
	for _, row := range rows {
		byMonth[monthStart(row.Month)] = row
	}

	months := make([]domain.CashflowMonth, 0, cashflowMonths)
	for i := 0; i < cashflowMonths; i++ {
		bucket := from.AddDate(0, i, 0)
		row := byMonth[bucket]
		months = append(months, domain.CashflowMonth{
			Month:    bucket,
			Income:   row.Income,
			Expenses: row.Expenses,
			Balance:  row.Income.Sub(row.Expenses),
		})
	}
	return months, nil
}
