package repositories

import (
	"context"
	"time"

	"github.com/invoiceflow/backend/internal/core/domain"
)

// ReportingRepository serves the read-only aggregation queries. Everything is
// computed at request time against live data; there are no rollup tables.
type ReportingRepository interface {
	// GetLifetimeMetrics returns whole-account sums and counts for the dashboard.
	GetLifetimeMetrics(ctx context.Context, userID string) (*domain.DashboardMetrics, error)
	// GetPeriodStats aggregates paid revenue, invoice count, new clients and
	// pending amount for documents dated within [from, to).
	GetPeriodStats(ctx context.Context, userID string, from, to time.Time) (*domain.PeriodStats, error)
	ListRecentInvoices(ctx context.Context, userID string, limit int) ([]domain.RecentDocument, error)
	ListRecentQuotes(ctx context.Context, userID string, limit int) ([]domain.RecentDocument, error)
	ListTopClients(ctx context.Context, userID string, limit int) ([]domain.TopClient, error)
	GetExpensesByCategory(ctx context.Context, userID string) ([]domain.ExpenseCategorySummary, error)
	// GetFinancialReportData aggregates revenue/expenses/counts for documents
	// dated on or after from.
	GetFinancialReportData(ctx context.Context, userID string, from time.Time) (*domain.FinancialReportData, error)
	// GetMonthlyCashflow returns per-calendar-month income and expenses for
	// dates within [from, to), months with no activity omitted.
	GetMonthlyCashflow(ctx context.Context, userID string, from, to time.Time) ([]domain.MonthlyCashflowRow, error)
}
