package services

import (
	"context"
	"time"

	"github.com/invoiceflow/backend/internal/core/domain"
)

// ReportingSvcFacade produces the derived read-only views. The reference time
// is passed explicitly so period boundaries are deterministic under test.
type ReportingSvcFacade interface {
	Dashboard(ctx context.Context, userID string, now time.Time) (*domain.Dashboard, error)
	FinancialReport(ctx context.Context, userID string, period domain.ReportPeriod, now time.Time) (*domain.FinancialReport, error)
	// Cashflow returns exactly 12 calendar-month buckets ending with the
	// month containing now, oldest first.
	Cashflow(ctx context.Context, userID string, now time.Time) ([]domain.CashflowMonth, error)
}
