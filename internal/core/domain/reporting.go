package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardMetrics are the headline numbers on the dashboard. Change figures
// are percentage deltas against the previous calendar month.
type DashboardMetrics struct {
	Revenue        decimal.Decimal
	RevenueChange  decimal.Decimal
	InvoicesCount  int
	InvoicesChange decimal.Decimal
	ClientsCount   int
	ClientsChange  decimal.Decimal
	QuotesCount    int
	PendingAmount  decimal.Decimal
	PendingChange  decimal.Decimal
	TotalExpenses  decimal.Decimal
}

// RecentDocument is a dashboard row for a recently created invoice or quote,
// joined to its client's display name.
type RecentDocument struct {
	DocumentID string
	Number     string
	ClientName string // "Unknown" when the client was deleted
	Date       time.Time
	Amount     decimal.Decimal
	Status     string
}

// TopClient ranks a client by revenue from paid invoices.
type TopClient struct {
	ClientID string
	Name     string
	Email    string
	Status   ClientStatus
	Revenue  decimal.Decimal
}

// ExpenseCategorySummary aggregates expenses of one category.
type ExpenseCategorySummary struct {
	Category string
	Total    decimal.Decimal
	Count    int
}

// Dashboard is the full aggregated view, computed at request time.
type Dashboard struct {
	Metrics            DashboardMetrics
	RecentInvoices     []RecentDocument
	RecentQuotes       []RecentDocument
	RecentActivities   []Activity
	TopClients         []TopClient
	ExpensesByCategory []ExpenseCategorySummary
}

// ReportPeriod selects the window of a financial report.
type ReportPeriod string

const (
	PeriodMonth   ReportPeriod = "month"
	PeriodQuarter ReportPeriod = "quarter"
	PeriodYear    ReportPeriod = "year"
)

// FinancialReport summarizes revenue, expenses and document counts since the
// start of the selected calendar period.
type FinancialReport struct {
	Period          ReportPeriod
	PeriodStart     time.Time
	Revenue         decimal.Decimal
	Expenses        decimal.Decimal
	Profit          decimal.Decimal
	PaidInvoices    int
	PendingInvoices int
	AcceptedQuotes  int
	PendingQuotes   int
}

// PeriodStats are per-period aggregates used to derive dashboard change
// percentages (current calendar month vs the previous one).
type PeriodStats struct {
	Revenue       decimal.Decimal
	InvoiceCount  int
	NewClients    int
	PendingAmount decimal.Decimal
}

// FinancialReportData is the raw aggregate a repository returns for a
// financial report window; profit and period metadata are derived by the service.
type FinancialReportData struct {
	Revenue         decimal.Decimal
	Expenses        decimal.Decimal
	PaidInvoices    int
	PendingInvoices int
	AcceptedQuotes  int
	PendingQuotes   int
}

// MonthlyCashflowRow is one month of raw cash-flow data. Only months with
// activity are returned by the repository; the service zero-fills the rest.
type MonthlyCashflowRow struct {
	Month    time.Time
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// CashflowMonth is one calendar-month bucket of the trailing cash-flow series.
type CashflowMonth struct {
	Month    time.Time // first day of the month, UTC
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}
