package dto

import (
	"time"

	"github.com/invoiceflow/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardMetricsResponse carries the headline dashboard numbers.
type DashboardMetricsResponse struct {
	Revenue        decimal.Decimal `json:"revenue"`
	RevenueChange  decimal.Decimal `json:"revenueChange"`
	InvoicesCount  int             `json:"invoicesCount"`
	InvoicesChange decimal.Decimal `json:"invoicesChange"`
	ClientsCount   int             `json:"clientsCount"`
	ClientsChange  decimal.Decimal `json:"clientsChange"`
	QuotesCount    int             `json:"quotesCount"`
	PendingAmount  decimal.Decimal `json:"pendingAmount"`
	PendingChange  decimal.Decimal `json:"pendingChange"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
}

// RecentDocumentResponse is a dashboard row for a recent invoice or quote.
type RecentDocumentResponse struct {
	DocumentID string          `json:"documentID"`
	Number     string          `json:"number"`
	Client     string          `json:"client"`
	Date       time.Time       `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
}

// TopClientResponse ranks a client by paid revenue.
type TopClientResponse struct {
	ClientID string          `json:"clientID"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Status   string          `json:"status"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// ExpenseCategoryResponse aggregates expenses of one category.
type ExpenseCategoryResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// DashboardResponse is the full dashboard payload.
type DashboardResponse struct {
	Metrics            DashboardMetricsResponse  `json:"metrics"`
	RecentInvoices     []RecentDocumentResponse  `json:"recentInvoices"`
	RecentQuotes       []RecentDocumentResponse  `json:"recentQuotes"`
	RecentActivities   []ActivityResponse        `json:"recentActivities"`
	TopClients         []TopClientResponse       `json:"topClients"`
	ExpensesByCategory []ExpenseCategoryResponse `json:"expensesByCategory"`
}

func toRecentDocumentResponses(docs []domain.RecentDocument) []RecentDocumentResponse {
	out := make([]RecentDocumentResponse, len(docs))
	for i, d := range docs {
		out[i] = RecentDocumentResponse{
			DocumentID: d.DocumentID,
			Number:     d.Number,
			Client:     d.ClientName,
			Date:       d.Date,
			Amount:     d.Amount,
			Status:     d.Status,
		}
	}
	return out
}

// ToDashboardResponse converts the aggregated dashboard to its response DTO.
func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	topClients := make([]TopClientResponse, len(d.TopClients))
	for i, tc := range d.TopClients {
		topClients[i] = TopClientResponse{
			ClientID: tc.ClientID,
			Name:     tc.Name,
			Email:    tc.Email,
			Status:   string(tc.Status),
			Revenue:  tc.Revenue,
		}
	}
	categories := make([]ExpenseCategoryResponse, len(d.ExpensesByCategory))
	for i, ec := range d.ExpensesByCategory {
		categories[i] = ExpenseCategoryResponse{Category: ec.Category, Total: ec.Total, Count: ec.Count}
	}
	return DashboardResponse{
		Metrics: DashboardMetricsResponse{
			Revenue:        d.Metrics.Revenue,
			RevenueChange:  d.Metrics.RevenueChange,
			InvoicesCount:  d.Metrics.InvoicesCount,
			InvoicesChange: d.Metrics.InvoicesChange,
			ClientsCount:   d.Metrics.ClientsCount,
			ClientsChange:  d.Metrics.ClientsChange,
			QuotesCount:    d.Metrics.QuotesCount,
			PendingAmount:  d.Metrics.PendingAmount,
			PendingChange:  d.Metrics.PendingChange,
			TotalExpenses:  d.Metrics.TotalExpenses,
		},
		RecentInvoices:     toRecentDocumentResponses(d.RecentInvoices),
		RecentQuotes:       toRecentDocumentResponses(d.RecentQuotes),
		RecentActivities:   ToActivityListResponse(d.RecentActivities),
		TopClients:         topClients,
		ExpensesByCategory: categories,
	}
}

// FinancialReportResponse is the financial report payload.
type FinancialReportResponse struct {
	Period          string          `json:"period"`
	PeriodStart     time.Time       `json:"periodStart"`
	Revenue         decimal.Decimal `json:"revenue"`
	Expenses        decimal.Decimal `json:"expenses"`
	Profit          decimal.Decimal `json:"profit"`
	PaidInvoices    int             `json:"paidInvoices"`
	PendingInvoices int             `json:"pendingInvoices"`
	AcceptedQuotes  int             `json:"acceptedQuotes"`
	PendingQuotes   int             `json:"pendingQuotes"`
}

// ToFinancialReportResponse converts a domain.FinancialReport.
func ToFinancialReportResponse(r *domain.FinancialReport) FinancialReportResponse {
	return FinancialReportResponse{
		Period:          string(r.Period),
		PeriodStart:     r.PeriodStart,
		Revenue:         r.Revenue,
		Expenses:        r.Expenses,
		Profit:          r.Profit,
		PaidInvoices:    r.PaidInvoices,
		PendingInvoices: r.PendingInvoices,
		AcceptedQuotes:  r.AcceptedQuotes,
		PendingQuotes:   r.PendingQuotes,
	}
}

// CashflowMonthResponse is one month of the cash-flow series.
type CashflowMonthResponse struct {
	Month    string          `json:"month"` // YYYY-MM
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// CashflowResponse is the trailing-12-months cash-flow payload, oldest first.
type CashflowResponse struct {
	Months []CashflowMonthResponse `json:"months"`
}

// ToCashflowResponse converts the cash-flow series.
func ToCashflowResponse(months []domain.CashflowMonth) CashflowResponse {
	out := make([]CashflowMonthResponse, len(months))
	for i, m := range months {
		out[i] = CashflowMonthResponse{
			Month:    m.Month.Format("2006-01"),
			Income:   m.Income,
			Expenses: m.Expenses,
			Balance:  m.Balance,
		}
	}
	return CashflowResponse{Months: out}
}
