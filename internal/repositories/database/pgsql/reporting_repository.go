package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/invoiceflow/backend/internal/core/domain"
	portsrepo "github.com/invoiceflow/backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository serves the aggregation queries. Everything is computed
// against live rows at request time; there are no rollup tables to refresh.
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetLifetimeMetrics returns whole-account sums and counts. Revenue counts
// Paid invoices only; pending covers Sent and Overdue ones.
func (r *reportingRepository) GetLifetimeMetrics(ctx context.Context, userID string) (*domain.DashboardMetrics, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(amount) FROM invoices WHERE user_id = $1 AND status = 'Paid'), 0) AS revenue,
			(SELECT COUNT(*) FROM invoices WHERE user_id = $1) AS invoices_count,
			(SELECT COUNT(*) FROM clients WHERE user_id = $1) AS clients_count,
			(SELECT COUNT(*) FROM quotes WHERE user_id = $1) AS quotes_count,
			COALESCE((SELECT SUM(amount) FROM invoices WHERE user_id = $1 AND status IN ('Sent', 'Overdue')), 0) AS pending_amount,
			COALESCE((SELECT SUM(amount) FROM expenses WHERE user_id = $1), 0) AS total_expenses;
	`
	var m domain.DashboardMetrics
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.Revenue,
		&m.InvoicesCount,
		&m.ClientsCount,
		&m.QuotesCount,
		&m.PendingAmount,
		&m.TotalExpenses,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query dashboard metrics: %w", err)
	}
	return &m, nil
}

func (r *reportingRepository) GetPeriodStats(ctx context.Context, userID string, from, to time.Time) (*domain.PeriodStats, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(amount) FROM invoices WHERE user_id = $1 AND status = 'Paid' AND date >= $2 AND date < $3), 0) AS revenue,
			(SELECT COUNT(*) FROM invoices WHERE user_id = $1 AND date >= $2 AND date < $3) AS invoice_count,
			(SELECT COUNT(*) FROM clients WHERE user_id = $1 AND created_at >= $2 AND created_at < $3) AS new_clients,
			COALESCE((SELECT SUM(amount) FROM invoices WHERE user_id = $1 AND status IN ('Sent', 'Overdue') AND date >= $2 AND date < $3), 0) AS pending_amount;
	`
	var s domain.PeriodStats
	err := r.Pool.QueryRow(ctx, query, userID, from, to).Scan(
		&s.Revenue,
		&s.InvoiceCount,
		&s.NewClients,
		&s.PendingAmount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query period stats: %w", err)
	}
	return &s, nil
}

func collectRecentDocuments(rows pgx.Rows) ([]domain.RecentDocument, error) {
	docs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RecentDocument, error) {
		var d domain.RecentDocument
		err := row.Scan(&d.DocumentID, &d.Number, &d.ClientName, &d.Date, &d.Amount, &d.Status)
		return d, err
	})
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []domain.RecentDocument{}
	}
	return docs, nil
}

// ListRecentInvoices returns the latest invoices joined to their client's
// display name. A deleted client leaves a NULL reference, shown as "Unknown".
func (r *reportingRepository) ListRecentInvoices(ctx context.Context, userID string, limit int) ([]domain.RecentDocument, error) {
	query := `
		SELECT i.invoice_id, i.invoice_number, COALESCE(c.name, 'Unknown'), i.date, i.amount, i.status
		FROM invoices i
		LEFT JOIN clients c ON i.client_id = c.client_id
		WHERE i.user_id = $1
		ORDER BY i.created_at DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent invoices: %w", err)
	}
	defer rows.Close()

	docs, err := collectRecentDocuments(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan recent invoices: %w", err)
	}
	return docs, nil
}

func (r *reportingRepository) ListRecentQuotes(ctx context.Context, userID string, limit int) ([]domain.RecentDocument, error) {
	query := `
		SELECT q.quote_id, q.quote_number, COALESCE(c.name, 'Unknown'), q.date, q.amount, q.status
		FROM quotes q
		LEFT JOIN clients c ON q.client_id = c.client_id
		WHERE q.user_id = $1
		ORDER BY q.created_at DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent quotes: %w", err)
	}
	defer rows.Close()

	docs, err := collectRecentDocuments(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan recent quotes: %w", err)
	}
	return docs, nil
}

// ListTopClients ranks clients by revenue from their Paid invoices. The inner
// join drops clients that never had an invoice paid.
func (r *reportingRepository) ListTopClients(ctx context.Context, userID string, limit int) ([]domain.TopClient, error) {
	query := `
		SELECT c.client_id, c.name, c.email, c.status, SUM(i.amount) AS revenue
		FROM clients c
		JOIN invoices i ON i.client_id = c.client_id AND i.status = 'Paid'
		WHERE c.user_id = $1
		GROUP BY c.client_id, c.name, c.email, c.status
		ORDER BY revenue DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top clients: %w", err)
	}
	defer rows.Close()

	clients, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TopClient, error) {
		var c domain.TopClient
		err := row.Scan(&c.ClientID, &c.Name, &c.Email, &c.Status, &c.Revenue)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan top clients: %w", err)
	}
	if clients == nil {
		clients = []domain.TopClient{}
	}
	return clients, nil
}

func (r *reportingRepository) GetExpensesByCategory(ctx context.Context, userID string) ([]domain.ExpenseCategorySummary, error) {
	query := `
		SELECT category, SUM(amount) AS total, COUNT(*) AS count
		FROM expenses
		WHERE user_id = $1
		GROUP BY category;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses by category: %w", err)
	}
	defer rows.Close()

	summaries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ExpenseCategorySummary, error) {
		var s domain.ExpenseCategorySummary
		err := row.Scan(&s.Category, &s.Total, &s.Count)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan expense categories: %w", err)
	}
	if summaries == nil {
		summaries = []domain.ExpenseCategorySummary{}
	}
	return summaries, nil
}

func (r *reportingRepository) GetFinancialReportData(ctx context.Context, userID string, from time.Time) (*domain.FinancialReportData, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(amount) FROM invoices WHERE user_id = $1 AND status = 'Paid' AND date >= $2), 0) AS revenue,
			COALESCE((SELECT SUM(amount) FROM expenses WHERE user_id = $1 AND expense_date >= $2), 0) AS expenses,
			(SELECT COUNT(*) FROM invoices WHERE user_id = $1 AND status = 'Paid' AND date >= $2) AS paid_invoices,
			(SELECT COUNT(*) FROM invoices WHERE user_id = $1 AND status IN ('Sent', 'Overdue') AND date >= $2) AS pending_invoices,
			(SELECT COUNT(*) FROM quotes WHERE user_id = $1 AND status = 'Accepted' AND date >= $2) AS accepted_quotes,
			(SELECT COUNT(*) FROM quotes WHERE user_id = $1 AND status IN ('Draft', 'Sent') AND date >= $2) AS pending_quotes;
	`
	var d domain.FinancialReportData
	err := r.Pool.QueryRow(ctx, query, userID, from).Scan(
		&d.Revenue,
		&d.Expenses,
		&d.PaidInvoices,
		&d.PendingInvoices,
		&d.AcceptedQuotes,
		&d.PendingQuotes,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query financial report data: %w", err)
	}
	return &d, nil
}

// GetMonthlyCashflow groups Paid-invoice income and expenses by calendar
// month. Months with neither are simply absent from the result.
func (r *reportingRepository) GetMonthlyCashflow(ctx context.Context, userID string, from, to time.Time) ([]domain.MonthlyCashflowRow, error) {
	query := `
		SELECT month, SUM(income) AS income, SUM(expenses) AS expenses
		FROM (
			SELECT date_trunc('month', date) AS month, amount AS income, 0 AS expenses
			FROM invoices
			WHERE user_id = $1 AND status = 'Paid' AND date >= $2 AND date < $3
			UNION ALL
			SELECT date_trunc('month', expense_date) AS month, 0 AS income, amount AS expenses
			FROM expenses
			WHERE user_id = $1 AND expense_date >= $2 AND expense_date < $3
		) flows
		GROUP BY month
		ORDER BY month;
	`
	rows, err := r.Pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly cashflow: %w", err)
	}
	defer rows.Close()

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MonthlyCashflowRow, error) {
		var m domain.MonthlyCashflowRow
		err := row.Scan(&m.Month, &m.Income, &m.Expenses)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan monthly cashflow: %w", err)
	}
	if result == nil {
		result = []domain.MonthlyCashflowRow{}
	}
	return result, nil
}
