package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/invoiceflow/backend/internal/apperrors"
	"github.com/invoiceflow/backend/internal/core/domain"
	portsrepo "github.com/invoiceflow/backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepository {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepository = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, invoice_number, user_id, client_id, quote_id, date, due_date, amount, tax_amount, discount, status, description, notes, payment_terms, created_at, created_by, last_updated_at, last_updated_by`

const invoiceItemColumns = `item_id, invoice_id, product_id, description, quantity, price, tax_rate, total`

func scanInvoice(row pgx.Row) (domain.Invoice, error) {
	var inv domain.Invoice
	err := row.Scan(
		&inv.InvoiceID,
		&inv.InvoiceNumber,
		&inv.UserID,
		&inv.ClientID,
		&inv.QuoteID,
		&inv.Date,
		&inv.DueDate,
		&inv.Amount,
		&inv.TaxAmount,
		&inv.Discount,
		&inv.Status,
		&inv.Description,
		&inv.Notes,
		&inv.PaymentTerms,
		&inv.CreatedAt,
		&inv.CreatedBy,
		&inv.LastUpdatedAt,
		&inv.LastUpdatedBy,
	)
	return inv, err
}

// insertInvoiceInTx assigns the display number from the user's sequence and
// inserts the invoice with all its items. Callers own the transaction.
func insertInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice *domain.Invoice, items []domain.InvoiceItem) error {
	number, err := nextDocumentNumber(ctx, tx, invoice.UserID, domain.DocumentInvoice)
	if err != nil {
		return err
	}
	invoice.InvoiceNumber = number

	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err = tx.Exec(ctx, query,
		invoice.InvoiceID,
		invoice.InvoiceNumber,
		invoice.UserID,
		invoice.ClientID,
		invoice.QuoteID,
		invoice.Date,
		invoice.DueDate,
		invoice.Amount,
		invoice.TaxAmount,
		invoice.Discount,
		invoice.Status,
		invoice.Description,
		invoice.Notes,
		invoice.PaymentTerms,
		invoice.CreatedAt,
		invoice.CreatedBy,
		invoice.LastUpdatedAt,
		invoice.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: invoice number %s already taken", apperrors.ErrDuplicate, invoice.InvoiceNumber)
		}
		return fmt.Errorf("failed to insert invoice %s: %w", invoice.InvoiceID, err)
	}

	if len(items) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO invoice_items (` + invoiceItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, item := range items {
		batch.Queue(itemQuery,
			item.ItemID,
			item.InvoiceID,
			item.ProductID,
			item.Description,
			item.Quantity,
			item.Price,
			item.TaxRate,
			item.Total,
		)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()
	for range items {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to insert invoice item: %w", err)
		}
	}
	return nil
}

func (r *PgxInvoiceRepository) CreateInvoiceWithItems(ctx context.Context, invoice *domain.Invoice, items []domain.InvoiceItem) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertInvoiceInTx(ctx, tx, invoice, items); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID, userID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1 AND user_id = $2;`
	invoice, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}
	return &invoice, nil
}

func (r *PgxInvoiceRepository) FindItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error) {
	query := `SELECT ` + invoiceItemColumns + ` FROM invoice_items WHERE invoice_id = $1 ORDER BY item_id;`
	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice items: %w", err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.InvoiceItem, error) {
		var it domain.InvoiceItem
		err := row.Scan(
			&it.ItemID,
			&it.InvoiceID,
			&it.ProductID,
			&it.Description,
			&it.Quantity,
			&it.Price,
			&it.TaxRate,
			&it.Total,
		)
		return it, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan invoice items: %w", err)
	}
	if items == nil {
		items = []domain.InvoiceItem{}
	}
	return items, nil
}

func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, userID string) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE user_id = $1 ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	invoices, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Invoice, error) {
		return scanInvoice(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan invoices: %w", err)
	}
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	return invoices, nil
}

func (r *PgxInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID, userID string, status domain.InvoiceStatus, updatedAt time.Time, updatedBy string) error {
	query := `
		UPDATE invoices
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE invoice_id = $1 AND user_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, invoiceID, userID, status, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update invoice %s status: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
