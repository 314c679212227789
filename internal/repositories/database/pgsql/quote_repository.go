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

type PgxQuoteRepository struct {
	BaseRepository
}

func newPgxQuoteRepository(pool *pgxpool.Pool) portsrepo.QuoteRepository {
	return &PgxQuoteRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.QuoteRepository = (*PgxQuoteRepository)(nil)

const quoteColumns = `quote_id, quote_number, user_id, client_id, date, expiry_date, amount, tax_amount, discount, status, description, notes, created_at, created_by, last_updated_at, last_updated_by`

const quoteItemColumns = `item_id, quote_id, product_id, description, quantity, price, tax_rate, total`

func scanQuote(row pgx.Row) (domain.Quote, error) {
	var q domain.Quote
	err := row.Scan(
		&q.QuoteID,
		&q.QuoteNumber,
		&q.UserID,
		&q.ClientID,
		&q.Date,
		&q.ExpiryDate,
		&q.Amount,
		&q.TaxAmount,
		&q.Discount,
		&q.Status,
		&q.Description,
		&q.Notes,
		&q.CreatedAt,
		&q.CreatedBy,
		&q.LastUpdatedAt,
		&q.LastUpdatedBy,
	)
	return q, err
}

func (r *PgxQuoteRepository) CreateQuoteWithItems(ctx context.Context, quote *domain.Quote, items []domain.QuoteItem) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	number, err := nextDocumentNumber(ctx, tx, quote.UserID, domain.DocumentQuote)
	if err != nil {
		return err
	}
	quote.QuoteNumber = number

	query := `
		INSERT INTO quotes (` + quoteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err = tx.Exec(ctx, query,
		quote.QuoteID,
		quote.QuoteNumber,
		quote.UserID,
		quote.ClientID,
		quote.Date,
		quote.ExpiryDate,
		quote.Amount,
		quote.TaxAmount,
		quote.Discount,
		quote.Status,
		quote.Description,
		quote.Notes,
		quote.CreatedAt,
		quote.CreatedBy,
		quote.LastUpdatedAt,
		quote.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: quote number %s already taken", apperrors.ErrDuplicate, quote.QuoteNumber)
		}
		return fmt.Errorf("failed to insert quote %s: %w", quote.QuoteID, err)
	}

	if len(items) > 0 {
		batch := &pgx.Batch{}
		itemQuery := `
			INSERT INTO quote_items (` + quoteItemColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
		`
		for _, item := range items {
			batch.Queue(itemQuery,
				item.ItemID,
				item.QuoteID,
				item.ProductID,
				item.Description,
				item.Quantity,
				item.Price,
				item.TaxRate,
				item.Total,
			)
		}
		br := tx.SendBatch(ctx, batch)
		for range items {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return fmt.Errorf("failed to insert quote item: %w", err)
			}
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("failed to close quote item batch: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxQuoteRepository) FindQuoteByID(ctx context.Context, quoteID, userID string) (*domain.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE quote_id = $1 AND user_id = $2;`
	quote, err := scanQuote(r.Pool.QueryRow(ctx, query, quoteID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find quote %s: %w", quoteID, err)
	}
	return &quote, nil
}

func (r *PgxQuoteRepository) FindItemsByQuoteID(ctx context.Context, quoteID string) ([]domain.QuoteItem, error) {
	query := `SELECT ` + quoteItemColumns + ` FROM quote_items WHERE quote_id = $1 ORDER BY item_id;`
	rows, err := r.Pool.Query(ctx, query, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to query quote items: %w", err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.QuoteItem, error) {
		var it domain.QuoteItem
		err := row.Scan(
			&it.ItemID,
			&it.QuoteID,
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
		return nil, fmt.Errorf("failed to scan quote items: %w", err)
	}
	if items == nil {
		items = []domain.QuoteItem{}
	}
	return items, nil
}

func (r *PgxQuoteRepository) ListQuotes(ctx context.Context, userID string) ([]domain.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE user_id = $1 ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotes: %w", err)
	}
	defer rows.Close()

	quotes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Quote, error) {
		return scanQuote(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan quotes: %w", err)
	}
	if quotes == nil {
		quotes = []domain.Quote{}
	}
	return quotes, nil
}

func (r *PgxQuoteRepository) UpdateQuoteStatus(ctx context.Context, quoteID, userID string, status domain.QuoteStatus, updatedAt time.Time, updatedBy string) error {
	query := `
		UPDATE quotes
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE quote_id = $1 AND user_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, quoteID, userID, status, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update quote %s status: %w", quoteID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ConvertQuote inserts the invoice built from the quote and flips the quote
// to its accepted state in one transaction. The invoice number is assigned
// inside the same transaction, so an aborted conversion never burns a number
// that a later document would then skip.
func (r *PgxQuoteRepository) ConvertQuote(ctx context.Context, quote domain.Quote, invoice *domain.Invoice, items []domain.InvoiceItem) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertInvoiceInTx(ctx, tx, invoice, items); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `
		UPDATE quotes
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE quote_id = $1 AND user_id = $2;
	`, quote.QuoteID, quote.UserID, quote.Status, quote.LastUpdatedAt, quote.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to mark quote %s accepted: %w", quote.QuoteID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
