package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/invoiceflow/backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// nextDocumentNumber claims the next ordinal for the user's invoice or quote
// sequence and renders the display number. The UPDATE ... RETURNING row-locks
// the counter, so concurrent document creation serializes here and numbers
// are never duplicated or reused, even if the surrounding transaction aborts
// another document later.
func nextDocumentNumber(ctx context.Context, tx pgx.Tx, userID string, docType domain.DocumentType) (string, error) {
	var ordinal int64
	err := tx.QueryRow(ctx, `
		UPDATE document_sequences
		SET next_value = next_value + 1
		WHERE user_id = $1 AND document_type = $2
		RETURNING next_value - 1;
	`, userID, docType).Scan(&ordinal)

	if errors.Is(err, pgx.ErrNoRows) {
		// First document of this type for the user: seed the counter. The
		// unique constraint resolves the race between two first documents.
		err = tx.QueryRow(ctx, `
			INSERT INTO document_sequences (user_id, document_type, next_value)
			VALUES ($1, $2, 2)
			ON CONFLICT (user_id, document_type) DO UPDATE SET next_value = document_sequences.next_value + 1
			RETURNING next_value - 1;
		`, userID, docType).Scan(&ordinal)
	}
	if err != nil {
		return "", fmt.Errorf("failed to advance %s sequence: %w", docType, err)
	}

	prefix := domain.InvoiceNumberPrefix
	if docType == domain.DocumentQuote {
		prefix = domain.QuoteNumberPrefix
	}
	return domain.FormatDocumentNumber(prefix, ordinal), nil
}
