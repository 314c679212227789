package pgsql

import (
	portsrepo "github.com/invoiceflow/backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds the full repository set on one pgx pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:      newPgxUserRepository(dbPool),
		ClientRepo:    newPgxClientRepository(dbPool),
		ProductRepo:   newPgxProductRepository(dbPool),
		ExpenseRepo:   newPgxExpenseRepository(dbPool),
		InvoiceRepo:   newPgxInvoiceRepository(dbPool),
		QuoteRepo:     newPgxQuoteRepository(dbPool),
		ActivityRepo:  newPgxActivityRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
	}
}
