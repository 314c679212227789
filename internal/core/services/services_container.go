package services

import (
	portsrepo "github.com/invoiceflow/backend/internal/core/ports/repositories"
	portssvc "github.com/invoiceflow/backend/internal/core/ports/services"
	"github.com/invoiceflow/backend/internal/platform/config"
)

// NewServiceContainer wires every service against the repository provider.
// The activity service is constructed first since the mutating services
// record into it.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	activitySvc := NewActivityService(repos.ActivityRepo)

	return &portssvc.ServiceContainer{
		User:        NewUserService(repos.UserRepo),
		Token:       NewTokenService(cfg),
		GoogleOAuth: NewGoogleOAuthService(cfg),
		Client:      NewClientService(repos.ClientRepo, activitySvc),
		Product:     NewProductService(repos.ProductRepo, activitySvc),
		Expense:     NewExpenseService(repos.ExpenseRepo, repos.ClientRepo, activitySvc),
		Invoice:     NewInvoiceService(repos.InvoiceRepo, repos.ClientRepo, activitySvc),
		Quote:       NewQuoteService(repos.QuoteRepo, repos.ClientRepo, activitySvc),
		Activity:    activitySvc,
		Reporting:   NewReportingService(repos.ReportingRepo, repos.ActivityRepo),
	}
}
