package repositories

// RepositoryProvider bundles all repository implementations for service construction.
type RepositoryProvider struct {
	UserRepo      UserRepository
	ClientRepo    ClientRepository
	ProductRepo   ProductRepository
	ExpenseRepo   ExpenseRepository
	InvoiceRepo   InvoiceRepository
	QuoteRepo     QuoteRepository
	ActivityRepo  ActivityRepository
	ReportingRepo ReportingRepository
}
