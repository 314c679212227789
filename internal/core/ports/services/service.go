package services

// ServiceContainer holds instances of all the application services. Handlers
// receive their dependencies from here.
type ServiceContainer struct {
	User        UserSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
	Client      ClientSvcFacade
	Product     ProductSvcFacade
	Expense     ExpenseSvcFacade
	Invoice     InvoiceSvcFacade
	Quote       QuoteSvcFacade
	Activity    ActivitySvcFacade
	Reporting   ReportingSvcFacade
}
