package services

// ServiceContainer holds instances of all the application services.
// It is the main entry point for handlers and the sweep CLI.
type ServiceContainer struct {
	Account   AccountSvcFacade
	Journal   JournalSvcFacade
	Posting   PostingSvc
	Reporting ReportingService
	Export    ExportSvc
}
