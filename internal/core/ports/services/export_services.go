package services

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// ExportSvc renders reports to documents.
type ExportSvc interface {
	// Export builds the requested report and renders it in the requested format.
	Export(ctx context.Context, req domain.ExportRequest) (*domain.ExportDocument, error)

	// Formats lists the registered document formats.
	Formats() []string
}
