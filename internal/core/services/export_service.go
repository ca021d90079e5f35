package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/export"
)

type exportService struct {
	BaseService
	reporting portssvc.ReportingService
	registry  *export.Registry
}

// NewExportService creates an export service rendering reports through the registry.
func NewExportService(reporting portssvc.ReportingService, registry *export.Registry) portssvc.ExportSvc {
	if registry == nil {
		registry = export.NewDefaultRegistry()
	}
	return &exportService{reporting: reporting, registry: registry}
}

var _ portssvc.ExportSvc = (*exportService)(nil)

func (s *exportService) Formats() []string {
	return s.registry.Formats()
}

// Export builds the requested report and renders it.
func (s *exportService) Export(ctx context.Context, req domain.ExportRequest) (*domain.ExportDocument, error) {
	renderer, err := s.registry.Get(req.Format)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrValidation, err, "format %q", req.Format)
	}

	report, err := s.buildReport(ctx, req)
	if err != nil {
		return nil, err
	}

	body, err := renderer.Render(report)
	if err != nil {
		s.LogError(ctx, err, "Failed to render report", slog.String("kind", string(req.Kind)), slog.String("format", req.Format))
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	stamp := req.Range.To
	if req.Kind == domain.ReportBalanceSheet || req.Kind == domain.ReportAging {
		stamp = req.AsOf
	}
	filename := string(req.Kind)
	if !stamp.IsZero() {
		filename += "-" + stamp.Format("2006-01-02")
	}
	filename += "." + renderer.Extension()

	s.LogInfo(ctx, "Report exported", slog.String("kind", string(req.Kind)), slog.String("format", renderer.Format()), slog.Int("bytes", len(body)))
	return &domain.ExportDocument{
		Filename:    filename,
		ContentType: renderer.ContentType(),
		Body:        body,
	}, nil
}

func (s *exportService) buildReport(ctx context.Context, req domain.ExportRequest) (export.Report, error) {
	switch req.Kind {
	case domain.ReportTrialBalance:
		r, err := s.reporting.TrialBalance(ctx, req.Range, req.TrialBalance)
		if err != nil {
			return export.Report{}, err
		}
		return export.TrialBalance(r), nil
	case domain.ReportProfitAndLoss:
		r, err := s.reporting.ProfitAndLoss(ctx, req.Range)
		if err != nil {
			return export.Report{}, err
		}
		return export.ProfitAndLoss(r), nil
	case domain.ReportBalanceSheet:
		r, err := s.reporting.BalanceSheet(ctx, req.AsOf)
		if err != nil {
			return export.Report{}, err
		}
		return export.BalanceSheet(r), nil
	case domain.ReportCashFlow:
		r, err := s.reporting.CashFlow(ctx, req.Range)
		if err != nil {
			return export.Report{}, err
		}
		return export.CashFlow(r), nil
	case domain.ReportGeneralLedger:
		if req.AccountID == "" {
			return export.Report{}, apperrors.Newf(apperrors.ErrValidation, "general ledger export needs an account")
		}
		r, err := s.reporting.GeneralLedger(ctx, req.AccountID, req.Range)
		if err != nil {
			return export.Report{}, err
		}
		return export.GeneralLedger(r), nil
	case domain.ReportAging:
		kind := req.AgingKind
		if kind == "" {
			kind = domain.Receivables
		}
		r, err := s.reporting.AgingAnalysis(ctx, kind, req.AsOf)
		if err != nil {
			return export.Report{}, err
		}
		return export.Aging(r), nil
	default:
		return export.Report{}, apperrors.Newf(apperrors.ErrValidation, "unknown report %q", req.Kind)
	}
}
