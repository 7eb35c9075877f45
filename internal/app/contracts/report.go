package contracts

import (
	"context"
	"intake-report-service/internal/pkg/dto/requests"
	"intake-report-service/internal/pkg/dto/responses"
)

type ReportUsecase interface {
	GenerateReport(ctx context.Context, request *requests.GenerateReport) (*responses.GeneratedReport, error)
}

type ReportEventPublisher interface {
	PublishReportGenerated(ctx context.Context, objectName, fileName, language string) error
}
