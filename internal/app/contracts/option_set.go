package contracts

import (
	"context"
	"intake-report-service/internal/app/models"
	"intake-report-service/internal/pkg/dto/responses"
)

type OptionSetUsecase interface {
	FindByKind(ctx context.Context, kind, language string) (*responses.OptionSet, error)
	ResolveLabel(ctx context.Context, kind, language, code string) string
}

type OptionSetRepository interface {
	FindAll(ctx context.Context) ([]models.OptionSet, error)
	FindByKindAndLanguage(ctx context.Context, kind, language string) (*models.OptionSet, error)
	Upsert(ctx context.Context, optionSet models.OptionSet) error
}
