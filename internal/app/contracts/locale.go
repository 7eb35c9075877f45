package contracts

import (
	"context"
	"intake-report-service/internal/app/models"
	"intake-report-service/internal/pkg/dto/responses"
)

type LocaleUsecase interface {
	FindByLanguage(ctx context.Context, language, scope string) (*responses.LocaleBundle, error)
	Resolve(ctx context.Context, language, key string) string
	AboutClinic(ctx context.Context, language string) string
}

type LocaleRepository interface {
	FindByLanguageAndScope(ctx context.Context, language, scope string) (*models.LocaleBundle, error)
	Upsert(ctx context.Context, bundle models.LocaleBundle) error
}
