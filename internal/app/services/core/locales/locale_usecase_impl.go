package locales

import (
	"context"
	"fmt"
	"intake-report-service/internal/app/contracts"
	"intake-report-service/internal/app/models"
	"intake-report-service/internal/pkg/constvars"
	"intake-report-service/internal/pkg/dto/responses"
	"intake-report-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type localeUsecase struct {
	LocaleRepository contracts.LocaleRepository
	RedisRepository  contracts.RedisRepository
	Log              *zap.Logger
}

func NewLocaleUsecase(
	localeRepository contracts.LocaleRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) (contracts.LocaleUsecase, error) {
	usecase := &localeUsecase{
		LocaleRepository: localeRepository,
		RedisRepository:  redisRepository,
		Log:              logger,
	}

	ctx := context.Background()
	err := usecase.initializeData(ctx)
	if err != nil {
		return nil, err
	}

	return usecase, nil
}

func (uc *localeUsecase) FindByLanguage(ctx context.Context, language, scope string) (*responses.LocaleBundle, error) {
	bundle, err := uc.findCached(ctx, language, scope)
	if err != nil {
		return nil, err
	}
	if bundle == nil {
		return nil, nil
	}
	response := bundle.ConvertIntoResponse()
	return &response, nil
}

// Resolve returns the document string for key in the requested language.
// A missing bundle falls back to the default language; a missing key falls
// back to the key itself so a gap in the translations stays visible on the
// page instead of failing the build.
func (uc *localeUsecase) Resolve(ctx context.Context, language, key string) string {
	bundle, err := uc.findCached(ctx, language, constvars.LocaleScopePDF)
	if err != nil || bundle == nil {
		if language != constvars.DefaultPDFLanguage {
			return uc.Resolve(ctx, constvars.DefaultPDFLanguage, key)
		}
		uc.Log.Warn("no document locale bundle available, serving raw key",
			zap.String("language", language),
			zap.String("key", key),
		)
		return key
	}

	if value, ok := bundle.Strings[key]; ok {
		return value
	}
	if language != constvars.DefaultPDFLanguage {
		return uc.Resolve(ctx, constvars.DefaultPDFLanguage, key)
	}

	uc.Log.Warn("document string missing from default bundle, serving raw key",
		zap.String("key", key),
	)
	return key
}

func (uc *localeUsecase) AboutClinic(ctx context.Context, language string) string {
	bundle, err := uc.findCached(ctx, language, constvars.LocaleScopePDF)
	if err == nil && bundle != nil && bundle.AboutClinic != "" {
		return bundle.AboutClinic
	}
	if language != constvars.DefaultPDFLanguage {
		return uc.AboutClinic(ctx, constvars.DefaultPDFLanguage)
	}
	return ""
}

func (uc *localeUsecase) findCached(ctx context.Context, language, scope string) (*models.LocaleBundle, error) {
	redisKey := fmt.Sprintf(constvars.RedisKeyLocaleBundleFormat, language, scope)

	redisData, err := uc.RedisRepository.Get(ctx, redisKey)
	if err != nil {
		return nil, err
	}
	if redisData != "" {
		var bundle models.LocaleBundle
		err = json.Unmarshal([]byte(redisData), &bundle)
		if err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		return &bundle, nil
	}

	bundle, err := uc.LocaleRepository.FindByLanguageAndScope(ctx, language, scope)
	if err != nil {
		return nil, err
	}
	if bundle == nil {
		return nil, nil
	}

	err = uc.RedisRepository.Set(ctx, redisKey, bundle, 0)
	if err != nil {
		return nil, err
	}
	return bundle, nil
}

func (uc *localeUsecase) initializeData(ctx context.Context) error {
	existing, err := uc.LocaleRepository.FindByLanguageAndScope(ctx, constvars.DefaultPDFLanguage, constvars.LocaleScopePDF)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	for _, bundle := range DefaultLocaleBundles() {
		if err := uc.LocaleRepository.Upsert(ctx, bundle); err != nil {
			return err
		}
	}
	return nil
}
