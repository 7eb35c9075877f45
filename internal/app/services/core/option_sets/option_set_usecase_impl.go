package optionSets

import (
	"context"
	"fmt"
	"intake-report-service/internal/app/contracts"
	"intake-report-service/internal/app/models"
	"intake-report-service/internal/pkg/constvars"
	"intake-report-service/internal/pkg/dto/responses"
	"intake-report-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type optionSetUsecase struct {
	OptionSetRepository contracts.OptionSetRepository
	RedisRepository     contracts.RedisRepository
}

func NewOptionSetUsecase(
	optionSetRepository contracts.OptionSetRepository,
	redisRepository contracts.RedisRepository,
) (contracts.OptionSetUsecase, error) {
	usecase := &optionSetUsecase{
		OptionSetRepository: optionSetRepository,
		RedisRepository:     redisRepository,
	}

	ctx := context.Background()
	err := usecase.initializeData(ctx)
	if err != nil {
		return nil, err
	}

	return usecase, nil
}

func (uc *optionSetUsecase) FindByKind(ctx context.Context, kind, language string) (*responses.OptionSet, error) {
	optionSet, err := uc.findModel(ctx, kind, language)
	if err != nil {
		return nil, err
	}
	if optionSet == nil {
		return nil, nil
	}
	response := optionSet.ConvertIntoResponse()
	return &response, nil
}

// ResolveLabel maps a coded form value to its display label. Lookup
// failures degrade to the raw code so a document build never stalls on a
// label.
func (uc *optionSetUsecase) ResolveLabel(ctx context.Context, kind, language, code string) string {
	optionSet, err := uc.findModel(ctx, kind, language)
	if err != nil || optionSet == nil {
		return code
	}
	return models.MapLabel(optionSet.Options, code)
}

func (uc *optionSetUsecase) findModel(ctx context.Context, kind, language string) (*models.OptionSet, error) {
	optionSet, err := uc.findCached(ctx, kind, language)
	if err != nil {
		return nil, err
	}
	if optionSet == nil && language != constvars.DefaultPDFLanguage {
		// No translated set for this language; serve the default one.
		optionSet, err = uc.findCached(ctx, kind, constvars.DefaultPDFLanguage)
		if err != nil {
			return nil, err
		}
	}
	return optionSet, nil
}

func (uc *optionSetUsecase) findCached(ctx context.Context, kind, language string) (*models.OptionSet, error) {
	redisKey := fmt.Sprintf(constvars.RedisKeyOptionSetFormat, kind, language)

	redisData, err := uc.RedisRepository.Get(ctx, redisKey)
	if err != nil {
		return nil, err
	}
	if redisData != "" {
		var optionSet models.OptionSet
		err = json.Unmarshal([]byte(redisData), &optionSet)
		if err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		return &optionSet, nil
	}

	optionSet, err := uc.OptionSetRepository.FindByKindAndLanguage(ctx, kind, language)
	if err != nil {
		return nil, err
	}
	if optionSet == nil {
		return nil, nil
	}

	err = uc.RedisRepository.Set(ctx, redisKey, optionSet, 0)
	if err != nil {
		return nil, err
	}
	return optionSet, nil
}

func (uc *optionSetUsecase) initializeData(ctx context.Context) error {
	existing, err := uc.OptionSetRepository.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, optionSet := range DefaultOptionSets() {
		if err := uc.OptionSetRepository.Upsert(ctx, optionSet); err != nil {
			return err
		}
	}
	return nil
}
