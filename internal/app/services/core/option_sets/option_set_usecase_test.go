package optionSets

import (
	"context"
	"intake-report-service/internal/app/models"
	"intake-report-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOptionSetRepository struct {
	sets      []models.OptionSet
	findCalls int
}

func (r *fakeOptionSetRepository) FindAll(_ context.Context) ([]models.OptionSet, error) {
	return r.sets, nil
}

func (r *fakeOptionSetRepository) FindByKindAndLanguage(_ context.Context, kind, language string) (*models.OptionSet, error) {
	r.findCalls++
	for _, s := range r.sets {
		if s.Kind == kind && s.Language == language {
			found := s
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeOptionSetRepository) Upsert(_ context.Context, optionSet models.OptionSet) error {
	for i, s := range r.sets {
		if s.Kind == optionSet.Kind && s.Language == optionSet.Language {
			r.sets[i] = optionSet
			return nil
		}
	}
	r.sets = append(r.sets, optionSet)
	return nil
}

type fakeRedisRepository struct {
	data map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{data: make(map[string]string)}
}

func (r *fakeRedisRepository) Delete(_ context.Context, key string) error {
	delete(r.data, key)
	return nil
}

func (r *fakeRedisRepository) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.data[key] = string(encoded)
	return nil
}

func (r *fakeRedisRepository) Get(_ context.Context, key string) (string, error) {
	return r.data[key], nil
}

func (r *fakeRedisRepository) IncrementWithTTL(_ context.Context, _ string, _ time.Duration) (int64, error) {
	return 1, nil
}

func TestNewOptionSetUsecaseSeedsEmptyDatabase(t *testing.T) {
	repo := &fakeOptionSetRepository{}
	_, err := NewOptionSetUsecase(repo, newFakeRedisRepository())
	require.NoError(t, err)

	assert.Len(t, repo.sets, 8)
	set, err := repo.FindByKindAndLanguage(context.Background(), constvars.OptionKindCurrencies, constvars.LanguageEnglish)
	require.NoError(t, err)
	require.NotNil(t, set)
	assert.Equal(t, "Euro (€)", models.MapLabel(set.Options, "EUR"))
}

func TestResolveLabel(t *testing.T) {
	uc, err := NewOptionSetUsecase(&fakeOptionSetRepository{}, newFakeRedisRepository())
	require.NoError(t, err)

	ctx := context.Background()

	assert.Equal(t, "Hollywood Smile", uc.ResolveLabel(ctx, constvars.OptionKindServices, constvars.LanguageEnglish, "hollywood_smile"))
	assert.Equal(t, "ابتسامة هوليود", uc.ResolveLabel(ctx, constvars.OptionKindServices, constvars.LanguageArabic, "hollywood_smile"))
	assert.Equal(t, "Requires medical report", uc.ResolveLabel(ctx, constvars.OptionKindHealthConditions, constvars.LanguageEnglish, "requires_report"))

	// Unknown codes pass through unchanged, empty stays empty.
	assert.Equal(t, "mystery_code", uc.ResolveLabel(ctx, constvars.OptionKindServices, constvars.LanguageEnglish, "mystery_code"))
	assert.Equal(t, "", uc.ResolveLabel(ctx, constvars.OptionKindServices, constvars.LanguageEnglish, ""))
}

func TestResolveLabelFallsBackToDefaultLanguage(t *testing.T) {
	uc, err := NewOptionSetUsecase(&fakeOptionSetRepository{}, newFakeRedisRepository())
	require.NoError(t, err)

	got := uc.ResolveLabel(context.Background(), constvars.OptionKindCurrencies, constvars.LanguageRussian, "USD")
	assert.Equal(t, "US Dollar ($)", got)
}

func TestFindByKindUsesCacheAfterFirstLookup(t *testing.T) {
	repo := &fakeOptionSetRepository{}
	uc, err := NewOptionSetUsecase(repo, newFakeRedisRepository())
	require.NoError(t, err)

	ctx := context.Background()
	repo.findCalls = 0

	first, err := uc.FindByKind(ctx, constvars.OptionKindLanguages, constvars.LanguageEnglish)
	require.NoError(t, err)
	require.NotNil(t, first)
	callsAfterFirst := repo.findCalls

	second, err := uc.FindByKind(ctx, constvars.OptionKindLanguages, constvars.LanguageEnglish)
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, callsAfterFirst, repo.findCalls)
	assert.Equal(t, first.Options, second.Options)
}
