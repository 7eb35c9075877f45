package locales

import (
	"context"
	"intake-report-service/internal/app/models"
	"intake-report-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLocaleRepository struct {
	bundles []models.LocaleBundle
}

func (r *fakeLocaleRepository) FindByLanguageAndScope(_ context.Context, language, scope string) (*models.LocaleBundle, error) {
	for _, b := range r.bundles {
		if b.Language == language && b.Scope == scope {
			found := b
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeLocaleRepository) Upsert(_ context.Context, bundle models.LocaleBundle) error {
	for i, b := range r.bundles {
		if b.Language == bundle.Language && b.Scope == bundle.Scope {
			r.bundles[i] = bundle
			return nil
		}
	}
	r.bundles = append(r.bundles, bundle)
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

func newTestLocaleUsecase(t *testing.T) *localeUsecase {
	t.Helper()
	uc, err := NewLocaleUsecase(&fakeLocaleRepository{}, newFakeRedisRepository(), zap.NewNop())
	require.NoError(t, err)
	return uc.(*localeUsecase)
}

func TestResolveTranslatesKnownKeys(t *testing.T) {
	uc := newTestLocaleUsecase(t)
	ctx := context.Background()

	assert.Equal(t, "Medical Form Report", uc.Resolve(ctx, constvars.LanguageEnglish, KeyMedicalFormReport))
	assert.Equal(t, "Отчет медицинской формы", uc.Resolve(ctx, constvars.LanguageRussian, KeyMedicalFormReport))
	assert.Equal(t, "Rapport de formulaire médical", uc.Resolve(ctx, constvars.LanguageFrench, KeyMedicalFormReport))
	assert.Equal(t, "تقرير النموذج الطبي", uc.Resolve(ctx, constvars.LanguageArabic, KeyMedicalFormReport))
}

func TestResolveFallsBackToDefaultLanguage(t *testing.T) {
	uc := newTestLocaleUsecase(t)

	got := uc.Resolve(context.Background(), "de", KeyGrandTotal)
	assert.Equal(t, "Grand Total", got)
}

func TestResolveServesRawKeyWhenNothingMatches(t *testing.T) {
	uc := newTestLocaleUsecase(t)

	got := uc.Resolve(context.Background(), constvars.LanguageEnglish, "notARealKey")
	assert.Equal(t, "notARealKey", got)
}

func TestAboutClinicFallsBackToDefaultLanguage(t *testing.T) {
	uc := newTestLocaleUsecase(t)
	ctx := context.Background()

	assert.Contains(t, uc.AboutClinic(ctx, constvars.LanguageRussian), "СТОМАТОЛОГИЧЕСКОЙ")
	assert.Contains(t, uc.AboutClinic(ctx, "de"), "DENTAL CLINIC")
}

func TestFindByLanguageServesUIScope(t *testing.T) {
	uc := newTestLocaleUsecase(t)

	bundle, err := uc.FindByLanguage(context.Background(), constvars.LanguageEnglish, constvars.LocaleScopeUI)
	require.NoError(t, err)
	require.NotNil(t, bundle)
	assert.Equal(t, "Generate Report", bundle.Strings["submit"])

	russian, err := uc.FindByLanguage(context.Background(), constvars.LanguageRussian, constvars.LocaleScopeUI)
	require.NoError(t, err)
	require.NotNil(t, russian)
	assert.Equal(t, "Создать отчёт", russian.Strings["submit"])

	french, err := uc.FindByLanguage(context.Background(), constvars.LanguageFrench, constvars.LocaleScopeUI)
	require.NoError(t, err)
	require.NotNil(t, french)
	assert.Equal(t, "Générer le rapport", french.Strings["submit"])
	for key := range bundle.Strings {
		assert.Contains(t, russian.Strings, key)
		assert.Contains(t, french.Strings, key)
	}

	missing, err := uc.FindByLanguage(context.Background(), constvars.LanguageArabic, constvars.LocaleScopeUI)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
