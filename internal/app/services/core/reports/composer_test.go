package reports

import (
	"context"
	"intake-report-service/internal/app/models"
	"intake-report-service/internal/app/services/core/locales"
	optionSets "intake-report-service/internal/app/services/core/option_sets"
	"intake-report-service/internal/pkg/constvars"
	"intake-report-service/internal/pkg/dto/requests"
	"intake-report-service/internal/pkg/dto/responses"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOptionSets resolves labels straight from the seed data, without the
// redis and mongo plumbing.
type stubOptionSets struct {
	sets []models.OptionSet
}

func newStubOptionSets() *stubOptionSets {
	return &stubOptionSets{sets: optionSets.DefaultOptionSets()}
}

func (s *stubOptionSets) FindByKind(_ context.Context, kind, language string) (*responses.OptionSet, error) {
	for _, set := range s.sets {
		if set.Kind == kind && set.Language == language {
			response := set.ConvertIntoResponse()
			return &response, nil
		}
	}
	return nil, nil
}

func (s *stubOptionSets) ResolveLabel(_ context.Context, kind, language, code string) string {
	for _, set := range s.sets {
		if set.Kind == kind && set.Language == language {
			return models.MapLabel(set.Options, code)
		}
	}
	for _, set := range s.sets {
		if set.Kind == kind && set.Language == constvars.DefaultPDFLanguage {
			return models.MapLabel(set.Options, code)
		}
	}
	return code
}

type stubLocales struct {
	bundles []models.LocaleBundle
}

func newStubLocales() *stubLocales {
	return &stubLocales{bundles: locales.DefaultLocaleBundles()}
}

func (s *stubLocales) find(language, scope string) *models.LocaleBundle {
	for i := range s.bundles {
		if s.bundles[i].Language == language && s.bundles[i].Scope == scope {
			return &s.bundles[i]
		}
	}
	return nil
}

func (s *stubLocales) FindByLanguage(_ context.Context, language, scope string) (*responses.LocaleBundle, error) {
	bundle := s.find(language, scope)
	if bundle == nil {
		return nil, nil
	}
	response := bundle.ConvertIntoResponse()
	return &response, nil
}

func (s *stubLocales) Resolve(_ context.Context, language, key string) string {
	if bundle := s.find(language, constvars.LocaleScopePDF); bundle != nil {
		if value, ok := bundle.Strings[key]; ok {
			return value
		}
	}
	if bundle := s.find(constvars.DefaultPDFLanguage, constvars.LocaleScopePDF); bundle != nil {
		if value, ok := bundle.Strings[key]; ok {
			return value
		}
	}
	return key
}

func (s *stubLocales) AboutClinic(_ context.Context, language string) string {
	if bundle := s.find(language, constvars.LocaleScopePDF); bundle != nil && bundle.AboutClinic != "" {
		return bundle.AboutClinic
	}
	if bundle := s.find(constvars.DefaultPDFLanguage, constvars.LocaleScopePDF); bundle != nil {
		return bundle.AboutClinic
	}
	return ""
}

func newTestComposer() *Composer {
	return NewComposer(newStubOptionSets(), newStubLocales())
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func fullRequest() *requests.GenerateReport {
	return &requests.GenerateReport{
		ConsultantName:  "Dr. Yilmaz",
		PatientName:     "John Carter",
		PhoneNumber:     "+441234567890",
		PatientID:       "P-1042",
		EntryDate:       "2026-08-20",
		Age:             "34",
		Currency:        "EUR",
		Language:        "english",
		HealthCondition: "good",
		Services:        "hollywood_smile",
		FirstVisit: requests.Visit{
			VisitDate: "2026-08-21",
			VisitDays: intPtr(3),
			ServiceEntries: []requests.ServiceEntry{
				{ServiceName: "dental_implant", ServiceType: "surgery", Price: floatPtr(100), Quantity: floatPtr(2)},
			},
		},
		SecondVisit: &requests.Visit{
			VisitDate: "2026-09-02",
			ServiceEntries: []requests.ServiceEntry{
				{ServiceName: "transport", Price: floatPtr(50), Quantity: floatPtr(1)},
			},
		},
		MedicalTreatmentPlan: "Implant placement, healing phase of three months.",
		MedicalNotes:         "Patient reports no allergies.",
	}
}

func blockTypes(doc *Document) []string {
	types := make([]string, len(doc.Blocks))
	for i, b := range doc.Blocks {
		switch b.(type) {
		case Heading:
			types[i] = "heading"
		case TopBanner:
			types[i] = "topBanner"
		case PageBreak:
			types[i] = "pageBreak"
		case Divider:
			types[i] = "divider"
		case KeyValueBox:
			types[i] = "keyValueBox"
		case TableBox:
			types[i] = "tableBox"
		case TotalLine:
			types[i] = "totalLine"
		case NoteBox:
			types[i] = "noteBox"
		case GalleryBox:
			types[i] = "galleryBox"
		}
	}
	return types
}

func TestComposeSectionOrder(t *testing.T) {
	doc := newTestComposer().Compose(context.Background(), fullRequest(), [][]byte{[]byte("img")})

	assert.Equal(t, []string{
		"heading",
		"topBanner",
		"keyValueBox", // personal information
		"pageBreak",
		"keyValueBox", // first visit
		"tableBox",    // first services
		"keyValueBox", // second visit
		"tableBox",    // second services
		"totalLine",
		"noteBox", // treatment plan
		"divider",
		"noteBox", // medical notes
		"noteBox", // about the clinic
		"galleryBox",
	}, blockTypes(doc))

	assert.Equal(t, "Medical Form Report", doc.Title)
	assert.Equal(t, DirectionLTR, doc.Direction)
	assert.Equal(t, constvars.ReportFileName, doc.FileName)
}

func TestComposeOmitsEmptySecondVisit(t *testing.T) {
	request := fullRequest()
	request.SecondVisit = nil
	doc := newTestComposer().Compose(context.Background(), request, nil)

	types := blockTypes(doc)
	assert.NotContains(t, types[4:], "pageBreak")
	keyValueCount := 0
	for _, typ := range types {
		if typ == "keyValueBox" {
			keyValueCount++
		}
	}
	assert.Equal(t, 2, keyValueCount, "personal info and first visit only")

	// A present but fully empty second visit counts as absent too.
	request.SecondVisit = &requests.Visit{ServiceEntries: []requests.ServiceEntry{{}}}
	doc = newTestComposer().Compose(context.Background(), request, nil)
	assert.Equal(t, types, blockTypes(doc))
}

func findTotalLine(t *testing.T, doc *Document) TotalLine {
	t.Helper()
	for _, b := range doc.Blocks {
		if total, ok := b.(TotalLine); ok {
			return total
		}
	}
	t.Fatal("no total line in document")
	return TotalLine{}
}

func TestGrandTotalSumsBothVisits(t *testing.T) {
	doc := newTestComposer().Compose(context.Background(), fullRequest(), nil)

	// 100 x 2 from the first visit plus 50 x 1 from the second.
	assert.Equal(t, "250 EUR", findTotalLine(t, doc).Value)
	assert.Equal(t, "Grand Total", findTotalLine(t, doc).Label)
}

func TestGrandTotalIgnoresSkippedSecondVisit(t *testing.T) {
	request := fullRequest()
	request.SecondVisit = nil
	doc := newTestComposer().Compose(context.Background(), request, nil)

	assert.Equal(t, "200 EUR", findTotalLine(t, doc).Value)
}

func findTables(doc *Document) []TableBox {
	var tables []TableBox
	for _, b := range doc.Blocks {
		if table, ok := b.(TableBox); ok {
			tables = append(tables, table)
		}
	}
	return tables
}

func TestServiceRowPlaceholders(t *testing.T) {
	request := fullRequest()
	request.SecondVisit = nil
	request.FirstVisit.ServiceEntries = []requests.ServiceEntry{
		{ServiceName: "dental", Price: floatPtr(80)},             // no quantity
		{ServiceName: "transport", Quantity: floatPtr(2)},        // no price
		{ServiceName: "veneer_lens", Price: floatPtr(0), Quantity: floatPtr(3)},
	}
	doc := newTestComposer().Compose(context.Background(), request, nil)

	tables := findTables(doc)
	require.Len(t, tables, 1)
	rows := tables[0].Rows
	require.Len(t, rows, 3)

	// Missing price or quantity yields the placeholder total, never zero.
	assert.Equal(t, []string{"Dental", "-", "80 EUR", "-", "-"}, rows[0])
	assert.Equal(t, []string{"Transport", "-", "-", "2", "-"}, rows[1])

	// An explicit zero price is a real value: the total computes to zero.
	assert.Equal(t, []string{"Veneer Lens", "-", "0 EUR", "3", "0 EUR"}, rows[2])

	// The zero-price entry contributes zero; the incomplete ones nothing.
	assert.Equal(t, "0 EUR", findTotalLine(t, doc).Value)
}

func TestPersonalInfoMapsOptionLabels(t *testing.T) {
	doc := newTestComposer().Compose(context.Background(), fullRequest(), nil)

	personal, ok := doc.Blocks[2].(KeyValueBox)
	require.True(t, ok)
	assert.Equal(t, "Personal Information", personal.Title)

	var pairs []Pair
	for _, row := range personal.Rows {
		pairs = append(pairs, row...)
	}
	byLabel := make(map[string]string, len(pairs))
	for _, p := range pairs {
		byLabel[p.Label] = p.Value
	}

	assert.Equal(t, "Euro (€)", byLabel["Currency"])
	assert.Equal(t, "English", byLabel["Language"])
	assert.Equal(t, "Good", byLabel["Health Condition"])
	assert.Equal(t, "Hollywood Smile", byLabel["Services"])
}

func TestUnknownOptionCodePassesThrough(t *testing.T) {
	request := fullRequest()
	request.Services = "cryotherapy"
	doc := newTestComposer().Compose(context.Background(), request, nil)

	personal := doc.Blocks[2].(KeyValueBox)
	found := false
	for _, row := range personal.Rows {
		for _, p := range row {
			if p.Label == "Services" {
				assert.Equal(t, "cryotherapy", p.Value)
				found = true
			}
		}
	}
	assert.True(t, found)
}

func TestEmptyFieldsBecomePlaceholders(t *testing.T) {
	request := fullRequest()
	request.PhoneNumber = ""
	request.Age = ""
	doc := newTestComposer().Compose(context.Background(), request, nil)

	personal := doc.Blocks[2].(KeyValueBox)
	placeholders := 0
	for _, row := range personal.Rows {
		for _, p := range row {
			if p.Value == "-" {
				placeholders++
			}
		}
	}
	assert.Equal(t, 2, placeholders)
}

func TestComposeSkipsEmptyNotesKeepsDividerAndAbout(t *testing.T) {
	request := fullRequest()
	request.MedicalTreatmentPlan = ""
	request.MedicalNotes = ""
	doc := newTestComposer().Compose(context.Background(), request, nil)

	var notes []NoteBox
	dividers := 0
	for _, b := range doc.Blocks {
		switch v := b.(type) {
		case NoteBox:
			notes = append(notes, v)
		case Divider:
			dividers++
		}
	}
	require.Len(t, notes, 1, "only the about-clinic box remains")
	assert.True(t, notes[0].Boxed)
	assert.Equal(t, "About the Clinic", notes[0].Title)
	assert.Contains(t, notes[0].Text, "DENTAL CLINIC")
	assert.Equal(t, 1, dividers)
}

func TestGalleryCappedAtFourImages(t *testing.T) {
	images := [][]byte{{1}, {2}, {3}, {4}, {5}, {6}}
	doc := newTestComposer().Compose(context.Background(), fullRequest(), images)

	var gallery *GalleryBox
	for _, b := range doc.Blocks {
		if g, ok := b.(GalleryBox); ok {
			gallery = &g
		}
	}
	require.NotNil(t, gallery)
	assert.Len(t, gallery.Images, 4)
	assert.True(t, gallery.WithBottomBanner)
	assert.Equal(t, "Uploaded Images", gallery.Title)
}

func TestComposeWithoutImagesHasNoGallery(t *testing.T) {
	doc := newTestComposer().Compose(context.Background(), fullRequest(), nil)
	assert.NotContains(t, blockTypes(doc), "galleryBox")
}

func TestComposeRussianUsesTranslatedStrings(t *testing.T) {
	request := fullRequest()
	request.PDFLanguage = constvars.LanguageRussian
	doc := newTestComposer().Compose(context.Background(), request, nil)

	assert.Equal(t, "Отчет медицинской формы", doc.Title)
	assert.Equal(t, DirectionLTR, doc.Direction)
	assert.Equal(t, constvars.ReportFileName, doc.FileName)
	assert.Equal(t, "Общий итог", findTotalLine(t, doc).Label)
}

func TestComposeArabicDocument(t *testing.T) {
	request := fullRequest()
	request.PDFLanguage = constvars.LanguageArabic
	doc := newTestComposer().Compose(context.Background(), request, nil)

	assert.Equal(t, DirectionRTL, doc.Direction)
	assert.Equal(t, constvars.ReportFileNameArabic, doc.FileName)

	// The title comes out word-reversed for the LTR layout engine.
	assert.Equal(t, locales.ReverseRTLWords("تقرير النموذج الطبي"), doc.Title)

	// Table columns run right to left: the total column leads.
	tables := findTables(doc)
	require.NotEmpty(t, tables)
	assert.Equal(t, locales.ReverseRTLWords("الإجمالي"), tables[0].Headers[0])
	assert.Equal(t, []float64{60, 55, 55, 0, 0}, tables[0].Widths)

	// Option labels resolve from the Arabic set and get the same word fixup.
	personal := doc.Blocks[2].(KeyValueBox)
	var currencyValue string
	for _, row := range personal.Rows {
		for _, p := range row {
			if p.Label == locales.ReverseRTLWords("العملة") {
				currencyValue = p.Value
			}
		}
	}
	assert.Equal(t, locales.ReverseRTLWords("يورو (€)"), currencyValue)
}

func TestComposeDefaultsToEnglish(t *testing.T) {
	request := fullRequest()
	request.PDFLanguage = ""
	doc := newTestComposer().Compose(context.Background(), request, nil)

	assert.Equal(t, "Medical Form Report", doc.Title)
	assert.Equal(t, constvars.LanguageEnglish, doc.Language)
}
