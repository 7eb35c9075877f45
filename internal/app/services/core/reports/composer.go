package reports

import (
	"context"
	"intake-report-service/internal/app/contracts"
	"intake-report-service/internal/app/services/core/locales"
	"intake-report-service/internal/pkg/constvars"
	"intake-report-service/internal/pkg/dto/requests"
	"strconv"
)

// Composer turns a validated form payload into a Document. All text that
// reaches the page goes through it: locale strings, option labels, the RTL
// word-order fixup, and empty-value placeholders.
type Composer struct {
	OptionSets contracts.OptionSetUsecase
	Locales    contracts.LocaleUsecase
}

func NewComposer(optionSetUsecase contracts.OptionSetUsecase, localeUsecase contracts.LocaleUsecase) *Composer {
	return &Composer{
		OptionSets: optionSetUsecase,
		Locales:    localeUsecase,
	}
}

// Compose assembles the full document in its fixed section order. The
// galleryImages are already-cropped square PNGs; at most four make it onto
// the page.
func (c *Composer) Compose(ctx context.Context, request *requests.GenerateReport, galleryImages [][]byte) *Document {
	language := request.PDFLanguage
	if language == "" {
		language = constvars.DefaultPDFLanguage
	}

	state := &composeState{
		ctx:      ctx,
		composer: c,
		language: language,
		rtl:      language == constvars.LanguageArabic,
	}

	direction := DirectionLTR
	fileName := constvars.ReportFileName
	if state.rtl {
		direction = DirectionRTL
		fileName = constvars.ReportFileNameArabic
	}

	doc := &Document{
		Title:     state.t(locales.KeyMedicalFormReport),
		Language:  language,
		Direction: direction,
		FileName:  fileName,
	}

	doc.Blocks = append(doc.Blocks,
		Heading{Text: doc.Title},
		TopBanner{},
		state.personalInfoBox(request),
		PageBreak{},
		state.visitInfoBox(locales.KeyFirstVisitInformation, &request.FirstVisit),
		state.servicesBox(locales.KeyFirstVisitServiceEntries, request.FirstVisit.ServiceEntries, request.Currency),
	)

	grandTotal := sumLineTotals(request.FirstVisit.ServiceEntries)
	if request.SecondVisit.HasData() {
		doc.Blocks = append(doc.Blocks,
			state.visitInfoBox(locales.KeySecondVisitInformation, request.SecondVisit),
			state.servicesBox(locales.KeySecondVisitServiceEntries, request.SecondVisit.ServiceEntries, request.Currency),
		)
		grandTotal += sumLineTotals(request.SecondVisit.ServiceEntries)
	}

	doc.Blocks = append(doc.Blocks, TotalLine{
		Label: state.t(locales.KeyGrandTotal),
		Value: formatAmount(grandTotal) + " " + request.Currency,
	})

	if request.MedicalTreatmentPlan != "" {
		doc.Blocks = append(doc.Blocks, NoteBox{
			Title: state.t(locales.KeyMedicalTreatmentPlan),
			Text:  state.val(request.MedicalTreatmentPlan),
		})
	}

	doc.Blocks = append(doc.Blocks, Divider{})

	if request.MedicalNotes != "" {
		doc.Blocks = append(doc.Blocks, NoteBox{
			Title: state.t(locales.KeyMedicalNotes),
			Text:  state.val(request.MedicalNotes),
		})
	}

	doc.Blocks = append(doc.Blocks, NoteBox{
		Title: state.t(locales.KeyAboutTheClinic),
		Text:  state.val(c.Locales.AboutClinic(ctx, language)),
		Boxed: true,
	})

	if len(galleryImages) > 0 {
		images := galleryImages
		if len(images) > GalleryMaxImages {
			images = images[:GalleryMaxImages]
		}
		doc.Blocks = append(doc.Blocks, GalleryBox{
			Title:            state.t(locales.KeyUploadedImages),
			Images:           images,
			WithBottomBanner: true,
		})
	}

	return doc
}

// composeState binds text resolution to one document build.
type composeState struct {
	ctx      context.Context
	composer *Composer
	language string
	rtl      bool
}

// t resolves a locale key for the document language.
func (s *composeState) t(key string) string {
	text := s.composer.Locales.Resolve(s.ctx, s.language, key)
	if s.rtl {
		text = locales.ReverseRTLWords(text)
	}
	return text
}

// val turns a raw form value into printable cell text. Empty values become
// the "-" placeholder, Arabic values get their word order fixed.
func (s *composeState) val(raw string) string {
	if raw == "" {
		return "-"
	}
	if s.rtl {
		return locales.ReverseRTLWords(raw)
	}
	return raw
}

// optLabel resolves a coded option value to its display label, then treats
// it like any other value.
func (s *composeState) optLabel(kind, code string) string {
	label := s.composer.OptionSets.ResolveLabel(s.ctx, kind, s.language, code)
	return s.val(label)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// sumLineTotals adds up the computable line totals; entries with a missing
// price or quantity contribute nothing.
func sumLineTotals(entries []requests.ServiceEntry) float64 {
	var sum float64
	for _, entry := range entries {
		if total, ok := entry.LineTotal(); ok {
			sum += total
		}
	}
	return sum
}
