package optionSets

import (
	"intake-report-service/internal/app/models"
	"intake-report-service/internal/pkg/constvars"
)

// DefaultOptionSets returns the seed data for the coded values the intake
// form sends. The seeder and the usecase bootstrap both rely on it, so a
// fresh database always resolves the labels documents are built with.
func DefaultOptionSets() []models.OptionSet {
	return []models.OptionSet{
		{
			Kind:     constvars.OptionKindCurrencies,
			Language: constvars.LanguageEnglish,
			Options: []models.Option{
				{Code: "EUR", Label: "Euro (€)"},
				{Code: "USD", Label: "US Dollar ($)"},
				{Code: "GBP", Label: "British Pound (£)"},
				{Code: "CAD", Label: "Canadian Dollar (C$)"},
			},
		},
		{
			Kind:     constvars.OptionKindLanguages,
			Language: constvars.LanguageEnglish,
			Options: []models.Option{
				{Code: "arabic", Label: "Arabic"},
				{Code: "english", Label: "English"},
				{Code: "french", Label: "French"},
				{Code: "spanish", Label: "Spanish"},
				{Code: "turkish", Label: "Turkish"},
				{Code: "russian", Label: "Russian"},
				{Code: "other", Label: "Other"},
			},
		},
		{
			Kind:     constvars.OptionKindHealthConditions,
			Language: constvars.LanguageEnglish,
			Options: []models.Option{
				{Code: "good", Label: "Good"},
				{Code: "requires_report", Label: "Requires medical report"},
			},
		},
		{
			Kind:     constvars.OptionKindServices,
			Language: constvars.LanguageEnglish,
			Options: []models.Option{
				{Code: "dental", Label: "Dental"},
				{Code: "hollywood_smile", Label: "Hollywood Smile"},
				{Code: "dental_implant", Label: "Dental Implant"},
				{Code: "zirconium_crown", Label: "Zirconium Crown"},
				{Code: "open_sinus_lift", Label: "Open Sinus Lift"},
				{Code: "close_sinus_lift", Label: "Close Sinus Lift"},
				{Code: "veneer_lens", Label: "Veneer Lens"},
				{Code: "hotel_accommodation", Label: "Hotel Accommodation"},
				{Code: "transport", Label: "Transport"},
			},
		},
		{
			Kind:     constvars.OptionKindCurrencies,
			Language: constvars.LanguageArabic,
			Options: []models.Option{
				{Code: "EUR", Label: "يورو (€)"},
				{Code: "USD", Label: "دولار أمريكي ($)"},
				{Code: "GBP", Label: "جنيه إسترليني (£)"},
				{Code: "CAD", Label: "دولار كندي (C$)"},
			},
		},
		{
			Kind:     constvars.OptionKindLanguages,
			Language: constvars.LanguageArabic,
			Options: []models.Option{
				{Code: "arabic", Label: "العربية"},
				{Code: "english", Label: "الإنجليزية"},
				{Code: "french", Label: "الفرنسية"},
				{Code: "spanish", Label: "الإسبانية"},
				{Code: "turkish", Label: "التركية"},
				{Code: "russian", Label: "الروسية"},
				{Code: "other", Label: "أخرى"},
			},
		},
		{
			Kind:     constvars.OptionKindHealthConditions,
			Language: constvars.LanguageArabic,
			Options: []models.Option{
				{Code: "good", Label: "جيدة"},
				{Code: "requires_report", Label: "يتطلب تقريرًا طبيًا"},
			},
		},
		{
			Kind:     constvars.OptionKindServices,
			Language: constvars.LanguageArabic,
			Options: []models.Option{
				{Code: "dental", Label: "علاج الأسنان"},
				{Code: "hollywood_smile", Label: "ابتسامة هوليود"},
				{Code: "dental_implant", Label: "زراعة الأسنان"},
				{Code: "zirconium_crown", Label: "تاج الزيركون"},
				{Code: "open_sinus_lift", Label: "رفع الجيوب المفتوح"},
				{Code: "close_sinus_lift", Label: "رفع الجيوب المغلق"},
				{Code: "veneer_lens", Label: "عدسات الفينير"},
				{Code: "hotel_accommodation", Label: "الإقامة الفندقية"},
				{Code: "transport", Label: "النقل"},
			},
		},
	}
}
