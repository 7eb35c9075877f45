package reports

import (
	"intake-report-service/internal/app/services/core/locales"
	"intake-report-service/internal/pkg/constvars"
	"intake-report-service/internal/pkg/dto/requests"
	"strconv"
)

// personalInfoBox lays the patient identity out as five rows of two
// label:value pairs, mirroring the intake form's own field grouping.
func (s *composeState) personalInfoBox(request *requests.GenerateReport) KeyValueBox {
	rows := [][]Pair{
		{
			{Label: s.t(locales.KeyConsultantName), Value: s.val(request.ConsultantName)},
			{Label: s.t(locales.KeyAge), Value: s.val(request.Age)},
		},
		{
			{Label: s.t(locales.KeyPatientName), Value: s.val(request.PatientName)},
			{Label: s.t(locales.KeyCurrency), Value: s.optLabel(constvars.OptionKindCurrencies, request.Currency)},
		},
		{
			{Label: s.t(locales.KeyPhoneNumber), Value: s.val(request.PhoneNumber)},
			{Label: s.t(locales.KeyLanguage), Value: s.optLabel(constvars.OptionKindLanguages, request.Language)},
		},
		{
			{Label: s.t(locales.KeyPatientID), Value: s.val(request.PatientID)},
			{Label: s.t(locales.KeyHealthCondition), Value: s.optLabel(constvars.OptionKindHealthConditions, request.HealthCondition)},
		},
		{
			{Label: s.t(locales.KeyEntryDate), Value: s.val(request.EntryDate)},
			{Label: s.t(locales.KeyServices), Value: s.optLabel(constvars.OptionKindServices, request.Services)},
		},
	}
	if s.rtl {
		for _, row := range rows {
			reversePairs(row)
		}
	}
	return KeyValueBox{
		Title: s.t(locales.KeyPersonalInformation),
		Rows:  rows,
	}
}

func (s *composeState) visitInfoBox(titleKey string, visit *requests.Visit) KeyValueBox {
	days := ""
	if visit.VisitDays != nil {
		days = strconv.Itoa(*visit.VisitDays)
	}
	row := []Pair{
		{Label: s.t(locales.KeyVisitDate), Value: s.val(visit.VisitDate)},
		{Label: s.t(locales.KeyVisitDays), Value: s.val(days)},
	}
	if s.rtl {
		reversePairs(row)
	}
	return KeyValueBox{
		Title: s.t(titleKey),
		Rows:  [][]Pair{row},
	}
}

// servicesBox builds the five-column service table. The price and total
// cells carry the currency code; a missing price or quantity renders as the
// placeholder, and the total is only computed when both sides are present.
func (s *composeState) servicesBox(titleKey string, entries []requests.ServiceEntry, currency string) TableBox {
	headers := []string{
		s.t(locales.KeyServiceName),
		s.t(locales.KeyServiceType),
		s.t(locales.KeyPrice),
		s.t(locales.KeyQuantity),
		s.t(locales.KeyTotal),
	}
	widths := []float64{0, 0, 55, 55, 60}

	rows := make([][]string, len(entries))
	for i, entry := range entries {
		price := "-"
		if entry.Price != nil {
			price = formatAmount(*entry.Price) + " " + currency
		}
		quantity := "-"
		if entry.Quantity != nil {
			quantity = formatAmount(*entry.Quantity)
		}
		total := "-"
		if lineTotal, ok := entry.LineTotal(); ok {
			total = formatAmount(lineTotal) + " " + currency
		}
		rows[i] = []string{
			s.optLabel(constvars.OptionKindServices, entry.ServiceName),
			s.val(entry.ServiceType),
			price,
			quantity,
			total,
		}
	}

	if s.rtl {
		reverseStrings(headers)
		reverseFloats(widths)
		for _, row := range rows {
			reverseStrings(row)
		}
	}

	return TableBox{
		Title:   s.t(titleKey),
		Headers: headers,
		Widths:  widths,
		Rows:    rows,
	}
}

func reversePairs(p []Pair) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

func reverseStrings(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseFloats(f []float64) {
	for i, j := 0, len(f)-1; i < j; i, j = i+1, j-1 {
		f[i], f[j] = f[j], f[i]
	}
}
