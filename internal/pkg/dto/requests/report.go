package requests

// GenerateReport is the validated form payload produced by the intake form
// flow. The PDF pipeline consumes it read-only; every optional field degrades
// to a placeholder in the rendered document instead of failing the build.
type GenerateReport struct {
	ConsultantName  string `json:"consultantName" validate:"required"`
	PatientName     string `json:"patientName" validate:"required"`
	PhoneNumber     string `json:"phoneNumber"`
	PatientID       string `json:"patientId"`
	EntryDate       string `json:"entryDate"`
	Age             string `json:"age"`
	Currency        string `json:"currency"`
	Language        string `json:"language"`
	HealthCondition string `json:"healthCondition"`
	Services        string `json:"services"`

	FirstVisit Visit `json:"firstVisit"`
	// SecondVisit is optional end to end. A nil pointer means the form never
	// enabled it; a present but fully empty value is treated as absent too.
	SecondVisit *Visit `json:"secondVisit,omitempty"`

	// UploadedImages are base64-encoded image payloads (jpg/jpeg/png), capped
	// by the form at upload time. The pipeline renders at most four of them.
	UploadedImages []string `json:"uploadedImages" validate:"omitempty,max=12,dive,base64"`

	MedicalTreatmentPlan string `json:"medicalTreatmentPlan"`
	MedicalNotes         string `json:"medicalNotes"`

	// PDFLanguage selects the output locale of the document, independent from
	// the form's own interaction locale.
	PDFLanguage string `json:"pdfLanguage" validate:"omitempty,oneof=en ru fr ar"`
}

type Visit struct {
	VisitDate      string         `json:"visitDate"`
	VisitDays      *int           `json:"visitDays" validate:"omitnil,gt=0"`
	ServiceEntries []ServiceEntry `json:"serviceEntries"`
}

// ServiceEntry keeps price and quantity as pointers so an absent value stays
// distinguishable from an explicit zero.
type ServiceEntry struct {
	ServiceName string   `json:"serviceName"`
	ServiceType string   `json:"serviceType"`
	Price       *float64 `json:"price"`
	Quantity    *float64 `json:"quantity"`
}

// HasData reports whether the visit carries any populated field. It decides
// whether the optional second visit appears in the document at all.
func (v *Visit) HasData() bool {
	if v == nil {
		return false
	}
	if v.VisitDate != "" || v.VisitDays != nil {
		return true
	}
	for _, entry := range v.ServiceEntries {
		if entry.ServiceName != "" || entry.ServiceType != "" || entry.Price != nil || entry.Quantity != nil {
			return true
		}
	}
	return false
}

// LineTotal returns price multiplied by quantity. The boolean is false when
// either side is absent; callers render a placeholder in that case, never zero.
func (e ServiceEntry) LineTotal() (float64, bool) {
	if e.Price == nil || e.Quantity == nil {
		return 0, false
	}
	return *e.Price * *e.Quantity, true
}
