package utils

import (
	"intake-report-service/internal/pkg/dto/requests"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterStructValidation(validateGenerateReport, requests.GenerateReport{})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateGenerateReport enforces the first-visit fields the intake form
// requires before submitting: a visit date and a day count. The optional
// second visit stays unconstrained here; an empty one is treated as absent
// downstream.
func validateGenerateReport(sl validator.StructLevel) {
	request := sl.Current().Interface().(requests.GenerateReport)

	if request.FirstVisit.VisitDate == "" {
		sl.ReportError(request.FirstVisit.VisitDate, "firstVisit.visitDate", "FirstVisit.VisitDate", "required", "")
	}
	if request.FirstVisit.VisitDays == nil {
		sl.ReportError(request.FirstVisit.VisitDays, "firstVisit.visitDays", "FirstVisit.VisitDays", "required", "")
	}
}
