package locales

// String keys shared between the stored bundles and the document pipeline.
const (
	KeyMedicalFormReport         = "medicalFormReport"
	KeyPersonalInformation       = "personalInformation"
	KeyConsultantName            = "consultantName"
	KeyPatientName               = "patientName"
	KeyPhoneNumber               = "phoneNumber"
	KeyPatientID                 = "patientId"
	KeyEntryDate                 = "entryDate"
	KeyAge                       = "age"
	KeyCurrency                  = "currency"
	KeyLanguage                  = "language"
	KeyHealthCondition           = "healthCondition"
	KeyServices                  = "services"
	KeyFirstVisitInformation     = "firstVisitInformation"
	KeySecondVisitInformation    = "secondVisitInformation"
	KeyVisitDate                 = "visitDate"
	KeyVisitDays                 = "visitDays"
	KeyFirstVisitServiceEntries  = "firstVisitServiceEntries"
	KeySecondVisitServiceEntries = "secondVisitServiceEntries"
	KeyServiceName               = "serviceName"
	KeyServiceType               = "serviceType"
	KeyPrice                     = "price"
	KeyQuantity                  = "quantity"
	KeyTotal                     = "total"
	KeyGrandTotal                = "grandTotal"
	KeyMedicalTreatmentPlan      = "medicalTreatmentPlan"
	KeyMedicalNotes              = "medicalNotes"
	KeyAboutTheClinic            = "aboutTheClinic"
	KeyUploadedImages            = "uploadedImages"
)
