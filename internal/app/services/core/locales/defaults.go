package locales

import (
	"intake-report-service/internal/app/models"
	"intake-report-service/internal/pkg/constvars"
)

// DefaultLocaleBundles returns the seed translations for the document
// pipeline and the form client. Like the option sets, these load into a
// fresh database on first start.
func DefaultLocaleBundles() []models.LocaleBundle {
	return []models.LocaleBundle{
		{
			Language: constvars.LanguageEnglish,
			Scope:    constvars.LocaleScopePDF,
			Strings: map[string]string{
				KeyMedicalFormReport:         "Medical Form Report",
				KeyPersonalInformation:       "Personal Information",
				KeyConsultantName:            "Consultant Name",
				KeyPatientName:               "Patient Name",
				KeyPhoneNumber:               "Phone Number",
				KeyPatientID:                 "Patient ID",
				KeyEntryDate:                 "Entry Date",
				KeyAge:                       "Age",
				KeyCurrency:                  "Currency",
				KeyLanguage:                  "Language",
				KeyHealthCondition:           "Health Condition",
				KeyServices:                  "Services",
				KeyFirstVisitInformation:     "First Visit Information",
				KeySecondVisitInformation:    "Second Visit Information",
				KeyVisitDate:                 "Visit Date",
				KeyVisitDays:                 "Visit Days",
				KeyFirstVisitServiceEntries:  "First Visit Service Entries",
				KeySecondVisitServiceEntries: "Second Visit Service Entries",
				KeyServiceName:               "Service Name",
				KeyServiceType:               "Service Type",
				KeyPrice:                     "Price",
				KeyQuantity:                  "Quantity",
				KeyTotal:                     "Total",
				KeyGrandTotal:                "Grand Total",
				KeyMedicalTreatmentPlan:      "Medical Treatment Plan",
				KeyMedicalNotes:              "Medical Notes",
				KeyAboutTheClinic:            "About the Clinic",
				KeyUploadedImages:            "Uploaded Images",
			},
			AboutClinic: "At DENTAL CLINIC, we are committed to providing the highest standards of quality, expertise, and healthcare, delivered by the most experienced medical and administrative staff. We offer cosmetic medical services by a team of the best doctors in the field of aesthetic medicine in Turkey.",
		},
		{
			Language: constvars.LanguageRussian,
			Scope:    constvars.LocaleScopePDF,
			Strings: map[string]string{
				KeyMedicalFormReport:         "Отчет медицинской формы",
				KeyPersonalInformation:       "Личная информация",
				KeyConsultantName:            "Имя консультанта",
				KeyPatientName:               "Имя пациента",
				KeyPhoneNumber:               "Номер телефона",
				KeyPatientID:                 "ID пациента",
				KeyEntryDate:                 "Дата поступления",
				KeyAge:                       "Возраст",
				KeyCurrency:                  "Валюта",
				KeyLanguage:                  "Язык",
				KeyHealthCondition:           "Состояние здоровья",
				KeyServices:                  "Услуги",
				KeyFirstVisitInformation:     "Информация о первом визите",
				KeySecondVisitInformation:    "Информация о втором визите",
				KeyVisitDate:                 "Дата визита",
				KeyVisitDays:                 "Дни визита",
				KeyFirstVisitServiceEntries:  "Записи услуг первого визита",
				KeySecondVisitServiceEntries: "Записи услуг второго визита",
				KeyServiceName:               "Название услуги",
				KeyServiceType:               "Тип услуги",
				KeyPrice:                     "Цена",
				KeyQuantity:                  "Количество",
				KeyTotal:                     "Итого",
				KeyGrandTotal:                "Общий итог",
				KeyMedicalTreatmentPlan:      "План медицинского лечения",
				KeyMedicalNotes:              "Медицинские заметки",
				KeyAboutTheClinic:            "О клинике",
				KeyUploadedImages:            "Загруженные изображения",
			},
			AboutClinic: "В СТОМАТОЛОГИЧЕСКОЙ КЛИНИКЕ мы стремимся предоставить высочайшие стандарты качества, экспертизы и здравоохранения, предоставляемые самым опытным медицинским и административным персоналом. Мы предлагаем косметические медицинские услуги командой лучших врачей в области эстетической медицины в Турции.",
		},
		{
			Language: constvars.LanguageFrench,
			Scope:    constvars.LocaleScopePDF,
			Strings: map[string]string{
				KeyMedicalFormReport:         "Rapport de formulaire médical",
				KeyPersonalInformation:       "Informations personnelles",
				KeyConsultantName:            "Nom du consultant",
				KeyPatientName:               "Nom du patient",
				KeyPhoneNumber:               "Numéro de téléphone",
				KeyPatientID:                 "ID du patient",
				KeyEntryDate:                 "Date d'entrée",
				KeyAge:                       "Âge",
				KeyCurrency:                  "Devise",
				KeyLanguage:                  "Langue",
				KeyHealthCondition:           "État de santé",
				KeyServices:                  "Services",
				KeyFirstVisitInformation:     "Informations sur la première visite",
				KeySecondVisitInformation:    "Informations sur la deuxième visite",
				KeyVisitDate:                 "Date de visite",
				KeyVisitDays:                 "Jours de visite",
				KeyFirstVisitServiceEntries:  "Entrées de service de la première visite",
				KeySecondVisitServiceEntries: "Entrées de service de la deuxième visite",
				KeyServiceName:               "Nom du service",
				KeyServiceType:               "Type de service",
				KeyPrice:                     "Prix",
				KeyQuantity:                  "Quantité",
				KeyTotal:                     "Total",
				KeyGrandTotal:                "Total général",
				KeyMedicalTreatmentPlan:      "Plan de traitement médical",
				KeyMedicalNotes:              "Notes médicales",
				KeyAboutTheClinic:            "À propos de la clinique",
				KeyUploadedImages:            "Images téléchargées",
			},
			AboutClinic: "À la CLINIQUE DENTAIRE, nous nous engageons à fournir les plus hauts standards de qualité, d'expertise et de soins de santé, dispensés par le personnel médical et administratif le plus expérimenté. Nous offrons des services médicaux cosmétiques par une équipe des meilleurs médecins dans le domaine de la médecine esthétique en Turquie.",
		},
		{
			Language: constvars.LanguageArabic,
			Scope:    constvars.LocaleScopePDF,
			Strings: map[string]string{
				KeyMedicalFormReport:         "تقرير النموذج الطبي",
				KeyPersonalInformation:       "المعلومات الشخصية",
				KeyConsultantName:            "اسم الاستشاري",
				KeyPatientName:               "اسم المريض",
				KeyPhoneNumber:               "رقم الهاتف",
				KeyPatientID:                 "رقم المريض",
				KeyEntryDate:                 "تاريخ الدخول",
				KeyAge:                       "العمر",
				KeyCurrency:                  "العملة",
				KeyLanguage:                  "اللغة",
				KeyHealthCondition:           "الحالة الصحية",
				KeyServices:                  "الخدمات",
				KeyFirstVisitInformation:     "معلومات الزيارة الأولى",
				KeySecondVisitInformation:    "معلومات الزيارة الثانية",
				KeyVisitDate:                 "تاريخ الزيارة",
				KeyVisitDays:                 "أيام الزيارة",
				KeyFirstVisitServiceEntries:  "خدمات الزيارة الأولى",
				KeySecondVisitServiceEntries: "خدمات الزيارة الثانية",
				KeyServiceName:               "اسم الخدمة",
				KeyServiceType:               "نوع الخدمة",
				KeyPrice:                     "السعر",
				KeyQuantity:                  "الكمية",
				KeyTotal:                     "الإجمالي",
				KeyGrandTotal:                "الإجمالي الكلي",
				KeyMedicalTreatmentPlan:      "خطة العلاج الطبية",
				KeyMedicalNotes:              "ملاحظات طبية",
				KeyAboutTheClinic:            "عن العيادة",
				KeyUploadedImages:            "الصور المرفوعة",
			},
			AboutClinic: "في عيادة الأسنان نلتزم بتقديم أعلى معايير الجودة والخبرة والرعاية الصحية على يد أمهر الكوادر الطبية والإدارية. نقدم خدمات طبية تجميلية بإشراف نخبة من أفضل الأطباء في مجال الطب التجميلي في تركيا.",
		},
		{
			Language: constvars.LanguageEnglish,
			Scope:    constvars.LocaleScopeUI,
			Strings: map[string]string{
				"formTitle":      "Patient Intake Form",
				"next":           "Next",
				"back":           "Back",
				"submit":         "Generate Report",
				"addService":     "Add Service",
				"removeService":  "Remove",
				"uploadImages":   "Upload Images",
				"generating":     "Generating your report...",
				"downloadLinkMessage": "Your report is ready. The link stays valid for a short time.",
			},
		},
		{
			Language: constvars.LanguageRussian,
			Scope:    constvars.LocaleScopeUI,
			Strings: map[string]string{
				"formTitle":      "Форма приёма пациента",
				"next":           "Далее",
				"back":           "Назад",
				"submit":         "Создать отчёт",
				"addService":     "Добавить услугу",
				"removeService":  "Удалить",
				"uploadImages":   "Загрузить изображения",
				"generating":     "Формируем ваш отчёт...",
				"downloadLinkMessage": "Ваш отчёт готов. Ссылка действительна в течение короткого времени.",
			},
		},
		{
			Language: constvars.LanguageFrench,
			Scope:    constvars.LocaleScopeUI,
			Strings: map[string]string{
				"formTitle":      "Formulaire d'admission du patient",
				"next":           "Suivant",
				"back":           "Retour",
				"submit":         "Générer le rapport",
				"addService":     "Ajouter un service",
				"removeService":  "Supprimer",
				"uploadImages":   "Télécharger des images",
				"generating":     "Génération de votre rapport...",
				"downloadLinkMessage": "Votre rapport est prêt. Le lien reste valide pendant une courte durée.",
			},
		},
	}
}
