package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "INTAKE_SVC_"
)

const (
	ResourceReports    = "reports"
	ResourceOptionSets = "option-sets"
	ResourceLocales    = "locales"
)

// Option set kinds, matching the codes used by the intake form.
const (
	OptionKindCurrencies       = "currencies"
	OptionKindLanguages        = "languages"
	OptionKindHealthConditions = "health_conditions"
	OptionKindServices         = "services"
)

// Locale bundle scopes. The "pdf" scope feeds the document pipeline,
// the "ui" scope serves interface-chrome strings to the form client.
const (
	LocaleScopePDF = "pdf"
	LocaleScopeUI  = "ui"
)

const (
	LanguageEnglish = "en"
	LanguageRussian = "ru"
	LanguageFrench  = "fr"
	LanguageArabic  = "ar"

	DefaultPDFLanguage = LanguageEnglish
)

const (
	MongoCollectionOptionSets    = "option_sets"
	MongoCollectionLocaleBundles = "locale_bundles"
)

const (
	RedisKeyOptionSetFormat    = "option_sets:%s:%s"
	RedisKeyLocaleBundleFormat = "locale_bundles:%s:%s"
)

const (
	ReportObjectNameFormat   = "reports/%s.pdf"
	ReportFileName           = "medical-report.pdf"
	ReportFileNameArabic     = "medical-report-arabic.pdf"
	ReportRateLimiterGroup   = "report-build"
	ReportGeneratedQueueName = "report_generated_queue"
)
