package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Report messages
	GenerateReportSuccessMessage = "report generated successfully"

	// Option set messages
	GetOptionSetsSuccessMessage = "get option sets successfully"

	// Locale messages
	GetLocaleBundleSuccessMessage = "get locale bundle successfully"
)
