package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"base64":   "must be a valid base64 string",
	"dive":     "contains an invalid element",
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientReportGenerationFailed        = "failed to generate the report, please try again"
	ErrClientRequestBodyTooLarge           = "the request payload is too large"
	ErrClientTooManyRequests               = "too many report requests, please retry later"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"
	ErrClientResourceNotFound              = "the resource you requested does not exist"
)

// Error messages for developers
const (
	ErrDevInvalidInput      = "invalid input"
	ErrDevValidationFailed  = "request validation failed"
	ErrDevCannotParseJSON   = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON = "cannot convert struct or other data types to JSON"
	ErrDevCannotReadBody    = "cannot read request body"

	// Asset messages
	ErrDevAssetFontLoadFailed  = "failed to load required font asset '%s'"
	ErrDevAssetFetchFailed     = "failed to fetch asset from '%s'"
	ErrDevAssetFetchBadStatus  = "unexpected status %d fetching asset from '%s'"
	ErrDevAssetImageLoadFailed = "failed to load decorative image asset '%s'"

	// Rendering messages
	ErrDevPDFRenderFailed   = "pdf rendering engine reported a failure"
	ErrDevImageDecodeFailed = "failed to decode uploaded image"

	// Lookup messages
	ErrDevOptionSetNotFound    = "no option set stored for kind '%s' and language '%s'"
	ErrDevLocaleBundleNotFound = "no locale bundle stored for language '%s' and scope '%s'"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"

	// Minio messages
	ErrDevMinioFailedToCreateObject          = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"
	ErrDevMinioFailedToRemoveObject          = "failed to remove object from minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData        = "failed to SET data into redis"
	ErrDevRedisGetData        = "failed to GET data from redis"
	ErrDevRedisDeleteData     = "failed to DELETE data from redis"
	ErrDevRedisIncrementValue = "failed to INCR data in redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublishFailed = "failed to publish message to queue '%s'"

	// Server messages
	ErrDevServerInternalError    = "internal server error"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
)
