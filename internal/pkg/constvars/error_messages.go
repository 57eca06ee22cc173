package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"notblank": "must not be blank",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"len":      "must be %s characters long",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"url":      "must be a valid URL",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientInvalidUploadFormat           = "the file you uploaded does not meet the specified standards"
	ErrClientAllFieldsRequired             = "All fields are required"
	ErrClientHospitalNotFound              = "Hospital not found"
	ErrClientRequestTooLarge               = "the request body is too large"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseTime          = "cannot parse time into the given format"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevInvalidFormat            = "invalid %s format"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevDocumentNotFound         = "document not found"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevServerProcess            = "server failed to process the request"
	ErrDevRequestBodyTooLarge      = "request body exceeds %d bytes"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"
	ErrDevUploadValidationFailed     = "upload validation failed for field %s"
	ErrDevMissingRequiredFields      = "missing required fields"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"

	// Database messages
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBStringNotObjectID        = "string is not a valid ObjectID"

	// Storage messages
	ErrDevStorageFailedToCreateFolder = "failed to create upload folder %s"
	ErrDevStorageFailedToWriteFile    = "failed to write uploaded file into %s"
	ErrDevMinioFailedToCreateObject   = "failed to create object on minio bucket %s"

	// Redis messages
	ErrDevRedisGetNoData = "failed to get data from redis with key %s"
	ErrDevRedisSetData   = "failed to set data into redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into rabbitmq queue %s"
)
