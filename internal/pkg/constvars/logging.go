package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingResponseLengthKey = "response_length"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"

	LoggingAppointmentStatusKey = "appointment_status"
	LoggingUploadPathKey        = "upload_path"
	LoggingCacheKey             = "cache_key"
	LoggingQueueKey             = "queue"
	LoggingEventTypeKey         = "event_type"
	LoggingHospitalIDKey        = "hospital_id"
	LoggingServicesKey          = "services"
)
