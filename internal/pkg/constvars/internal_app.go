package constvars

type ContextKey string

const (
	ServiceAppointments = "appointments"
	ServiceCampaigns    = "campaigns"
	ServiceHospitals    = "hospitals"
	ServiceVaccines     = "vaccines"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "HSPTL_SVC_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	StorageDriverDisk  = "disk"
	StorageDriverMinio = "minio"
)
