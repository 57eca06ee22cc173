package config

import (
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			URI:      utils.GetEnvString("MONGODB_URI", ""),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "127.0.0.1"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "HospitalDB_New02"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Enabled:  utils.GetEnvBool("REDIS_ENABLED", false),
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "uploads"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:      utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:     utils.GetEnvString("APP_PORT", ":5001"),
			Version:  utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:  utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone: utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			Services: utils.GetEnvStringSlice("APP_SERVICES", []string{
				constvars.ServiceAppointments,
				constvars.ServiceCampaigns,
				constvars.ServiceHospitals,
				constvars.ServiceVaccines,
			}),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 20),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 12),
		},
		Storage: Storage{
			Driver:                  utils.GetEnvString("STORAGE_DRIVER", constvars.StorageDriverDisk),
			UploadRoot:              utils.GetEnvString("APP_UPLOAD_ROOT", "uploads"),
			UploadMaxSizeInMegabyte: utils.GetEnvInt64("APP_UPLOAD_MAX_SIZE_IN_MB", 5),
		},
		Cache: Cache{
			HospitalTTLInMinutes: utils.GetEnvInt("APP_HOSPITAL_CACHE_TTL_IN_MINUTES", 10),
		},
		RabbitMQ: AppRabbitMQ{
			AppointmentQueue: utils.GetEnvString("APP_RABBITMQ_APPOINTMENT_QUEUE", "appointment_events"),
		},
	}
}

// ServiceEnabled reports whether the named service should be mounted by this process.
func (c *InternalConfig) ServiceEnabled(name string) bool {
	for _, service := range c.App.Services {
		if service == name {
			return true
		}
	}
	return false
}
