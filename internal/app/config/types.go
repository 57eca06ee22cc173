package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	InternalConfig struct {
		App      App
		Storage  Storage
		Cache    Cache
		RabbitMQ AppRabbitMQ
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		Timezone                   string
		Services                   []string
		MaxRequests                int
		ShutdownTimeout            int
		RequestTimeoutInSeconds    int
		RequestBodyLimitInMegabyte int
	}

	Storage struct {
		Driver                  string
		UploadRoot              string
		UploadMaxSizeInMegabyte int64
	}

	Cache struct {
		HospitalTTLInMinutes int
	}

	AppRabbitMQ struct {
		AppointmentQueue string
	}

	MongoDB struct {
		URI      string
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Enabled  bool
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Enabled  bool
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
)
