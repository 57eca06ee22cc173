package main

import (
	"context"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/app/delivery/http/routers"
	"hospital-service/internal/app/drivers/database"
	"hospital-service/internal/app/drivers/logger"
	"hospital-service/internal/app/drivers/messaging"
	storageDriver "hospital-service/internal/app/drivers/storage"
	"hospital-service/internal/app/services/core/appointments"
	"hospital-service/internal/app/services/core/campaigns"
	"hospital-service/internal/app/services/core/hospitals"
	"hospital-service/internal/app/services/core/vaccines"
	"hospital-service/internal/app/services/shared/eventqueue"
	"hospital-service/internal/app/services/shared/redis"
	"hospital-service/internal/app/services/shared/storage"
	"hospital-service/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        database.NewMongoDB(driverConfig, log),
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if driverConfig.Redis.Enabled {
		bootstrap.Redis = database.NewRedisClient(driverConfig, log)
	}
	if driverConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig, log)
	}
	if internalConfig.Storage.Driver == constvars.StorageDriverMinio {
		bootstrap.Minio = storageDriver.NewMinio(driverConfig, log)
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server started",
			zap.String("address", internalConfig.App.Address+internalConfig.App.Port),
			zap.Strings("services", internalConfig.App.Services),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Storage
	var uploadStorage contracts.Storage
	if bootstrap.Minio != nil {
		uploadStorage = storage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)
	} else {
		uploadStorage = storage.NewDiskStorage(internalConfig.Storage.UploadRoot)
	}

	// Redis
	var redisRepository contracts.RedisRepository
	if bootstrap.Redis != nil {
		redisRepository = redis.NewRedisRepository(bootstrap.Redis)
	}

	// RabbitMQ
	var eventPublisher contracts.EventPublisher
	if bootstrap.RabbitMQ != nil {
		publisher, err := eventqueue.NewService(bootstrap.RabbitMQ, internalConfig.RabbitMQ.AppointmentQueue, log)
		if err != nil {
			return err
		}
		eventPublisher = publisher
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, internalConfig)

	// Appointment
	var appointmentController *controllers.AppointmentController
	if internalConfig.ServiceEnabled(constvars.ServiceAppointments) {
		appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
		admissionPolicy := appointments.NewStochasticAdmissionPolicy(nil)
		appointmentUsecase := appointments.NewAppointmentUsecase(appointmentRepository, admissionPolicy, eventPublisher, log)
		appointmentController = controllers.NewAppointmentController(log, appointmentUsecase, internalConfig)
	}

	// Health campaign
	var healthCampaignController *controllers.HealthCampaignController
	if internalConfig.ServiceEnabled(constvars.ServiceCampaigns) {
		healthCampaignRepository := campaigns.NewHealthCampaignMongoRepository(bootstrap.MongoDB, dbName)
		healthCampaignUsecase := campaigns.NewHealthCampaignUsecase(healthCampaignRepository, uploadStorage, internalConfig, log)
		healthCampaignController = controllers.NewHealthCampaignController(log, healthCampaignUsecase, internalConfig)
	}

	// Hospital
	var hospitalController *controllers.HospitalController
	if internalConfig.ServiceEnabled(constvars.ServiceHospitals) {
		hospitalRepository := hospitals.NewHospitalMongoRepository(bootstrap.MongoDB, dbName)
		hospitalUsecase := hospitals.NewHospitalUsecase(hospitalRepository, redisRepository, uploadStorage, internalConfig, log)
		hospitalController = controllers.NewHospitalController(log, hospitalUsecase, internalConfig)
	}

	// Vaccine
	var vaccineController *controllers.VaccineController
	if internalConfig.ServiceEnabled(constvars.ServiceVaccines) {
		vaccineRepository := vaccines.NewVaccineMongoRepository(bootstrap.MongoDB, dbName)
		vaccineUsecase := vaccines.NewVaccineUsecase(vaccineRepository, uploadStorage, internalConfig, log)
		vaccineController = controllers.NewVaccineController(log, vaccineUsecase, internalConfig)
	}

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewares,
		appointmentController,
		healthCampaignController,
		hospitalController,
		vaccineController,
	)
	return nil
}
