package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"praxismatch-service/internal/app/config"
	"praxismatch-service/internal/app/delivery/http/middlewares"
	"praxismatch-service/internal/app/delivery/http/routers"
	"praxismatch-service/internal/app/drivers/database"
	"praxismatch-service/internal/app/drivers/logger"
	"praxismatch-service/internal/app/drivers/messaging"
	"praxismatch-service/internal/app/services/core/matches"
	"praxismatch-service/internal/app/services/core/matching"
	"praxismatch-service/internal/app/services/core/patients"
	"praxismatch-service/internal/app/services/core/slots"
	"praxismatch-service/internal/app/services/core/supplygaps"
	"praxismatch-service/internal/app/services/core/therapists"
	"praxismatch-service/internal/app/services/shared/analytics"
	"praxismatch-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error closing application resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	analyticsPublisher, err := analytics.NewQueuePublisher(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.Matching.AnalyticsQueue,
		bootstrap.Logger,
	)
	if err != nil {
		log.Fatalf("Failed to initialize analytics publisher: %v", err)
	}

	// Middlewares
	middlewares := middlewares.New(bootstrap.Logger, bootstrap.InternalConfig)

	// Repositories
	dbName := bootstrap.DriverConfig.MongoDB.DbName
	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	therapistRepository := therapists.NewTherapistMongoRepository(bootstrap.MongoDB, dbName)
	slotRepository := slots.NewSlotMongoRepository(bootstrap.MongoDB, dbName)
	matchRepository := matches.NewMatchMongoRepository(bootstrap.MongoDB, dbName)
	supplyGapRepository := supplygaps.NewSupplyGapMongoRepository(bootstrap.MongoDB, dbName)

	// Matching
	matchingUsecase := matching.NewMatchingUsecase(
		patientRepository,
		therapistRepository,
		slotRepository,
		matchRepository,
		supplyGapRepository,
		analyticsPublisher,
		redisRepository,
		bootstrap.InternalConfig.Matching,
		bootstrap.Logger,
	)
	matchingController := matching.NewMatchingController(bootstrap.Logger, matchingUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, matchingController)
}
