package main

import (
	"context"
	"intake-report-service/internal/app/config"
	"intake-report-service/internal/app/contracts"
	"intake-report-service/internal/app/delivery/http/middlewares"
	"intake-report-service/internal/app/delivery/http/routers"
	"intake-report-service/internal/app/drivers/database"
	"intake-report-service/internal/app/drivers/logger"
	"intake-report-service/internal/app/drivers/messaging"
	driverStorage "intake-report-service/internal/app/drivers/storage"
	"intake-report-service/internal/app/services/core/locales"
	optionSets "intake-report-service/internal/app/services/core/option_sets"
	"intake-report-service/internal/app/services/core/reports"
	"intake-report-service/internal/app/services/shared/assets"
	"intake-report-service/internal/app/services/shared/ratelimiter"
	"intake-report-service/internal/app/services/shared/redis"
	"intake-report-service/internal/app/services/shared/reportqueue"
	"intake-report-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := driverStorage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if internalConfig.Report.PublishGeneratedEvents {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}

	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Middlewares
	middlewareInstance := &middlewares.Middlewares{
		Log:              bootstrap.Logger,
		InternalConfig:   bootstrap.InternalConfig,
		BuildRateLimiter: ratelimiter.NewBuildRateLimiter(redisRepository, bootstrap.Logger, bootstrap.InternalConfig),
	}

	// Assets
	assetCache := assets.NewCache(bootstrap.InternalConfig.Assets, assets.NewHTTPFetcher(), bootstrap.Logger)

	// Option sets
	optionSetMongoRepository := optionSets.NewOptionSetMongoRepository(bootstrap.MongoDB)
	optionSetUsecase, err := optionSets.NewOptionSetUsecase(optionSetMongoRepository, redisRepository)
	if err != nil {
		logrus.Fatalf("Failed to initialize option set usecase: %v", err)
	}
	optionSetController := optionSets.NewOptionSetController(bootstrap.Logger, optionSetUsecase)

	// Locales
	localeMongoRepository := locales.NewLocaleMongoRepository(bootstrap.MongoDB)
	localeUsecase, err := locales.NewLocaleUsecase(localeMongoRepository, redisRepository, bootstrap.Logger)
	if err != nil {
		logrus.Fatalf("Failed to initialize locale usecase: %v", err)
	}
	localeController := locales.NewLocaleController(bootstrap.Logger, localeUsecase)

	// Reports
	reportStorage := storage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)

	var eventPublisher contracts.ReportEventPublisher
	if bootstrap.InternalConfig.Report.PublishGeneratedEvents {
		queueService, err := reportqueue.NewService(
			bootstrap.RabbitMQ,
			bootstrap.Logger,
			bootstrap.InternalConfig.Report.RabbitMQGeneratedQueue,
		)
		if err != nil {
			logrus.Fatalf("Failed to declare the report events queue: %v", err)
		}
		eventPublisher = queueService
	}

	composer := reports.NewComposer(optionSetUsecase, localeUsecase)
	renderer := reports.NewRenderer(assetCache, bootstrap.Logger)
	reportUsecase := reports.NewReportUsecase(
		composer,
		renderer,
		assetCache,
		reportStorage,
		eventPublisher,
		bootstrap.Logger,
		bootstrap.InternalConfig,
	)
	reportController := reports.NewReportController(bootstrap.Logger, reportUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewareInstance, reportController, optionSetController, localeController)
}
