package main

import (
	"context"
	"creapar-service/internal/app/config"
	"creapar-service/internal/app/contracts"
	"creapar-service/internal/app/delivery/http/controllers"
	"creapar-service/internal/app/delivery/http/middlewares"
	"creapar-service/internal/app/delivery/http/routers"
	"creapar-service/internal/app/drivers/database"
	"creapar-service/internal/app/drivers/logger"
	"creapar-service/internal/app/drivers/messaging"
	"creapar-service/internal/app/services/core/appointments"
	"creapar-service/internal/app/services/core/schedules"
	"creapar-service/internal/app/services/core/slots"
	"creapar-service/internal/app/services/shared/locker"
	"creapar-service/internal/app/services/shared/notification"
	"creapar-service/internal/app/services/shared/redis"
	"creapar-service/internal/app/services/shared/storage"
	"creapar-service/internal/app/services/shared/whatsapp"
	"errors"
	"log"
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

	logger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logger.Fatal("Error loading location", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         logger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = openDrivers(bootstrap)
	if err != nil {
		logger.Fatal("Failed to open drivers", zap.Error(err))
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		logger.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server listening", zap.String("address", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error while shutting down: %v", err)
	}

	log.Println("Server exiting")
}

// openDrivers connects the configured backends. Mongo and RabbitMQ failures
// are fatal when configured; an unreachable Redis falls back to in-process locking.
func openDrivers(bootstrap *config.Bootstrap) error {
	driverConfig := bootstrap.DriverConfig
	logger := bootstrap.Logger

	if driverConfig.MongoDB.Enabled() {
		client, err := database.NewMongoDB(driverConfig, logger)
		if err != nil {
			return err
		}
		bootstrap.Store = storage.NewMongoStore(client, driverConfig.MongoDB.DbName)
	} else {
		logger.Warn("MongoDB is not configured, using in-memory store")
		bootstrap.Store = storage.NewMemoryStore()
	}

	if driverConfig.Redis.Enabled() {
		client, err := database.NewRedisClient(driverConfig, logger)
		if err != nil {
			logger.Warn("Redis unavailable, using in-process locker", zap.Error(err))
		} else {
			bootstrap.Redis = client
		}
	}

	if driverConfig.RabbitMQ.Enabled() {
		conn, err := messaging.NewRabbitMQ(driverConfig, logger)
		if err != nil {
			return err
		}
		bootstrap.RabbitMQ = conn
	}

	return nil
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	logger := bootstrap.Logger

	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err := bootstrap.Store.EnsureIndexes(indexCtx)
	cancel()
	if err != nil {
		logger.Error("Failed to ensure store indexes", zap.Error(err))
	}

	// Notification
	notifier, err := buildNotifier(bootstrap)
	if err != nil {
		return err
	}
	dispatcher := notification.NewDispatcher(notifier, logger, notification.Options{
		QueueSize:     internalConfig.Notification.QueueSize,
		RatePerSecond: internalConfig.Notification.RatePerSecond,
		Burst:         internalConfig.Notification.Burst,
		SendTimeout:   time.Duration(internalConfig.Notification.SendTimeoutInSeconds) * time.Second,
	})
	dispatcher.Start()
	bootstrap.NotificationStop = dispatcher.Stop

	// Usecases
	slotUsecase := slots.NewSlotUsecase(bootstrap.Store.Slots(), bootstrap.Store.Appointments(), logger)
	appointmentUsecase := appointments.NewAppointmentUsecase(bootstrap.Store.Slots(), bootstrap.Store.Appointments(), dispatcher, logger)
	scheduleUsecase := schedules.NewScheduleUsecase(slotUsecase, logger)

	// Rolling schedule worker
	if internalConfig.Schedule.WorkerCronSpec != "" {
		worker := schedules.NewWorker(logger, internalConfig.Schedule, buildLocker(bootstrap), scheduleUsecase)
		worker.Start(context.Background())
		bootstrap.ScheduleWorkerStop = worker.Stop
	}

	// Controllers
	middlewares := middlewares.NewMiddlewares(logger, internalConfig)
	healthController := controllers.NewHealthController()
	slotController := controllers.NewSlotController(logger, slotUsecase)
	appointmentController := controllers.NewAppointmentController(logger, appointmentUsecase)
	scheduleController := controllers.NewScheduleController(logger, scheduleUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewares,
		healthController,
		slotController,
		appointmentController,
		scheduleController,
	)
	return nil
}

func buildNotifier(bootstrap *config.Bootstrap) (contracts.Notifier, error) {
	if bootstrap.RabbitMQ == nil {
		bootstrap.Logger.Warn("RabbitMQ is not configured, booking confirmations are disabled")
		return whatsapp.NewNoopNotifier(), nil
	}
	whatsAppService, err := whatsapp.NewWhatsAppService(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.Notification.WhatsAppQueue)
	if err != nil {
		return nil, err
	}
	return whatsapp.NewNotifier(whatsAppService), nil
}

func buildLocker(bootstrap *config.Bootstrap) contracts.LockerService {
	if bootstrap.Redis == nil {
		return locker.NewLocalLocker()
	}
	return locker.NewLockService(redis.NewRedisRepository(bootstrap.Redis), bootstrap.Logger)
}
