package config

import (
	"context"
	"creapar-service/internal/app/contracts"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Store          contracts.Store
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// NotificationStop drains the notification dispatcher.
	NotificationStop func()
	// ScheduleWorkerStop stops the rolling schedule worker when it runs.
	ScheduleWorkerStop func()
}

// Shutdown stops background workers before closing the drivers they use.
// Optional drivers that were never opened are skipped.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.ScheduleWorkerStop != nil {
		b.ScheduleWorkerStop()
		log.Println("Successfully stopped schedule worker")
	}

	if b.NotificationStop != nil {
		b.NotificationStop()
		log.Println("Successfully stopped notification dispatcher")
	}

	if b.Store != nil {
		err := b.Store.Close(ctx)
		if err != nil {
			return err
		}
		log.Println("Successfully closing store")
	}

	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	if b.RabbitMQ != nil {
		err := b.RabbitMQ.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	if b.Logger != nil {
		// Sync on stdout/stderr can fail with EINVAL; nothing to recover there.
		_ = b.Logger.Sync()
	}

	return nil
}
