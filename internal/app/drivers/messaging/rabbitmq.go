package messaging

import (
	"creapar-service/internal/app/config"
	"creapar-service/internal/pkg/constvars"
	"fmt"
	"strconv"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const brokerHeartbeat = 10 * time.Second

// NewRabbitMQ dials the broker that carries outbound WhatsApp messages. The
// connection is named after the service so it can be told apart in the
// management UI.
func NewRabbitMQ(driverConfig *config.DriverConfig, log *zap.Logger) (*amqp091.Connection, error) {
	port, err := strconv.Atoi(driverConfig.RabbitMQ.Port)
	if err != nil {
		return nil, fmt.Errorf("invalid RABBITMQ_PORT %q: %w", driverConfig.RabbitMQ.Port, err)
	}

	uri := amqp091.URI{
		Scheme:   "amqp",
		Host:     driverConfig.RabbitMQ.Host,
		Port:     port,
		Username: driverConfig.RabbitMQ.Username,
		Password: driverConfig.RabbitMQ.Password,
		Vhost:    "/",
	}

	properties := amqp091.NewConnectionProperties()
	properties.SetClientConnectionName(constvars.AppName)

	conn, err := amqp091.DialConfig(uri.String(), amqp091.Config{
		Heartbeat:  brokerHeartbeat,
		Properties: properties,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot reach notification broker at %s:%d: %w", uri.Host, uri.Port, err)
	}

	log.Info("Notification broker connected",
		zap.String(constvars.LoggingBrokerHostKey, fmt.Sprintf("%s:%d", uri.Host, uri.Port)),
	)
	return conn, nil
}
