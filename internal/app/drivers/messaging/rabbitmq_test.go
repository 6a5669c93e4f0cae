package messaging

import (
	"creapar-service/internal/app/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewRabbitMQ_InvalidPort(t *testing.T) {
	driverConfig := &config.DriverConfig{}
	driverConfig.RabbitMQ.Host = "localhost"
	driverConfig.RabbitMQ.Port = "amqp"

	conn, err := NewRabbitMQ(driverConfig, zap.NewNop())

	require.Error(t, err)
	assert.Nil(t, conn)
	assert.Contains(t, err.Error(), "RABBITMQ_PORT")
}
