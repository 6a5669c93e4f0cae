package config

import (
	"creapar-service/internal/pkg/constvars"
	"creapar-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

// NewDriverConfig reads connection settings. A driver whose host is left
// empty is treated as not configured.
func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			URI:      utils.GetEnvString("MONGODB_URI", ""),
			Host:     utils.GetEnvString("MONGODB_HOST", ""),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "creapar"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", ""),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", ""),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", ":8000"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "America/Sao_Paulo"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			AllowedOrigins:             utils.GetEnvString("APP_ALLOWED_ORIGINS", "*"),
		},
		Schedule: Schedule{
			WorkerCronSpec:         utils.GetEnvString("SCHEDULE_WORKER_CRON_SPEC", ""),
			RollingWeeks:           utils.GetEnvInt("SCHEDULE_ROLLING_WEEKS", 4),
			LeaderLockTTLInSeconds: utils.GetEnvInt("SCHEDULE_LEADER_LOCK_TTL_IN_SECONDS", 120),
			RunTimeoutInSeconds:    utils.GetEnvInt("SCHEDULE_RUN_TIMEOUT_IN_SECONDS", 300),
		},
		Notification: Notification{
			WhatsAppQueue:        utils.GetEnvString("NOTIFICATION_WHATSAPP_QUEUE", "whatsapp_outbound"),
			QueueSize:            utils.GetEnvInt("NOTIFICATION_QUEUE_SIZE", constvars.NotificationQueueSize),
			RatePerSecond:        utils.GetEnvFloat("NOTIFICATION_RATE_PER_SECOND", 5),
			Burst:                utils.GetEnvInt("NOTIFICATION_BURST", 1),
			SendTimeoutInSeconds: utils.GetEnvInt("NOTIFICATION_SEND_TIMEOUT_IN_SECONDS", 5),
		},
	}
}
