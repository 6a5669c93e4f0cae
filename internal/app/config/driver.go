package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}
	MongoDB struct {
		// URI takes precedence over the host fields when set.
		URI      string
		Host     string
		Port     string
		Username string
		Password string
		DbName   string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

func (m MongoDB) Enabled() bool {
	return m.URI != "" || m.Host != ""
}

func (r Redis) Enabled() bool {
	return r.Host != ""
}

func (r RabbitMQ) Enabled() bool {
	return r.Host != ""
}
