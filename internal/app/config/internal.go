package config

type InternalConfig struct {
	App          App
	Schedule     Schedule
	Notification Notification
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
	// AllowedOrigins is a comma separated list for CORS.
	AllowedOrigins string
}

type Schedule struct {
	// WorkerCronSpec enables the rolling schedule worker when set (e.g. "@daily").
	WorkerCronSpec         string
	RollingWeeks           int
	LeaderLockTTLInSeconds int
	RunTimeoutInSeconds    int
}

type Notification struct {
	WhatsAppQueue        string
	QueueSize            int
	RatePerSecond        float64
	Burst                int
	SendTimeoutInSeconds int
}
