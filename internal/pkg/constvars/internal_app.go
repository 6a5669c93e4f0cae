package constvars

type ContextKey string

const (
	ResourceAvailableSlots = "available-slots"
	ResourceAppointments   = "appointments"
	ResourceSchedule       = "schedule"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "CRPR_SVC_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
	AppName           = "Creapar Scheduling API"
)

const (
	// Wire layouts for slot dates and times.
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"

	// Layouts used in outbound client messages.
	MessageDateLayout = "02/01/2006"
	MessageTimeLayout = "15:04"
)

const (
	SlotTypeAppointment = "appointment"
	SlotTypeEvent       = "event"
)

const (
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusCompleted = "completed"
)

const (
	ScheduleMaxWeeks        = 52
	ScheduleWorkerLockKey   = "schedule:worker:leader"
	NotificationQueueSize   = 100
	HandlerTimeoutInSeconds = 10
)
