package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"len":          "must be %s characters long",
	"oneof":        "must be one of [%s]",
	"gt":           "must be greater than %s",
	"gte":          "must be greater than or equal to %s",
	"lt":           "must be less than %s",
	"lte":          "must be less than or equal to %s",
	"uuid":         "must be a valid UUID",
	"datetime":     "must match the format %s",
	"phone_number": "whatsapp must be a phone number with 8 to 15 digits, optionally prefixed with '+'",
	"slot_time":    "time must be formatted as HH:MM:SS",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"len":      true,
	"gt":       true,
	"gte":      true,
	"lt":       true,
	"lte":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientSomethingWrongWithApplication = "something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "cannot process your request, please check your input"
	ErrClientServerLongRespond             = "the server took too long to respond, please try again"
	ErrClientSlotAlreadyExists             = "Slot already exists for this date and time"
	ErrClientSlotHasBookings               = "Cannot delete slot with existing appointments"
	ErrClientSlotNotFound                  = "Slot not found"
	ErrClientSlotUnavailable               = "Selected slot is not available"
	ErrClientSlotAlreadyBooked             = "This slot is already booked"
	ErrClientAppointmentNotFound           = "Appointment not found"
	ErrClientInvalidDate                   = "date must be formatted as YYYY-MM-DD"
	ErrClientInvalidScheduleWeeks          = "weeks must be between 1 and 52"
)

// Error messages for developers
const (
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON request body"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevInvalidFormat              = "invalid format on %s"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevPanicRecovered             = "panic recovered while serving request"
	ErrDevURLParamIDValidationFailed = "url param %s failed validation"
	ErrDevSlotAlreadyExists          = "slot %s %s already exists"
	ErrDevSlotHasBookings            = "slot %s still referenced by a non-cancelled appointment"
	ErrDevSlotNotFound               = "slot %s not found"
	ErrDevSlotUnavailable            = "slot %s is absent or not available"
	ErrDevSlotAlreadyBooked          = "slot %s already holds a confirmed appointment"
	ErrDevAppointmentNotFound        = "appointment %s not found"
	ErrDevInvalidScheduleWeeks       = "schedule weeks %d out of range"

	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBFailedToCreateIndex      = "failed to create index on %s"

	ErrDevRedisGetData     = "failed to get data from redis"
	ErrDevRedisSetData     = "failed to set data into redis"
	ErrDevRedisDeleteData  = "failed to delete data from redis"
	ErrDevRedisExpireData  = "failed to set expiry on redis key"
	ErrDevRedisUnlock      = "failed to release redis lock"
	ErrDevRedisLockRefresh = "failed to refresh redis lock"

	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"
	ErrDevRabbitMQDeclareQueue   = "failed to declare queue %s"
)
