package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"
	LoggingErrorKey          = "error"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingLocationKey       = "location"

	LoggingSlotIDKey            = "slot_id"
	LoggingAppointmentIDKey     = "appointment_id"
	LoggingDateKey              = "date"
	LoggingTimeKey              = "time"
	LoggingSlotTypeKey          = "slot_type"
	LoggingStatusKey            = "status"
	LoggingStartDateKey         = "start_date"
	LoggingWeeksKey             = "weeks"
	LoggingSlotsCreatedKey      = "slots_created"
	LoggingSlotsSkippedKey      = "slots_skipped"
	LoggingQueueNameKey         = "queue_name"
	LoggingQueueLengthKey       = "queue_length"
	LoggingDestinationKey       = "destination"
	LoggingRedisKey             = "redis_key"
	LoggingLockValueKey         = "lock_value"
	LoggingLockExpirationKey    = "lock_expiration"
	LoggingLockStoredValueKey   = "lock_stored_value"
	LoggingLockExpectedValueKey = "lock_expected_value"
	LoggingCronSpecKey          = "cron_spec"
	LoggingMongoCollectionKey   = "mongo_collection"
	LoggingNotificationTypeKey  = "notification_type"
	LoggingAvailabilityValueKey = "availability_value"
	LoggingBrokerHostKey        = "broker_host"
	LoggingPanicKey             = "panic"
)
