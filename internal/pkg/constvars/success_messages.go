package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	HealthStatusHealthy  = "healthy"
	HealthCheckMessage   = AppName + " is running"
	CancelAppointmentMsg = "Appointment cancelled successfully"
	DeleteSlotMsg        = "Slot deleted successfully"
	BulkCreateMsgFormat  = "Successfully created %d slots for %d weeks"
)

const (
	// Booking confirmation sent to the client's WhatsApp number.
	BookingConfirmationFormat = "Hello %s, your appointment on %s at %s is confirmed."
)
