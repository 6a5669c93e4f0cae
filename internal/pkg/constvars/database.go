package constvars

const (
	MongoCollectionAvailableSlots = "available_slots"
	MongoCollectionAppointments   = "appointments"
)

const (
	MongoFieldID          = "id"
	MongoFieldDate        = "date"
	MongoFieldTime        = "time"
	MongoFieldSlotID      = "slot_id"
	MongoFieldStatus      = "status"
	MongoFieldIsAvailable = "is_available"
)

const (
	MongoIndexConfirmedSlot = "slot_id_confirmed_unique"
)
