package models

import (
	"creapar-service/internal/pkg/constvars"
	"creapar-service/internal/pkg/dto/responses"
	"time"
)

// Appointment references its slot by ID only. Date and Time are copied from
// the booking request and never re-derived from the slot.
type Appointment struct {
	ID         string    `bson:"id"`
	SlotID     string    `bson:"slot_id"`
	ClientName string    `bson:"client_name"`
	WhatsApp   string    `bson:"whatsapp"`
	Notes      *string   `bson:"notes"`
	Date       string    `bson:"date"`
	Time       string    `bson:"time"`
	Status     string    `bson:"status"`
	CreatedAt  time.Time `bson:"created_at"`
}

func (a Appointment) IsActive() bool {
	return a.Status == constvars.AppointmentStatusConfirmed
}

// BlocksSlotDeletion is true for every status except cancelled.
func (a Appointment) BlocksSlotDeletion() bool {
	return a.Status != constvars.AppointmentStatusCancelled
}

func (a Appointment) ConvertIntoResponse() responses.Appointment {
	return responses.Appointment{
		ID:         a.ID,
		SlotID:     a.SlotID,
		ClientName: a.ClientName,
		WhatsApp:   a.WhatsApp,
		Notes:      a.Notes,
		Date:       a.Date,
		Time:       a.Time,
		Status:     a.Status,
		CreatedAt:  a.CreatedAt,
	}
}
