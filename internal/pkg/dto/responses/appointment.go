package responses

import "time"

type Appointment struct {
	ID         string    `json:"id"`
	SlotID     string    `json:"slot_id"`
	ClientName string    `json:"client_name"`
	WhatsApp   string    `json:"whatsapp"`
	Notes      *string   `json:"notes"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
