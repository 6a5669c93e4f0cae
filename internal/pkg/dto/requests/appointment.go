package requests

type CreateAppointment struct {
	SlotID     string  `json:"slot_id" validate:"required"`
	ClientName string  `json:"client_name" validate:"required,max=120"`
	WhatsApp   string  `json:"whatsapp" validate:"required,phone_number"`
	Notes      *string `json:"notes" validate:"omitempty,max=1000"`
	Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time       string  `json:"time" validate:"required,slot_time"`
}
