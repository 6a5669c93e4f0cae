package requests

type CreateSlot struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Time string `json:"time" validate:"required,slot_time"`
	Type string `json:"type" validate:"omitempty,oneof=appointment event"`
}
