package requests

type BulkCreateSchedule struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	Weeks     int    `json:"weeks" validate:"required,gte=1,lte=52"`
}
