package responses

type BulkCreateSchedule struct {
	Message      string `json:"message"`
	SlotsCreated int    `json:"slots_created"`
	StartDate    string `json:"start_date"`
	Weeks        int    `json:"weeks"`
}
