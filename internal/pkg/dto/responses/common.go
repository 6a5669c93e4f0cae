package responses

type Message struct {
	Message string `json:"message"`
}

type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
