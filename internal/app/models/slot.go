package models

import (
	"creapar-service/internal/pkg/dto/responses"
	"time"
)

// Slot is a bookable (date, time) unit. Date and Time are stored as their
// wire strings (YYYY-MM-DD, HH:MM:SS), which keeps lexical and chronological
// ordering identical.
type Slot struct {
	ID          string    `bson:"id"`
	Date        string    `bson:"date"`
	Time        string    `bson:"time"`
	Type        string    `bson:"type"`
	IsAvailable bool      `bson:"is_available"`
	CreatedAt   time.Time `bson:"created_at"`
}

func (s Slot) ConvertIntoResponse() responses.Slot {
	return responses.Slot{
		ID:          s.ID,
		Date:        s.Date,
		Time:        s.Time,
		Type:        s.Type,
		IsAvailable: s.IsAvailable,
		CreatedAt:   s.CreatedAt,
	}
}
