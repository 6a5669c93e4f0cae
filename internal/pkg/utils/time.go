package utils

import (
	"creapar-service/internal/pkg/constvars"
	"time"
)

// ParseDate parses a YYYY-MM-DD calendar date in the service location.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(constvars.DateLayout, value, time.Local)
}

func FormatDate(date time.Time) string {
	return date.Format(constvars.DateLayout)
}

// FormatMessageDateTime renders a stored slot date and time for humans,
// falling back to the raw values when they do not parse.
func FormatMessageDateTime(date, clock string) (string, string) {
	messageDate := date
	if parsed, err := time.Parse(constvars.DateLayout, date); err == nil {
		messageDate = parsed.Format(constvars.MessageDateLayout)
	}
	messageTime := clock
	if parsed, err := time.Parse(constvars.TimeLayout, clock); err == nil {
		messageTime = parsed.Format(constvars.MessageTimeLayout)
	}
	return messageDate, messageTime
}
