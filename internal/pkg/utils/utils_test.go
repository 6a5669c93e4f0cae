package utils

import (
	"creapar-service/internal/pkg/constvars"
	"creapar-service/internal/pkg/dto/requests"
	"creapar-service/internal/pkg/exceptions"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhoneNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		dest     string
	}{
		{"Separators", "+55 (11) 99999-0000", "+5511999990000", "5511999990000"},
		{"Already Clean", "5511999990000", "5511999990000", "5511999990000"},
		{"Surrounding Spaces", "  11.9999.0000 ", "1199990000", "1199990000"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizePhoneNumber(tc.input))
			assert.Equal(t, tc.dest, WhatsAppDestination(tc.input))
		})
	}
}

func TestValidateStruct(t *testing.T) {
	valid := requests.CreateAppointment{
		SlotID:     "slot-1",
		ClientName: "Ana",
		WhatsApp:   "+55 11 99999-0000",
		Date:       "2024-01-01",
		Time:       "08:00:00",
	}

	t.Run("Valid Appointment", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(&valid))
	})

	t.Run("Bad Phone Number", func(t *testing.T) {
		request := valid
		request.WhatsApp = "call me"
		err := ValidateStruct(&request)
		require.Error(t, err)
		assert.Equal(t, constvars.CustomValidationErrorMessages["phone_number"], exceptions.FormatFirstValidationError(err))
	})

	t.Run("Bad Slot Time", func(t *testing.T) {
		for _, value := range []string{"8:00", "08:00", "25:00:00", "08:00:00Z"} {
			request := valid
			request.Time = value
			assert.Error(t, ValidateStruct(&request), value)
		}
	})

	t.Run("Bad Date Names The Wire Field", func(t *testing.T) {
		request := valid
		request.Date = "01/01/2024"
		err := ValidateStruct(&request)
		require.Error(t, err)
		assert.Equal(t, "date must match the format 2006-01-02", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Slot Type Must Be Known", func(t *testing.T) {
		err := ValidateStruct(&requests.CreateSlot{Date: "2024-01-01", Time: "08:00:00", Type: "party"})
		require.Error(t, err)
		assert.Equal(t, "type must be one of [appointment, event]", exceptions.FormatFirstValidationError(err))
		assert.NoError(t, ValidateStruct(&requests.CreateSlot{Date: "2024-01-01", Time: "08:00:00"}))
	})
}

func TestParseAndValidateRequest(t *testing.T) {
	t.Run("Malformed JSON", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader("{"))
		err := ParseAndValidateRequest(r, new(requests.CreateSlot))
		assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))
	})

	t.Run("Validation Failure", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"date":"2024-01-01"}`))
		err := ParseAndValidateRequest(r, new(requests.CreateSlot))
		require.Error(t, err)
		assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))
	})
}

func TestDates(t *testing.T) {
	date, err := ParseDate("2024-01-06")
	require.NoError(t, err)
	assert.Equal(t, time.Saturday, date.Weekday())
	assert.Equal(t, "2024-01-06", FormatDate(date))

	_, err = ParseDate("2024-13-01")
	assert.Error(t, err)

	messageDate, messageTime := FormatMessageDateTime("2024-01-01", "08:30:00")
	assert.Equal(t, "01/01/2024", messageDate)
	assert.Equal(t, "08:30", messageTime)

	messageDate, messageTime = FormatMessageDateTime("tomorrow", "soon")
	assert.Equal(t, "tomorrow", messageDate)
	assert.Equal(t, "soon", messageTime)
}

func TestEnvGetters(t *testing.T) {
	t.Setenv("CREAPAR_TEST_INT", " 42 ")
	t.Setenv("CREAPAR_TEST_BAD_INT", "forty")
	t.Setenv("CREAPAR_TEST_BLANK", "")
	t.Setenv("CREAPAR_TEST_BOOL", "true")
	t.Setenv("CREAPAR_TEST_FLOAT", "2.5")

	assert.Equal(t, 42, GetEnvInt("CREAPAR_TEST_INT", 1))
	assert.Equal(t, 1, GetEnvInt("CREAPAR_TEST_BAD_INT", 1))
	assert.Equal(t, 7, GetEnvInt("CREAPAR_TEST_BLANK", 7))
	assert.Equal(t, 3, GetEnvInt("CREAPAR_TEST_UNSET", 3))
	assert.True(t, GetEnvBool("CREAPAR_TEST_BOOL", false))
	assert.Equal(t, 2.5, GetEnvFloat("CREAPAR_TEST_FLOAT", 1))
	assert.Equal(t, "", GetEnvString("CREAPAR_TEST_BLANK", "fallback"))
	assert.Equal(t, "fallback", GetEnvString("CREAPAR_TEST_UNSET", "fallback"))

	t.Setenv("APP_ENV", constvars.AppEnvProduction)
	assert.True(t, IsProduction())
	t.Setenv("APP_ENV", constvars.AppEnvDevelopment)
	assert.False(t, IsProduction())
}
