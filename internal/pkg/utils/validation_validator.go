package utils

import (
	"creapar-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var rePhoneNumber = regexp.MustCompile(`^\+?[0-9]{8,15}$`)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("slot_time", validateSlotTime)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// jsonFieldName makes validation messages name the wire field ("client_name")
// rather than the Go field ("ClientName").
func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return rePhoneNumber.MatchString(NormalizePhoneNumber(fl.Field().String()))
}

func validateSlotTime(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	parsed, err := time.Parse(constvars.TimeLayout, value)
	if err != nil {
		return false
	}
	return parsed.Format(constvars.TimeLayout) == value
}
