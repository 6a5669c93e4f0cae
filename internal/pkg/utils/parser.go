package utils

import (
	"creapar-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
)

// ParseAndValidateRequest decodes a JSON body into request and runs the
// struct validation tags on it.
func ParseAndValidateRequest(r *http.Request, request interface{}) error {
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	err = ValidateStruct(request)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
