package exceptions

import (
	"creapar-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"runtime"
)

// Kind classifies a CustomError independently of its HTTP status so the
// booking core can be asserted on without caring about the transport.
type Kind string

const (
	KindInternal          Kind = "internal"
	KindValidation        Kind = "validation"
	KindConflict          Kind = "conflict"
	KindNotFound          Kind = "not_found"
	KindSlotUnavailable   Kind = "slot_unavailable"
	KindSlotAlreadyBooked Kind = "slot_already_booked"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"locations,omitempty"`
	Kind          Kind       `json:"-"`
	Err           error      `json:"-"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, location.File, location.Line, location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// BuildNewCustomError wraps err (which may be nil). It is meant to be called
// from one of the Err* constructors, whose caller is recorded as the location.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	return buildCustomError(err, KindInternal, statusCode, clientMessage, devMessage, 4)
}

func buildCustomError(err error, kind Kind, statusCode int, clientMessage, devMessage string, skip int) *CustomError {
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{getLocation(skip)},
		Kind:          kind,
		Err:           err,
	}
}

// IsKind reports whether any CustomError in err's chain has the given kind.
func IsKind(err error, kind Kind) bool {
	var customErr *CustomError
	if !errors.As(err, &customErr) {
		return false
	}
	return customErr.Kind == kind
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
