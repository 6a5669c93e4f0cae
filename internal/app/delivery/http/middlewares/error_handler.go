package middlewares

import (
	"creapar-service/internal/pkg/constvars"
	"creapar-service/internal/pkg/exceptions"
	"creapar-service/internal/pkg/utils"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// ErrorHandler turns a panicking handler into the usual 500 error envelope.
// http.ErrAbortHandler is passed on so the server can drop the connection.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			m.Log.Error("ErrorHandler recovered handler panic",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.Any(constvars.LoggingPanicKey, rec),
				zap.Stack("stack"),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrPanicRecovered(panicError(rec)))
		}()
		next.ServeHTTP(w, r)
	})
}

func panicError(rec any) error {
	switch value := rec.(type) {
	case error:
		return value
	case string:
		return errors.New(value)
	default:
		return fmt.Errorf("handler panicked with %T: %v", value, value)
	}
}
