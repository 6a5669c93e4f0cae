package exceptions

import (
	"creapar-service/internal/pkg/constvars"
	"fmt"
)

// Booking errors are client-facing. The conflict-like ones answer 400 like the
// rest of the public API does for rejected writes.
var (
	ErrSlotAlreadyExists = func(date, time string) *CustomError {
		return buildCustomError(nil, KindConflict, constvars.StatusBadRequest, constvars.ErrClientSlotAlreadyExists, fmt.Sprintf(constvars.ErrDevSlotAlreadyExists, date, time), 3)
	}
	ErrSlotHasBookings = func(slotID string) *CustomError {
		return buildCustomError(nil, KindConflict, constvars.StatusBadRequest, constvars.ErrClientSlotHasBookings, fmt.Sprintf(constvars.ErrDevSlotHasBookings, slotID), 3)
	}
	ErrSlotNotFound = func(slotID string) *CustomError {
		return buildCustomError(nil, KindNotFound, constvars.StatusNotFound, constvars.ErrClientSlotNotFound, fmt.Sprintf(constvars.ErrDevSlotNotFound, slotID), 3)
	}
	ErrSlotUnavailable = func(slotID string) *CustomError {
		return buildCustomError(nil, KindSlotUnavailable, constvars.StatusBadRequest, constvars.ErrClientSlotUnavailable, fmt.Sprintf(constvars.ErrDevSlotUnavailable, slotID), 3)
	}
	ErrSlotAlreadyBooked = func(slotID string) *CustomError {
		return buildCustomError(nil, KindSlotAlreadyBooked, constvars.StatusBadRequest, constvars.ErrClientSlotAlreadyBooked, fmt.Sprintf(constvars.ErrDevSlotAlreadyBooked, slotID), 3)
	}
	ErrAppointmentNotFound = func(appointmentID string) *CustomError {
		return buildCustomError(nil, KindNotFound, constvars.StatusNotFound, constvars.ErrClientAppointmentNotFound, fmt.Sprintf(constvars.ErrDevAppointmentNotFound, appointmentID), 3)
	}
)
