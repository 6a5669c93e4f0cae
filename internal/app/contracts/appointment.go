package contracts

import (
	"context"
	"creapar-service/internal/app/models"
	"creapar-service/internal/pkg/dto/requests"
	"creapar-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	BookSlot(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error)
	CancelAppointment(ctx context.Context, appointmentID string) error
	FindAll(ctx context.Context, date string) ([]responses.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*responses.Appointment, error)
}

// AppointmentRepository finders return (nil, nil) when nothing matches.
type AppointmentRepository interface {
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	// FindActiveBySlot returns the confirmed appointment holding slotID.
	FindActiveBySlot(ctx context.Context, slotID string) (*models.Appointment, error)
	// FindBlockingBySlot returns any non-cancelled appointment on slotID.
	FindBlockingBySlot(ctx context.Context, slotID string) (*models.Appointment, error)
	FindAll(ctx context.Context, date string) ([]models.Appointment, error)
	// Insert fails with ErrSlotAlreadyBooked when the appointment is confirmed
	// and another confirmed appointment already holds its slot.
	Insert(ctx context.Context, appointment *models.Appointment) error
	SetStatus(ctx context.Context, appointmentID, status string) error
	// CompareAndSetStatus moves an appointment from expected to status in a
	// single conditional write and reports whether this call made the change.
	CompareAndSetStatus(ctx context.Context, appointmentID, expected, status string) (bool, error)
	EnsureIndexes(ctx context.Context) error
}
