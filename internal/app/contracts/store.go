package contracts

import "context"

// Store owns the connection behind both repositories. It is opened once at
// process start and closed on shutdown.
type Store interface {
	Slots() SlotRepository
	Appointments() AppointmentRepository
	EnsureIndexes(ctx context.Context) error
	Close(ctx context.Context) error
}
