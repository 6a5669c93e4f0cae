package storage

import (
	"context"
	"creapar-service/internal/app/contracts"
	"creapar-service/internal/app/services/core/appointments"
	"creapar-service/internal/app/services/core/slots"
)

type memoryStore struct {
	slots        contracts.SlotRepository
	appointments contracts.AppointmentRepository
}

// NewMemoryStore keeps everything in process memory. Data does not survive a restart.
func NewMemoryStore() contracts.Store {
	return &memoryStore{
		slots:        slots.NewSlotMemoryRepository(),
		appointments: appointments.NewAppointmentMemoryRepository(),
	}
}

func (s *memoryStore) Slots() contracts.SlotRepository {
	return s.slots
}

func (s *memoryStore) Appointments() contracts.AppointmentRepository {
	return s.appointments
}

func (s *memoryStore) EnsureIndexes(ctx context.Context) error {
	return ensureIndexes(ctx, s.slots, s.appointments)
}

func (s *memoryStore) Close(context.Context) error {
	return nil
}

func ensureIndexes(ctx context.Context, slotRepository contracts.SlotRepository, appointmentRepository contracts.AppointmentRepository) error {
	err := slotRepository.EnsureIndexes(ctx)
	if err != nil {
		return err
	}
	return appointmentRepository.EnsureIndexes(ctx)
}
