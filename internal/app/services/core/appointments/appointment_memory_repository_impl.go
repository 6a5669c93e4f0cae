package appointments

import (
	"context"
	"creapar-service/internal/app/contracts"
	"creapar-service/internal/app/models"
	"creapar-service/internal/pkg/exceptions"
	"sort"
	"sync"
)

// AppointmentMemoryRepository is the in-process ledger used without MongoDB.
// Insertion order is kept so that lookups by slot are deterministic.
type AppointmentMemoryRepository struct {
	mu           sync.RWMutex
	appointments []models.Appointment
	byID         map[string]int
}

func NewAppointmentMemoryRepository() contracts.AppointmentRepository {
	return &AppointmentMemoryRepository{
		byID: make(map[string]int),
	}
}

func (repo *AppointmentMemoryRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	index, ok := repo.byID[appointmentID]
	if !ok {
		return nil, nil
	}
	appointment := repo.appointments[index]
	return &appointment, nil
}

func (repo *AppointmentMemoryRepository) FindActiveBySlot(ctx context.Context, slotID string) (*models.Appointment, error) {
	return repo.findFirst(func(appointment models.Appointment) bool {
		return appointment.SlotID == slotID && appointment.IsActive()
	}), nil
}

func (repo *AppointmentMemoryRepository) FindBlockingBySlot(ctx context.Context, slotID string) (*models.Appointment, error) {
	return repo.findFirst(func(appointment models.Appointment) bool {
		return appointment.SlotID == slotID && appointment.BlocksSlotDeletion()
	}), nil
}

func (repo *AppointmentMemoryRepository) FindAll(ctx context.Context, date string) ([]models.Appointment, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	appointments := make([]models.Appointment, 0, len(repo.appointments))
	for _, appointment := range repo.appointments {
		if date != "" && appointment.Date != date {
			continue
		}
		appointments = append(appointments, appointment)
	}
	sort.SliceStable(appointments, func(i, j int) bool {
		if appointments[i].Time != appointments[j].Time {
			return appointments[i].Time < appointments[j].Time
		}
		return appointments[i].Date < appointments[j].Date
	})
	return appointments, nil
}

func (repo *AppointmentMemoryRepository) Insert(ctx context.Context, appointment *models.Appointment) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if appointment.IsActive() {
		for _, existing := range repo.appointments {
			if existing.SlotID == appointment.SlotID && existing.IsActive() {
				return exceptions.ErrSlotAlreadyBooked(appointment.SlotID)
			}
		}
	}
	repo.byID[appointment.ID] = len(repo.appointments)
	repo.appointments = append(repo.appointments, *appointment)
	return nil
}

func (repo *AppointmentMemoryRepository) SetStatus(ctx context.Context, appointmentID, status string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	index, ok := repo.byID[appointmentID]
	if !ok {
		return exceptions.ErrAppointmentNotFound(appointmentID)
	}
	repo.appointments[index].Status = status
	return nil
}

func (repo *AppointmentMemoryRepository) CompareAndSetStatus(ctx context.Context, appointmentID, expected, status string) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	index, ok := repo.byID[appointmentID]
	if !ok {
		return false, exceptions.ErrAppointmentNotFound(appointmentID)
	}
	if repo.appointments[index].Status != expected {
		return false, nil
	}
	repo.appointments[index].Status = status
	return true, nil
}

func (repo *AppointmentMemoryRepository) EnsureIndexes(ctx context.Context) error {
	return nil
}

func (repo *AppointmentMemoryRepository) findFirst(match func(models.Appointment) bool) *models.Appointment {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, appointment := range repo.appointments {
		if match(appointment) {
			found := appointment
			return &found
		}
	}
	return nil
}
