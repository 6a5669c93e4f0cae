package slots

import (
	"context"
	"creapar-service/internal/app/contracts"
	"creapar-service/internal/app/models"
	"creapar-service/internal/pkg/exceptions"
	"sort"
	"sync"
)

// SlotMemoryRepository keeps slots in process memory. It backs local runs
// without MONGODB_HOST and the usecase tests.
type SlotMemoryRepository struct {
	mu         sync.RWMutex
	slots      map[string]models.Slot
	byDateTime map[string]string
}

func NewSlotMemoryRepository() contracts.SlotRepository {
	return &SlotMemoryRepository{
		slots:      make(map[string]models.Slot),
		byDateTime: make(map[string]string),
	}
}

func dateTimeKey(date, time string) string {
	return date + "T" + time
}

func (repo *SlotMemoryRepository) FindByID(ctx context.Context, slotID string) (*models.Slot, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	slot, ok := repo.slots[slotID]
	if !ok {
		return nil, nil
	}
	return &slot, nil
}

func (repo *SlotMemoryRepository) FindByDateTime(ctx context.Context, date, time string) (*models.Slot, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	slotID, ok := repo.byDateTime[dateTimeKey(date, time)]
	if !ok {
		return nil, nil
	}
	slot := repo.slots[slotID]
	return &slot, nil
}

func (repo *SlotMemoryRepository) FindAvailable(ctx context.Context, date string) ([]models.Slot, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	slots := make([]models.Slot, 0)
	for _, slot := range repo.slots {
		if !slot.IsAvailable {
			continue
		}
		if date != "" && slot.Date != date {
			continue
		}
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Time != slots[j].Time {
			return slots[i].Time < slots[j].Time
		}
		return slots[i].Date < slots[j].Date
	})
	return slots, nil
}

func (repo *SlotMemoryRepository) Insert(ctx context.Context, slot *models.Slot) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	key := dateTimeKey(slot.Date, slot.Time)
	if _, exists := repo.byDateTime[key]; exists {
		return exceptions.ErrSlotAlreadyExists(slot.Date, slot.Time)
	}
	repo.slots[slot.ID] = *slot
	repo.byDateTime[key] = slot.ID
	return nil
}

func (repo *SlotMemoryRepository) SetAvailability(ctx context.Context, slotID string, isAvailable bool) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	slot, ok := repo.slots[slotID]
	if !ok {
		return exceptions.ErrSlotNotFound(slotID)
	}
	slot.IsAvailable = isAvailable
	repo.slots[slotID] = slot
	return nil
}

func (repo *SlotMemoryRepository) CompareAndSetAvailability(ctx context.Context, slotID string, expected, value bool) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	slot, ok := repo.slots[slotID]
	if !ok || slot.IsAvailable != expected {
		return false, nil
	}
	slot.IsAvailable = value
	repo.slots[slotID] = slot
	return true, nil
}

func (repo *SlotMemoryRepository) Delete(ctx context.Context, slotID string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	slot, ok := repo.slots[slotID]
	if !ok {
		return exceptions.ErrSlotNotFound(slotID)
	}
	if !slot.IsAvailable {
		return exceptions.ErrSlotHasBookings(slotID)
	}
	delete(repo.slots, slotID)
	delete(repo.byDateTime, dateTimeKey(slot.Date, slot.Time))
	return nil
}

func (repo *SlotMemoryRepository) EnsureIndexes(ctx context.Context) error {
	return nil
}
