package contracts

import (
	"context"
	"creapar-service/internal/app/models"
	"creapar-service/internal/pkg/dto/requests"
	"creapar-service/internal/pkg/dto/responses"
)

type SlotUsecase interface {
	CreateSlot(ctx context.Context, request *requests.CreateSlot) (*responses.Slot, error)
	FindAvailable(ctx context.Context, date string) ([]responses.Slot, error)
	DeleteSlot(ctx context.Context, slotID string) error
}

// SlotRepository finders return (nil, nil) when nothing matches.
type SlotRepository interface {
	FindByID(ctx context.Context, slotID string) (*models.Slot, error)
	FindByDateTime(ctx context.Context, date, time string) (*models.Slot, error)
	// FindAvailable lists available slots ordered by time, optionally
	// restricted to one date when date is not empty.
	FindAvailable(ctx context.Context, date string) ([]models.Slot, error)
	// Insert fails with a conflict error when (date, time) is taken.
	Insert(ctx context.Context, slot *models.Slot) error
	SetAvailability(ctx context.Context, slotID string, isAvailable bool) error
	// CompareAndSetAvailability flips is_available from expected to value in
	// a single conditional write and reports whether this call won.
	CompareAndSetAvailability(ctx context.Context, slotID string, expected, value bool) (bool, error)
	// Delete removes the slot only while it is available. A held slot fails
	// with ErrSlotHasBookings, a missing one with ErrSlotNotFound.
	Delete(ctx context.Context, slotID string) error
	EnsureIndexes(ctx context.Context) error
}
