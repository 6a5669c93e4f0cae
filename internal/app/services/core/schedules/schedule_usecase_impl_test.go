package schedules

import (
	"context"
	"creapar-service/internal/app/contracts"
	"creapar-service/internal/app/services/core/appointments"
	"creapar-service/internal/app/services/core/slots"
	"creapar-service/internal/pkg/constvars"
	"creapar-service/internal/pkg/dto/requests"
	"creapar-service/internal/pkg/dto/responses"
	"creapar-service/internal/pkg/exceptions"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockSlotUsecase struct {
	mock.Mock
}

func (m *MockSlotUsecase) CreateSlot(ctx context.Context, request *requests.CreateSlot) (*responses.Slot, error) {
	args := m.Called(ctx, request)
	slot, _ := args.Get(0).(*responses.Slot)
	return slot, args.Error(1)
}

func (m *MockSlotUsecase) FindAvailable(ctx context.Context, date string) ([]responses.Slot, error) {
	args := m.Called(ctx, date)
	result, _ := args.Get(0).([]responses.Slot)
	return result, args.Error(1)
}

func (m *MockSlotUsecase) DeleteSlot(ctx context.Context, slotID string) error {
	args := m.Called(ctx, slotID)
	return args.Error(0)
}

func newSeedFixture() (contracts.ScheduleUsecase, contracts.SlotUsecase, contracts.SlotRepository) {
	logger := zap.NewNop()
	slotRepository := slots.NewSlotMemoryRepository()
	slotUsecase := slots.NewSlotUsecase(slotRepository, appointments.NewAppointmentMemoryRepository(), logger)
	return NewScheduleUsecase(slotUsecase, logger), slotUsecase, slotRepository
}

func TestScheduleUsecase_BulkSeedSchedule(t *testing.T) {
	ctx := context.Background()
	monday := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)

	t.Run("Seeds One Week From 2024-01-01", func(t *testing.T) {
		usecase, _, slotRepository := newSeedFixture()

		created, err := usecase.BulkSeedSchedule(ctx, monday, 1)

		require.NoError(t, err)
		assert.Equal(t, 86, created)

		mondaySlots, err := slotRepository.FindAvailable(ctx, "2024-01-01")
		require.NoError(t, err)
		assert.Len(t, mondaySlots, 16)
		assert.Equal(t, "08:00:00", mondaySlots[0].Time)
		assert.Equal(t, constvars.SlotTypeAppointment, mondaySlots[0].Type)

		saturdaySlots, err := slotRepository.FindAvailable(ctx, "2024-01-06")
		require.NoError(t, err)
		assert.Len(t, saturdaySlots, 6)

		sundaySlots, err := slotRepository.FindAvailable(ctx, "2024-01-07")
		require.NoError(t, err)
		assert.Empty(t, sundaySlots)
	})

	t.Run("Count Matches Template For Several Weeks", func(t *testing.T) {
		usecase, _, _ := newSeedFixture()

		created, err := usecase.BulkSeedSchedule(ctx, monday, 4)

		require.NoError(t, err)
		assert.Equal(t, 16*5*4+6*4, created)
	})

	t.Run("Second Run Creates Nothing", func(t *testing.T) {
		usecase, _, _ := newSeedFixture()

		_, err := usecase.BulkSeedSchedule(ctx, monday, 2)
		require.NoError(t, err)

		created, err := usecase.BulkSeedSchedule(ctx, monday, 2)
		require.NoError(t, err)
		assert.Zero(t, created)
	})

	t.Run("Existing Slots Are Skipped Regardless Of Type", func(t *testing.T) {
		usecase, slotUsecase, _ := newSeedFixture()

		_, err := slotUsecase.CreateSlot(ctx, &requests.CreateSlot{Date: "2024-01-01", Time: "08:00:00", Type: constvars.SlotTypeEvent})
		require.NoError(t, err)
		_, err = slotUsecase.CreateSlot(ctx, &requests.CreateSlot{Date: "2024-01-06", Time: "11:30:00"})
		require.NoError(t, err)

		created, err := usecase.BulkSeedSchedule(ctx, monday, 1)

		require.NoError(t, err)
		assert.Equal(t, 84, created)
	})

	t.Run("Overlapping Ranges", func(t *testing.T) {
		usecase, _, _ := newSeedFixture()

		_, err := usecase.BulkSeedSchedule(ctx, monday, 1)
		require.NoError(t, err)

		created, err := usecase.BulkSeedSchedule(ctx, monday, 2)
		require.NoError(t, err)
		assert.Equal(t, 86, created, "only the second week is new")
	})

	t.Run("Weeks Out Of Range", func(t *testing.T) {
		usecase, _, _ := newSeedFixture()

		for _, weeks := range []int{0, -1, 53} {
			created, err := usecase.BulkSeedSchedule(ctx, monday, weeks)
			assert.Zero(t, created)
			assert.True(t, exceptions.IsKind(err, exceptions.KindValidation), "weeks=%d should be rejected", weeks)
		}
	})

	t.Run("Store Fault Aborts With Partial Count", func(t *testing.T) {
		slotUsecase := new(MockSlotUsecase)
		storeErr := exceptions.ErrMongoDBInsertDocument(errors.New("connection reset"))
		slotUsecase.On("CreateSlot", mock.Anything, mock.Anything).Return(&responses.Slot{}, nil).Twice()
		slotUsecase.On("CreateSlot", mock.Anything, mock.Anything).Return(nil, storeErr).Once()

		usecase := NewScheduleUsecase(slotUsecase, zap.NewNop())
		created, err := usecase.BulkSeedSchedule(ctx, monday, 1)

		assert.Equal(t, 2, created)
		assert.ErrorIs(t, err, storeErr)
		slotUsecase.AssertNumberOfCalls(t, "CreateSlot", 3)
	})
}
