package slots

import (
	"context"
	"creapar-service/internal/app/contracts"
	"creapar-service/internal/app/models"
	"creapar-service/internal/pkg/constvars"
	"creapar-service/internal/pkg/dto/requests"
	"creapar-service/internal/pkg/dto/responses"
	"creapar-service/internal/pkg/exceptions"
	"creapar-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type slotUsecase struct {
	SlotRepository        contracts.SlotRepository
	AppointmentRepository contracts.AppointmentRepository
	Log                   *zap.Logger
}

func NewSlotUsecase(
	slotRepository contracts.SlotRepository,
	appointmentRepository contracts.AppointmentRepository,
	logger *zap.Logger,
) contracts.SlotUsecase {
	return &slotUsecase{
		SlotRepository:        slotRepository,
		AppointmentRepository: appointmentRepository,
		Log:                   logger,
	}
}

func (uc *slotUsecase) CreateSlot(ctx context.Context, request *requests.CreateSlot) (*responses.Slot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("slotUsecase.CreateSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, request.Date),
		zap.String(constvars.LoggingTimeKey, request.Time),
	)

	existingSlot, err := uc.SlotRepository.FindByDateTime(ctx, request.Date, request.Time)
	if err != nil {
		uc.Log.Error("slotUsecase.CreateSlot error fetching slot by date and time",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existingSlot != nil {
		uc.Log.Info("slotUsecase.CreateSlot slot already exists",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotIDKey, existingSlot.ID),
		)
		return nil, exceptions.ErrSlotAlreadyExists(request.Date, request.Time)
	}

	slotType := request.Type
	if slotType == "" {
		slotType = constvars.SlotTypeAppointment
	}

	slot := &models.Slot{
		ID:          utils.GenerateID(),
		Date:        request.Date,
		Time:        request.Time,
		Type:        slotType,
		IsAvailable: true,
		CreatedAt:   time.Now(),
	}

	err = uc.SlotRepository.Insert(ctx, slot)
	if err != nil {
		uc.Log.Error("slotUsecase.CreateSlot error inserting slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("slotUsecase.CreateSlot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotIDKey, slot.ID),
		zap.String(constvars.LoggingSlotTypeKey, slot.Type),
	)

	response := slot.ConvertIntoResponse()
	return &response, nil
}

func (uc *slotUsecase) FindAvailable(ctx context.Context, date string) ([]responses.Slot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("slotUsecase.FindAvailable called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date),
	)

	slots, err := uc.SlotRepository.FindAvailable(ctx, date)
	if err != nil {
		uc.Log.Error("slotUsecase.FindAvailable error fetching available slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Slot, len(slots))
	for i, eachSlot := range slots {
		response[i] = eachSlot.ConvertIntoResponse()
	}

	uc.Log.Info("slotUsecase.FindAvailable succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)),
	)
	return response, nil
}

// DeleteSlot removes a slot nobody holds. Cancelled appointments do not block
// deletion and are left pointing at the removed slot. The ledger check covers
// appointments whose slot was released by hand; the repository refuses to
// delete a slot that a booking in flight has already claimed.
func (uc *slotUsecase) DeleteSlot(ctx context.Context, slotID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("slotUsecase.DeleteSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotIDKey, slotID),
	)

	blockingAppointment, err := uc.AppointmentRepository.FindBlockingBySlot(ctx, slotID)
	if err != nil {
		uc.Log.Error("slotUsecase.DeleteSlot error fetching appointments for slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if blockingAppointment != nil {
		uc.Log.Info("slotUsecase.DeleteSlot slot still has a live appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, blockingAppointment.ID),
		)
		return exceptions.ErrSlotHasBookings(slotID)
	}

	err = uc.SlotRepository.Delete(ctx, slotID)
	if exceptions.IsKind(err, exceptions.KindConflict) {
		uc.Log.Info("slotUsecase.DeleteSlot slot is held by a booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotIDKey, slotID),
		)
		return err
	}
	if err != nil {
		uc.Log.Error("slotUsecase.DeleteSlot error deleting slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("slotUsecase.DeleteSlot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotIDKey, slotID),
	)
	return nil
}
