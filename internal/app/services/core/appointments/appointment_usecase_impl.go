package appointments

import (
	"context"
	"creapar-service/internal/app/contracts"
	"creapar-service/internal/app/models"
	"creapar-service/internal/pkg/constvars"
	"creapar-service/internal/pkg/dto/requests"
	"creapar-service/internal/pkg/dto/responses"
	"creapar-service/internal/pkg/exceptions"
	"creapar-service/internal/pkg/utils"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	SlotRepository         contracts.SlotRepository
	AppointmentRepository  contracts.AppointmentRepository
	NotificationDispatcher contracts.NotificationDispatcher
	Log                    *zap.Logger
}

func NewAppointmentUsecase(
	slotRepository contracts.SlotRepository,
	appointmentRepository contracts.AppointmentRepository,
	notificationDispatcher contracts.NotificationDispatcher,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		SlotRepository:         slotRepository,
		AppointmentRepository:  appointmentRepository,
		NotificationDispatcher: notificationDispatcher,
		Log:                    logger,
	}
}

// BookSlot reserves a slot for a client. The availability flag is claimed
// with a conditional write before the ledger is touched, so among concurrent
// callers on one slot only the CAS winner ever inserts an appointment.
func (uc *appointmentUsecase) BookSlot(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.BookSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotIDKey, request.SlotID),
	)

	slot, err := uc.SlotRepository.FindByID(ctx, request.SlotID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.BookSlot error fetching slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if slot == nil || !slot.IsAvailable {
		uc.Log.Info("appointmentUsecase.BookSlot slot is not available",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotIDKey, request.SlotID),
		)
		return nil, exceptions.ErrSlotUnavailable(request.SlotID)
	}

	// Availability and the ledger can disagree after a partially failed
	// write, so the ledger is checked on its own.
	activeAppointment, err := uc.AppointmentRepository.FindActiveBySlot(ctx, request.SlotID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.BookSlot error fetching active appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if activeAppointment != nil {
		uc.Log.Info("appointmentUsecase.BookSlot slot already booked",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, activeAppointment.ID),
		)
		return nil, exceptions.ErrSlotAlreadyBooked(request.SlotID)
	}

	claimed, err := uc.SlotRepository.CompareAndSetAvailability(ctx, request.SlotID, true, false)
	if err != nil {
		uc.Log.Error("appointmentUsecase.BookSlot error claiming slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !claimed {
		uc.Log.Info("appointmentUsecase.BookSlot lost the race for slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotIDKey, request.SlotID),
		)
		return nil, exceptions.ErrSlotUnavailable(request.SlotID)
	}

	appointment := &models.Appointment{
		ID:         utils.GenerateID(),
		SlotID:     request.SlotID,
		ClientName: strings.TrimSpace(request.ClientName),
		WhatsApp:   utils.NormalizePhoneNumber(request.WhatsApp),
		Notes:      request.Notes,
		Date:       request.Date,
		Time:       request.Time,
		Status:     constvars.AppointmentStatusConfirmed,
		CreatedAt:  time.Now(),
	}

	err = uc.AppointmentRepository.Insert(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.BookSlot error inserting appointment, releasing slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.releaseSlot(context.WithoutCancel(ctx), requestID, request.SlotID)
		return nil, err
	}

	uc.notifyBooking(requestID, appointment)

	uc.Log.Info("appointmentUsecase.BookSlot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.String(constvars.LoggingSlotIDKey, appointment.SlotID),
	)

	response := appointment.ConvertIntoResponse()
	return &response, nil
}

// CancelAppointment cancels a booking and frees its slot. Only the call that
// actually moves the appointment to cancelled releases the slot; a repeated
// or concurrent cancel changes nothing, since the slot may already belong to
// a newer booking.
func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CancelAppointment error fetching appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(appointmentID)
	}

	cancelled := false
	if appointment.Status != constvars.AppointmentStatusCancelled {
		cancelled, err = uc.AppointmentRepository.CompareAndSetStatus(ctx, appointmentID, appointment.Status, constvars.AppointmentStatusCancelled)
		if err != nil {
			uc.Log.Error("appointmentUsecase.CancelAppointment error updating appointment status",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return err
		}
	}
	if !cancelled {
		uc.Log.Info("appointmentUsecase.CancelAppointment appointment already cancelled",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		)
		return nil
	}

	err = uc.SlotRepository.SetAvailability(ctx, appointment.SlotID, true)
	if err != nil {
		if !exceptions.IsKind(err, exceptions.KindNotFound) {
			uc.Log.Error("appointmentUsecase.CancelAppointment error releasing slot",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return err
		}
		uc.Log.Warn("appointmentUsecase.CancelAppointment slot no longer exists",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotIDKey, appointment.SlotID),
		)
	}

	uc.Log.Info("appointmentUsecase.CancelAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

func (uc *appointmentUsecase) FindAll(ctx context.Context, date string) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date),
	)

	appointments, err := uc.AppointmentRepository.FindAll(ctx, date)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAll error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Appointment, len(appointments))
	for i, eachAppointment := range appointments {
		response[i] = eachAppointment.ConvertIntoResponse()
	}

	uc.Log.Info("appointmentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)),
	)
	return response, nil
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindByID error fetching appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(appointmentID)
	}

	response := appointment.ConvertIntoResponse()
	return &response, nil
}

func (uc *appointmentUsecase) releaseSlot(ctx context.Context, requestID, slotID string) {
	err := uc.SlotRepository.SetAvailability(ctx, slotID, true)
	if err != nil {
		uc.Log.Error("appointmentUsecase.releaseSlot error restoring slot availability",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotIDKey, slotID),
			zap.Error(err),
		)
	}
}

func (uc *appointmentUsecase) notifyBooking(requestID string, appointment *models.Appointment) {
	messageDate, messageTime := utils.FormatMessageDateTime(appointment.Date, appointment.Time)
	message := fmt.Sprintf(constvars.BookingConfirmationFormat, appointment.ClientName, messageDate, messageTime)

	queued := uc.NotificationDispatcher.Enqueue(utils.WhatsAppDestination(appointment.WhatsApp), message)
	if !queued {
		uc.Log.Warn("appointmentUsecase.notifyBooking confirmation dropped",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		)
	}
}
