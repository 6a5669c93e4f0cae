package controllers

import (
	"context"
	"creapar-service/internal/app/contracts"
	"creapar-service/internal/pkg/constvars"
	"creapar-service/internal/pkg/dto/requests"
	"creapar-service/internal/pkg/exceptions"
	"creapar-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SlotController struct {
	Log         *zap.Logger
	SlotUsecase contracts.SlotUsecase
}

func NewSlotController(logger *zap.Logger, slotUsecase contracts.SlotUsecase) *SlotController {
	return &SlotController{
		Log:         logger,
		SlotUsecase: slotUsecase,
	}
}

func (ctrl *SlotController) FindAvailable(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	date := r.URL.Query().Get("date")
	ctrl.Log.Info("SlotController.FindAvailable called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date),
	)

	if date != "" {
		if _, err := utils.ParseDate(date); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidDate(err, "date"))
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	result, err := ctrl.SlotUsecase.FindAvailable(ctx, date)
	if err != nil {
		ctrl.Log.Error("SlotController.FindAvailable error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}

func (ctrl *SlotController) CreateSlot(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("SlotController.CreateSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateSlot)
	err := utils.ParseAndValidateRequest(r, request)
	if err != nil {
		ctrl.Log.Info("SlotController.CreateSlot invalid request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	result, err := ctrl.SlotUsecase.CreateSlot(ctx, request)
	if err != nil {
		ctrl.Log.Error("SlotController.CreateSlot error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, result)
}

func (ctrl *SlotController) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	slotID := chi.URLParam(r, "id")
	ctrl.Log.Info("SlotController.DeleteSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotIDKey, slotID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	err := ctrl.SlotUsecase.DeleteSlot(ctx, slotID)
	if err != nil {
		ctrl.Log.Error("SlotController.DeleteSlot error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildMessageResponse(w, constvars.StatusOK, constvars.DeleteSlotMsg)
}
