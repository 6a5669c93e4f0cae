package controllers

import (
	"context"
	"creapar-service/internal/app/contracts"
	"creapar-service/internal/pkg/constvars"
	"creapar-service/internal/pkg/dto/requests"
	"creapar-service/internal/pkg/dto/responses"
	"creapar-service/internal/pkg/exceptions"
	"creapar-service/internal/pkg/utils"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// bulk seeding issues one store round trip per slot, so a year of schedule
// needs more room than the regular handler deadline.
const bulkCreateTimeout = 60 * time.Second

type ScheduleController struct {
	Log             *zap.Logger
	ScheduleUsecase contracts.ScheduleUsecase
}

func NewScheduleController(logger *zap.Logger, scheduleUsecase contracts.ScheduleUsecase) *ScheduleController {
	return &ScheduleController{
		Log:             logger,
		ScheduleUsecase: scheduleUsecase,
	}
}

func (ctrl *ScheduleController) BulkCreate(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("ScheduleController.BulkCreate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.BulkCreateSchedule)
	err := utils.ParseAndValidateRequest(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	startDate, err := utils.ParseDate(request.StartDate)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidDate(err, "start_date"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), bulkCreateTimeout)
	defer cancel()

	created, err := ctrl.ScheduleUsecase.BulkSeedSchedule(ctx, startDate, request.Weeks)
	if err != nil {
		ctrl.Log.Error("ScheduleController.BulkCreate error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingSlotsCreatedKey, created),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.BulkCreateSchedule{
		Message:      fmt.Sprintf(constvars.BulkCreateMsgFormat, created, request.Weeks),
		SlotsCreated: created,
		StartDate:    request.StartDate,
		Weeks:        request.Weeks,
	})
}
