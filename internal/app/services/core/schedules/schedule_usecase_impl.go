package schedules

import (
	"context"
	"creapar-service/internal/app/contracts"
	"creapar-service/internal/pkg/constvars"
	"creapar-service/internal/pkg/dto/requests"
	"creapar-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

type scheduleUsecase struct {
	SlotUsecase contracts.SlotUsecase
	Log         *zap.Logger
}

func NewScheduleUsecase(slotUsecase contracts.SlotUsecase, logger *zap.Logger) contracts.ScheduleUsecase {
	return &scheduleUsecase{
		SlotUsecase: slotUsecase,
		Log:         logger,
	}
}

// BulkSeedSchedule creates the weekly template over the requested range.
// Slots that already exist are skipped, so overlapping runs are safe.
func (uc *scheduleUsecase) BulkSeedSchedule(ctx context.Context, startDate time.Time, weeks int) (int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.BulkSeedSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStartDateKey, formatScheduleDate(startDate)),
		zap.Int(constvars.LoggingWeeksKey, weeks),
	)

	if weeks < 1 || weeks > constvars.ScheduleMaxWeeks {
		return 0, exceptions.ErrInvalidScheduleWeeks(weeks)
	}

	created, skipped := 0, 0
	for date, times := range ExpandSchedule(startDate, weeks) {
		for _, slotTime := range times {
			_, err := uc.SlotUsecase.CreateSlot(ctx, &requests.CreateSlot{
				Date: formatScheduleDate(date),
				Time: slotTime,
				Type: constvars.SlotTypeAppointment,
			})
			if err != nil {
				if exceptions.IsKind(err, exceptions.KindConflict) {
					skipped++
					continue
				}
				uc.Log.Error("scheduleUsecase.BulkSeedSchedule error creating slot",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingDateKey, formatScheduleDate(date)),
					zap.String(constvars.LoggingTimeKey, slotTime),
					zap.Int(constvars.LoggingSlotsCreatedKey, created),
					zap.Error(err),
				)
				return created, err
			}
			created++
		}
	}

	uc.Log.Info("scheduleUsecase.BulkSeedSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotsCreatedKey, created),
		zap.Int(constvars.LoggingSlotsSkippedKey, skipped),
	)
	return created, nil
}
