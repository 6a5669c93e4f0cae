package contracts

import (
	"context"
	"time"
)

type ScheduleUsecase interface {
	// BulkSeedSchedule creates every missing slot of the weekly template for
	// weeks weeks from startDate and returns how many were created.
	BulkSeedSchedule(ctx context.Context, startDate time.Time, weeks int) (int, error)
}
