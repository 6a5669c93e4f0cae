package schedules

import (
	"context"
	"creapar-service/internal/app/config"
	"creapar-service/internal/app/contracts"
	"creapar-service/internal/pkg/constvars"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultWorkerCronSpec = "@daily"

// Worker keeps a rolling window of slots seeded. Only the instance holding
// the leader lock seeds on a given tick.
type Worker struct {
	log      *zap.Logger
	cfg      config.Schedule
	locker   contracts.LockerService
	schedule contracts.ScheduleUsecase
	now      func() time.Time
	cron     *cron.Cron
	runCtx   context.Context
	cancel   context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg config.Schedule, lockerSvc contracts.LockerService, scheduleUsecase contracts.ScheduleUsecase) *Worker {
	return &Worker{
		log:      log,
		cfg:      cfg,
		locker:   lockerSvc,
		schedule: scheduleUsecase,
		now:      time.Now,
	}
}

func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.WorkerCronSpec
	if spec == "" {
		spec = defaultWorkerCronSpec
	}
	_, err := c.AddFunc(spec, func() { w.RunOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("schedule.worker: invalid cron spec, falling back to @daily",
			zap.String(constvars.LoggingCronSpecKey, spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(defaultWorkerCronSpec, func() { w.RunOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
	w.log.Info("schedule.worker: started", zap.String(constvars.LoggingCronSpecKey, spec))
}

// Stop cancels an in-flight run and waits for it to return.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *Worker) lockTTL() time.Duration {
	if w.cfg.LeaderLockTTLInSeconds <= 0 {
		return 2 * time.Minute
	}
	return time.Duration(w.cfg.LeaderLockTTLInSeconds) * time.Second
}

func (w *Worker) rollingWeeks() int {
	weeks := w.cfg.RollingWeeks
	if weeks < 1 {
		return 1
	}
	if weeks > constvars.ScheduleMaxWeeks {
		return constvars.ScheduleMaxWeeks
	}
	return weeks
}

// RunOnce seeds from today for the configured number of weeks if the leader
// lock can be taken. It returns the number of slots created.
func (w *Worker) RunOnce(ctx context.Context) int {
	ttl := w.lockTTL()
	acquired, token, err := w.locker.TryLock(ctx, constvars.ScheduleWorkerLockKey, ttl)
	if err != nil {
		w.log.Warn("schedule.worker: leader lock attempt failed", zap.Error(err))
		return 0
	}
	if !acquired {
		w.log.Info("schedule.worker: leader lock not acquired; another instance is running")
		return 0
	}
	defer func() {
		if err := w.locker.Unlock(context.WithoutCancel(ctx), constvars.ScheduleWorkerLockKey, token); err != nil {
			w.log.Warn("schedule.worker: failed to release leader lock", zap.Error(err))
		}
	}()

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(ttl / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(refreshCtx, constvars.ScheduleWorkerLockKey, token, ttl); err != nil {
					w.log.Warn("schedule.worker: failed to refresh leader lock TTL", zap.Error(err))
				}
			}
		}
	}()

	runCtx := ctx
	if w.cfg.RunTimeoutInSeconds > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, time.Duration(w.cfg.RunTimeoutInSeconds)*time.Second)
		defer cancel()
	}

	created, err := w.schedule.BulkSeedSchedule(runCtx, w.now(), w.rollingWeeks())
	if err != nil {
		w.log.Warn("schedule.worker: rolling seed failed",
			zap.Int(constvars.LoggingSlotsCreatedKey, created),
			zap.Error(err),
		)
		return created
	}
	w.log.Info("schedule.worker: rolling seed finished",
		zap.Int(constvars.LoggingSlotsCreatedKey, created),
		zap.Int(constvars.LoggingWeeksKey, w.rollingWeeks()),
	)
	return created
}
