package notification

import (
	"context"
	"creapar-service/internal/app/contracts"
	"creapar-service/internal/pkg/constvars"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const defaultDrainTimeout = 5 * time.Second

type job struct {
	destination string
	message     string
}

type Options struct {
	QueueSize     int
	RatePerSecond float64
	Burst         int
	SendTimeout   time.Duration
	DrainTimeout  time.Duration
}

// Dispatcher delivers notifications on a single worker goroutine, paced by a
// token bucket. Producers never block: a full queue drops the message.
type Dispatcher struct {
	notifier     contracts.Notifier
	log          *zap.Logger
	limiter      *rate.Limiter
	sendTimeout  time.Duration
	drainTimeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan job

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	start  sync.Once
	stop   sync.Once
}

func NewDispatcher(notifier contracts.Notifier, logger *zap.Logger, opts Options) *Dispatcher {
	if opts.QueueSize <= 0 {
		opts.QueueSize = constvars.NotificationQueueSize
	}
	if opts.Burst <= 0 {
		opts.Burst = 1
	}
	limit := rate.Inf
	if opts.RatePerSecond > 0 {
		limit = rate.Limit(opts.RatePerSecond)
	}
	if opts.DrainTimeout <= 0 {
		opts.DrainTimeout = defaultDrainTimeout
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		notifier:     notifier,
		log:          logger,
		limiter:      rate.NewLimiter(limit, opts.Burst),
		sendTimeout:  opts.SendTimeout,
		drainTimeout: opts.DrainTimeout,
		queue:        make(chan job, opts.QueueSize),
		ctx:          ctx,
		cancel:       cancel,
		done:         make(chan struct{}),
	}
}

// Start launches the worker. Calling it more than once has no effect.
func (d *Dispatcher) Start() {
	d.start.Do(func() {
		go d.run()
	})
}

// Enqueue implements contracts.NotificationDispatcher.
func (d *Dispatcher) Enqueue(destination, message string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return false
	}
	select {
	case d.queue <- job{destination: destination, message: message}:
		return true
	default:
		d.log.Warn("Dispatcher.Enqueue queue full, dropping notification",
			zap.String(constvars.LoggingDestinationKey, destination),
			zap.Int(constvars.LoggingQueueLengthKey, len(d.queue)),
		)
		return false
	}
}

// Stop refuses new work and drains what is queued. Messages still pending
// after the drain timeout are dropped.
func (d *Dispatcher) Stop() {
	d.stop.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.queue)
		d.mu.Unlock()

		d.Start()
		timer := time.NewTimer(d.drainTimeout)
		defer timer.Stop()
		select {
		case <-d.done:
		case <-timer.C:
			d.log.Warn("Dispatcher.Stop drain timeout reached",
				zap.Int(constvars.LoggingQueueLengthKey, len(d.queue)),
			)
			d.cancel()
			<-d.done
		}
		d.cancel()
	})
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for j := range d.queue {
		if err := d.limiter.Wait(d.ctx); err != nil {
			d.log.Warn("Dispatcher.run notification dropped",
				zap.String(constvars.LoggingDestinationKey, j.destination),
				zap.Error(err),
			)
			continue
		}
		d.deliver(j)
	}
}

func (d *Dispatcher) deliver(j job) {
	ctx := d.ctx
	if d.sendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(d.ctx, d.sendTimeout)
		defer cancel()
	}

	defer func() {
		if rec := recover(); rec != nil {
			d.log.Error("Dispatcher.deliver notifier panicked",
				zap.String(constvars.LoggingDestinationKey, j.destination),
				zap.Any(constvars.LoggingErrorKey, rec),
			)
		}
	}()

	if !d.notifier.Send(ctx, j.destination, j.message) {
		d.log.Warn("Dispatcher.deliver notifier rejected message",
			zap.String(constvars.LoggingDestinationKey, j.destination),
		)
	}
}
