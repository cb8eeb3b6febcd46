package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wadjakorntonsri/coin-collection/pkg/core/domain"
	"github.com/wadjakorntonsri/coin-collection/pkg/logger"
	"github.com/wadjakorntonsri/coin-collection/pkg/metrics"
	"github.com/wadjakorntonsri/coin-collection/pkg/ports"
)

type task struct {
	id     string
	run    ports.JobFunc
	onDone func(domain.Job)
}

// Dispatcher runs jobs one at a time on a single goroutine, in submission order.
// Every job's callback is invoked exactly once, after the job finishes and before
// the next job starts.
type Dispatcher struct {
	queue    chan task
	stopChan chan struct{}
	done     chan struct{}

	mu      sync.RWMutex
	running bool
	jobs    map[string]*domain.Job
}

var _ ports.JobDispatcher = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher that holds up to size pending jobs.
func NewDispatcher(size int) *Dispatcher {
	if size <= 0 {
		size = 1
	}
	return &Dispatcher{
		queue: make(chan task, size),
		jobs:  make(map[string]*domain.Job),
	}
}

// Start launches the worker. Jobs run with ctx's values but are not cancelled with it.
func (d *Dispatcher) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return fmt.Errorf("dispatcher is already running")
	}
	d.running = true
	d.stopChan = make(chan struct{})
	d.done = make(chan struct{})
	go d.run(context.WithoutCancel(ctx), d.stopChan, d.done)
	return nil
}

// Stop refuses new jobs, finishes the queued ones and waits for the worker to exit.
func (d *Dispatcher) Stop() error {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return fmt.Errorf("dispatcher is not running")
	}
	d.running = false
	stop, done := d.stopChan, d.done
	d.mu.Unlock()

	close(stop)
	<-done
	return nil
}

// Submit queues a job. onDone may be nil.
func (d *Dispatcher) Submit(kind string, fn ports.JobFunc, onDone func(domain.Job)) (domain.Job, error) {
	job := &domain.Job{
		ID:        uuid.NewString(),
		Kind:      kind,
		State:     domain.JobQueued,
		Submitted: time.Now(),
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.running {
		return domain.Job{}, domain.ErrDispatcherStopped
	}
	metrics.JobQueueDepth.Inc()
	select {
	case d.queue <- task{id: job.ID, run: fn, onDone: onDone}:
	default:
		metrics.JobQueueDepth.Dec()
		metrics.JobsTotal.WithLabelValues(kind, "rejected").Inc()
		return domain.Job{}, domain.ErrQueueFull
	}
	d.jobs[job.ID] = job
	return *job, nil
}

// Get returns a snapshot of a job's status.
func (d *Dispatcher) Get(id string) (domain.Job, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	job, ok := d.jobs[id]
	if !ok {
		return domain.Job{}, false
	}
	return *job, true
}

func (d *Dispatcher) run(ctx context.Context, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case t := <-d.queue:
			d.execute(ctx, t)
		case <-stop:
			for {
				select {
				case t := <-d.queue:
					d.execute(ctx, t)
				default:
					return
				}
			}
		}
	}
}

func (d *Dispatcher) execute(ctx context.Context, t task) {
	metrics.JobQueueDepth.Dec()

	d.mu.Lock()
	job := d.jobs[t.id]
	job.State = domain.JobRunning
	d.mu.Unlock()

	result, err := d.safeRun(ctx, t.run)

	d.mu.Lock()
	now := time.Now()
	job.Finished = &now
	if err != nil {
		job.State = domain.JobFailed
		job.Error = err.Error()
	} else {
		job.State = domain.JobDone
		job.Result = result
	}
	snapshot := *job
	d.mu.Unlock()

	metrics.JobsTotal.WithLabelValues(job.Kind, string(snapshot.State)).Inc()
	log := logger.FromContext(ctx).With(zap.String("job", snapshot.ID), zap.String("kind", snapshot.Kind))
	if err != nil {
		log.Warn("job failed", zap.Error(err))
	} else {
		log.Info("job finished", zap.Duration("elapsed", now.Sub(snapshot.Submitted)))
	}

	if t.onDone != nil {
		t.onDone(snapshot)
	}
}

func (d *Dispatcher) safeRun(ctx context.Context, fn ports.JobFunc) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job panicked: %v", r)
		}
	}()
	return fn(ctx)
}
