package dispatch

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/mvukovic/trophystats/internal/telemetry/metrics"
)

// Job is a self-contained unit of work. Jobs must be idempotent: the
// dispatcher guarantees at-least-once execution, either through a worker
// or inline on the caller's goroutine when the queue is unavailable.
type Job func(ctx context.Context)

const (
	defaultQueueSize = 256
	defaultWorkers   = 4
)

// Dispatcher runs jobs on a small worker pool. A full (or stopped) queue
// never drops a job, it falls back to an inline synchronous call instead.
type Dispatcher struct {
	jobs    chan Job
	metrics *metrics.Manager

	mutex   sync.Mutex
	started bool
	stopped bool
	wg      sync.WaitGroup
	workers int
}

func NewDispatcher(metricsManager *metrics.Manager, queueSize, workers int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Dispatcher{
		jobs:    make(chan Job, queueSize),
		metrics: metricsManager,
		workers: workers,
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.started {
		return
	}
	d.started = true

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(ctx)
	}
	log.Debugf("dispatcher started with %d workers", d.workers)
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for job := range d.jobs {
		job(ctx)
	}
}

// Dispatch hands the job to the worker pool. When the pool is not
// running or the queue is full, the job runs right here, right now.
func (d *Dispatcher) Dispatch(ctx context.Context, job Job) {
	if d.tryQueue(job) {
		d.metrics.CounterJobsDispatched.Inc()
		return
	}

	d.metrics.CounterJobsInline.Inc()
	job(ctx)
}

// tryQueue attempts a non-blocking send while holding the mutex, so Stop
// can never close the channel mid-send.
func (d *Dispatcher) tryQueue(job Job) bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if !d.started || d.stopped {
		return false
	}
	select {
	case d.jobs <- job:
		return true
	default:
		log.Warn("dispatcher queue full, running job inline")
		return false
	}
}

// Stop closes the queue and waits for the workers to drain it.
// Jobs dispatched after Stop run inline.
func (d *Dispatcher) Stop() {
	d.mutex.Lock()
	if d.stopped {
		d.mutex.Unlock()
		return
	}
	d.stopped = true
	started := d.started
	d.mutex.Unlock()

	close(d.jobs)
	if started {
		d.wg.Wait()
	}
	log.Debug("dispatcher stopped")
}
