package ingest

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/caminohealth/camino-backend/internal/pkg/logger"
)

const (
	JobStatusQueued  = "queued"
	JobStatusRunning = "running"
	JobStatusDone    = "done"
	JobStatusFailed  = "failed"
)

// Job tracks one queued upload through the loader.
type Job struct {
	ID       string    `json:"id"`
	Domain   string    `json:"domain"`
	FileName string    `json:"fileName"`
	Status   string    `json:"status"`
	Rows     int       `json:"rows"`
	Error    string    `json:"error,omitempty"`
	Queued   time.Time `json:"queued"`
	Finished time.Time `json:"finished,omitempty"`

	filePath string
}

// Runner processes uploads off the request path: the controller saves
// the file, enqueues a job and returns; a single worker drains the
// queue so concurrent uploads of the same domain never interleave
// their upserts.
type Runner struct {
	service *Service

	mu   sync.RWMutex
	jobs map[string]*Job

	queue chan *Job
}

func NewRunner(service *Service) *Runner {
	return &Runner{
		service: service,
		jobs:    make(map[string]*Job),
		queue:   make(chan *Job, 64),
	}
}

// Start launches the worker; it exits when ctx is cancelled.
func (r *Runner) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case job := <-r.queue:
				r.run(ctx, job)
			}
		}
	}()
}

// Enqueue registers an upload for processing and returns the job id.
func (r *Runner) Enqueue(ctx context.Context, domainName, fileName, filePath string) (*Job, error) {
	if _, err := Lookup(domainName); err != nil {
		return nil, err
	}

	job := &Job{
		ID:       uuid.NewString(),
		Domain:   domainName,
		FileName: fileName,
		Status:   JobStatusQueued,
		Queued:   time.Now(),
		filePath: filePath,
	}

	r.mu.Lock()
	r.jobs[job.ID] = job
	r.mu.Unlock()

	select {
	case r.queue <- job:
	default:
		r.setFailed(job, fmt.Errorf("ingest queue full"))
		return nil, fmt.Errorf("ingest queue full")
	}

	logger.Infof(ctx, "queued %s upload %s as job %s", domainName, fileName, job.ID)
	return r.snapshot(job.ID), nil
}

// Job returns a copy of the job's current state, or nil if unknown.
func (r *Runner) Job(id string) *Job {
	return r.snapshot(id)
}

func (r *Runner) run(ctx context.Context, job *Job) {
	r.mu.Lock()
	job.Status = JobStatusRunning
	r.mu.Unlock()

	f, err := os.Open(job.filePath)
	if err != nil {
		r.setFailed(job, fmt.Errorf("open upload: %w", err))
		logger.Errorf(ctx, "job %s: %s", job.ID, err.Error())
		return
	}
	defer f.Close()

	rows, err := r.service.Ingest(ctx, job.Domain, job.FileName, f)

	r.mu.Lock()
	job.Rows = rows
	job.Finished = time.Now()
	if err != nil {
		job.Status = JobStatusFailed
		job.Error = err.Error()
	} else {
		job.Status = JobStatusDone
	}
	r.mu.Unlock()

	if err != nil {
		logger.Errorf(ctx, "job %s (%s): %s", job.ID, job.Domain, err.Error())
		return
	}
	logger.Infof(ctx, "job %s (%s): %d rows", job.ID, job.Domain, rows)
}

func (r *Runner) setFailed(job *Job, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job.Status = JobStatusFailed
	job.Error = err.Error()
	job.Finished = time.Now()
}

func (r *Runner) snapshot(id string) *Job {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil
	}
	copied := *job
	return &copied
}
