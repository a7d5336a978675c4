package batch

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/UnforeseenOcean/snippets-1/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a batch progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Embedder applies one job's artwork to its audio file.
type Embedder interface {
	Apply(ctx context.Context, job model.Job) error
}

// Runner coordinates a batch of embedding jobs.
//
// A Runner is used for a single run: Initialize enumerates the audio
// files and builds the job list, Run executes it. Workers bound how
// many encoder processes exist at once; one worker gives a strictly
// sequential run in enumeration order.
type Runner struct {
	embedder Embedder
	workers  int

	jobs    []model.Job
	results []model.Result

	totalJobs  int32
	doneJobs   int32
	failedJobs int32

	onProgress func(ProgressEvent)
	mu         sync.Mutex
}

// NewRunner creates a new batch Runner.
//
// workers is the maximum number of jobs in flight at once; values below
// one mean one worker per CPU. onProgress may be nil.
func NewRunner(embedder Embedder, workers int, onProgress func(ProgressEvent)) *Runner {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Runner{
		embedder:   embedder,
		workers:    workers,
		onProgress: onProgress,
	}
}

// Initialize enumerates the MP3 files under dir and pairs each with the
// artwork file, building the job list for Run.
//
// Finding no audio files is not an error; it produces an empty job list
// and a warning event.
func (r *Runner) Initialize(dir, artworkPath string) error {
	files, err := DiscoverAudio(dir)
	if err != nil {
		return err
	}

	r.jobs = r.jobs[:0]
	for _, f := range files {
		r.jobs = append(r.jobs, model.Job{AudioPath: f, ArtworkPath: artworkPath})
	}
	atomic.StoreInt32(&r.totalJobs, int32(len(r.jobs)))

	if len(r.jobs) == 0 {
		r.progress(ProgressEvent{Message: fmt.Sprintf("No MP3 files found under %s", dir), Level: LevelWarning})
		return nil
	}

	r.progress(ProgressEvent{Message: fmt.Sprintf("Found %d MP3 files under %s", len(r.jobs), dir), Level: LevelInfo})
	return nil
}

// Jobs returns the job list built by Initialize.
func (r *Runner) Jobs() []model.Job {
	jobs := make([]model.Job, len(r.jobs))
	copy(jobs, r.jobs)
	return jobs
}

// Run executes every initialized job and reports the aggregate outcome.
//
// Failed jobs are recorded in the report and never stop the batch; the
// returned error is non-nil only when the context was cancelled before
// the queue drained. Jobs not yet started at cancellation are skipped
// and do not count as attempted.
func (r *Runner) Run(ctx context.Context) (*model.RunReport, error) {
	start := time.Now()

	// The errgroup context is cancelled once Wait returns, so the
	// parent ctx is the one consulted for the run's outcome.
	g, runCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for _, job := range r.jobs {
		if runCtx.Err() != nil {
			break
		}
		job := job // capture
		g.Go(func() error {
			if runCtx.Err() != nil {
				return nil // Skip jobs not started before cancellation
			}
			r.runJob(runCtx, job)
			return nil // Continue with other jobs
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &model.RunReport{Elapsed: time.Since(start)}
	r.mu.Lock()
	for _, res := range r.results {
		report.Add(res)
	}
	r.mu.Unlock()

	return report, ctx.Err()
}

// GetProgress returns current run progress.
func (r *Runner) GetProgress() (done, failed, total int32) {
	return atomic.LoadInt32(&r.doneJobs),
		atomic.LoadInt32(&r.failedJobs),
		atomic.LoadInt32(&r.totalJobs)
}

func (r *Runner) runJob(ctx context.Context, job model.Job) {
	jobStart := time.Now()
	err := r.embedder.Apply(ctx, job)
	res := model.Result{Job: job, Err: err, Duration: time.Since(jobStart)}

	r.mu.Lock()
	r.results = append(r.results, res)
	r.mu.Unlock()

	atomic.AddInt32(&r.doneJobs, 1)
	if err != nil {
		atomic.AddInt32(&r.failedJobs, 1)
		r.progress(ProgressEvent{Message: fmt.Sprintf("Error embedding %s: %v", job.Name(), err), Level: LevelError})
		return
	}
	r.progress(ProgressEvent{Message: fmt.Sprintf("Embedded artwork: %s", job.Name()), Level: LevelVerbose})
}

func (r *Runner) progress(event ProgressEvent) {
	if r.onProgress != nil {
		r.onProgress(event)
	}
}
