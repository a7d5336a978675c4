package model

import (
	"fmt"
	"path/filepath"
	"time"
)

// Job is one unit of batch work: embed one artwork file into one audio file.
//
// Jobs are independent and order-insensitive. Every parameter a worker needs
// is carried explicitly on the Job; workers share no ambient state beyond
// the artwork file itself, which is only ever read.
//
// Example:
//
//	job := model.Job{
//	    AudioPath:   "/music/album/01 Intro.mp3",
//	    ArtworkPath: "/music/album/cover.jpg",
//	}
type Job struct {
	// AudioPath is the audio file to be rewritten in place.
	AudioPath string

	// ArtworkPath is the image embedded as the front cover.
	// All jobs of a run usually share the same artwork file.
	ArtworkPath string
}

// Name returns a short display name for the job: the audio file's base name.
func (j Job) Name() string {
	return filepath.Base(j.AudioPath)
}

// Result records the outcome of a single job.
//
// A Result is produced for every attempted job, success or failure; failed
// jobs never abort the batch. Err is nil exactly when the encoder ran, its
// output verified, and the original file was replaced.
type Result struct {
	// Job is the job this result belongs to.
	Job Job

	// Err is the failure reason, nil on success.
	Err error

	// Duration is the wall-clock time the job took, including verification.
	Duration time.Duration
}

// OK reports whether the job succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// RunReport aggregates the results of a whole batch run.
//
// The report distinguishes attempted from confirmed-successful jobs and
// retains every failure with its reason, so a run can finish the full queue
// and still surface what went wrong at the end.
//
// Example:
//
//	var report model.RunReport
//	for _, res := range results {
//	    report.Add(res)
//	}
//	fmt.Println(report.Summary())
//	if !report.AllOK() {
//	    os.Exit(3)
//	}
type RunReport struct {
	// Attempted is the number of jobs that ran, successful or not.
	Attempted int

	// Succeeded is the number of jobs whose output verified and replaced
	// the original file.
	Succeeded int

	// Failed is the number of jobs that errored. Failed + Succeeded == Attempted.
	Failed int

	// Failures holds the failed results in completion order.
	Failures []Result

	// Elapsed is the wall-clock duration of the whole run.
	Elapsed time.Duration
}

// Add folds a single result into the report.
func (r *RunReport) Add(res Result) {
	r.Attempted++
	if res.OK() {
		r.Succeeded++
		return
	}
	r.Failed++
	r.Failures = append(r.Failures, res)
}

// AllOK reports whether every attempted job succeeded.
func (r *RunReport) AllOK() bool {
	return r.Failed == 0
}

// Summary renders a one-line, human-readable account of the run.
//
// Example output:
//
//	applied artwork to 42/42 files in 3.1s
//	applied artwork to 40/42 files in 2.8s (2 failed)
func (r *RunReport) Summary() string {
	elapsed := r.Elapsed.Round(time.Millisecond)
	if r.Failed == 0 {
		return fmt.Sprintf("applied artwork to %d/%d files in %s", r.Succeeded, r.Attempted, elapsed)
	}
	return fmt.Sprintf("applied artwork to %d/%d files in %s (%d failed)", r.Succeeded, r.Attempted, elapsed, r.Failed)
}
