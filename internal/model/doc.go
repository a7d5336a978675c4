// Package model defines the core data structures shared by the
// artwork batch applier.
//
// # Job
//
// Job is one unit of work: a single audio file paired with the artwork
// to embed. Jobs carry every parameter a worker needs:
//
//	job := model.Job{AudioPath: "/music/01.mp3", ArtworkPath: "/music/cover.jpg"}
//	fmt.Println(job.Name()) // "01.mp3"
//
// # Result
//
// Result records the outcome of one job. Failures are values, not aborts;
// a failed job leaves its original file untouched and the batch keeps going:
//
//	if !res.OK() {
//	    fmt.Println(res.Job.Name(), res.Err)
//	}
//
// # RunReport
//
// RunReport folds all results into per-run totals and keeps the failed
// results for the final summary:
//
//	var report model.RunReport
//	report.Add(res)
//	fmt.Println(report.Summary())
package model
