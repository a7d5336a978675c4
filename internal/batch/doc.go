// Package batch provides the orchestration logic for applying one
// artwork file to a directory tree of MP3 files.
//
// # Runner
//
// The Runner coordinates the whole batch:
//
//  1. Enumerate MP3 files under the target directory
//  2. Pair each file with the shared artwork into a job list
//  3. Dispatch jobs to a bounded pool of workers
//  4. Collect a per-job result for every attempt
//  5. Aggregate the results into a RunReport
//
// # Basic Usage
//
//	runner := batch.NewRunner(embedder, workers, func(event batch.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := runner.Initialize(dir, artworkPath); err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := runner.Run(ctx)
//
// # Concurrency
//
// The worker count bounds how many encoder processes run at once. One
// worker yields a sequential run in enumeration order; zero or below
// means one worker per CPU. There is no unbounded mode.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// # Failure Handling
//
// A failed job is a recorded result, not a batch abort. The queue always
// drains unless the context is cancelled, and the RunReport says exactly
// which files failed and why.
package batch
