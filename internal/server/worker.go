package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cwbudde/countdown/internal/game"
	"github.com/cwbudde/countdown/internal/report"
	"github.com/cwbudde/countdown/internal/search"
)

// runJob solves a job in the background and stores the rendered result
func runJob(ctx context.Context, jm *JobManager, solver *search.Solver, jobID string) error {
	job, exists := jm.GetJob(jobID)
	if !exists {
		return &JobNotFoundError{ID: jobID}
	}

	// Check for cancellation before starting the search
	select {
	case <-ctx.Done():
		markJobCancelled(jm, jobID)
		return ctx.Err()
	default:
	}

	err := jm.UpdateJob(jobID, func(j *Job) {
		j.State = StateRunning
	})
	if err != nil {
		return err
	}

	slog.Info("Starting job", "job_id", jobID, "mode", job.Request.Mode, "goal", job.Request.Goal)

	h, err := game.NewHand(job.Request.Numbers, job.Request.Goal)
	if err != nil {
		markJobFailed(jm, jobID, err)
		return err
	}

	var sol search.Solution
	switch job.Request.Mode {
	case "plain":
		sol = solver.SolvePlain(h)
	case "resilient":
		sol, err = solver.SolveResilient(h)
		if err != nil {
			markJobFailed(jm, jobID, err)
			return err
		}
	default:
		err := fmt.Errorf("unknown mode: %s", job.Request.Mode)
		markJobFailed(jm, jobID, err)
		return err
	}

	// The search itself is not interruptible; a shutdown during it only
	// discards the result.
	select {
	case <-ctx.Done():
		markJobCancelled(jm, jobID)
		return ctx.Err()
	default:
	}

	view := report.NewView(sol)
	endTime := time.Now()
	err = jm.UpdateJob(jobID, func(j *Job) {
		j.State = StateCompleted
		j.Result = &view
		j.EndTime = &endTime
	})
	if err != nil {
		return err
	}

	slog.Info("Job completed",
		"job_id", jobID,
		"elapsed", sol.Elapsed,
		"distance", sol.Distance(),
		"used", sol.Used(),
		"nodes", sol.Stats.Nodes,
	)
	return nil
}

// markJobFailed marks a job as failed with an error message
func markJobFailed(jm *JobManager, jobID string, err error) {
	endTime := time.Now()
	jm.UpdateJob(jobID, func(j *Job) {
		j.State = StateFailed
		j.Error = err.Error()
		j.EndTime = &endTime
	})
	slog.Error("Job failed", "job_id", jobID, "error", err)
}

// markJobCancelled marks a job as cancelled
func markJobCancelled(jm *JobManager, jobID string) {
	endTime := time.Now()
	jm.UpdateJob(jobID, func(j *Job) {
		j.State = StateCancelled
		j.EndTime = &endTime
	})
	slog.Info("Job cancelled", "job_id", jobID)
}
