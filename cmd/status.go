package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cwbudde/countdown/internal/server"
	"github.com/spf13/cobra"
)

var (
	serverURL string
)

var statusCmd = &cobra.Command{
	Use:   "status [job-id]",
	Short: "Query server status or specific job",
	Long: `Queries the server for job status information.
If no job-id is provided, lists all jobs.
If job-id is provided, shows detailed status for that job.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&serverURL, "server", "http://localhost:8080", "Server URL")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return listJobs(cmd.OutOrStdout(), fmt.Sprintf("%s/api/v1/jobs", serverURL))
	}

	jobID := args[0]
	return getJobStatus(cmd.OutOrStdout(), fmt.Sprintf("%s/api/v1/jobs/%s/status", serverURL, jobID), jobID)
}

func listJobs(w io.Writer, url string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned error: %s", string(body))
	}

	var jobs []server.Job
	if err := json.NewDecoder(resp.Body).Decode(&jobs); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if len(jobs) == 0 {
		fmt.Fprintln(w, "No jobs found")
		return nil
	}

	fmt.Fprintf(w, "Found %d job(s):\n\n", len(jobs))
	for _, job := range jobs {
		fmt.Fprintf(w, "Job ID: %s\n", job.ID)
		fmt.Fprintf(w, "  State: %s\n", job.State)
		fmt.Fprintf(w, "  Hand: %v -> %d\n", job.Request.Numbers, job.Request.Goal)
		fmt.Fprintf(w, "  Mode: %s\n", job.Request.Mode)
		if job.Result != nil {
			fmt.Fprintf(w, "  Distance: %d (%d numbers)\n", job.Result.Distance, job.Result.NumbersUsed)
		}
		fmt.Fprintln(w)
	}

	return nil
}

func getJobStatus(w io.Writer, url, jobID string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &server.JobNotFoundError{ID: jobID}
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned error: %s", string(body))
	}

	var status server.JobStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if status.Job == nil {
		return fmt.Errorf("empty status for job %s", jobID)
	}

	fmt.Fprintf(w, "Job: %s\n", status.ID)
	fmt.Fprintf(w, "State: %s\n", status.State)
	elapsed := time.Duration(status.Elapsed * float64(time.Second))
	fmt.Fprintf(w, "Elapsed: %s\n", elapsed.Round(time.Millisecond))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Request:")
	fmt.Fprintf(w, "  Numbers: %v\n", status.Request.Numbers)
	fmt.Fprintf(w, "  Goal: %d\n", status.Request.Goal)
	fmt.Fprintf(w, "  Mode: %s\n", status.Request.Mode)
	fmt.Fprintln(w)

	if r := status.Result; r != nil {
		fmt.Fprintln(w, "Result:")
		fmt.Fprintf(w, "  Initial number: %d\n", r.Initial)
		for i, s := range r.Steps {
			fmt.Fprintf(w, "  Step %d: operation %s with number %d -> result %d\n", i+1, s.Op, s.Number, s.Result)
		}
		fmt.Fprintf(w, "  Final number: %d\n", r.Final)
		fmt.Fprintf(w, "  Distance: %d\n", r.Distance)
		if r.Attack != nil {
			fmt.Fprintf(w, "  Worst attack: %d\n", *r.Attack)
		}
		fmt.Fprintf(w, "  Nodes: %d\n", r.Nodes)
	}

	if status.Error != "" {
		fmt.Fprintf(w, "\nError: %s\n", status.Error)
	}

	return nil
}
