package server

import "fmt"

// ErrJobNotFound matches any JobNotFoundError via errors.Is
var ErrJobNotFound = &JobNotFoundError{}

// JobNotFoundError is returned when a job ID is unknown
type JobNotFoundError struct {
	ID string
}

func (e *JobNotFoundError) Error() string {
	return fmt.Sprintf("job not found: %s", e.ID)
}

func (e *JobNotFoundError) Is(target error) bool {
	_, ok := target.(*JobNotFoundError)
	return ok
}
