package game

// ErrInvalidHand is returned when a hand fails validation.
// Use errors.Is(err, ErrInvalidHand) to check for this error.
var ErrInvalidHand = &InvalidHandError{}

// InvalidHandError describes why a hand was rejected before any search.
type InvalidHandError struct {
	Reason string
}

func (e *InvalidHandError) Error() string {
	if e.Reason != "" {
		return "invalid hand: " + e.Reason
	}
	return "invalid hand"
}

func (e *InvalidHandError) Is(target error) bool {
	_, ok := target.(*InvalidHandError)
	return ok
}
