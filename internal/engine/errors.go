package engine

import "errors"

// ErrCancelled matches every *CancelError via errors.Is.
var ErrCancelled = errors.New("action cancelled")

// ErrQuit is returned by a Frontend when the player leaves the game.
var ErrQuit = errors.New("quit")

// CancelError aborts the current action without costing the actor its
// place in the schedule. Reason is shown to the player.
type CancelError struct {
	Reason string
}

func (e *CancelError) Error() string { return e.Reason }

// Is lets errors.Is(err, ErrCancelled) succeed.
func (e *CancelError) Is(target error) bool { return target == ErrCancelled }

// Cancel returns a cancellation with the given in-fiction reason.
func Cancel(reason string) error { return &CancelError{Reason: reason} }

// cancelReason extracts the player-facing text from a cancellation.
func cancelReason(err error) string {
	var ce *CancelError
	if errors.As(err, &ce) {
		return ce.Reason
	}
	return err.Error()
}
