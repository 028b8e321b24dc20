package game

import (
	"errors"
	"fmt"

	"liveclient-replay/internal/domain"
)

// ErrNotRunning is the hard error for reads against a session that was never
// started. It is a different tier from the soft query payloads below.
var ErrNotRunning = errors.New("no game running")

// ReplayError marks a structural fault in the event history, such as an event
// naming a participant the roster cannot resolve. The replay cannot continue
// consistently past one of these, so the session is failed.
type ReplayError struct {
	EventIndex int
	Err        error
}

func (e *ReplayError) Error() string {
	return fmt.Sprintf("replay failed at event %d: %v", e.EventIndex, e.Err)
}

func (e *ReplayError) Unwrap() error { return e.Err }

func spectatorPayload() domain.ErrorPayload {
	return domain.ErrorPayload{
		ErrorCode:  "RPC_ERROR",
		HTTPStatus: 400,
		Message:    "Spectator mode doesn't currently support this feature",
	}
}

func badRequestPayload(message string) domain.ErrorPayload {
	return domain.ErrorPayload{
		ErrorCode:  "BAD_REQUEST",
		HTTPStatus: 400,
		Message:    message,
	}
}
