package game

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionExists     = errors.New("session already exists")
	ErrMissingNames      = errors.New("please enter a summoner name for all players")
	ErrRerollUnavailable = errors.New("reroll not available for this player")
	ErrInvalidSlot       = errors.New("invalid player slot")
	ErrUnknownAction     = errors.New("unknown action")
)

// MissingNamesError lists the slots that blocked a generate. It matches ErrMissingNames.
type MissingNamesError struct {
	Slots []int
}

func (e *MissingNamesError) Error() string {
	return fmt.Sprintf("%s (slots %v)", ErrMissingNames, e.Slots)
}

func (e *MissingNamesError) Unwrap() error { return ErrMissingNames }

// Code maps err to the stable error code clients see.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return "session_not_found"
	case errors.Is(err, ErrMissingNames):
		return "missing_names"
	case errors.Is(err, ErrRerollUnavailable):
		return "reroll_unavailable"
	case errors.Is(err, ErrInvalidSlot):
		return "invalid_slot"
	case errors.Is(err, ErrUnknownAction):
		return "bad_request"
	default:
		return "internal"
	}
}

// Message is the text shown to the user for err. Internal failures stay generic.
func Message(err error) string {
	switch Code(err) {
	case "internal":
		return "internal error"
	case "missing_names":
		return ErrMissingNames.Error()
	default:
		return err.Error()
	}
}
