package app

import (
	"errors"

	"bigtwo/internal/domain"
)

var (
	ErrTooFewPlayers      = errors.New("not enough players to start")
	ErrTooManyPlayers     = errors.New("big two can't have more than 4 players")
	ErrAlreadyStarted     = errors.New("game already started")
	ErrNotStarted         = errors.New("game not started")
	ErrGameOver           = errors.New("game is over")
	ErrLeaderCannotPass   = errors.New("the leader of a new trick can't pass")
	ErrMissingOpeningCard = errors.New("the opening play must contain the lowest card")
)

// IsRecoverable reports whether err is an illegal attempt the same seat
// should simply be asked to retry.
func IsRecoverable(err error) bool {
	switch {
	case errors.Is(err, domain.ErrNoPattern),
		errors.Is(err, domain.ErrPatternMismatch),
		errors.Is(err, domain.ErrNotHigher),
		errors.Is(err, domain.ErrInvalidSelection),
		errors.Is(err, ErrLeaderCannotPass),
		errors.Is(err, ErrMissingOpeningCard):
		return true
	default:
		return false
	}
}
