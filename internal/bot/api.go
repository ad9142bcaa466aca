package bot

import (
	"errors"

	"bigtwo/internal/domain"
)

// ErrNoLegalLead is returned when a leader has nothing it is allowed to open with.
var ErrNoLegalLead = errors.New("no legal lead available")

// Move represents the decision made by the AI.
type Move struct {
	Pass  bool
	Cards []domain.Card
}

// Brain is the interface that all bot strategies must implement.
type Brain interface {
	CalculateMove(view domain.TurnView) (Move, error)
}
