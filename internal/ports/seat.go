package ports

import (
	"context"

	"bigtwo/internal/domain"
)

// SeatPort is the input side of one seat: a human at a terminal or an AI agent.
type SeatPort interface {
	// Name returns the display name for the seat. Called once before dealing.
	Name(ctx context.Context) (string, error)

	// Play answers a turn with hand positions or a pass.
	// view is a snapshot; implementations may keep or modify it freely.
	// Returning an error abandons the game.
	Play(ctx context.Context, view domain.TurnView) (domain.Selection, error)
}
