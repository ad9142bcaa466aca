package bot

import (
	"context"
	"fmt"

	"bigtwo/internal/domain"
	"bigtwo/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// Agent represents an autonomous bot player sitting at one seat.
type Agent struct {
	DisplayName string
	Strategy    Brain
	Logger      runtime.Logger
}

var _ ports.SeatPort = (*Agent)(nil)

// NewAgent builds an agent for the given level.
func NewAgent(name string, level BotLevel, logger runtime.Logger) (*Agent, error) {
	brain, err := NewBrain(level)
	if err != nil {
		return nil, err
	}
	return &Agent{DisplayName: name, Strategy: brain, Logger: logger}, nil
}

func (a *Agent) Name(ctx context.Context) (string, error) {
	return a.DisplayName, ctx.Err()
}

// Play asks the strategy for a move and translates it into hand positions.
func (a *Agent) Play(ctx context.Context, view domain.TurnView) (domain.Selection, error) {
	if err := ctx.Err(); err != nil {
		return domain.Selection{}, err
	}

	move, err := a.Strategy.CalculateMove(view)
	if err != nil {
		return domain.Selection{}, fmt.Errorf("bot %s: %w", a.DisplayName, err)
	}
	if move.Pass {
		if a.Logger != nil {
			a.Logger.Debug("Play: Bot %s passes on %s.", a.DisplayName, domain.FormatCards(view.Leading))
		}
		return domain.PassSelection(), nil
	}

	indices, err := domain.IndicesOf(view.Hand, move.Cards)
	if err != nil {
		return domain.Selection{}, fmt.Errorf("bot %s chose cards it does not hold: %w", a.DisplayName, err)
	}
	if a.Logger != nil {
		a.Logger.Debug("Play: Bot %s chose %s.", a.DisplayName, domain.FormatCards(move.Cards))
	}
	return domain.Choose(indices...), nil
}
