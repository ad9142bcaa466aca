package app

import (
	"math/rand"
	"time"

	"bigtwo/internal/domain"
	"bigtwo/internal/logging"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"
)

// Service creates Big Two games sharing one random source, logger and
// pattern dispatcher.
type Service struct {
	rng        *rand.Rand
	logger     runtime.Logger
	dispatcher *domain.Dispatcher
}

// NewService constructs a Service with provided rng or a time-seeded default.
// A nil logger discards output.
func NewService(rng *rand.Rand, logger runtime.Logger) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{
		rng:        rng,
		logger:     logger,
		dispatcher: domain.NewDispatcher(),
	}
}

// NewGame returns a game in the lobby phase. A nil reporter drops events.
func (s *Service) NewGame(reporter Reporter) *Game {
	if reporter == nil {
		reporter = MultiReporter(nil)
	}
	id := uuid.NewString()
	return &Game{
		ID:         id,
		Phase:      PhaseLobby,
		Winner:     -1,
		deck:       domain.NewDeck(),
		trick:      domain.NewTrick(),
		dispatcher: s.dispatcher,
		rng:        s.rng,
		logger:     s.logger.WithField("game_id", id),
		reporter:   reporter,
	}
}
