package app

import (
	"context"
	"fmt"
	"math/rand"

	"bigtwo/internal/domain"
	"bigtwo/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// Phase represents the lifecycle stage of a Big Two game.
type Phase string

const (
	// PhaseLobby is the pre-game state where players register.
	PhaseLobby Phase = "lobby"
	// PhaseAwaitingFirstLeader follows the deal; the holder of the lowest card leads next.
	PhaseAwaitingFirstLeader Phase = "awaiting_first_leader"
	// PhaseLeaderTurn is a seat opening a new trick.
	PhaseLeaderTurn Phase = "leader_turn"
	// PhaseFollowerTurn is a seat answering the standing play.
	PhaseFollowerTurn Phase = "follower_turn"
	// PhaseGameOver is reached the moment any hand is empty.
	PhaseGameOver Phase = "game_over"
)

// Seat is one participant: its input port and the hand it holds.
type Seat struct {
	Index int
	Name  string
	Port  ports.SeatPort
	Hand  *domain.Hand
}

// Result summarizes a finished game.
type Result struct {
	GameID     string
	WinnerSeat int
	Winner     string
	Turns      int
}

// Game is the turn state machine for one deal. It is driven by a single
// goroutine; Step runs one seat's whole act-and-validate cycle before
// returning.
type Game struct {
	ID      string
	Phase   Phase
	Seats   []*Seat
	Current int // seat whose turn it is
	Winner  int // -1 until the game ends
	Turns   int

	// Required is the card the opening lead must contain: the lowest card dealt.
	Required domain.Card

	deck       *domain.Deck
	trick      *domain.Trick
	dispatcher *domain.Dispatcher
	rng        *rand.Rand
	logger     runtime.Logger
	reporter   Reporter
}

// AddPlayers registers seats in seating order.
func (g *Game) AddPlayers(seatPorts ...ports.SeatPort) error {
	if g.Phase != PhaseLobby {
		return ErrAlreadyStarted
	}
	if len(g.Seats)+len(seatPorts) > MaxPlayers {
		return fmt.Errorf("%w: have %d, adding %d", ErrTooManyPlayers, len(g.Seats), len(seatPorts))
	}
	for _, p := range seatPorts {
		g.Seats = append(g.Seats, &Seat{
			Index: len(g.Seats),
			Port:  p,
			Hand:  domain.NewHand(),
		})
	}
	return nil
}

// Trick exposes the current trick for inspection.
func (g *Game) Trick() *domain.Trick {
	return g.trick
}

// Start shuffles, names the seats, deals and locates the first leader.
// Dealing stops when fewer cards remain than seats.
func (g *Game) Start(ctx context.Context) error {
	if g.Phase != PhaseLobby {
		return ErrAlreadyStarted
	}
	if len(g.Seats) < MinPlayersToStartGame {
		return fmt.Errorf("%w: have %d, need %d", ErrTooFewPlayers, len(g.Seats), MinPlayersToStartGame)
	}

	g.deck.Shuffle(g.rng)

	for _, seat := range g.Seats {
		name, err := seat.Port.Name(ctx)
		if err != nil {
			return fmt.Errorf("seat %d name: %w", seat.Index, err)
		}
		seat.Name = name
		g.emit(EventPlayerJoined, PlayerJoinedPayload{Seat: seat.Index, Name: name})
	}

	for g.deck.Len() >= len(g.Seats) {
		for _, seat := range g.Seats {
			c, err := g.deck.Deal()
			if err != nil {
				return fmt.Errorf("deal to seat %d: %w", seat.Index, err)
			}
			seat.Hand.Add(c)
		}
	}

	dealt := make([]domain.Card, 0, 52)
	for _, seat := range g.Seats {
		seat.Hand.Sort()
		dealt = append(dealt, seat.Hand.Cards()...)
	}
	g.Required, _ = domain.Lowest(dealt)
	g.Current = g.findFirstLeader()
	g.Phase = PhaseAwaitingFirstLeader

	names := make([]string, len(g.Seats))
	for i, seat := range g.Seats {
		names[i] = seat.Name
	}
	g.logger.Info("Start: Game started with %d players, %s leads holding %s.", len(g.Seats), g.Seats[g.Current].Name, g.Required)
	g.emit(EventGameStarted, GameStartedPayload{
		Players:         names,
		FirstLeaderSeat: g.Current,
		RequiredCard:    g.Required,
	})
	return nil
}

func (g *Game) findFirstLeader() int {
	for _, seat := range g.Seats {
		if seat.Hand.Contains(g.Required) {
			return seat.Index
		}
	}
	return 0
}

// Step runs the current seat's turn, retrying illegal attempts until the seat
// makes a legal play or pass, then advances the turn order.
func (g *Game) Step(ctx context.Context) error {
	switch g.Phase {
	case PhaseLobby:
		return ErrNotStarted
	case PhaseGameOver:
		return ErrGameOver
	}

	leader := g.Phase == PhaseAwaitingFirstLeader || g.Phase == PhaseLeaderTurn
	seat := g.Seats[g.Current]

	played, err := g.takeTurn(ctx, seat, leader)
	if err != nil {
		return err
	}
	g.Turns++

	if played && seat.Hand.Len() == 0 {
		g.finish(seat)
		return nil
	}
	g.advance()
	return nil
}

// Run starts the game if needed and steps until a seat runs out of cards.
func (g *Game) Run(ctx context.Context) (Result, error) {
	if g.Phase == PhaseLobby {
		if err := g.Start(ctx); err != nil {
			return Result{}, err
		}
	}
	for g.Phase != PhaseGameOver {
		if err := g.Step(ctx); err != nil {
			return Result{}, err
		}
	}
	return g.Result(), nil
}

// Result reports the outcome. WinnerSeat is -1 while the game is running.
func (g *Game) Result() Result {
	r := Result{GameID: g.ID, WinnerSeat: g.Winner, Turns: g.Turns}
	if g.Winner >= 0 {
		r.Winner = g.Seats[g.Winner].Name
	}
	return r
}

func (g *Game) takeTurn(ctx context.Context, seat *Seat, leader bool) (bool, error) {
	g.emit(EventHandShown, HandShownPayload{
		Seat:    seat.Index,
		Name:    seat.Name,
		Hand:    seat.Hand.Cards(),
		Leading: g.trick.Leading(),
		Leader:  leader,
	}, seat.Index)

	for {
		sel, err := seat.Port.Play(ctx, g.view(seat, leader))
		if err != nil {
			g.logger.Warn("takeTurn: Seat %d (%s) abandoned: %v", seat.Index, seat.Name, err)
			return false, fmt.Errorf("seat %d: %w", seat.Index, err)
		}

		played, err := g.apply(seat, sel, leader)
		if err == nil {
			return played, nil
		}
		if !IsRecoverable(err) {
			return false, err
		}

		g.logger.Debug("takeTurn: Seat %d (%s) illegal attempt %+v: %v", seat.Index, seat.Name, sel, err)
		g.emit(EventPlayRejected, PlayRejectedPayload{
			Seat:   seat.Index,
			Name:   seat.Name,
			Reason: err.Error(),
			Err:    err,
		})
	}
}

// apply validates a selection and, when legal, commits it. Nothing changes
// on error.
func (g *Game) apply(seat *Seat, sel domain.Selection, leader bool) (bool, error) {
	if sel.Pass {
		if leader {
			return false, ErrLeaderCannotPass
		}
		g.emit(EventTurnPassed, TurnPassedPayload{Seat: seat.Index, Name: seat.Name})
		return false, nil
	}

	cards, err := seat.Hand.Select(sel.Indices)
	if err != nil {
		return false, err
	}

	if leader {
		if !g.trick.FirstTrickCompleted() && !domain.ContainsCard(cards, g.Required) {
			return false, fmt.Errorf("%w: %s", ErrMissingOpeningCard, g.Required)
		}
		if _, err := g.dispatcher.ClassifyAndBind(cards, g.trick, seat.Index); err != nil {
			return false, err
		}
		g.trick.MarkFirstTrickCompleted()
	} else if err := g.trick.Follow(cards, seat.Index); err != nil {
		return false, err
	}

	if err := seat.Hand.Remove(sel.Indices); err != nil {
		return false, fmt.Errorf("remove accepted cards: %w", err)
	}

	pattern := g.trick.Pattern().Kind().String()
	g.logger.Debug("apply: Seat %d (%s) played %s %s, %d left.", seat.Index, seat.Name, pattern, domain.FormatCards(cards), seat.Hand.Len())
	g.emit(EventCardPlayed, CardPlayedPayload{
		Seat:      seat.Index,
		Name:      seat.Name,
		Pattern:   pattern,
		Cards:     cards,
		Remaining: seat.Hand.Len(),
	})
	return true, nil
}

// advance moves to the next seat. The trick closes when the rotation would
// reach the seat holding the standing play; that seat leads the next trick.
func (g *Game) advance() {
	next := (g.Current + 1) % len(g.Seats)
	if next != g.trick.FloorSeat() {
		g.Current = next
		g.Phase = PhaseFollowerTurn
		return
	}

	g.trick.Close()
	g.Current = next
	g.Phase = PhaseLeaderTurn
	g.logger.Debug("advance: Trick closed, %s leads.", g.Seats[next].Name)
	g.emit(EventTrickClosed, TrickClosedPayload{NextLeaderSeat: next, Name: g.Seats[next].Name})
}

func (g *Game) finish(seat *Seat) {
	g.Phase = PhaseGameOver
	g.Winner = seat.Index
	g.logger.Info("finish: %s (seat %d) won after %d turns.", seat.Name, seat.Index, g.Turns)
	g.emit(EventGameEnded, GameEndedPayload{WinnerSeat: seat.Index, Winner: seat.Name})
}

func (g *Game) view(seat *Seat, leader bool) domain.TurnView {
	sizes := make([]int, len(g.Seats))
	for i, s := range g.Seats {
		sizes[i] = s.Hand.Len()
	}

	v := domain.TurnView{
		Seat:      seat.Index,
		Hand:      seat.Hand.Cards(),
		Leader:    leader,
		HandSizes: sizes,
	}
	if leader {
		if !g.trick.FirstTrickCompleted() {
			required := g.Required
			v.Required = &required
		}
		return v
	}
	v.Leading = g.trick.Leading()
	v.Pattern = g.trick.Pattern()
	return v
}

func (g *Game) emit(kind EventKind, payload any, recipients ...int) {
	g.reporter.Report(Event{
		Kind:       kind,
		GameID:     g.ID,
		Payload:    payload,
		Recipients: recipients,
	})
}
