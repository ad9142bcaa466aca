package app

import "bigtwo/internal/domain"

// EventKind identifies emitted game events for reporters.
type EventKind string

const (
	EventPlayerJoined EventKind = "player_joined"
	EventGameStarted  EventKind = "game_started"
	EventHandShown    EventKind = "hand_shown"
	EventCardPlayed   EventKind = "card_played"
	EventTurnPassed   EventKind = "turn_passed"
	EventPlayRejected EventKind = "play_rejected"
	EventTrickClosed  EventKind = "trick_closed"
	EventGameEnded    EventKind = "game_ended"
)

// Event is a game event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	GameID     string
	Payload    any
	Recipients []int // seats; empty means broadcast
}

type PlayerJoinedPayload struct {
	Seat int
	Name string
}

type GameStartedPayload struct {
	Players         []string
	FirstLeaderSeat int
	RequiredCard    domain.Card
}

type HandShownPayload struct {
	Seat    int
	Name    string
	Hand    []domain.Card
	Leading []domain.Card
	Leader  bool
}

type CardPlayedPayload struct {
	Seat      int
	Name      string
	Pattern   string
	Cards     []domain.Card
	Remaining int
}

type TurnPassedPayload struct {
	Seat int
	Name string
}

type PlayRejectedPayload struct {
	Seat   int
	Name   string
	Reason string
	Err    error
}

type TrickClosedPayload struct {
	NextLeaderSeat int
	Name           string
}

type GameEndedPayload struct {
	WinnerSeat int
	Winner     string
}

// Reporter receives events as the game produces them. Reporters are notified,
// never queried; formatting is entirely theirs.
type Reporter interface {
	Report(ev Event)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(ev Event)

func (f ReporterFunc) Report(ev Event) { f(ev) }

// MultiReporter fans each event out to several reporters in order.
type MultiReporter []Reporter

func (m MultiReporter) Report(ev Event) {
	for _, r := range m {
		if r != nil {
			r.Report(ev)
		}
	}
}
