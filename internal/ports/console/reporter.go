package console

import (
	"fmt"
	"io"
	"strings"

	"bigtwo/internal/app"
	"bigtwo/internal/domain"
)

// Reporter prints game events as text. Private hand views are printed only
// for the seats played at this terminal.
type Reporter struct {
	out   io.Writer
	local map[int]bool
}

var _ app.Reporter = (*Reporter)(nil)

// NewReporter writes to out, revealing hands of localSeats.
func NewReporter(out io.Writer, localSeats ...int) *Reporter {
	local := make(map[int]bool, len(localSeats))
	for _, s := range localSeats {
		local[s] = true
	}
	return &Reporter{out: out, local: local}
}

func (r *Reporter) Report(ev app.Event) {
	if !r.visible(ev) {
		return
	}
	if msg := Describe(ev); msg != "" {
		fmt.Fprintln(r.out, msg)
	}
}

func (r *Reporter) visible(ev app.Event) bool {
	if len(ev.Recipients) == 0 {
		return true
	}
	for _, s := range ev.Recipients {
		if r.local[s] {
			return true
		}
	}
	return false
}

// Describe renders one event as a line of text.
func Describe(ev app.Event) string {
	switch p := ev.Payload.(type) {
	case app.PlayerJoinedPayload:
		return fmt.Sprintf("Player %s joined at seat %d.", p.Name, p.Seat)
	case app.GameStartedPayload:
		return fmt.Sprintf("Game started: %s. %s holds %s and leads.",
			strings.Join(p.Players, ", "), p.Players[p.FirstLeaderSeat], p.RequiredCard)
	case app.HandShownPayload:
		return fmt.Sprintf("%s's turn. Hand: %s", p.Name, domain.FormatCards(p.Hand))
	case app.CardPlayedPayload:
		return fmt.Sprintf("Player %s played %s %s (%d left).", p.Name, p.Pattern, domain.FormatCards(p.Cards), p.Remaining)
	case app.TurnPassedPayload:
		return fmt.Sprintf("Player %s PASS", p.Name)
	case app.PlayRejectedPayload:
		return fmt.Sprintf("Illegal play by %s: %s. Try again.", p.Name, p.Reason)
	case app.TrickClosedPayload:
		return fmt.Sprintf("New trick. %s leads.", p.Name)
	case app.GameEndedPayload:
		return fmt.Sprintf("Game over. %s wins!", p.Winner)
	default:
		return ""
	}
}
