package console

import (
	"context"
	"strconv"
	"strings"

	"bigtwo/internal/domain"
	"bigtwo/internal/ports"
)

// Human is a seat played from the terminal.
type Human struct {
	term        *Terminal
	presetName  string
	defaultName string
}

var _ ports.SeatPort = (*Human)(nil)

// NewHuman returns a human seat. A non-empty presetName skips the name prompt;
// defaultName is used when the prompt is answered with an empty line.
func NewHuman(term *Terminal, presetName, defaultName string) *Human {
	return &Human{term: term, presetName: presetName, defaultName: defaultName}
}

func (h *Human) Name(ctx context.Context) (string, error) {
	if h.presetName != "" {
		return h.presetName, nil
	}
	name, err := h.term.Prompt(ctx, "please enter player's name: ")
	if err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = h.defaultName
	}
	return name, nil
}

// Play shows the hand with positions and reads a selection. Illegal choices
// are returned as-is; the game rejects them and asks again.
func (h *Human) Play(ctx context.Context, view domain.TurnView) (domain.Selection, error) {
	h.term.Printf("%s\n", RenderHand(view.Hand))
	switch {
	case view.Required != nil:
		h.term.Printf("You lead the first trick and must include %s.\n", view.Required)
	case view.Leader:
		h.term.Printf("You lead a new trick.\n")
	default:
		h.term.Printf("To beat: %s (%s)\n", domain.FormatCards(view.Leading), view.Pattern.Kind())
	}

	input, err := h.term.Prompt(ctx, "cards by position separated by spaces, -1 to pass: ")
	if err != nil {
		return domain.Selection{}, err
	}
	return ParseSelection(input), nil
}

// ParseSelection reads "-1" or "pass" as a pass and anything else as a list
// of positions. Tokens that are not integers become -1, which never names a
// card, so the attempt is rejected rather than silently shortened.
func ParseSelection(input string) domain.Selection {
	input = strings.TrimSpace(input)
	if input == "-1" || strings.EqualFold(input, "pass") {
		return domain.PassSelection()
	}

	fields := strings.Fields(input)
	if len(fields) == 0 {
		return domain.Choose()
	}
	indices := make([]int, 0, len(fields))
	for _, f := range fields {
		idx, err := strconv.Atoi(f)
		if err != nil {
			idx = -1
		}
		indices = append(indices, idx)
	}
	return domain.Choose(indices...)
}

// RenderHand lists cards with their positions, e.g. "0:C[3] 1:D[3]".
func RenderHand(cards []domain.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = strconv.Itoa(i) + ":" + c.String()
	}
	return strings.Join(parts, " ")
}
