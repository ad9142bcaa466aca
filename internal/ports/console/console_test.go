package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"bigtwo/internal/app"
	"bigtwo/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.Selection
	}{
		{"pass by -1", "-1", domain.PassSelection()},
		{"pass word", " PASS ", domain.PassSelection()},
		{"single", "0", domain.Choose(0)},
		{"several", "0 3  4", domain.Choose(0, 3, 4)},
		{"garbage maps to -1", "0 x", domain.Choose(0, -1)},
		{"empty", "", domain.Choose()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSelection(tt.input))
		})
	}
}

func TestRenderHand(t *testing.T) {
	assert.Equal(t, "0:C[3] 1:S[2]", RenderHand(domain.MustParseCards("C[3] S[2]")))
}

func TestHumanNameAndPlay(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("Alice\n1 0\n"), &out, 0)
	h := NewHuman(term, "", "Player 0")

	name, err := h.Name(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)

	required := domain.LowestCard
	view := domain.TurnView{Hand: domain.MustParseCards("C[3] D[3]"), Leader: true, Required: &required}
	sel, err := h.Play(context.Background(), view)
	require.NoError(t, err)
	assert.Equal(t, domain.Choose(1, 0), sel)
	assert.Contains(t, out.String(), "0:C[3] 1:D[3]")
	assert.Contains(t, out.String(), "must include C[3]")
}

func TestHumanDefaultAndPresetName(t *testing.T) {
	term := NewTerminal(strings.NewReader("\n"), io.Discard, 0)

	name, err := NewHuman(term, "", "Player 2").Name(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Player 2", name)

	name, err = NewHuman(term, "Bob", "").Name(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bob", name)
}

func TestHumanEOF(t *testing.T) {
	term := NewTerminal(strings.NewReader(""), io.Discard, 0)
	h := NewHuman(term, "Bob", "")

	_, err := h.Play(context.Background(), domain.TurnView{Leader: true})
	assert.ErrorIs(t, err, io.EOF)
}

func TestPromptTimeout(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	term := NewTerminal(pr, io.Discard, 20*time.Millisecond)

	_, err := term.Prompt(context.Background(), "")
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "err = %v", err)
}

func TestReporterHidesOtherHands(t *testing.T) {
	var out bytes.Buffer
	r := NewReporter(&out, 0)

	r.Report(app.Event{
		Kind:       app.EventHandShown,
		Payload:    app.HandShownPayload{Seat: 1, Name: "Ivy", Hand: domain.MustParseCards("S[2]")},
		Recipients: []int{1},
	})
	assert.Empty(t, out.String())

	r.Report(app.Event{
		Kind:       app.EventHandShown,
		Payload:    app.HandShownPayload{Seat: 0, Name: "Alice", Hand: domain.MustParseCards("C[3]")},
		Recipients: []int{0},
	})
	assert.Contains(t, out.String(), "Hand: C[3]")
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		payload any
		want    string
	}{
		{app.TurnPassedPayload{Name: "Ivy"}, "Player Ivy PASS"},
		{app.CardPlayedPayload{Name: "Ivy", Pattern: "pair", Cards: domain.MustParseCards("C[4] D[4]"), Remaining: 3}, "Player Ivy played pair C[4] D[4] (3 left)."},
		{app.GameEndedPayload{Winner: "Ivy"}, "Game over. Ivy wins!"},
		{app.TrickClosedPayload{Name: "Ivy"}, "New trick. Ivy leads."},
		{app.PlayRejectedPayload{Name: "Ivy", Reason: "nope"}, "Illegal play by Ivy: nope. Try again."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Describe(app.Event{Payload: tt.payload}))
	}
}
