package transcript

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"bigtwo/internal/app"
	"bigtwo/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCardPlayed(t *testing.T) {
	line, err := Encode(app.Event{
		Kind:   app.EventCardPlayed,
		GameID: "g1",
		Payload: app.CardPlayedPayload{
			Seat:      2,
			Name:      "Ivy",
			Pattern:   "pair",
			Cards:     domain.MustParseCards("C[4] D[4]"),
			Remaining: 11,
		},
	})
	require.NoError(t, err)
	assert.NotContains(t, string(line), "\n")

	m, err := Decode(line)
	require.NoError(t, err)
	assert.Equal(t, "card_played", m["kind"])
	assert.Equal(t, "g1", m["game_id"])
	assert.Equal(t, float64(2), m["seat"])
	assert.Equal(t, []interface{}{"C[4]", "D[4]"}, m["cards"])
	assert.Equal(t, float64(11), m["remaining"])
}

func TestEncodeRecipients(t *testing.T) {
	line, err := Encode(app.Event{
		Kind:       app.EventHandShown,
		Payload:    app.HandShownPayload{Seat: 1, Hand: domain.MustParseCards("S[2]")},
		Recipients: []int{1},
	})
	require.NoError(t, err)

	m, err := Decode(line)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{float64(1)}, m["recipients"])
	assert.Equal(t, []interface{}{"S[2]"}, m["hand"])
}

func TestWriterOneLinePerEvent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.jsonl")
	w, err := Create(path, nil)
	require.NoError(t, err)

	w.Report(app.Event{Kind: app.EventTurnPassed, Payload: app.TurnPassedPayload{Seat: 1, Name: "Ivy"}})
	w.Report(app.Event{Kind: app.EventGameEnded, Payload: app.GameEndedPayload{WinnerSeat: 0, Winner: "Alice"}})
	require.NoError(t, w.Err())
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var kinds []interface{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		m, err := Decode(scanner.Bytes())
		require.NoError(t, err)
		kinds = append(kinds, m["kind"])
	}
	assert.Equal(t, []interface{}{"turn_passed", "game_ended"}, kinds)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriterKeepsFirstError(t *testing.T) {
	w := NewWriter(failingWriter{}, nil)
	w.Report(app.Event{Kind: app.EventTurnPassed, Payload: app.TurnPassedPayload{}})
	require.Error(t, w.Err())
	assert.Contains(t, w.Err().Error(), "disk full")

	var buf bytes.Buffer
	ok := NewWriter(&buf, nil)
	ok.Report(app.Event{Kind: app.EventTurnPassed, Payload: app.TurnPassedPayload{}})
	assert.NoError(t, ok.Err())
	assert.NotZero(t, buf.Len())
}
