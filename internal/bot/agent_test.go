package bot

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"bigtwo/internal/domain"
	"bigtwo/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedBrain struct {
	move Move
	err  error
}

func (b fixedBrain) CalculateMove(domain.TurnView) (Move, error) { return b.move, b.err }

func TestAgent_PlayMapsCardsToIndices(t *testing.T) {
	agent, err := NewAgent("Ivy", BotLevelSmart, logging.Discard())
	require.NoError(t, err)

	view := leadView("D[4] S[6] C[6] S[2]", nil)
	sel, err := agent.Play(context.Background(), view)
	require.NoError(t, err)
	assert.False(t, sel.Pass)
	assert.Equal(t, []int{2, 1}, sel.Indices)
}

func TestAgent_Pass(t *testing.T) {
	agent := &Agent{DisplayName: "Ivy", Strategy: &GoodBot{}}

	sel, err := agent.Play(context.Background(), followView("D[4]", "S[2]"))
	require.NoError(t, err)
	assert.True(t, sel.Pass)
}

func TestAgent_RejectsForeignCards(t *testing.T) {
	agent := &Agent{DisplayName: "x", Strategy: fixedBrain{move: Move{Cards: domain.MustParseCards("S[2]")}}}

	_, err := agent.Play(context.Background(), leadView("C[3]", nil))
	assert.ErrorIs(t, err, domain.ErrInvalidSelection)
}

func TestAgent_StrategyError(t *testing.T) {
	boom := errors.New("boom")
	agent := &Agent{DisplayName: "x", Strategy: fixedBrain{err: boom}}

	_, err := agent.Play(context.Background(), leadView("C[3]", nil))
	assert.ErrorIs(t, err, boom)
}

func TestAgent_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	agent := &Agent{DisplayName: "x", Strategy: &GoodBot{}}

	_, err := agent.Play(ctx, leadView("C[3]", nil))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = agent.Name(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("Smart")
	require.NoError(t, err)
	assert.Equal(t, BotLevelSmart, level)

	level, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, BotLevelGood, level)

	_, err = ParseLevel("god")
	assert.Error(t, err)

	_, err = NewBrain(BotLevel(9))
	assert.Error(t, err)
}

func TestIdentities(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids.json")
	body := `[{"username":"ivy","display_name":"Ivy"},{"username":"marco"}]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	ids, err := LoadIdentities(path)
	require.NoError(t, err)
	assert.Equal(t, 2, ids.Len())
	assert.Equal(t, "Ivy", ids.GetBotIdentity(0).DisplayName)
	assert.Equal(t, "marco", ids.GetBotIdentity(1).DisplayName)
	assert.Equal(t, "Ivy", ids.GetBotIdentity(2).DisplayName)
}

func TestIdentitiesFallback(t *testing.T) {
	ids, err := LoadIdentities("")
	require.NoError(t, err)
	assert.Equal(t, "AI 3", ids.GetBotIdentity(3).DisplayName)

	_, err = LoadIdentities(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
