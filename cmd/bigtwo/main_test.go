package main

import (
	"io"
	"strings"
	"testing"

	"bigtwo/internal/bot"
	"bigtwo/internal/config"
	"bigtwo/internal/logging"
	"bigtwo/internal/ports/console"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSeats(t *testing.T) {
	term := console.NewTerminal(strings.NewReader(""), io.Discard, 0)
	ids, err := bot.LoadIdentities("")
	require.NoError(t, err)

	seats, local, err := buildSeats(config.DefaultPlayers(), term, ids, logging.Discard())
	require.NoError(t, err)
	require.Len(t, seats, 4)
	assert.Equal(t, []int{0}, local)

	agent, ok := seats[2].(*bot.Agent)
	require.True(t, ok)
	assert.Equal(t, "AI 2", agent.DisplayName)
	_, ok = agent.Strategy.(*bot.SmartBot)
	assert.True(t, ok)
}

func TestBuildSeatsRejectsUnknownLevel(t *testing.T) {
	term := console.NewTerminal(strings.NewReader(""), io.Discard, 0)
	players := []config.PlayerConfig{{Kind: config.KindAI, Level: "god"}, {Kind: config.KindHuman}}

	_, _, err := buildSeats(players, term, nil, logging.Discard())
	assert.Error(t, err)
}
