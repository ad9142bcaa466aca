package app

// Seat limits for a Big Two table. Keep these centralized so tests or local
// runs can adjust the rule without touching multiple call sites.
const (
	MinPlayersToStartGame = 2
	MaxPlayers            = 4
)
