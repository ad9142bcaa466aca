package bot

import (
	"fmt"
	"strings"
)

// BotLevel selects a strategy.
type BotLevel int

const (
	BotLevelGood BotLevel = iota
	BotLevelSmart
)

func (l BotLevel) String() string {
	switch l {
	case BotLevelGood:
		return "good"
	case BotLevelSmart:
		return "smart"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel maps a configured level name to a BotLevel.
func ParseLevel(s string) (BotLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "good":
		return BotLevelGood, nil
	case "smart":
		return BotLevelSmart, nil
	default:
		return 0, fmt.Errorf("unknown bot level: %q", s)
	}
}

// NewBrain creates a new AI brain based on the specified level.
func NewBrain(level BotLevel) (Brain, error) {
	switch level {
	case BotLevelGood:
		return &GoodBot{}, nil
	case BotLevelSmart:
		return NewSmartBot(), nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}
