package bot

import (
	"encoding/json"
	"fmt"
	"os"
)

type BotIdentity struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarIndex int    `json:"avatar_index"`
}

// Identities is a pool of display names for AI seats.
type Identities struct {
	pool []BotIdentity
}

// LoadIdentities loads the bot profiles from the given path. An empty path
// yields an empty pool.
func LoadIdentities(path string) (*Identities, error) {
	if path == "" {
		return &Identities{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bot identities: %w", err)
	}

	var pool []BotIdentity
	if err := json.Unmarshal(data, &pool); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bot identities: %w", err)
	}
	return &Identities{pool: pool}, nil
}

// Len returns the pool size.
func (ids *Identities) Len() int {
	return len(ids.pool)
}

// GetBotIdentity returns an identity for a bot by index (mod pool size).
// Without a pool it falls back to "AI <index>".
func (ids *Identities) GetBotIdentity(index int) BotIdentity {
	if ids == nil || len(ids.pool) == 0 {
		return BotIdentity{
			Username:    fmt.Sprintf("ai-%d", index),
			DisplayName: fmt.Sprintf("AI %d", index),
		}
	}
	identity := ids.pool[index%len(ids.pool)]
	if identity.DisplayName == "" {
		identity.DisplayName = identity.Username
	}
	return identity
}
