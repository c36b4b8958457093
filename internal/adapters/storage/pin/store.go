package pin

import "context"

// Store persists coach-set PIN overrides keyed by player ID. An
// override supersedes the player's built-in PIN; removing it falls back.
type Store interface {
	Set(ctx context.Context, playerID, pin string) error
	Remove(ctx context.Context, playerID string) error
	Get(ctx context.Context, playerID string) (string, error)
	All(ctx context.Context) (map[string]string, error)
}
