// Package storage provides the per-device key-value store backing the
// durable subset of playback state. Values are strings; structured values
// are JSON-encoded by the caller.
package storage

// Keys for persisted playback state.
const (
	KeyVolume         = "volume"
	KeyLikedSongs     = "liked_songs"
	KeyRecentlyPlayed = "recently_played"
	KeyRepeatMode     = "repeat_mode"
	KeyShuffleEnabled = "shuffle_enabled"
)

// Store is the contract for durable per-device settings.
type Store interface {
	// Get returns the value for key. The second result is false if the key
	// has never been set.
	Get(key string) (string, bool, error)
	// Set writes the value for key, replacing any previous value.
	Set(key, value string) error
	Close() error
}
