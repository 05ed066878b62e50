// Package library defines the track records the playback core operates on.
package library

import "time"

// Track describes a playable item from the catalog. Tracks are read-only:
// the playback core references them by ID and never mutates them.
type Track struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Artist   string        `json:"artist"`
	Album    string        `json:"album,omitempty"`
	CoverURL string        `json:"coverImage"`
	AudioURL string        `json:"url"`
	Duration time.Duration `json:"-"`
	Plays    int64         `json:"plays"`

	// DurationSeconds carries the catalog's reported length. It may be zero:
	// the true duration is only known once the audio surface has decoded the
	// stream's metadata.
	DurationSeconds float64 `json:"duration"`
}

// KnownDuration returns the best available duration for display, preferring
// the decoded duration over the catalog's reported seconds.
func (t Track) KnownDuration() time.Duration {
	if t.Duration > 0 {
		return t.Duration
	}
	return time.Duration(t.DurationSeconds * float64(time.Second))
}
