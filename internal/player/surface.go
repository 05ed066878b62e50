// Package player provides the audio rendering surface: an opaque primitive
// that loads a stream, plays it, and reports events back to its consumer.
package player

import "time"

// Surface is the audio rendering contract. The playback adapter is the only
// component that drives it.
//
// Load is asynchronous: it starts fetching and decoding the source and
// returns a generation number identifying that load cycle. Every event the
// surface emits carries the generation of the load it belongs to, so
// consumers can discard events from loads they have abandoned.
type Surface interface {
	Load(url string) uint64
	Play()
	Pause()
	Seek(pos time.Duration)
	SetVolume(level float64)
	Position() time.Duration
	Events() <-chan Event
	Close() error
}

// EventKind identifies a surface event.
type EventKind int

const (
	// MetadataReady fires when the stream is decoded: duration is known and
	// playback can begin.
	MetadataReady EventKind = iota
	// Progress reports the playback position. High frequency.
	Progress
	// BufferingStart fires when the surface begins fetching data.
	BufferingStart
	// BufferingEnd fires when fetching completes.
	BufferingEnd
	// Ended fires when the stream plays to completion.
	Ended
	// LoadFailed fires when the source cannot be fetched or decoded.
	LoadFailed
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case MetadataReady:
		return "metadata"
	case Progress:
		return "progress"
	case BufferingStart:
		return "buffering-start"
	case BufferingEnd:
		return "buffering-end"
	case Ended:
		return "ended"
	case LoadFailed:
		return "load-failed"
	default:
		return "unknown"
	}
}

// Event is a notification from the surface to its consumer.
type Event struct {
	Kind     EventKind
	Gen      uint64
	Position time.Duration
	Duration time.Duration
	Err      error
}
