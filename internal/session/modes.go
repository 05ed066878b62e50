package session

// Transport represents the playback transport state.
//
// Valid transitions:
//   - Stopped → Paused  (a track is loaded via SetCurrentTrack)
//   - Paused  → Playing (SetPlaying(true))
//   - Playing → Paused  (SetPlaying(false))
//   - Playing → Stopped (queue exhausted with repeat off)
//
// Initial state: Stopped with no current track.
type Transport int

const (
	Stopped Transport = iota
	Playing
	Paused
)

// String returns the transport state name.
func (t Transport) String() string {
	switch t {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// RepeatMode defines the repeat behavior at queue boundaries.
type RepeatMode int

const (
	RepeatOff RepeatMode = iota
	RepeatAll
	RepeatOne
)

// String returns the persisted form of the mode.
func (m RepeatMode) String() string {
	switch m {
	case RepeatAll:
		return "all"
	case RepeatOne:
		return "one"
	default:
		return "off"
	}
}

// ParseRepeatMode converts a persisted mode string back to a RepeatMode.
// Unknown values map to RepeatOff.
func ParseRepeatMode(s string) RepeatMode {
	switch s {
	case "all":
		return RepeatAll
	case "one":
		return RepeatOne
	default:
		return RepeatOff
	}
}

// Cycle returns the next mode in the off → all → one cycle.
func (m RepeatMode) Cycle() RepeatMode {
	switch m {
	case RepeatOff:
		return RepeatAll
	case RepeatAll:
		return RepeatOne
	default:
		return RepeatOff
	}
}
