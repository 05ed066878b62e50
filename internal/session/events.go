package session

// Change identifies which part of the session a mutation touched.
// Listeners registered with Subscribe are invoked synchronously after each
// mutation, in registration order, outside the session lock.
type Change int

const (
	// ChangeTrack fires when the current track is set, replaced or cleared.
	ChangeTrack Change = iota
	// ChangeTransport fires on Playing/Paused/Stopped transitions.
	ChangeTransport
	// ChangeQueue fires when queue contents or order change.
	ChangeQueue
	// ChangeVolume fires when the effective output volume changes
	// (volume set or mute toggled).
	ChangeVolume
	// ChangeMode fires when repeat mode or shuffle changes.
	ChangeMode
	// ChangeLiked fires when the liked set changes.
	ChangeLiked
	// ChangeProgress fires on transient position/duration/loading updates.
	ChangeProgress
	// ChangeRestart fires when the current track should restart from zero
	// (repeat-one retreat with empty history). The surface adapter reacts
	// by seeking to the start.
	ChangeRestart
)

// String returns the change name.
func (c Change) String() string {
	switch c {
	case ChangeTrack:
		return "track"
	case ChangeTransport:
		return "transport"
	case ChangeQueue:
		return "queue"
	case ChangeVolume:
		return "volume"
	case ChangeMode:
		return "mode"
	case ChangeLiked:
		return "liked"
	case ChangeProgress:
		return "progress"
	case ChangeRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Listener receives change notifications from a Session.
type Listener func(Change)
