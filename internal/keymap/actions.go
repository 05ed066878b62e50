// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit   Action = "quit"
	ActionSearch Action = "search"

	// View switching
	ActionViewTrending Action = "view_trending"
	ActionViewSongs    Action = "view_songs"
	ActionViewLiked    Action = "view_liked"
	ActionViewRecent   Action = "view_recent"

	// Playback actions
	ActionPlayPause     Action = "play_pause"
	ActionNextTrack     Action = "next_track"
	ActionPrevTrack     Action = "prev_track"
	ActionSeekForward   Action = "seek_forward"
	ActionSeekBack      Action = "seek_back"
	ActionVolumeUp      Action = "volume_up"
	ActionVolumeDown    Action = "volume_down"
	ActionToggleMute    Action = "toggle_mute"
	ActionToggleShuffle Action = "toggle_shuffle"
	ActionCycleRepeat   Action = "cycle_repeat"

	// Selection actions
	ActionSelect     Action = "select"      // enter - play the highlighted track
	ActionAddToQueue Action = "add"         // a - append to queue
	ActionToggleLike Action = "toggle_like" // l - like/unlike
)
