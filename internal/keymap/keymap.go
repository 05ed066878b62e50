package keymap

// Binding describes a single key binding.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
	Context     string // "global", "playback", "list"
}

// All contains all key bindings for resolution and help generation.
var All = []Binding{
	// Global
	{[]string{"q", "ctrl+c"}, ActionQuit, "Quit application", "global"},
	{[]string{"/"}, ActionSearch, "Search songs", "global"},
	{[]string{"1"}, ActionViewTrending, "Trending view", "global"},
	{[]string{"2"}, ActionViewSongs, "All songs view", "global"},
	{[]string{"3"}, ActionViewLiked, "Liked songs view", "global"},
	{[]string{"4"}, ActionViewRecent, "Recently played view", "global"},

	// Playback
	{[]string{" "}, ActionPlayPause, "Play/pause", "playback"},
	{[]string{"n"}, ActionNextTrack, "Next track", "playback"},
	{[]string{"p"}, ActionPrevTrack, "Previous track", "playback"},
	{[]string{"right"}, ActionSeekForward, "Seek +5s", "playback"},
	{[]string{"left"}, ActionSeekBack, "Seek -5s", "playback"},
	{[]string{"+", "="}, ActionVolumeUp, "Volume up", "playback"},
	{[]string{"-"}, ActionVolumeDown, "Volume down", "playback"},
	{[]string{"m"}, ActionToggleMute, "Toggle mute", "playback"},
	{[]string{"s"}, ActionToggleShuffle, "Toggle shuffle", "playback"},
	{[]string{"r"}, ActionCycleRepeat, "Cycle repeat mode", "playback"},

	// List
	{[]string{"enter"}, ActionSelect, "Play track", "list"},
	{[]string{"a"}, ActionAddToQueue, "Add to queue", "list"},
	{[]string{"l"}, ActionToggleLike, "Like/unlike track", "list"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
