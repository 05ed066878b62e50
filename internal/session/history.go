package session

import "github.com/selvamraja700/mymusic/internal/library"

// history is the most-recently-played stack backing "previous" navigation.
// "Previous" means what the user just heard, which may differ from
// queue[index-1] after jumps, so it is tracked separately from the queue.
type history struct {
	tracks  []library.Track
	maxSize int
}

func newHistory(maxSize int) *history {
	return &history{maxSize: maxSize}
}

// push appends a track, evicting the oldest entry when over the cap.
// A track equal to the current tail is not pushed again, so repeated plays
// of the same track do not stack up self-duplicates.
func (h *history) push(t library.Track) {
	if n := len(h.tracks); n > 0 && h.tracks[n-1].ID == t.ID {
		return
	}
	h.tracks = append(h.tracks, t)
	if len(h.tracks) > h.maxSize {
		excess := len(h.tracks) - h.maxSize
		h.tracks = h.tracks[excess:]
	}
}

// pop removes and returns the most recent entry.
func (h *history) pop() (library.Track, bool) {
	if len(h.tracks) == 0 {
		return library.Track{}, false
	}
	t := h.tracks[len(h.tracks)-1]
	h.tracks = h.tracks[:len(h.tracks)-1]
	return t, true
}

func (h *history) len() int {
	return len(h.tracks)
}
