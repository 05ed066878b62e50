// Package session holds the canonical playback state: current track,
// transport, queue order, history, volume, modes and liked tracks. All
// mutation goes through Session methods; consumers observe changes through
// registered listeners or snapshots.
package session

import (
	"math/rand"
	"sync"
	"time"

	"github.com/selvamraja700/mymusic/internal/library"
	"github.com/selvamraja700/mymusic/internal/storage"
)

const (
	defaultVolume = 0.7
	historyMax    = 100
	recentMax     = 50
)

// Session is the single source of truth for playback state. One instance
// lives for the application's lifetime. Methods are safe for concurrent use;
// mutations serialize on an internal lock and listeners are notified
// synchronously after each mutation, outside the lock.
type Session struct {
	mu    sync.Mutex
	store storage.Store
	rng   *rand.Rand

	current   *library.Track
	transport Transport

	queue    []library.Track
	original []library.Track
	index    int
	hist     *history

	volume         float64
	muted          bool
	previousVolume float64

	repeat  RepeatMode
	shuffle bool

	liked  []string
	recent []RecentEntry

	position time.Duration
	duration time.Duration
	loading  bool

	listenersMu sync.RWMutex
	listeners   []Listener
}

// RecentEntry records one play for the recently-played list, newest first.
type RecentEntry struct {
	TrackID   string    `json:"trackId"`
	Timestamp time.Time `json:"timestamp"`
}

// Snapshot is a consistent copy of the display-relevant state.
type Snapshot struct {
	Track     *library.Track
	Transport Transport
	QueueLen  int
	Index     int
	Position  time.Duration
	Duration  time.Duration
	Loading   bool
	Volume    float64
	Muted     bool
	Repeat    RepeatMode
	Shuffle   bool
	Liked     bool
}

// New creates a session restored from the store's persisted fields, falling
// back to defaults (volume 0.7, repeat off, shuffle off, empty collections).
func New(store storage.Store) *Session {
	s := &Session{
		store:          store,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
		volume:         defaultVolume,
		previousVolume: defaultVolume,
		hist:           newHistory(historyMax),
	}
	s.restore()
	return s
}

// Subscribe registers a listener for change notifications. Listeners must
// not block; they run on the mutating goroutine.
func (s *Session) Subscribe(l Listener) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.listeners = append(s.listeners, l)
}

func (s *Session) emit(changes ...Change) {
	s.listenersMu.RLock()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.listenersMu.RUnlock()

	for _, c := range changes {
		for _, l := range listeners {
			l(c)
		}
	}
}

// --- queries ---

// CurrentTrack returns a copy of the current track, or nil if none loaded.
func (s *Session) CurrentTrack() *library.Track {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	t := *s.current
	return &t
}

// TransportState returns the transport state.
func (s *Session) TransportState() Transport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transport
}

// IsPlaying reports whether the transport is in the Playing state.
func (s *Session) IsPlaying() bool {
	return s.TransportState() == Playing
}

// Queue returns a copy of the active play order.
func (s *Session) Queue() []library.Track {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]library.Track, len(s.queue))
	copy(out, s.queue)
	return out
}

// QueueIndex returns the position of the current track within the queue.
func (s *Session) QueueIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Volume returns the stored volume level in [0,1].
func (s *Session) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// Muted reports whether output is muted.
func (s *Session) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// EffectiveVolume is the level the audio surface should output: zero while
// muted, the stored volume otherwise.
func (s *Session) EffectiveVolume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.effectiveVolumeLocked()
}

func (s *Session) effectiveVolumeLocked() float64 {
	if s.muted {
		return 0
	}
	return s.volume
}

// RepeatMode returns the current repeat mode.
func (s *Session) RepeatMode() RepeatMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repeat
}

// Shuffle reports whether shuffle is enabled.
func (s *Session) Shuffle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shuffle
}

// IsLiked reports whether the track ID is in the liked set.
func (s *Session) IsLiked(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.likedIndexLocked(id) >= 0
}

// LikedIDs returns the liked track IDs in insertion order.
func (s *Session) LikedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.liked))
	copy(out, s.liked)
	return out
}

// RecentlyPlayed returns the capped recently-played list, newest first.
func (s *Session) RecentlyPlayed() []RecentEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecentEntry, len(s.recent))
	copy(out, s.recent)
	return out
}

// Position returns the transient playback position.
func (s *Session) Position() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position
}

// Duration returns the transient track duration reported by the surface.
func (s *Session) Duration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.duration
}

// Loading reports whether the surface is loading or buffering.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Snapshot returns a consistent copy of the display state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Transport: s.transport,
		QueueLen:  len(s.queue),
		Index:     s.index,
		Position:  s.position,
		Duration:  s.duration,
		Loading:   s.loading,
		Volume:    s.volume,
		Muted:     s.muted,
		Repeat:    s.repeat,
		Shuffle:   s.shuffle,
	}
	if s.current != nil {
		t := *s.current
		snap.Track = &t
		snap.Liked = s.likedIndexLocked(t.ID) >= 0
	}
	return snap
}

// --- mutations ---

// SetCurrentTrack sets the current track without starting playback.
// A nil track clears the current track and stops the transport.
func (s *Session) SetCurrentTrack(t *library.Track) {
	s.mu.Lock()
	if t == nil {
		s.current = nil
		s.transport = Stopped
		s.position = 0
		s.duration = 0
		s.mu.Unlock()
		s.emit(ChangeTrack, ChangeTransport)
		return
	}

	track := *t
	s.current = &track
	if i := indexOf(s.queue, track.ID); i >= 0 {
		s.index = i
	}
	changes := []Change{ChangeTrack}
	if s.transport == Stopped {
		s.transport = Paused
		changes = append(changes, ChangeTransport)
	}
	s.mu.Unlock()
	s.emit(changes...)
}

// SetPlaying moves the transport to Playing or Paused. Without a current
// track the call is ignored: Playing is meaningless with nothing loaded.
func (s *Session) SetPlaying(playing bool) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return
	}
	target := Paused
	if playing {
		target = Playing
	}
	if s.transport == target {
		s.mu.Unlock()
		return
	}
	s.transport = target
	s.mu.Unlock()
	s.emit(ChangeTransport)
}

// TogglePlay flips between Playing and Paused.
func (s *Session) TogglePlay() {
	s.SetPlaying(!s.IsPlaying())
}

// PlayTrack replaces the queue with context (or a singleton of t when
// context is nil), makes t current and starts playback. The previously
// current track, if any and different, is pushed onto history.
func (s *Session) PlayTrack(t library.Track, context []library.Track) {
	s.mu.Lock()
	if len(context) == 0 {
		context = []library.Track{t}
	}
	s.queue = make([]library.Track, len(context))
	copy(s.queue, context)
	s.original = make([]library.Track, len(context))
	copy(s.original, context)

	if i := indexOf(s.queue, t.ID); i >= 0 {
		s.index = i
	} else {
		// Tolerate ad hoc callers: the track plays even if it is not part
		// of the supplied context.
		s.index = 0
	}

	if s.current != nil && s.current.ID != t.ID {
		s.hist.push(*s.current)
	}
	track := t
	s.current = &track
	s.transport = Playing
	s.recordRecentLocked(t.ID)
	s.mu.Unlock()
	s.emit(ChangeQueue, ChangeTrack, ChangeTransport)
}

// Advance moves to the next track per the sequencing rules. At the end of
// the queue with repeat off, the transport stops and the current track is
// left in place, paused at the end.
func (s *Session) Advance() {
	s.mu.Lock()
	next, ok := ComputeNext(len(s.queue), s.index, s.repeat)
	if !ok {
		if s.transport == Stopped {
			s.mu.Unlock()
			return
		}
		s.transport = Stopped
		s.mu.Unlock()
		s.emit(ChangeTransport)
		return
	}

	if s.repeat == RepeatOne && s.current != nil {
		// Same track, restarted from zero by the surface adapter.
		s.position = 0
		s.transport = Playing
		s.mu.Unlock()
		s.emit(ChangeRestart, ChangeTransport)
		return
	}

	if next >= len(s.queue) {
		s.mu.Unlock()
		return
	}
	if s.current != nil {
		s.hist.push(*s.current)
	}
	track := s.queue[next]
	s.current = &track
	s.index = next
	s.transport = Playing
	s.recordRecentLocked(track.ID)
	s.mu.Unlock()
	s.emit(ChangeTrack, ChangeTransport)
}

// Retreat returns to the most recently heard track. With an empty history
// and repeat-one, the current track restarts from zero; otherwise an empty
// history makes this a no-op.
func (s *Session) Retreat() {
	s.mu.Lock()
	if t, ok := s.hist.pop(); ok {
		s.current = &t
		if i := indexOf(s.queue, t.ID); i >= 0 {
			s.index = i
		}
		s.recordRecentLocked(t.ID)
		s.mu.Unlock()
		s.emit(ChangeTrack)
		return
	}
	if s.repeat == RepeatOne && s.current != nil {
		s.position = 0
		s.mu.Unlock()
		s.emit(ChangeRestart)
		return
	}
	s.mu.Unlock()
}

// ToggleLike flips membership of the track in the liked set and persists
// the result. Applying it twice restores the original membership.
func (s *Session) ToggleLike(t library.Track) {
	s.mu.Lock()
	if i := s.likedIndexLocked(t.ID); i >= 0 {
		s.liked = append(s.liked[:i], s.liked[i+1:]...)
	} else {
		s.liked = append(s.liked, t.ID)
	}
	s.saveLikedLocked()
	s.mu.Unlock()
	s.emit(ChangeLiked)
}

// AddToQueue appends the track to the play order. While shuffle is active
// the track is appended to the original order and placed at a random
// position after the current track, so the current index keeps referring to
// the same track.
func (s *Session) AddToQueue(t library.Track) {
	s.mu.Lock()
	s.original = append(s.original, t)
	if s.shuffle && len(s.queue) > 0 {
		idx := s.index
		if idx < 0 || idx >= len(s.queue) {
			idx = len(s.queue) - 1
		}
		pos := idx + 1 + s.rng.Intn(len(s.queue)-idx)
		s.queue = append(s.queue, library.Track{})
		copy(s.queue[pos+1:], s.queue[pos:])
		s.queue[pos] = t
	} else {
		s.queue = append(s.queue, t)
	}
	s.mu.Unlock()
	s.emit(ChangeQueue)
}

// SetVolume clamps v to [0,1] and persists it. Muting is independent: a
// volume change while muted does not unmute.
func (s *Session) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	s.mu.Lock()
	s.volume = v
	s.saveVolumeLocked()
	s.mu.Unlock()
	s.emit(ChangeVolume)
}

// ToggleMute mutes output, saving the current volume; unmuting restores it.
func (s *Session) ToggleMute() {
	s.mu.Lock()
	if s.muted {
		s.muted = false
		s.volume = s.previousVolume
		s.saveVolumeLocked()
	} else {
		s.previousVolume = s.volume
		s.muted = true
	}
	s.mu.Unlock()
	s.emit(ChangeVolume)
}

// SetRepeatMode sets the repeat mode and persists it.
func (s *Session) SetRepeatMode(m RepeatMode) {
	s.mu.Lock()
	if s.repeat == m {
		s.mu.Unlock()
		return
	}
	s.repeat = m
	s.saveRepeatLocked()
	s.mu.Unlock()
	s.emit(ChangeMode)
}

// CycleRepeatMode advances off → all → one → off and returns the new mode.
func (s *Session) CycleRepeatMode() RepeatMode {
	s.mu.Lock()
	s.repeat = s.repeat.Cycle()
	m := s.repeat
	s.saveRepeatLocked()
	s.mu.Unlock()
	s.emit(ChangeMode)
	return m
}

// SetShuffle enables or disables shuffle. Enabling permutes the queue from
// the original order; disabling restores the original order. Either way the
// current track keeps its membership and the index is re-resolved.
func (s *Session) SetShuffle(enabled bool) {
	s.mu.Lock()
	if s.shuffle == enabled {
		s.mu.Unlock()
		return
	}
	s.shuffle = enabled
	if enabled {
		s.queue = shufflePermutation(s.original, s.rng)
	} else {
		s.queue = make([]library.Track, len(s.original))
		copy(s.queue, s.original)
	}
	if s.current != nil {
		if i := indexOf(s.queue, s.current.ID); i >= 0 {
			s.index = i
		}
	}
	s.saveShuffleLocked()
	s.mu.Unlock()
	s.emit(ChangeMode, ChangeQueue)
}

// ToggleShuffle flips shuffle and returns the new state.
func (s *Session) ToggleShuffle() bool {
	enabled := !s.Shuffle()
	s.SetShuffle(enabled)
	return enabled
}

// --- surface adapter feedback (transient state) ---

// UpdatePosition mirrors the surface's reported position. High frequency;
// it touches only transient state.
func (s *Session) UpdatePosition(pos time.Duration) {
	s.mu.Lock()
	s.position = pos
	s.mu.Unlock()
	s.emit(ChangeProgress)
}

// SetTrackDuration records the decoded duration once metadata is ready.
func (s *Session) SetTrackDuration(d time.Duration) {
	s.mu.Lock()
	s.duration = d
	if s.current != nil {
		s.current.Duration = d
	}
	s.mu.Unlock()
	s.emit(ChangeProgress)
}

// SetLoading toggles the transient loading/buffering indicator.
func (s *Session) SetLoading(loading bool) {
	s.mu.Lock()
	if s.loading == loading {
		s.mu.Unlock()
		return
	}
	s.loading = loading
	s.mu.Unlock()
	s.emit(ChangeProgress)
}

// ResetProgress clears transient position and duration, used when the
// current track changes before the new stream has loaded.
func (s *Session) ResetProgress() {
	s.mu.Lock()
	s.position = 0
	s.duration = 0
	s.mu.Unlock()
	s.emit(ChangeProgress)
}

// --- internal helpers ---

func (s *Session) likedIndexLocked(id string) int {
	for i, v := range s.liked {
		if v == id {
			return i
		}
	}
	return -1
}

func (s *Session) recordRecentLocked(id string) {
	// Move an existing entry to the front rather than duplicating it.
	for i, e := range s.recent {
		if e.TrackID == id {
			s.recent = append(s.recent[:i], s.recent[i+1:]...)
			break
		}
	}
	s.recent = append([]RecentEntry{{TrackID: id, Timestamp: time.Now()}}, s.recent...)
	if len(s.recent) > recentMax {
		s.recent = s.recent[:recentMax]
	}
	s.saveRecentLocked()
}
