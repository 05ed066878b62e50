package session

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/selvamraja700/mymusic/internal/library"
	"github.com/selvamraja700/mymusic/internal/storage"
)

var errFailedWrite = errors.New("write failed")

func track(id string) library.Track {
	return library.Track{ID: id, Title: "Track " + id, AudioURL: "/audio/" + id + ".mp3"}
}

func tracks(ids ...string) []library.Track {
	out := make([]library.Track, len(ids))
	for i, id := range ids {
		out[i] = track(id)
	}
	return out
}

func newTestSession() (*Session, *storage.Memory) {
	store := storage.NewMemory()
	return New(store), store
}

func TestNew_Defaults(t *testing.T) {
	s, _ := newTestSession()

	if s.CurrentTrack() != nil {
		t.Error("new session should have no current track")
	}
	if s.TransportState() != Stopped {
		t.Errorf("TransportState() = %v, want Stopped", s.TransportState())
	}
	if s.Volume() != 0.7 {
		t.Errorf("Volume() = %v, want 0.7", s.Volume())
	}
	if s.RepeatMode() != RepeatOff {
		t.Errorf("RepeatMode() = %v, want Off", s.RepeatMode())
	}
	if s.Shuffle() {
		t.Error("Shuffle() = true, want false")
	}
}

func TestNew_RestoresPersistedState(t *testing.T) {
	store := storage.NewMemory()
	store.Set(storage.KeyVolume, "0.4")
	store.Set(storage.KeyRepeatMode, "all")
	store.Set(storage.KeyShuffleEnabled, "true")
	store.Set(storage.KeyLikedSongs, `["a","c"]`)

	s := New(store)

	if s.Volume() != 0.4 {
		t.Errorf("Volume() = %v, want 0.4", s.Volume())
	}
	if s.RepeatMode() != RepeatAll {
		t.Errorf("RepeatMode() = %v, want All", s.RepeatMode())
	}
	if !s.Shuffle() {
		t.Error("Shuffle() = false, want true")
	}
	if !s.IsLiked("a") || !s.IsLiked("c") || s.IsLiked("b") {
		t.Errorf("liked set restored wrong: %v", s.LikedIDs())
	}
}

func TestNew_IgnoresCorruptPersistedState(t *testing.T) {
	store := storage.NewMemory()
	store.Set(storage.KeyVolume, "not a number")
	store.Set(storage.KeyLikedSongs, "{broken")

	s := New(store)

	if s.Volume() != 0.7 {
		t.Errorf("Volume() = %v, want default 0.7", s.Volume())
	}
	if len(s.LikedIDs()) != 0 {
		t.Errorf("LikedIDs() = %v, want empty", s.LikedIDs())
	}
}

func TestSetVolume_Clamps(t *testing.T) {
	s, store := newTestSession()

	cases := []struct {
		in, want float64
	}{
		{0.5, 0.5},
		{-0.3, 0},
		{1.7, 1},
		{0, 0},
		{1, 1},
	}
	for _, c := range cases {
		s.SetVolume(c.in)
		if s.Volume() != c.want {
			t.Errorf("SetVolume(%v): Volume() = %v, want %v", c.in, s.Volume(), c.want)
		}
	}

	// Write-through
	v, found, _ := store.Get(storage.KeyVolume)
	if !found || v != "1" {
		t.Errorf("persisted volume = %q found=%v, want 1", v, found)
	}
}

func TestSetVolume_WhileMutedDoesNotUnmute(t *testing.T) {
	s, _ := newTestSession()

	s.ToggleMute()
	s.SetVolume(0.9)

	if !s.Muted() {
		t.Error("SetVolume unmuted the session")
	}
	if s.EffectiveVolume() != 0 {
		t.Errorf("EffectiveVolume() = %v, want 0 while muted", s.EffectiveVolume())
	}
}

func TestToggleMute_RoundTrip(t *testing.T) {
	s, _ := newTestSession()
	s.SetVolume(0.35)

	s.ToggleMute()
	if !s.Muted() {
		t.Fatal("ToggleMute did not mute")
	}
	if s.EffectiveVolume() != 0 {
		t.Errorf("EffectiveVolume() = %v, want 0", s.EffectiveVolume())
	}

	s.ToggleMute()
	if s.Muted() {
		t.Fatal("second ToggleMute did not unmute")
	}
	if s.Volume() != 0.35 {
		t.Errorf("Volume() = %v, want 0.35 restored", s.Volume())
	}
}

func TestToggleLike_Involution(t *testing.T) {
	s, store := newTestSession()
	a := track("a")

	s.ToggleLike(a)
	if !s.IsLiked("a") {
		t.Fatal("first toggle should like")
	}

	s.ToggleLike(a)
	if s.IsLiked("a") {
		t.Fatal("second toggle should unlike")
	}
	if len(s.LikedIDs()) != 0 {
		t.Errorf("LikedIDs() = %v, want empty", s.LikedIDs())
	}

	// Persisted as a JSON array, not null
	v, found, _ := store.Get(storage.KeyLikedSongs)
	if !found || v != "[]" {
		t.Errorf("persisted liked_songs = %q, want []", v)
	}
}

func TestToggleLike_NoDuplicates(t *testing.T) {
	s, _ := newTestSession()

	s.ToggleLike(track("a"))
	s.ToggleLike(track("b"))
	s.ToggleLike(track("a"))
	s.ToggleLike(track("a"))

	ids := s.LikedIDs()
	seen := map[string]int{}
	for _, id := range ids {
		seen[id]++
	}
	for id, n := range seen {
		if n > 1 {
			t.Errorf("liked id %q appears %d times", id, n)
		}
	}
}

func TestSetPlaying_IgnoredWithoutTrack(t *testing.T) {
	s, _ := newTestSession()

	s.SetPlaying(true)

	if s.TransportState() != Stopped {
		t.Errorf("TransportState() = %v, want Stopped (no track loaded)", s.TransportState())
	}
}

func TestSetCurrentTrack_NilStops(t *testing.T) {
	s, _ := newTestSession()
	s.PlayTrack(track("a"), nil)

	s.SetCurrentTrack(nil)

	if s.CurrentTrack() != nil {
		t.Error("CurrentTrack() should be nil after clearing")
	}
	if s.TransportState() != Stopped {
		t.Errorf("TransportState() = %v, want Stopped", s.TransportState())
	}
}

func TestSetCurrentTrack_DoesNotStartPlayback(t *testing.T) {
	s, _ := newTestSession()
	a := track("a")

	s.SetCurrentTrack(&a)

	if s.TransportState() != Paused {
		t.Errorf("TransportState() = %v, want Paused", s.TransportState())
	}
	if s.IsPlaying() {
		t.Error("SetCurrentTrack must not start playback")
	}
}

func TestPlayTrack_SingletonContext(t *testing.T) {
	s, _ := newTestSession()

	s.PlayTrack(track("a"), nil)

	if got := s.CurrentTrack(); got == nil || got.ID != "a" {
		t.Fatalf("CurrentTrack() = %v, want a", got)
	}
	if !s.IsPlaying() {
		t.Error("PlayTrack should start playback")
	}
	if q := s.Queue(); len(q) != 1 || q[0].ID != "a" {
		t.Errorf("Queue() = %v, want singleton [a]", q)
	}
}

func TestPlayTrack_ResolvesIndex(t *testing.T) {
	s, _ := newTestSession()
	q := tracks("a", "b", "c")

	s.PlayTrack(q[1], q)

	if s.QueueIndex() != 1 {
		t.Errorf("QueueIndex() = %d, want 1", s.QueueIndex())
	}
}

func TestPlayTrack_TrackNotInContext(t *testing.T) {
	s, _ := newTestSession()

	s.PlayTrack(track("x"), tracks("a", "b"))

	if got := s.CurrentTrack(); got == nil || got.ID != "x" {
		t.Fatalf("CurrentTrack() = %v, want x", got)
	}
	if s.QueueIndex() != 0 {
		t.Errorf("QueueIndex() = %d, want 0 for ad hoc track", s.QueueIndex())
	}
}

func TestAdvance_WalksQueueThenStops(t *testing.T) {
	s, _ := newTestSession()
	q := tracks("a", "b", "c")
	s.PlayTrack(q[0], q)

	s.Advance()
	if got := s.CurrentTrack(); got.ID != "b" || s.QueueIndex() != 1 {
		t.Fatalf("after first advance: current=%q index=%d, want b/1", got.ID, s.QueueIndex())
	}

	s.Advance()
	if got := s.CurrentTrack(); got.ID != "c" || s.QueueIndex() != 2 {
		t.Fatalf("after second advance: current=%q index=%d, want c/2", got.ID, s.QueueIndex())
	}

	s.Advance()
	if s.TransportState() != Stopped {
		t.Errorf("TransportState() = %v, want Stopped at queue end", s.TransportState())
	}
	if got := s.CurrentTrack(); got == nil || got.ID != "c" {
		t.Errorf("CurrentTrack() = %v, want c unchanged", got)
	}
}

func TestAdvance_WrapsWithRepeatAll(t *testing.T) {
	s, _ := newTestSession()
	q := tracks("a", "b", "c")
	s.SetRepeatMode(RepeatAll)
	s.PlayTrack(q[2], q)

	s.Advance()

	if got := s.CurrentTrack(); got == nil || got.ID != "a" {
		t.Fatalf("CurrentTrack() = %v, want a (wrap)", got)
	}
	if s.QueueIndex() != 0 {
		t.Errorf("QueueIndex() = %d, want 0", s.QueueIndex())
	}
	if !s.IsPlaying() {
		t.Error("transport should stay Playing after wrap")
	}
}

func TestAdvance_RepeatOneKeepsTrack(t *testing.T) {
	s, _ := newTestSession()
	q := tracks("a", "b", "c")
	s.SetRepeatMode(RepeatOne)
	s.PlayTrack(q[1], q)

	var restarted bool
	s.Subscribe(func(c Change) {
		if c == ChangeRestart {
			restarted = true
		}
	})

	s.Advance()

	if got := s.CurrentTrack(); got == nil || got.ID != "b" {
		t.Fatalf("CurrentTrack() = %v, want b unchanged", got)
	}
	if s.QueueIndex() != 1 {
		t.Errorf("QueueIndex() = %d, want 1 unchanged", s.QueueIndex())
	}
	if !restarted {
		t.Error("repeat-one advance should request a restart from zero")
	}
}

func TestRetreat_UsesHistory(t *testing.T) {
	s, _ := newTestSession()
	q := tracks("a", "b", "c")

	s.PlayTrack(q[0], q)
	s.PlayTrack(q[1], q)

	s.Retreat()

	if got := s.CurrentTrack(); got == nil || got.ID != "a" {
		t.Fatalf("CurrentTrack() = %v, want a from history", got)
	}
	if s.QueueIndex() != 0 {
		t.Errorf("QueueIndex() = %d, want 0", s.QueueIndex())
	}
}

func TestRetreat_EmptyHistoryNoOp(t *testing.T) {
	s, _ := newTestSession()
	q := tracks("a", "b")
	s.PlayTrack(q[0], q)

	s.Retreat()

	if got := s.CurrentTrack(); got == nil || got.ID != "a" {
		t.Errorf("CurrentTrack() = %v, want a unchanged", got)
	}
}

func TestRetreat_EmptyHistoryRepeatOneRestarts(t *testing.T) {
	s, _ := newTestSession()
	s.SetRepeatMode(RepeatOne)
	s.PlayTrack(track("a"), nil)
	s.UpdatePosition(42e9)

	var restarted bool
	s.Subscribe(func(c Change) {
		if c == ChangeRestart {
			restarted = true
		}
	})

	s.Retreat()

	if !restarted {
		t.Error("retreat with empty history and repeat-one should restart")
	}
	if s.Position() != 0 {
		t.Errorf("Position() = %v, want 0", s.Position())
	}
}

func TestAdvance_AfterRetreatFollowsQueue(t *testing.T) {
	s, _ := newTestSession()
	q := tracks("a", "b", "c")
	s.PlayTrack(q[0], q)
	s.PlayTrack(q[2], q)

	s.Retreat()
	if got := s.CurrentTrack(); got.ID != "a" {
		t.Fatalf("CurrentTrack() = %q, want a", got.ID)
	}

	// From a's queue position, next is b.
	s.Advance()
	if got := s.CurrentTrack(); got.ID != "b" {
		t.Errorf("CurrentTrack() = %q, want b", got.ID)
	}
}

func TestShuffle_RoundTripRestoresOrder(t *testing.T) {
	s, _ := newTestSession()
	q := tracks("a", "b", "c", "d", "e", "f")
	s.PlayTrack(q[0], q)

	s.SetShuffle(true)
	if !s.Shuffle() {
		t.Fatal("shuffle not enabled")
	}
	// Membership preserved
	if got := s.Queue(); len(got) != len(q) {
		t.Fatalf("shuffled queue len = %d, want %d", len(got), len(q))
	}
	// Index re-resolved to the current track's new position
	if got := s.Queue()[s.QueueIndex()]; got.ID != "a" {
		t.Errorf("queue[index] = %q, want current track a", got.ID)
	}

	s.SetShuffle(false)
	got := s.Queue()
	for i := range q {
		if got[i].ID != q[i].ID {
			t.Fatalf("queue[%d] = %q, want %q (original order restored)", i, got[i].ID, q[i].ID)
		}
	}
	if got := s.Queue()[s.QueueIndex()]; got.ID != "a" {
		t.Errorf("queue[index] = %q, want a after restore", got.ID)
	}
}

func TestAddToQueue_AppendsWhenNotShuffled(t *testing.T) {
	s, _ := newTestSession()
	q := tracks("a", "b")
	s.PlayTrack(q[0], q)

	s.AddToQueue(track("c"))

	got := s.Queue()
	if len(got) != 3 || got[2].ID != "c" {
		t.Errorf("Queue() = %v, want c appended", got)
	}
}

func TestAddToQueue_ShuffledKeepsCurrentReferent(t *testing.T) {
	s, _ := newTestSession()
	q := tracks("a", "b", "c", "d")
	s.PlayTrack(q[1], q)
	s.SetShuffle(true)

	current := s.CurrentTrack().ID
	index := s.QueueIndex()

	s.AddToQueue(track("x"))

	if s.QueueIndex() != index {
		t.Errorf("QueueIndex() changed from %d to %d", index, s.QueueIndex())
	}
	if got := s.Queue()[s.QueueIndex()]; got.ID != current {
		t.Errorf("queue[index] = %q, want %q (referent unchanged)", got.ID, current)
	}
	if len(s.Queue()) != 5 {
		t.Errorf("queue len = %d, want 5", len(s.Queue()))
	}

	// New track lands after the current position
	found := -1
	for i, tr := range s.Queue() {
		if tr.ID == "x" {
			found = i
		}
	}
	if found <= s.QueueIndex() {
		t.Errorf("new track at %d, want after current index %d", found, s.QueueIndex())
	}

	// Turning shuffle off restores original order with x at the end
	s.SetShuffle(false)
	got := s.Queue()
	if got[len(got)-1].ID != "x" {
		t.Errorf("original order tail = %q, want x", got[len(got)-1].ID)
	}
}

func TestRecentlyPlayed_CappedAndDeduplicated(t *testing.T) {
	s, _ := newTestSession()

	for range 3 {
		s.PlayTrack(track("a"), nil)
	}
	if len(s.RecentlyPlayed()) != 1 {
		t.Errorf("recently played = %d entries, want 1 (deduplicated)", len(s.RecentlyPlayed()))
	}

	for i := range recentMax + 10 {
		s.PlayTrack(track(string(rune('A'+i%26))+string(rune('a'+i/26))), nil)
	}
	if len(s.RecentlyPlayed()) > recentMax {
		t.Errorf("recently played = %d entries, want <= %d", len(s.RecentlyPlayed()), recentMax)
	}
}

func TestRecentlyPlayed_Persisted(t *testing.T) {
	s, store := newTestSession()

	s.PlayTrack(track("a"), nil)
	s.PlayTrack(track("b"), nil)

	v, found, _ := store.Get(storage.KeyRecentlyPlayed)
	if !found {
		t.Fatal("recently_played not persisted")
	}
	var entries []RecentEntry
	if err := json.Unmarshal([]byte(v), &entries); err != nil {
		t.Fatalf("persisted recently_played not valid JSON: %v", err)
	}
	if len(entries) != 2 || entries[0].TrackID != "b" {
		t.Errorf("persisted entries = %v, want [b a]", entries)
	}
}

func TestMutations_SurviveStoreFailure(t *testing.T) {
	s, store := newTestSession()
	store.SetErr = errFailedWrite

	s.SetVolume(0.2)
	s.ToggleLike(track("a"))
	s.SetRepeatMode(RepeatAll)

	if s.Volume() != 0.2 {
		t.Errorf("Volume() = %v, want 0.2 despite write failure", s.Volume())
	}
	if !s.IsLiked("a") {
		t.Error("like lost on write failure")
	}
	if s.RepeatMode() != RepeatAll {
		t.Errorf("RepeatMode() = %v, want All despite write failure", s.RepeatMode())
	}
}

func TestSubscribe_NotifiedInOrder(t *testing.T) {
	s, _ := newTestSession()

	var order []string
	s.Subscribe(func(c Change) {
		if c == ChangeVolume {
			order = append(order, "first")
		}
	})
	s.Subscribe(func(c Change) {
		if c == ChangeVolume {
			order = append(order, "second")
		}
	})

	s.SetVolume(0.5)

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("listener order = %v, want [first second]", order)
	}
}

func TestSnapshot(t *testing.T) {
	s, _ := newTestSession()
	q := tracks("a", "b")
	s.PlayTrack(q[0], q)
	s.ToggleLike(q[0])
	s.UpdatePosition(30e9)
	s.SetTrackDuration(180e9)

	snap := s.Snapshot()

	if snap.Track == nil || snap.Track.ID != "a" {
		t.Fatalf("Snapshot().Track = %v, want a", snap.Track)
	}
	if snap.Transport != Playing {
		t.Errorf("Transport = %v, want Playing", snap.Transport)
	}
	if !snap.Liked {
		t.Error("Liked = false, want true")
	}
	if snap.QueueLen != 2 || snap.Index != 0 {
		t.Errorf("QueueLen/Index = %d/%d, want 2/0", snap.QueueLen, snap.Index)
	}
	if snap.Position != 30e9 || snap.Duration != 180e9 {
		t.Errorf("Position/Duration = %v/%v", snap.Position, snap.Duration)
	}
}
