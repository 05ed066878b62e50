// Package playback binds the session to the audio surface: session changes
// drive the surface, and surface events feed transient state and
// auto-advance back into the session.
package playback

import (
	"sync"
	"time"

	"github.com/selvamraja700/mymusic/internal/library"
	"github.com/selvamraja700/mymusic/internal/player"
	"github.com/selvamraja700/mymusic/internal/session"
)

// Adapter is the only component that drives the audio surface. It
// subscribes to session changes and consumes the surface's event stream,
// discarding events from load cycles that a newer track has superseded.
type Adapter struct {
	session *session.Session
	surface player.Surface

	mu          sync.Mutex
	gen         uint64
	lastTrackID string

	done    chan struct{}
	stopped sync.Once
}

// New wires the session to the surface and starts consuming surface events.
func New(s *session.Session, surf player.Surface) *Adapter {
	a := &Adapter{
		session: s,
		surface: surf,
		done:    make(chan struct{}),
	}
	surf.SetVolume(s.EffectiveVolume())
	s.Subscribe(a.onChange)
	go a.eventLoop()
	return a
}

// Seek is a user-initiated seek: it goes straight to the surface and
// optimistically mirrors the target position so the UI reflects it before
// the surface confirms.
func (a *Adapter) Seek(target time.Duration) {
	if target < 0 {
		target = 0
	}
	a.surface.Seek(target)
	a.session.UpdatePosition(target)
}

// Close stops event consumption. The surface is closed by its owner.
func (a *Adapter) Close() {
	a.stopped.Do(func() { close(a.done) })
}

// onChange runs synchronously after each session mutation.
func (a *Adapter) onChange(c session.Change) {
	switch c {
	case session.ChangeTrack:
		a.bindTrack(a.session.CurrentTrack())
	case session.ChangeTransport:
		if a.session.IsPlaying() {
			a.surface.Play()
		} else {
			a.surface.Pause()
		}
	case session.ChangeVolume:
		a.surface.SetVolume(a.session.EffectiveVolume())
	case session.ChangeRestart:
		a.surface.Seek(0)
		if a.session.IsPlaying() {
			a.surface.Play()
		}
	}
}

// bindTrack reloads the surface when the current track actually changed.
func (a *Adapter) bindTrack(t *library.Track) {
	a.mu.Lock()
	if t == nil {
		a.lastTrackID = ""
		a.mu.Unlock()
		a.surface.Pause()
		return
	}
	if t.ID == a.lastTrackID {
		a.mu.Unlock()
		return
	}
	a.lastTrackID = t.ID
	a.mu.Unlock()

	a.session.ResetProgress()
	a.session.SetLoading(true)

	a.mu.Lock()
	a.gen = a.surface.Load(t.AudioURL)
	a.mu.Unlock()
}

func (a *Adapter) eventLoop() {
	for {
		select {
		case <-a.done:
			return
		case e, ok := <-a.surface.Events():
			if !ok {
				return
			}
			a.handle(e)
		}
	}
}

func (a *Adapter) handle(e player.Event) {
	a.mu.Lock()
	current := a.gen
	a.mu.Unlock()
	if e.Gen != current {
		// Stale event from an abandoned load. Expected during fast track
		// switching, not an error.
		return
	}

	switch e.Kind {
	case player.MetadataReady:
		a.session.SetTrackDuration(e.Duration)
		a.session.UpdatePosition(e.Position)
		a.session.SetLoading(false)
		if a.session.IsPlaying() {
			a.surface.Play()
		}
	case player.Progress:
		a.session.UpdatePosition(e.Position)
	case player.BufferingStart:
		a.session.SetLoading(true)
	case player.BufferingEnd:
		a.session.SetLoading(false)
	case player.Ended:
		a.session.Advance()
	case player.LoadFailed:
		// The track simply does not play; the transport drops to Paused so
		// the controls stay consistent with the silent surface.
		a.session.SetLoading(false)
		a.session.SetPlaying(false)
	}
}
