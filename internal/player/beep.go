package player

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	eventBufferSize  = 64
	progressInterval = 500 * time.Millisecond
)

var (
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// Beep renders audio with the beep speaker, fetching sources over HTTP.
// Each Load starts a new generation; events from a superseded generation are
// still emitted (tagged) and it is the consumer's job to discard them.
type Beep struct {
	mu sync.Mutex

	client *http.Client
	events chan Event

	gen      uint64
	cancel   context.CancelFunc
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	level    float64
	closed   bool

	// finished flips when the current stream plays to completion. The
	// speaker callback must not take b.mu, hence the atomic.
	finished atomic.Bool
}

// Verify Beep implements Surface at compile time.
var _ Surface = (*Beep)(nil)

// NewBeep creates a beep-backed surface.
func NewBeep() *Beep {
	return &Beep{
		client: &http.Client{Timeout: 30 * time.Second},
		events: make(chan Event, eventBufferSize),
		level:  1,
	}
}

// Load starts fetching and decoding the source. It returns immediately with
// the generation of this load cycle; completion is reported via events.
func (b *Beep) Load(srcURL string) uint64 {
	b.mu.Lock()
	b.gen++
	gen := b.gen
	if b.cancel != nil {
		b.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	b.stopLocked()
	b.mu.Unlock()

	b.emit(Event{Kind: BufferingStart, Gen: gen})
	go b.fetch(ctx, gen, srcURL)
	return gen
}

func (b *Beep) fetch(ctx context.Context, gen uint64, srcURL string) {
	data, err := b.download(ctx, srcURL)
	if err != nil {
		b.emit(Event{Kind: LoadFailed, Gen: gen, Err: err})
		return
	}

	streamer, format, err := decode(srcURL, data)
	if err != nil {
		b.emit(Event{Kind: LoadFailed, Gen: gen, Err: err})
		return
	}

	b.mu.Lock()
	if gen != b.gen || b.closed {
		// A newer load superseded this one while it was in flight.
		b.mu.Unlock()
		streamer.Close()
		return
	}

	if !speakerInitialized {
		speakerSampleRate = format.SampleRate
		if err := speaker.Init(speakerSampleRate, speakerSampleRate.N(time.Second/10)); err != nil {
			b.mu.Unlock()
			streamer.Close()
			b.emit(Event{Kind: LoadFailed, Gen: gen, Err: err})
			return
		}
		speakerInitialized = true
	}

	b.streamer = streamer
	b.format = format

	var playStreamer beep.Streamer = streamer
	if format.SampleRate != speakerSampleRate {
		playStreamer = beep.Resample(4, format.SampleRate, speakerSampleRate, streamer)
	}
	// Start paused; the adapter issues Play when the transport says so.
	b.ctrl = &beep.Ctrl{Streamer: playStreamer, Paused: true}
	b.volume = &effects.Volume{Streamer: b.ctrl, Base: 2}
	b.applyVolumeLocked()

	duration := format.SampleRate.D(streamer.Len())
	b.finished.Store(false)
	volume := b.volume
	b.mu.Unlock()

	speaker.Play(beep.Seq(volume, beep.Callback(func() {
		b.finished.Store(true)
		b.emit(Event{Kind: Ended, Gen: gen, Position: duration, Duration: duration})
	})))

	b.emit(Event{Kind: BufferingEnd, Gen: gen})
	b.emit(Event{Kind: MetadataReady, Gen: gen, Duration: duration})

	go b.progressLoop(gen)
}

func (b *Beep) download(ctx context.Context, srcURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srcURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch audio: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}
	return data, nil
}

// progressLoop reports the position for one load generation until a newer
// load replaces it.
func (b *Beep) progressLoop(gen uint64) {
	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()

	for range ticker.C {
		b.mu.Lock()
		if gen != b.gen || b.closed || b.streamer == nil {
			b.mu.Unlock()
			return
		}
		paused := b.ctrl != nil && b.ctrl.Paused
		pos := b.positionLocked()
		b.mu.Unlock()

		if !paused {
			b.emit(Event{Kind: Progress, Gen: gen, Position: pos})
		}
	}
}

func (b *Beep) Play() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ctrl == nil {
		return
	}
	if b.finished.Load() {
		// The speaker already dropped the completed stream; re-attach it
		// from the streamer's current position (a restart seeks first).
		b.replayLocked()
		return
	}
	speaker.Lock()
	b.ctrl.Paused = false
	speaker.Unlock()
}

// replayLocked re-queues the current streamer on the speaker after it has
// played to completion. Callers hold b.mu.
func (b *Beep) replayLocked() {
	gen := b.gen
	duration := b.format.SampleRate.D(b.streamer.Len())

	var playStreamer beep.Streamer = b.streamer
	if b.format.SampleRate != speakerSampleRate {
		playStreamer = beep.Resample(4, b.format.SampleRate, speakerSampleRate, b.streamer)
	}
	b.ctrl = &beep.Ctrl{Streamer: playStreamer}
	b.volume = &effects.Volume{Streamer: b.ctrl, Base: 2}
	b.applyVolumeLocked()
	b.finished.Store(false)

	speaker.Clear()
	speaker.Play(beep.Seq(b.volume, beep.Callback(func() {
		b.finished.Store(true)
		b.emit(Event{Kind: Ended, Gen: gen, Position: duration, Duration: duration})
	})))
}

func (b *Beep) Pause() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ctrl == nil {
		return
	}
	speaker.Lock()
	b.ctrl.Paused = true
	speaker.Unlock()
}

func (b *Beep) Seek(pos time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.streamer == nil {
		return
	}
	n := b.format.SampleRate.N(pos)
	n = min(n, b.streamer.Len()-1)
	n = max(n, 0)
	speaker.Lock()
	_ = b.streamer.Seek(n)
	speaker.Unlock()
}

// SetVolume sets the output level in [0,1]. Zero silences output entirely.
func (b *Beep) SetVolume(level float64) {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.level = level
	if b.volume != nil {
		speaker.Lock()
		b.applyVolumeLocked()
		speaker.Unlock()
	}
}

func (b *Beep) applyVolumeLocked() {
	if b.volume == nil {
		return
	}
	b.volume.Silent = b.level <= 0
	b.volume.Volume = levelToVolume(b.level)
}

func (b *Beep) Position() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.positionLocked()
}

func (b *Beep) positionLocked() time.Duration {
	if b.streamer == nil {
		return 0
	}
	return b.format.SampleRate.D(b.streamer.Position())
}

func (b *Beep) Events() <-chan Event { return b.events }

func (b *Beep) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	if b.cancel != nil {
		b.cancel()
	}
	b.stopLocked()
	return nil
}

// stopLocked tears down the current stream. Callers hold b.mu.
func (b *Beep) stopLocked() {
	if b.streamer == nil {
		return
	}
	speaker.Clear()
	b.streamer.Close()
	b.streamer = nil
	b.ctrl = nil
	b.volume = nil
}

func (b *Beep) emit(e Event) {
	select {
	case b.events <- e:
	default:
		// Drop if buffer full
	}
}

// levelToVolume converts a 0-1 level to beep's logarithmic volume.
// 1.0 -> 0 (unchanged), 0.5 -> -1 (half), 0.25 -> -2, and so on.
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}

// decode picks a decoder from the URL's file extension. Catalog sources
// without a recognizable extension are treated as MP3, the catalog's
// dominant format.
func decode(srcURL string, data []byte) (beep.StreamSeekCloser, beep.Format, error) {
	ext := ".mp3"
	if u, err := url.Parse(srcURL); err == nil {
		if e := strings.ToLower(path.Ext(u.Path)); e != "" {
			ext = e
		}
	}

	rc := &nopSeekCloser{bytes.NewReader(data)}
	switch ext {
	case ".flac":
		return flac.Decode(rc)
	case ".wav":
		return wav.Decode(rc)
	case ".ogg", ".oga":
		return vorbis.Decode(rc)
	default:
		return mp3.Decode(rc)
	}
}

type nopSeekCloser struct {
	*bytes.Reader
}

func (*nopSeekCloser) Close() error { return nil }
