package player

import (
	"sync"
	"time"
)

// Mock is a test double for Surface. It records calls and lets tests emit
// events for any load generation, including stale ones.
type Mock struct {
	mu        sync.Mutex
	gen       uint64
	loadCalls []string
	playCount int
	pauseCnt  int
	seekCalls []time.Duration
	volumes   []float64
	position  time.Duration
	events    chan Event
}

// NewMock creates a mock surface for testing.
func NewMock() *Mock {
	return &Mock{events: make(chan Event, 32)}
}

func (m *Mock) Load(url string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	m.loadCalls = append(m.loadCalls, url)
	return m.gen
}

func (m *Mock) Play() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playCount++
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauseCnt++
}

func (m *Mock) Seek(pos time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekCalls = append(m.seekCalls, pos)
	m.position = pos
}

func (m *Mock) SetVolume(level float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volumes = append(m.volumes, level)
}

func (m *Mock) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *Mock) Events() <-chan Event { return m.events }

func (m *Mock) Close() error {
	close(m.events)
	return nil
}

// Test helpers

// Emit delivers an event as if the surface produced it.
func (m *Mock) Emit(e Event) {
	m.events <- e
}

// Gen returns the generation of the most recent Load.
func (m *Mock) Gen() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gen
}

func (m *Mock) LoadCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.loadCalls))
	copy(out, m.loadCalls)
	return out
}

func (m *Mock) PlayCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCount
}

func (m *Mock) PauseCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauseCnt
}

func (m *Mock) SeekCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Duration, len(m.seekCalls))
	copy(out, m.seekCalls)
	return out
}

func (m *Mock) Volumes() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]float64, len(m.volumes))
	copy(out, m.volumes)
	return out
}

// Verify Mock implements Surface at compile time.
var _ Surface = (*Mock)(nil)
