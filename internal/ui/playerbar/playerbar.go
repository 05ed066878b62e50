// Package playerbar renders the bottom playback bar: current track, transport
// status, progress, volume and mode indicators.
package playerbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/selvamraja700/mymusic/internal/format"
	"github.com/selvamraja700/mymusic/internal/session"
	"github.com/selvamraja700/mymusic/internal/ui/render"
)

// State holds everything needed to render the player bar.
type State struct {
	Title     string
	Artist    string
	Transport session.Transport
	Loading   bool
	Position  time.Duration
	Duration  time.Duration
	Volume    float64
	Muted     bool
	Repeat    session.RepeatMode
	Shuffle   bool
	Liked     bool
	QueuePos  int // 1-based position in queue, 0 when empty
	QueueLen  int
}

// Height returns the total height of the player bar.
func Height() int {
	return 3 // top border + content + bottom border
}

// NewState builds a renderable State from a session snapshot.
func NewState(snap session.Snapshot) State {
	s := State{
		Transport: snap.Transport,
		Loading:   snap.Loading,
		Position:  snap.Position,
		Duration:  snap.Duration,
		Volume:    snap.Volume,
		Muted:     snap.Muted,
		Repeat:    snap.Repeat,
		Shuffle:   snap.Shuffle,
		Liked:     snap.Liked,
		QueueLen:  snap.QueueLen,
	}
	if snap.Track != nil {
		s.Title = render.Sanitize(snap.Track.Title)
		s.Artist = render.Sanitize(snap.Track.Artist)
		if snap.QueueLen > 0 && snap.Index >= 0 {
			s.QueuePos = snap.Index + 1
		}
		if s.Duration == 0 {
			s.Duration = snap.Track.KnownDuration()
		}
	}
	return s
}

// Render returns the player bar string for the given width.
// Returns empty string when nothing has ever been played.
func Render(s State, width int) string {
	if s.Title == "" && s.Transport == session.Stopped {
		return ""
	}

	// Inner width minus border and padding
	innerWidth := max(width-6, 0)

	status := statusSymbol(s)
	timeStr := format.Duration(s.Position) + " / " + format.Duration(s.Duration)
	indicators := renderIndicators(s)
	volume := RenderVolume(s.Volume, s.Muted)

	title := s.Title
	if title == "" {
		title = "Unknown Track"
	}

	separator := "   "
	sepWidth := lipgloss.Width(separator)
	fixedWidth := lipgloss.Width(status+"  ") +
		lipgloss.Width(timeStr) +
		lipgloss.Width(indicators) +
		lipgloss.Width(volume) +
		sepWidth*4

	minBarWidth := 10
	availableForContent := innerWidth - fixedWidth - minBarWidth

	titleWidth := lipgloss.Width(title)
	artistWidth := lipgloss.Width(s.Artist)

	var styledTitle, styledArtist string
	var usedContentWidth int
	switch {
	case titleWidth+sepWidth+artistWidth <= availableForContent && s.Artist != "":
		styledTitle = titleStyle().Render(title)
		styledArtist = artistStyle().Render(s.Artist)
		usedContentWidth = titleWidth + sepWidth + artistWidth
	case titleWidth <= availableForContent:
		styledTitle = titleStyle().Render(title)
		usedContentWidth = titleWidth
	default:
		maxTitle := max(availableForContent, 10)
		truncated := render.TruncateEllipsis(title, maxTitle)
		styledTitle = titleStyle().Render(truncated)
		usedContentWidth = lipgloss.Width(truncated)
	}

	barWidth := max(innerWidth-usedContentWidth-fixedWidth, 5)
	bar := renderProgress(s.Position, s.Duration, barWidth)

	var content strings.Builder
	content.WriteString(styledTitle)
	if styledArtist != "" {
		content.WriteString(separator)
		content.WriteString(styledArtist)
	}
	content.WriteString(separator)
	content.WriteString(status)
	content.WriteString("  ")
	content.WriteString(bar)
	content.WriteString(separator)
	content.WriteString(progressTimeStyle().Render(timeStr))
	content.WriteString(separator)
	content.WriteString(volume)
	content.WriteString(separator)
	content.WriteString(indicators)

	return barStyle.Padding(0, 2).Width(width - 2).Render(content.String())
}

func statusSymbol(s State) string {
	if s.Loading {
		return "…"
	}
	switch s.Transport {
	case session.Playing:
		return playSymbol
	case session.Paused:
		return pauseSymbol
	default:
		return stopSymbol
	}
}

func renderProgress(position, duration time.Duration, barWidth int) string {
	var ratio float64
	if duration > 0 {
		ratio = float64(position) / float64(duration)
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := min(int(float64(barWidth)*ratio), barWidth)
	return progressBarFilled().Render(strings.Repeat("━", filled)) +
		progressBarEmpty().Render(strings.Repeat("─", barWidth-filled))
}
