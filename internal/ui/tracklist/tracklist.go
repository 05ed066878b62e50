// Package tracklist renders a scrollable list of catalog tracks with the
// playing and liked markers.
package tracklist

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/selvamraja700/mymusic/internal/format"
	"github.com/selvamraja700/mymusic/internal/icons"
	"github.com/selvamraja700/mymusic/internal/library"
	"github.com/selvamraja700/mymusic/internal/ui/cursor"
	"github.com/selvamraja700/mymusic/internal/ui/render"
)

const scrollMargin = 2

// Model is the track list component.
type Model struct {
	title  string
	tracks []library.Track
	cursor cursor.Cursor
	width  int
	height int
}

// New creates an empty track list with a heading shown above the rows.
func New(title string) Model {
	return Model{
		title:  title,
		cursor: cursor.New(scrollMargin),
	}
}

// SetSize updates the viewport dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.cursor.EnsureVisible(len(m.tracks), m.listHeight())
}

// SetTitle updates the heading.
func (m *Model) SetTitle(title string) {
	m.title = title
}

// SetTracks replaces the listing and clamps the cursor.
func (m *Model) SetTracks(tracks []library.Track) {
	m.tracks = tracks
	m.cursor.ClampToBounds(len(tracks))
	m.cursor.EnsureVisible(len(tracks), m.listHeight())
}

// Tracks returns the current listing.
func (m Model) Tracks() []library.Track {
	return m.tracks
}

// Selected returns the track under the cursor.
func (m Model) Selected() (library.Track, bool) {
	if len(m.tracks) == 0 || m.cursor.Pos() >= len(m.tracks) {
		return library.Track{}, false
	}
	return m.tracks[m.cursor.Pos()], true
}

// HandleKey processes a navigation key. Returns true if it was consumed.
func (m *Model) HandleKey(key string) bool {
	return m.cursor.HandleKey(key, len(m.tracks), m.listHeight())
}

// FocusTrack moves the cursor to the track with the given ID, if present.
func (m *Model) FocusTrack(id string) {
	for i, t := range m.tracks {
		if t.ID == id {
			m.cursor.Jump(i, len(m.tracks), m.listHeight())
			return
		}
	}
}

func (m Model) listHeight() int {
	return max(m.height-2, 1) // heading + blank line
}

// View renders the list. nowPlayingID marks the active track and liked
// reports like status per track ID.
func (m Model) View(nowPlayingID string, liked func(string) bool) string {
	var b strings.Builder
	b.WriteString(headingStyle().Render(m.title))
	b.WriteString("\n\n")

	if len(m.tracks) == 0 {
		b.WriteString(emptyStyle().Render("No tracks"))
		return b.String()
	}

	durWidth := 6
	playsWidth := 7
	markerWidth := 2
	likeWidth := 2
	titleWidth := max((m.width-durWidth-playsWidth-markerWidth-likeWidth-8)*3/5, 10)
	artistWidth := max(m.width-titleWidth-durWidth-playsWidth-markerWidth-likeWidth-8, 10)

	start, end := m.cursor.VisibleRange(len(m.tracks), m.listHeight())
	for i := start; i < end; i++ {
		t := m.tracks[i]

		marker := "  "
		if t.ID == nowPlayingID {
			marker = playingStyle().Render("♪ ")
		}

		like := "  "
		if liked != nil && liked(t.ID) {
			like = likedStyle().Render(icons.Liked() + " ")
		}

		title := render.TruncateAndPadEllipsis(render.Sanitize(t.Title), titleWidth)
		artist := render.TruncateAndPadEllipsis(render.Sanitize(t.Artist), artistWidth)
		dur := render.Pad(format.Duration(t.KnownDuration()), durWidth)
		plays := render.Pad(format.PlayCount(t.Plays), playsWidth)

		row := marker + title + "  " + artist + "  " + dur + "  " + plays + like

		switch {
		case i == m.cursor.Pos():
			b.WriteString(selectedStyle().Render(row))
		case t.ID == nowPlayingID:
			b.WriteString(playingStyle().Render(row))
		default:
			b.WriteString(rowStyle().Render(row))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func headingStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
}

func selectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("237"))
}

func playingStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
}

func likedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
}

func rowStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
}

func emptyStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
}
