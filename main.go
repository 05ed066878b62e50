package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/selvamraja700/mymusic/internal/catalog"
	"github.com/selvamraja700/mymusic/internal/config"
	"github.com/selvamraja700/mymusic/internal/errmsg"
	"github.com/selvamraja700/mymusic/internal/icons"
	"github.com/selvamraja700/mymusic/internal/keymap"
	"github.com/selvamraja700/mymusic/internal/library"
	"github.com/selvamraja700/mymusic/internal/playback"
	"github.com/selvamraja700/mymusic/internal/player"
	"github.com/selvamraja700/mymusic/internal/session"
	"github.com/selvamraja700/mymusic/internal/stderr"
	"github.com/selvamraja700/mymusic/internal/storage"
	"github.com/selvamraja700/mymusic/internal/ui/playerbar"
	"github.com/selvamraja700/mymusic/internal/ui/tracklist"
)

const (
	catalogTimeout = 10 * time.Second
	tickInterval   = 500 * time.Millisecond
	seekStep       = 5 * time.Second
	volumeStep     = 0.05
)

// view identifies which listing the track list shows.
type view int

const (
	viewTrending view = iota
	viewSongs
	viewLiked
	viewRecent
	viewSearch
)

func (v view) title() string {
	switch v {
	case viewTrending:
		return "Trending"
	case viewSongs:
		return "All Songs"
	case viewLiked:
		return "Liked Songs"
	case viewRecent:
		return "Recently Played"
	case viewSearch:
		return "Search Results"
	default:
		return ""
	}
}

type tickMsg time.Time

type tracksMsg struct {
	view   view
	tracks []library.Track
}

type catalogErrMsg struct {
	message string
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

type model struct {
	sess    *session.Session
	adapter *playback.Adapter
	surface player.Surface
	store   storage.Store
	source  catalog.Source

	list   tracklist.Model
	search textinput.Model
	keys   *keymap.Resolver
	view   view

	// known caches every track seen so the liked and recent views can
	// resolve IDs without refetching
	known map[string]library.Track

	searching bool
	status    string
	width     int
	height    int
}

func initialModel() (model, error) {
	cfg, err := config.Load()
	if err != nil {
		return model{}, err
	}
	icons.Init(cfg.Icons)

	store, err := openStore(cfg)
	if err != nil {
		return model{}, fmt.Errorf("%s: %w", errmsg.OpInitialize, err)
	}

	sess := session.New(store)
	surface := player.NewBeep()
	adapter := playback.New(sess, surface)

	var source catalog.Source
	if cfg.HasAPIConfig() {
		source = catalog.NewClient(cfg.API.URL)
	} else {
		source = catalog.NewFixtures()
	}

	search := textinput.New()
	search.Placeholder = "Search songs, artists, albums"
	search.CharLimit = 100

	return model{
		sess:    sess,
		adapter: adapter,
		surface: surface,
		store:   store,
		source:  source,
		list:    tracklist.New(viewTrending.title()),
		search:  search,
		keys:    keymap.NewResolver(keymap.All),
		view:    viewTrending,
		known:   make(map[string]library.Track),
	}, nil
}

func openStore(cfg *config.Config) (storage.Store, error) {
	if cfg.Storage.Backend == "bolt" {
		return storage.OpenBolt(cfg.Storage.Path)
	}
	return storage.OpenSQLite(cfg.Storage.Path)
}

func (m model) Init() tea.Cmd {
	return tea.Batch(loadTrendingCmd(m.source), tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func loadTrendingCmd(source catalog.Source) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), catalogTimeout)
		defer cancel()
		tracks, err := source.Trending(ctx, 20)
		if err != nil {
			return catalogErrMsg{errmsg.Format(errmsg.OpCatalogTrending, err)}
		}
		return tracksMsg{view: viewTrending, tracks: tracks}
	}
}

func loadSongsCmd(source catalog.Source) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), catalogTimeout)
		defer cancel()
		tracks, err := source.Songs(ctx, catalog.SongsParams{Limit: 100})
		if err != nil {
			return catalogErrMsg{errmsg.Format(errmsg.OpCatalogBrowse, err)}
		}
		return tracksMsg{view: viewSongs, tracks: tracks}
	}
}

func searchCmd(source catalog.Source, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), catalogTimeout)
		defer cancel()
		tracks, err := source.Search(ctx, query)
		if err != nil {
			return catalogErrMsg{errmsg.Format(errmsg.OpCatalogSearch, err)}
		}
		return tracksMsg{view: viewSearch, tracks: tracks}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, m.listHeight())
		return m, nil

	case tracksMsg:
		for _, t := range msg.tracks {
			m.known[t.ID] = t
		}
		if msg.view == m.view {
			m.list.SetTracks(msg.tracks)
		}
		return m, nil

	case catalogErrMsg:
		m.status = msg.message
		return m, nil

	case tickMsg:
		// Surface any captured audio-backend noise instead of losing it
		select {
		case line := <-stderr.Messages:
			m.status = line
		default:
		}
		return m, tickCmd()

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "enter":
		query := m.search.Value()
		m.searching = false
		m.search.Blur()
		if query == "" {
			return m, nil
		}
		m.view = viewSearch
		m.list.SetTitle(viewSearch.title())
		m.list.SetTracks(nil)
		return m, searchCmd(m.source, query)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.list.HandleKey(key) {
		return m, nil
	}

	switch m.keys.Resolve(key) {
	case keymap.ActionQuit:
		m.adapter.Close()
		_ = m.surface.Close()
		_ = m.store.Close()
		return m, tea.Quit

	case keymap.ActionSelect:
		if track, ok := m.list.Selected(); ok {
			m.sess.PlayTrack(track, m.list.Tracks())
			m.status = ""
		}

	case keymap.ActionPlayPause:
		m.sess.TogglePlay()

	case keymap.ActionNextTrack:
		m.sess.Advance()

	case keymap.ActionPrevTrack:
		m.sess.Retreat()

	case keymap.ActionAddToQueue:
		if track, ok := m.list.Selected(); ok {
			m.sess.AddToQueue(track)
		}

	case keymap.ActionToggleLike:
		if track, ok := m.list.Selected(); ok {
			m.sess.ToggleLike(track)
		}

	case keymap.ActionVolumeUp:
		m.sess.SetVolume(m.sess.Volume() + volumeStep)

	case keymap.ActionVolumeDown:
		m.sess.SetVolume(m.sess.Volume() - volumeStep)

	case keymap.ActionToggleMute:
		m.sess.ToggleMute()

	case keymap.ActionToggleShuffle:
		m.sess.ToggleShuffle()

	case keymap.ActionCycleRepeat:
		m.sess.CycleRepeatMode()

	case keymap.ActionSeekForward:
		m.adapter.Seek(m.sess.Position() + seekStep)

	case keymap.ActionSeekBack:
		m.adapter.Seek(m.sess.Position() - seekStep)

	case keymap.ActionSearch:
		m.searching = true
		m.search.SetValue("")
		return m, m.search.Focus()

	case keymap.ActionViewTrending:
		return m.switchView(viewTrending), loadTrendingCmd(m.source)

	case keymap.ActionViewSongs:
		return m.switchView(viewSongs), loadSongsCmd(m.source)

	case keymap.ActionViewLiked:
		m = m.switchView(viewLiked)
		m.list.SetTracks(m.likedTracks())

	case keymap.ActionViewRecent:
		m = m.switchView(viewRecent)
		m.list.SetTracks(m.recentTracks())
	}

	return m, nil
}

func (m model) switchView(v view) model {
	m.view = v
	m.list.SetTitle(v.title())
	m.list.SetTracks(nil)
	return m
}

// likedTracks resolves liked IDs against every track seen this run.
func (m model) likedTracks() []library.Track {
	var out []library.Track
	for _, id := range m.sess.LikedIDs() {
		if t, ok := m.known[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

func (m model) recentTracks() []library.Track {
	var out []library.Track
	for _, e := range m.sess.RecentlyPlayed() {
		if t, ok := m.known[e.TrackID]; ok {
			out = append(out, t)
		}
	}
	return out
}

func (m model) listHeight() int {
	h := m.height - playerbar.Height()
	if m.status != "" {
		h--
	}
	if m.searching {
		h--
	}
	return max(h, 1)
}

func (m model) View() string {
	nowPlayingID := ""
	if t := m.sess.CurrentTrack(); t != nil {
		nowPlayingID = t.ID
	}

	view := m.list.View(nowPlayingID, m.sess.IsLiked)

	if m.searching {
		view += "\n/" + m.search.View()
	}
	if m.status != "" {
		view += "\n" + statusStyle.Render(m.status)
	}

	bar := playerbar.Render(playerbar.NewState(m.sess.Snapshot()), m.width)
	if bar != "" {
		view += "\n" + bar
	}

	return view
}

func main() {
	// ALSA writes directly to fd 2 and would corrupt the alt screen
	_ = stderr.Start()
	defer stderr.Stop()

	m, err := initialModel()
	if err != nil {
		fmt.Printf("Error initializing: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		stderr.WriteOriginal(fmt.Sprintf("Error running program: %v\n", err))
		os.Exit(1)
	}
}
