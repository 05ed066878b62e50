package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/selvamraja700/mymusic/internal/library"
)

// Fixtures serves a static track list, for running without a backend.
type Fixtures struct {
	tracks []library.Track
}

// Verify Fixtures implements Source at compile time.
var _ Source = (*Fixtures)(nil)

// NewFixtures creates a fixture source. With no tracks supplied it serves
// the built-in demo set.
func NewFixtures(tracks ...library.Track) *Fixtures {
	if len(tracks) == 0 {
		tracks = demoTracks()
	}
	return &Fixtures{tracks: tracks}
}

func (f *Fixtures) Songs(_ context.Context, params SongsParams) ([]library.Track, error) {
	out := make([]library.Track, 0, len(f.tracks))
	for _, t := range f.tracks {
		if params.Artist != "" && !strings.EqualFold(t.Artist, params.Artist) {
			continue
		}
		out = append(out, t)
	}

	switch params.Sort {
	case "title":
		sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	default:
		sort.Slice(out, func(i, j int) bool { return out[i].Plays > out[j].Plays })
	}
	if params.Order == "asc" {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	page := params.Page
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(out) {
		return []library.Track{}, nil
	}
	end := min(start+limit, len(out))
	return out[start:end], nil
}

func (f *Fixtures) Trending(ctx context.Context, limit int) ([]library.Track, error) {
	if limit <= 0 {
		limit = 10
	}
	return f.Songs(ctx, SongsParams{Limit: limit, Sort: "plays", Order: "desc"})
}

func (f *Fixtures) Song(_ context.Context, id string) (*library.Track, error) {
	for _, t := range f.tracks {
		if t.ID == id {
			track := t
			return &track, nil
		}
	}
	return nil, ErrNotFound
}

func (f *Fixtures) Search(_ context.Context, query string) ([]library.Track, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []library.Track{}, nil
	}
	var out []library.Track
	for _, t := range f.tracks {
		if strings.Contains(strings.ToLower(t.Title), query) ||
			strings.Contains(strings.ToLower(t.Artist), query) ||
			strings.Contains(strings.ToLower(t.Album), query) {
			out = append(out, t)
		}
	}
	return out, nil
}

// demoTracks is the built-in set used when no API is configured. The audio
// URLs point at freely hosted sample streams.
func demoTracks() []library.Track {
	return []library.Track{
		{ID: "demo-1", Title: "Midnight Drive", Artist: "Neon Harbor", Album: "City Lights", AudioURL: "https://cdn.mymusic.dev/demo/midnight-drive.mp3", DurationSeconds: 214, Plays: 1_240_000},
		{ID: "demo-2", Title: "Paper Planes", Artist: "Aurora Lane", Album: "Daydreams", AudioURL: "https://cdn.mymusic.dev/demo/paper-planes.mp3", DurationSeconds: 187, Plays: 980_500},
		{ID: "demo-3", Title: "Gravity Well", Artist: "Neon Harbor", Album: "City Lights", AudioURL: "https://cdn.mymusic.dev/demo/gravity-well.mp3", DurationSeconds: 243, Plays: 755_200},
		{ID: "demo-4", Title: "Saltwater", Artist: "The Quiet Tide", Album: "Undertow", AudioURL: "https://cdn.mymusic.dev/demo/saltwater.mp3", DurationSeconds: 198, Plays: 612_800},
		{ID: "demo-5", Title: "Glasshouse", Artist: "Aurora Lane", Album: "Daydreams", AudioURL: "https://cdn.mymusic.dev/demo/glasshouse.mp3", DurationSeconds: 225, Plays: 540_100},
		{ID: "demo-6", Title: "Ember Days", Artist: "Low Meridian", Album: "Ember Days", AudioURL: "https://cdn.mymusic.dev/demo/ember-days.mp3", DurationSeconds: 261, Plays: 498_700},
		{ID: "demo-7", Title: "Northbound", Artist: "The Quiet Tide", Album: "Undertow", AudioURL: "https://cdn.mymusic.dev/demo/northbound.mp3", DurationSeconds: 176, Plays: 402_300},
		{ID: "demo-8", Title: "Afterglow", Artist: "Low Meridian", Album: "Ember Days", AudioURL: "https://cdn.mymusic.dev/demo/afterglow.mp3", DurationSeconds: 233, Plays: 388_900},
	}
}
