package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestClientSongs(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"1","title":"First","artist":"A","duration":120},{"id":"2","title":"Second","artist":"B","duration":90}],"page":1,"limit":20,"total":2}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	tracks, err := c.Songs(context.Background(), SongsParams{Page: 2, Limit: 5, Artist: "A"})
	if err != nil {
		t.Fatalf("Songs() error = %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("Songs() returned %d tracks, want 2", len(tracks))
	}
	if tracks[0].ID != "1" || tracks[0].Title != "First" {
		t.Errorf("first track = %+v", tracks[0])
	}
	if tracks[1].DurationSeconds != 90 {
		t.Errorf("duration = %v, want 90", tracks[1].DurationSeconds)
	}
	if gotPath != "/songs" {
		t.Errorf("path = %q, want /songs", gotPath)
	}
	q, err := url.ParseQuery(gotQuery)
	if err != nil {
		t.Fatalf("ParseQuery(%q) error = %v", gotQuery, err)
	}
	for key, want := range map[string]string{"page": "2", "limit": "5", "artist": "A", "sort": "plays", "order": "desc"} {
		if got := q.Get(key); got != want {
			t.Errorf("query param %s = %q, want %q", key, got, want)
		}
	}
}

func TestClientTrending(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/songs/trending" {
			t.Errorf("path = %q, want /songs/trending", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "10" {
			t.Errorf("limit = %q, want 10 (default)", got)
		}
		_, _ = w.Write([]byte(`{"data":[{"id":"t1","title":"Hot"}]}`))
	}))
	defer srv.Close()

	tracks, err := NewClient(srv.URL).Trending(context.Background(), 0)
	if err != nil {
		t.Fatalf("Trending() error = %v", err)
	}
	if len(tracks) != 1 || tracks[0].ID != "t1" {
		t.Errorf("Trending() = %+v", tracks)
	}
}

func TestClientSong(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/songs/abc":
			_, _ = w.Write([]byte(`{"id":"abc","title":"Found","artist":"X"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	track, err := c.Song(context.Background(), "abc")
	if err != nil {
		t.Fatalf("Song(abc) error = %v", err)
	}
	if track.Title != "Found" {
		t.Errorf("title = %q, want Found", track.Title)
	}

	if _, err := c.Song(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Song(missing) error = %v, want ErrNotFound", err)
	}
	if _, err := c.Song(context.Background(), ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("Song(\"\") error = %v, want ErrNotFound", err)
	}
}

func TestClientSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %q, want /search", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "blue sky" {
			t.Errorf("q = %q, want %q", got, "blue sky")
		}
		_, _ = w.Write([]byte(`{"data":[{"id":"s1","title":"Blue Sky"}]}`))
	}))
	defer srv.Close()

	tracks, err := NewClient(srv.URL).Search(context.Background(), "blue sky")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(tracks) != 1 || tracks[0].Title != "Blue Sky" {
		t.Errorf("Search() = %+v", tracks)
	}
}

func TestClientServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).Songs(context.Background(), SongsParams{}); err == nil {
		t.Error("Songs() on 500 returned nil error")
	}
}

func TestFixturesSource(t *testing.T) {
	f := NewFixtures()
	ctx := context.Background()

	trending, err := f.Trending(ctx, 3)
	if err != nil {
		t.Fatalf("Trending() error = %v", err)
	}
	if len(trending) != 3 {
		t.Fatalf("Trending(3) returned %d tracks", len(trending))
	}
	if trending[0].Plays < trending[1].Plays || trending[1].Plays < trending[2].Plays {
		t.Error("Trending() not sorted by plays descending")
	}

	track, err := f.Song(ctx, trending[0].ID)
	if err != nil {
		t.Fatalf("Song() error = %v", err)
	}
	if track.ID != trending[0].ID {
		t.Errorf("Song() ID = %q, want %q", track.ID, trending[0].ID)
	}

	if _, err := f.Song(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Song(nope) error = %v, want ErrNotFound", err)
	}

	results, err := f.Search(ctx, "neon")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) == 0 {
		t.Error("Search(neon) returned no results")
	}
	for _, r := range results {
		if r.Artist != "Neon Harbor" {
			t.Errorf("Search(neon) returned unrelated track %+v", r)
		}
	}

	if results, _ := f.Search(ctx, "  "); len(results) != 0 {
		t.Errorf("Search(blank) = %+v, want empty", results)
	}
}
