// Package catalog supplies track records to the player. The playback core
// does not care whether they come from the remote service or the built-in
// fixtures; both satisfy Source.
package catalog

import (
	"context"

	"github.com/selvamraja700/mymusic/internal/library"
)

// SongsParams filters and pages a songs listing.
type SongsParams struct {
	Page   int
	Limit  int
	Genre  string
	Artist string
	Sort   string // "plays", "title", "releaseDate"
	Order  string // "asc", "desc"
}

// Source provides track records.
type Source interface {
	// Songs lists tracks with optional filtering and pagination.
	Songs(ctx context.Context, params SongsParams) ([]library.Track, error)
	// Trending returns the current most-played tracks, up to limit.
	Trending(ctx context.Context, limit int) ([]library.Track, error)
	// Song fetches a single track by ID.
	Song(ctx context.Context, id string) (*library.Track, error)
	// Search finds tracks matching the query.
	Search(ctx context.Context, query string) ([]library.Track, error)
}
