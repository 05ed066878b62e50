// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Catalog operations
	OpCatalogBrowse   Op = "load songs"
	OpCatalogTrending Op = "load trending songs"
	OpCatalogSearch   Op = "search songs"
	OpCatalogFetch    Op = "fetch song"

	// Playback operations
	OpPlaybackStart Op = "start playback"
	OpPlaybackSeek  Op = "seek"
	OpPlaybackLoad  Op = "load track"

	// Queue operations
	OpQueueAdd Op = "add to queue"

	// State persistence
	OpStateLoad   Op = "load saved state"
	OpStateSave   Op = "save state"
	OpLikedToggle Op = "update liked songs"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
