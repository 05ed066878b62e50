package playerbar

import (
	"fmt"
	"strings"

	"github.com/selvamraja700/mymusic/internal/icons"
	"github.com/selvamraja700/mymusic/internal/session"
)

// RenderVolume renders the volume indicator.
// Format: "🔊 70%" or "🔇 70%" when muted.
func RenderVolume(volume float64, muted bool) string {
	pct := int(volume*100 + 0.5)
	icon := icons.Volume()
	if muted {
		icon = icons.VolumeMute()
	}
	return progressTimeStyle().Render(fmt.Sprintf("%s %3d%%", icon, pct))
}

// renderIndicators renders the shuffle, repeat and liked flags.
func renderIndicators(s State) string {
	var parts []string

	shuffle := indicatorOffStyle()
	if s.Shuffle {
		shuffle = indicatorOnStyle()
	}
	parts = append(parts, shuffle.Render(icons.Shuffle()))

	switch s.Repeat {
	case session.RepeatAll:
		parts = append(parts, indicatorOnStyle().Render(icons.RepeatAll()))
	case session.RepeatOne:
		parts = append(parts, indicatorOnStyle().Render(icons.RepeatOne()))
	default:
		parts = append(parts, indicatorOffStyle().Render(icons.RepeatAll()))
	}

	liked := indicatorOffStyle()
	if s.Liked {
		liked = likedStyle()
	}
	parts = append(parts, liked.Render(icons.Liked()))

	if s.QueuePos > 0 {
		parts = append(parts, metaStyle().Render(fmt.Sprintf("%d/%d", s.QueuePos, s.QueueLen)))
	}

	return strings.Join(parts, " ")
}
