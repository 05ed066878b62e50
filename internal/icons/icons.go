package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Audio      string
	Shuffle    string
	RepeatAll  string
	RepeatOne  string
	Liked      string
	Volume     string
	VolumeMute string
}

var (
	nerdIcons = Icons{
		Audio:      " ", // nf-fa-music
		Shuffle:    "󰒟",       // nf-md-shuffle
		RepeatAll:  "󰑖",       // nf-md-repeat
		RepeatOne:  "󰑘",       // nf-md-repeat_once
		Liked:      "󰣐",       // nf-md-heart
		Volume:     "󰕾",       // nf-md-volume_high
		VolumeMute: "󰖁",       // nf-md-volume_off
	}

	unicodeIcons = Icons{
		Audio:      "🎵 ",
		Shuffle:    "🔀",
		RepeatAll:  "🔁",
		RepeatOne:  "🔂",
		Liked:      "♥",
		Volume:     "🔊",
		VolumeMute: "🔇",
	}

	noneIcons = Icons{
		Audio:      "",
		Shuffle:    "[S]",
		RepeatAll:  "[R]",
		RepeatOne:  "[1]",
		Liked:      "*",
		Volume:     "vol",
		VolumeMute: "mute",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// FormatTrack formats a track title with the appropriate icon.
func FormatTrack(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Audio + name
}

// Shuffle returns the shuffle icon.
func Shuffle() string {
	return current.Shuffle
}

// RepeatAll returns the repeat all icon.
func RepeatAll() string {
	return current.RepeatAll
}

// RepeatOne returns the repeat one icon.
func RepeatOne() string {
	return current.RepeatOne
}

// Liked returns the liked/heart icon.
func Liked() string {
	return current.Liked
}

// Volume returns the volume icon.
func Volume() string {
	return current.Volume
}

// VolumeMute returns the muted volume icon.
func VolumeMute() string {
	return current.VolumeMute
}
