package playerbar

import "github.com/charmbracelet/lipgloss"

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
	stopSymbol  = "■"
)

var barStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240"))

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231"))
}

func artistStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
}

func metaStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
}

func indicatorOnStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
}

func indicatorOffStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
}

func likedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
}

func progressTimeStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
}

func progressBarFilled() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
}

func progressBarEmpty() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
}
