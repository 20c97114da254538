package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ASCII Art Logo
const asciiLogo = `
  ____  _  ____   __ ____    _    ____ _____
 / ___|| |/ /\ \ / // ___|  / \  / ___|_   _|
 \___ \| ' /  \ V /| |     / _ \ \___ \ | |
  ___) | . \   | | | |___ / ___ \ ___) || |
 |____/|_|\_\  |_|  \____/_/   \_\____/ |_|
`

// GenerateLogo returns the gradient styled logo, plain when the terminal
// has no color support.
func GenerateLogo() string {
	trimmed := strings.Trim(asciiLogo, "\n")
	if termenv.ColorProfile() == termenv.Ascii {
		return trimmed
	}

	var coloredLines []string
	for i, line := range strings.Split(trimmed, "\n") {
		var color string

		// Simple manual gradient approximation, sky to night
		switch i {
		case 0:
			color = "#87CEEB" // Sky Blue
		case 1:
			color = "#00BFFF" // Deep Sky Blue
		case 2:
			color = "#1E90FF" // Dodger Blue
		case 3:
			color = "#4169E1" // Royal Blue
		case 4:
			color = "#191970" // Midnight Blue
		default:
			color = "#FFF"
		}

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
		coloredLines = append(coloredLines, style.Render(line))
	}

	return strings.Join(coloredLines, "\n")
}
