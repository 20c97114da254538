package ui

import "github.com/charmbracelet/lipgloss"

// This file centralizes the lipgloss styles used across the TUI.

var (
	// Headers
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#1E90FF")). // Brand Blue
			Bold(true).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	// Forms
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Bold(true)

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1E90FF")).
				Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// Result cards
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 3)

	elevatedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("196")) // Red

	nominalCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("46")) // Green

	priceCardStyle = cardStyle.
			BorderForeground(lipgloss.Color("#1E90FF"))

	elevatedTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	nominalTextStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)

	// Placeholder shown before the first result arrives
	awaitingStyle = lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder()).
			Foreground(lipgloss.Color("240")).
			Padding(1, 3)

	// Menu (dashboard)
	menuTitleStyle = lipgloss.NewStyle().MarginLeft(2)
	helpStyle      = lipgloss.NewStyle().PaddingLeft(2).PaddingBottom(1).Foreground(lipgloss.Color("240"))
)
