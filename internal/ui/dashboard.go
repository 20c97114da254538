package ui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"skycast/internal/session"
)

// ModuleItem is one selectable prediction module on the dashboard.
type ModuleItem struct {
	Name   string
	Desc   string
	Target session.Target
}

func (i ModuleItem) Title() string       { return i.Name }
func (i ModuleItem) Description() string { return i.Desc }
func (i ModuleItem) FilterValue() string { return i.Name }

// DashboardModel is the command center: it lists the available modules and
// hosts sign-out.
type DashboardModel struct {
	list     list.Model
	sessions *session.Provider
}

// NewDashboardModel builds the module menu.
func NewDashboardModel(sessions *session.Provider) DashboardModel {
	items := []list.Item{
		ModuleItem{
			Name:   "Delay Predictor",
			Desc:   "Analyze routes and carrier history to predict arrival delays",
			Target: session.TargetDelayPredictor,
		},
		ModuleItem{
			Name:   "Price Oracle",
			Desc:   "Forecast ticket fares from routing codes and travel durations",
			Target: session.TargetPriceOracle,
		},
	}

	const defaultWidth = 48
	const listHeight = 12

	l := list.New(items, list.NewDefaultDelegate(), defaultWidth, listHeight)
	l.Title = "Available Prediction Modules"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.Styles.Title = menuTitleStyle

	return DashboardModel{list: l, sessions: sessions}
}

func (m DashboardModel) Init() tea.Cmd {
	return nil
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(ModuleItem); ok {
				return m, navigate(item.Target)
			}
			return m, nil
		case "s":
			// Sign-out clears the persisted session; the guard then routes
			// the navigation to login.
			if err := m.sessions.SignOut(); err != nil {
				slog.Error("sign-out failed", "error", err)
			}
			return m, navigate(session.TargetLogin)
		case "q":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m DashboardModel) View() string {
	name := m.sessions.Current().DisplayName
	if name == "" {
		name = "Operator"
	}

	header := GenerateLogo() + "\n\n" +
		headerStyle.Render("COMMAND CENTER") + "  " +
		subtitleStyle.Render(fmt.Sprintf("Welcome back, %s.", name))

	return header + "\n" + m.list.View() + "\n" +
		helpStyle.Render("enter: launch module • s: sign out • q: quit")
}
