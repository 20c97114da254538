// Package ui implements the interactive terminal client: a login view, the
// module dashboard, and the two predictor forms. Navigation between views
// always passes through the session guard.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"skycast/internal/api"
	"skycast/internal/notify"
	"skycast/internal/session"
)

// navigateMsg requests a view switch; the guard decides what is rendered.
type navigateMsg struct {
	target session.Target
}

func navigate(target session.Target) tea.Cmd {
	return func() tea.Msg { return navigateMsg{target: target} }
}

// App is the root model. It owns the shared services and routes messages to
// whichever view is mounted.
type App struct {
	client   *api.Client
	sessions *session.Provider
	guard    *session.Guard
	notifier notify.Notifier

	autoSelectAirline bool

	target    session.Target
	login     LoginModel
	dashboard DashboardModel
	delay     DelayModel
	price     PriceModel

	width  int
	height int
}

// NewApp wires the root model. The initial navigation targets the
// dashboard; without a session the guard lands on login instead.
func NewApp(client *api.Client, sessions *session.Provider, notifier notify.Notifier, autoSelectAirline bool) App {
	app := App{
		client:            client,
		sessions:          sessions,
		guard:             session.NewGuard(sessions),
		notifier:          notifier,
		autoSelectAirline: autoSelectAirline,
	}
	app.mount(session.TargetDashboard)
	return app
}

// Target exposes the currently mounted view.
func (a App) Target() session.Target {
	return a.target
}

// mount resolves the requested target through the guard and constructs a
// fresh view model for it. Predictor views are rebuilt on every mount, so
// their options cache and request tracker live exactly one mount.
func (a *App) mount(requested session.Target) tea.Cmd {
	if a.target == session.TargetDelayPredictor {
		a.delay.teardown()
	}
	if a.target == session.TargetPriceOracle {
		a.price.teardown()
	}

	a.target = a.guard.Resolve(requested)
	switch a.target {
	case session.TargetLogin:
		a.login = NewLoginModel(a.client, a.sessions)
		return a.login.Init()
	case session.TargetDelayPredictor:
		a.delay = NewDelayModel(a.client, a.notifier)
		return a.delay.Init()
	case session.TargetPriceOracle:
		a.price = NewPriceModel(a.client, a.sessions, a.notifier, a.autoSelectAirline)
		return a.price.Init()
	default:
		a.dashboard = NewDashboardModel(a.sessions)
		return a.dashboard.Init()
	}
}

func (a App) Init() tea.Cmd {
	switch a.target {
	case session.TargetLogin:
		return a.login.Init()
	case session.TargetDelayPredictor:
		return a.delay.Init()
	case session.TargetPriceOracle:
		return a.price.Init()
	default:
		return a.dashboard.Init()
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
	case navigateMsg:
		cmd := a.mount(msg.target)
		return a, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch a.target {
	case session.TargetLogin:
		a.login, cmd = a.login.Update(msg)
	case session.TargetDelayPredictor:
		a.delay, cmd = a.delay.Update(msg)
	case session.TargetPriceOracle:
		a.price, cmd = a.price.Update(msg)
	default:
		a.dashboard, cmd = a.dashboard.Update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	var body string
	switch a.target {
	case session.TargetLogin:
		body = a.login.View()
	case session.TargetDelayPredictor:
		body = a.delay.View()
	case session.TargetPriceOracle:
		body = a.price.View()
	default:
		body = a.dashboard.View()
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}
