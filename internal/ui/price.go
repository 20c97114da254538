package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"skycast/internal/api"
	"skycast/internal/flight"
	"skycast/internal/lifecycle"
	"skycast/internal/notify"
	"skycast/internal/options"
	"skycast/internal/session"
)

type optionsMsg struct {
	set flight.OptionsSet
}

type priceResultMsg struct {
	seq    uint64
	result flight.PriceResult
	err    error
}

const (
	priceFieldAirline = iota
	priceFieldOrigin
	priceFieldDestination
	priceFieldDuration
)

var priceFieldLabels = []string{
	"Carrier", "Origin City", "Destination", "Travel Time",
}

// PriceModel is the fare-estimate form. It consults the options cache on
// mount and submits authenticated price requests.
type PriceModel struct {
	client   *api.Client
	sessions *session.Provider
	notifier notify.Notifier
	cache    *options.Cache
	tracker  *lifecycle.Tracker

	inputs  []textinput.Model
	focus   int
	input   flight.PriceInput
	opts    flight.OptionsSet
	spinner spinner.Model
	help    help.Model
	errMsg  string
}

// NewPriceModel builds a fresh form with its own options cache; one
// instance lives one view mount.
func NewPriceModel(client *api.Client, sessions *session.Provider, notifier notify.Notifier, autoSelectAirline bool) PriceModel {
	placeholders := []string{"Select airline", "Select city", "Select city", `e.g. "2h 30m"`}

	inputs := make([]textinput.Model, len(priceFieldLabels))
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 64
		in.Width = 36
		inputs[i] = in
	}
	inputs[0].Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot

	return PriceModel{
		client:   client,
		sessions: sessions,
		notifier: notifier,
		cache:    options.NewCache(client.FetchOptions, autoSelectAirline),
		tracker:  lifecycle.NewTracker(),
		inputs:   inputs,
		spinner:  s,
		help:     help.New(),
	}
}

func (m PriceModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadOptions())
}

func (m PriceModel) loadOptions() tea.Cmd {
	cache := m.cache
	return func() tea.Msg {
		return optionsMsg{set: cache.Get(context.Background())}
	}
}

func (m PriceModel) Update(msg tea.Msg) (PriceModel, tea.Cmd) {
	switch msg := msg.(type) {
	case optionsMsg:
		m.opts = msg.set
		if m.inputs[priceFieldAirline].Value() == "" {
			if airline, ok := m.cache.DefaultAirline(); ok {
				m.inputs[priceFieldAirline].SetValue(airline)
				m.input = m.input.WithAirline(airline)
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, formKeys.Back):
			m.teardown()
			return m, navigate(session.TargetDashboard)
		case key.Matches(msg, formKeys.Next):
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case key.Matches(msg, formKeys.Prev):
			m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil
		case key.Matches(msg, formKeys.Submit):
			if m.tracker.Pending() {
				return m, nil
			}
			return m, tea.Batch(m.submit(), m.spinner.Tick)
		}

	case priceResultMsg:
		if !m.tracker.Resolve(msg.seq, flight.PriceOutcome(msg.result), msg.err) {
			return m, nil
		}
		if msg.err != nil {
			if api.IsAuthError(msg.err) {
				m.errMsg = "Session rejected. Sign in again to use the Price Oracle."
				return m, reportFailure(m.notifier, notify.EventAuthFailed, msg.err)
			}
			m.errMsg = "Price estimation failed. Ensure your session is valid."
			return m, reportFailure(m.notifier, notify.EventRequestFailed, msg.err)
		}
		m.errMsg = ""
		return m, nil

	case spinner.TickMsg:
		if !m.tracker.Pending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.syncField()
	return m, cmd
}

// syncField replaces the edited attribute on the snapshot. The travel time
// re-parses on every keystroke; malformed text coerces to zero minutes.
func (m *PriceModel) syncField() {
	v := m.inputs[m.focus].Value()
	switch m.focus {
	case priceFieldAirline:
		m.input = m.input.WithAirline(v)
	case priceFieldOrigin:
		m.input = m.input.WithOrigin(v)
	case priceFieldDestination:
		m.input = m.input.WithDestination(v)
	case priceFieldDuration:
		m.input = m.input.WithDurationText(v)
	}
}

func (m *PriceModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *PriceModel) submit() tea.Cmd {
	ctx, seq := m.tracker.Begin(context.Background())
	req := m.input.Request()
	// Token validity is the backend's call; an empty token is sent as-is
	// and comes back as an auth failure.
	token := m.sessions.Current().Token
	client := m.client
	return func() tea.Msg {
		result, err := client.PredictPrice(ctx, req, token)
		return priceResultMsg{seq: seq, result: result, err: err}
	}
}

func (m *PriceModel) teardown() {
	m.tracker.Close()
}

func (m PriceModel) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("PRICE ORACLE"))
	b.WriteString("  ")
	b.WriteString(subtitleStyle.Render("Fare estimation engine"))
	b.WriteString("\n\n")

	for i, in := range m.inputs {
		style := labelStyle
		if i == m.focus {
			style = focusedLabelStyle
		}
		b.WriteString(style.Render(priceFieldLabels[i]))
		b.WriteString("\n")
		b.WriteString(in.View())
		if hint := m.fieldHint(i); hint != "" {
			b.WriteString("\n")
			b.WriteString(hintStyle.Render(hint))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.resultPanel())
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(formKeys))
	return b.String()
}

// fieldHint previews the selectable values once the options fetch resolved.
// Before that, and after a silently failed fetch, there is nothing to show.
func (m PriceModel) fieldHint(field int) string {
	switch field {
	case priceFieldAirline:
		return preview("airlines", m.opts.Airlines)
	case priceFieldOrigin, priceFieldDestination:
		return preview("cities", m.opts.Cities)
	case priceFieldDuration:
		if m.input.DurationText != "" {
			return fmt.Sprintf("= %d minutes", m.input.DurationMins)
		}
	}
	return ""
}

func preview(noun string, values []string) string {
	if len(values) == 0 {
		return ""
	}
	const max = 4
	shown := values
	suffix := ""
	if len(values) > max {
		shown = values[:max]
		suffix = fmt.Sprintf(" … %d more", len(values)-max)
	}
	return noun + ": " + strings.Join(shown, ", ") + suffix
}

func (m PriceModel) resultPanel() string {
	if m.tracker.Pending() {
		return m.spinner.View() + " Calculating fair price..."
	}

	result, ok := m.tracker.Result()
	if !ok {
		return awaitingStyle.Render("Awaiting price logic...\nPick a route and travel time to estimate the fare.")
	}

	body := fmt.Sprintf("Estimated Fare\n\n$ %.2f\n\n%s",
		result.Price.EstimatedPrice,
		subtitleStyle.Render("Market oracle verified"),
	)
	return priceCardStyle.Render(body)
}
