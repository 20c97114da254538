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
	"skycast/internal/session"
)

type delayResultMsg struct {
	seq    uint64
	result flight.DelayResult
	err    error
}

const (
	delayFieldAirline = iota
	delayFieldOrigin
	delayFieldDestination
	delayFieldDate
	delayFieldTime
)

var delayFieldLabels = []string{
	"Carrier Network", "Origin City", "Destination", "Departure Date", "Scheduled Time",
}

// DelayModel is the delay-risk form and its result panel.
type DelayModel struct {
	client   *api.Client
	notifier notify.Notifier
	tracker  *lifecycle.Tracker

	inputs  []textinput.Model
	focus   int
	input   flight.DelayInput
	spinner spinner.Model
	help    help.Model
	errMsg  string
}

// NewDelayModel builds a fresh form; one instance lives one view mount.
func NewDelayModel(client *api.Client, notifier notify.Notifier) DelayModel {
	placeholders := []string{"e.g., AA, DL, WN", "Dallas/Fort Worth, TX", "New York, NY", "2026-05-20", "14:00"}

	inputs := make([]textinput.Model, len(delayFieldLabels))
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

	return DelayModel{
		client:   client,
		notifier: notifier,
		tracker:  lifecycle.NewTracker(),
		inputs:   inputs,
		spinner:  s,
		help:     help.New(),
	}
}

func (m DelayModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m DelayModel) Update(msg tea.Msg) (DelayModel, tea.Cmd) {
	switch msg := msg.(type) {
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
			// UI-level guard: no resubmission while a request is pending.
			if m.tracker.Pending() {
				return m, nil
			}
			return m, tea.Batch(m.submit(), m.spinner.Tick)
		}

	case delayResultMsg:
		if !m.tracker.Resolve(msg.seq, flight.DelayOutcome(msg.result), msg.err) {
			// Stale response from a superseded submission; discard.
			return m, nil
		}
		if msg.err != nil {
			m.errMsg = "Prediction failed. Ensure the backend is reachable."
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

// syncField replaces the edited attribute on the snapshot, preserving the
// rest.
func (m *DelayModel) syncField() {
	v := m.inputs[m.focus].Value()
	switch m.focus {
	case delayFieldAirline:
		m.input = m.input.WithAirline(v)
	case delayFieldOrigin:
		m.input = m.input.WithOrigin(v)
	case delayFieldDestination:
		m.input = m.input.WithDestination(v)
	case delayFieldDate:
		m.input = m.input.WithDate(v)
	case delayFieldTime:
		m.input = m.input.WithTime(v)
	}
}

func (m *DelayModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *DelayModel) submit() tea.Cmd {
	ctx, seq := m.tracker.Begin(context.Background())
	req := m.input.Request()
	client := m.client
	return func() tea.Msg {
		result, err := client.PredictDelay(ctx, req)
		return delayResultMsg{seq: seq, result: result, err: err}
	}
}

func (m *DelayModel) teardown() {
	m.tracker.Close()
}

func (m DelayModel) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("DELAY PREDICTOR"))
	b.WriteString("  ")
	b.WriteString(subtitleStyle.Render("Flight risk analysis"))
	b.WriteString("\n\n")

	for i, in := range m.inputs {
		style := labelStyle
		if i == m.focus {
			style = focusedLabelStyle
		}
		b.WriteString(style.Render(delayFieldLabels[i]))
		b.WriteString("\n")
		b.WriteString(in.View())
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

func (m DelayModel) resultPanel() string {
	if m.tracker.Pending() {
		return m.spinner.View() + " Processing model..."
	}

	result, ok := m.tracker.Result()
	if !ok {
		return awaitingStyle.Render("Awaiting input stream...\nEnter flight telemetry to begin prediction.")
	}

	delay := result.Delay
	card := nominalCardStyle
	status := nominalTextStyle
	if delay.Band() == flight.RiskElevated {
		card = elevatedCardStyle
		status = elevatedTextStyle
	}

	body := fmt.Sprintf("%s\n%s\n\n%s",
		fmt.Sprintf("%.0f%%", delay.RiskScore),
		subtitleStyle.Render("Delay probability band: "+string(delay.Band())),
		status.Render("STATUS: "+delay.Prediction),
	)
	return card.Render(body)
}

// reportFailure pushes the error to the external notification channel
// without blocking the UI loop.
func reportFailure(notifier notify.Notifier, event string, err error) tea.Cmd {
	if notifier == nil {
		return nil
	}
	return func() tea.Msg {
		_ = notifier.Notify(context.Background(), event, err.Error())
		return nil
	}
}
