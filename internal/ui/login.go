package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"skycast/internal/api"
	"skycast/internal/session"
)

type loginResultMsg struct {
	resp api.LoginResponse
	err  error
}

// LoginModel collects credentials and exchanges them for a session.
type LoginModel struct {
	client   *api.Client
	sessions *session.Provider

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginModel builds the credential form.
func NewLoginModel(client *api.Client, sessions *session.Provider) LoginModel {
	email := textinput.New()
	email.Placeholder = "pilot@windbreaker.ai"
	email.CharLimit = 128
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128
	password.Width = 40

	return LoginModel{
		client:   client,
		sessions: sessions,
		inputs:   []textinput.Model{email, password},
	}
}

func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil
		case "enter":
			if m.focus < len(m.inputs)-1 {
				m.setFocus(m.focus + 1)
				return m, nil
			}
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			m.errMsg = ""
			return m, m.submit()
		}

	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = "Sign-in failed. Check your credentials and the backend."
			return m, nil
		}
		if err := m.sessions.SignIn(msg.resp.AccessToken, msg.resp.UserName); err != nil {
			m.errMsg = "Could not persist the session: " + err.Error()
			return m, nil
		}
		return m, navigate(session.TargetDashboard)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m LoginModel) submit() tea.Cmd {
	email := m.inputs[0].Value()
	password := m.inputs[1].Value()
	client := m.client
	return func() tea.Msg {
		resp, err := client.Login(context.Background(), email, password)
		return loginResultMsg{resp: resp, err: err}
	}
}

func (m LoginModel) View() string {
	var b strings.Builder
	b.WriteString(GenerateLogo())
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render("IDENTIFY YOURSELF"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Enter your credentials to access the prediction modules."))
	b.WriteString("\n\n")

	labels := []string{"Email Address", "Password"}
	for i, in := range m.inputs {
		style := labelStyle
		if i == m.focus {
			style = focusedLabelStyle
		}
		b.WriteString(style.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}

	if m.submitting {
		b.WriteString(subtitleStyle.Render("Initiating session..."))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render("enter: sign in • tab: switch field • ctrl+c: quit"))
	return b.String()
}
