package ui

import (
	"encoding/json"
	"net/http"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skycast/internal/session"
)

func TestLogin_SuccessSignsInAndNavigates(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/login", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-abc", "token_type": "bearer", "user_name": "Captain",
		})
	})
	sessions := testSessions(t)

	m := NewLoginModel(client, sessions)
	m.inputs[0].SetValue("pilot@windbreaker.ai")
	m.inputs[1].SetValue("hunter2")

	// Enter on the email field only advances focus.
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.focus)

	// Enter on the password field submits.
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.submitting)
	result := runCmd(t, cmd)

	m, cmd = m.Update(result)
	assert.False(t, m.submitting)
	assert.Empty(t, m.errMsg)

	nav := runCmd(t, cmd)
	assert.Equal(t, navigateMsg{target: session.TargetDashboard}, nav)

	current := sessions.Current()
	assert.Equal(t, "tok-abc", current.Token)
	assert.Equal(t, "Captain", current.DisplayName)
}

func TestLogin_BadCredentialsShowError(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "wrong email or password", http.StatusUnauthorized)
	})
	sessions := testSessions(t)

	m := NewLoginModel(client, sessions)
	m.inputs[0].SetValue("pilot@windbreaker.ai")
	m.inputs[1].SetValue("nope")
	m.focus = 1

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	result := runCmd(t, cmd)

	m, cmd = m.Update(result)
	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.errMsg)
	assert.False(t, sessions.Current().Valid())
}

func TestLogin_NoDoubleSubmit(t *testing.T) {
	m := NewLoginModel(nil, testSessions(t))
	m.focus = 1
	m.submitting = true

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}
