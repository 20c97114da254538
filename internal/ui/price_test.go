package ui

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skycast/internal/flight"
	"skycast/internal/notify"
	"skycast/internal/session"
)

func optionsHandler(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]any{
		"airlines": []string{"AA", "DL", "WN", "UA", "B6", "NK"},
		"cities":   []string{"Dallas/Fort Worth, TX", "New York, NY"},
	})
}

func TestPrice_OptionsPrefillAirline(t *testing.T) {
	client := testServer(t, optionsHandler)
	m := NewPriceModel(client, testSessions(t), notify.NewManager(), true)

	msg := runCmd(t, m.loadOptions())
	m, _ = m.Update(msg)

	assert.Equal(t, "AA", m.inputs[priceFieldAirline].Value())
	assert.Equal(t, "AA", m.input.Airline)
}

func TestPrice_NoPrefillWhenDisabled(t *testing.T) {
	client := testServer(t, optionsHandler)
	m := NewPriceModel(client, testSessions(t), notify.NewManager(), false)

	msg := runCmd(t, m.loadOptions())
	m, _ = m.Update(msg)

	assert.Empty(t, m.inputs[priceFieldAirline].Value())
}

func TestPrice_PrefillNeverOverwritesTypedValue(t *testing.T) {
	client := testServer(t, optionsHandler)
	m := NewPriceModel(client, testSessions(t), notify.NewManager(), true)
	m.inputs[priceFieldAirline].SetValue("DL")

	msg := runCmd(t, m.loadOptions())
	m, _ = m.Update(msg)

	assert.Equal(t, "DL", m.inputs[priceFieldAirline].Value())
}

func TestPrice_HintsPreviewOptionsAndDuration(t *testing.T) {
	client := testServer(t, optionsHandler)
	m := NewPriceModel(client, testSessions(t), notify.NewManager(), false)

	msg := runCmd(t, m.loadOptions())
	m, _ = m.Update(msg)

	// Six airlines preview as four plus an overflow marker.
	hint := m.fieldHint(priceFieldAirline)
	assert.Contains(t, hint, "AA, DL, WN, UA")
	assert.Contains(t, hint, "2 more")

	assert.Contains(t, m.fieldHint(priceFieldOrigin), "Dallas/Fort Worth, TX")

	m.input = m.input.WithDurationText("2h 30m")
	assert.Equal(t, "= 150 minutes", m.fieldHint(priceFieldDuration))

	m.input = m.input.WithDurationText("garbage")
	assert.Equal(t, "= 0 minutes", m.fieldHint(priceFieldDuration))
}

func TestPrice_FailedOptionsFetchLeavesHintsEmpty(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	m := NewPriceModel(client, testSessions(t), notify.NewManager(), true)

	msg := runCmd(t, m.loadOptions())
	m, _ = m.Update(msg)

	assert.Empty(t, m.fieldHint(priceFieldAirline))
	assert.Empty(t, m.inputs[priceFieldAirline].Value())
}

func TestPrice_ResultRendersFareCard(t *testing.T) {
	m := NewPriceModel(nil, testSessions(t), notify.NewManager(), false)
	_, seq := m.tracker.Begin(context.Background())

	m, cmd := m.Update(priceResultMsg{seq: seq, result: flight.PriceResult{EstimatedPrice: 389.75}})
	assert.Nil(t, cmd)
	assert.Empty(t, m.errMsg)
	assert.Contains(t, m.View(), "$ 389.75")
}

func TestPrice_AuthFailureMessage(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"invalid token"}`, http.StatusUnauthorized)
	})
	sessions := testSessions(t)

	m := NewPriceModel(client, sessions, notify.NewManager(), false)
	cmd := m.submit()
	msg := runCmd(t, cmd)

	m, cmd = m.Update(msg)
	assert.Contains(t, m.errMsg, "Session rejected")
	// The auth failure is reported to the notification channel.
	require.NotNil(t, cmd)
	runCmd(t, cmd)
}

func TestPrice_StaleResultDiscarded(t *testing.T) {
	m := NewPriceModel(nil, testSessions(t), notify.NewManager(), false)
	_, old := m.tracker.Begin(context.Background())
	m.tracker.Begin(context.Background())

	m, _ = m.Update(priceResultMsg{seq: old, result: flight.PriceResult{EstimatedPrice: 1.00}})
	assert.True(t, m.tracker.Pending())
	assert.NotContains(t, m.View(), "$ 1.00")
}

func TestPrice_EscapeReturnsToDashboard(t *testing.T) {
	m := NewPriceModel(nil, testSessions(t), notify.NewManager(), false)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	msg := runCmd(t, cmd)
	assert.Equal(t, navigateMsg{target: session.TargetDashboard}, msg)
}

func TestPrice_DurationEditingReparses(t *testing.T) {
	m := NewPriceModel(nil, testSessions(t), notify.NewManager(), false)
	m.setFocus(priceFieldDuration)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2h 30m")})
	assert.Equal(t, 150, m.input.DurationMins)
	assert.Equal(t, "2h 30m", m.input.DurationText)
}
