package flows

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpizquierdo/qrcodegen/app/qr"
	"github.com/jpizquierdo/qrcodegen/core/telegram/state"
)

// capturingRender records the payload and format it was asked for and
// returns fixed bytes.
type capturingRender struct {
	payload string
	format  qr.Format
	err     error
}

func (c *capturingRender) render(_ context.Context, payload string, format qr.Format) ([]byte, error) {
	c.payload = payload
	c.format = format
	if c.err != nil {
		return nil, c.err
	}
	return []byte("img"), nil
}

func newTestMachine() (*Machine, *capturingRender) {
	cr := &capturingRender{}
	return NewMachineWithRender(cr.render), cr
}

func TestURLFlow(t *testing.T) {
	m, cr := newTestMachine()
	sess := state.NewSession()
	ctx := context.Background()

	reply, ok := m.Seed(ctx, sess, ChoiceURL)
	require.True(t, ok)
	assert.Equal(t, "Please send the URL:", reply.Text)
	assert.Equal(t, StepAwaitingURL, sess.Step)

	reply, err := m.Advance(ctx, sess, "not a url")
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "Invalid URL")
	assert.Equal(t, StepAwaitingURL, sess.Step, "failed validation keeps the step")

	reply, err = m.Advance(ctx, sess, "  https://example.com/page \n")
	require.NoError(t, err)
	require.NotNil(t, reply.Image)
	assert.Equal(t, qr.FormatPNG, reply.Image.Format)
	assert.Equal(t, "https://example.com/page", cr.payload)
	assert.True(t, reply.ShowMenu)
	assert.Equal(t, state.StepIdle, sess.Step)
}

func TestSvgURLFlowRendersSVG(t *testing.T) {
	m, cr := newTestMachine()
	sess := state.NewSession()
	ctx := context.Background()

	_, ok := m.Seed(ctx, sess, ChoiceSvgURL)
	require.True(t, ok)

	reply, err := m.Advance(ctx, sess, "https://example.com")
	require.NoError(t, err)
	require.NotNil(t, reply.Image)
	assert.Equal(t, qr.FormatSVG, reply.Image.Format)
	assert.Equal(t, qr.FormatSVG, cr.format)
}

func TestTextFlow(t *testing.T) {
	m, cr := newTestMachine()
	sess := state.NewSession()
	ctx := context.Background()

	_, ok := m.Seed(ctx, sess, ChoiceText)
	require.True(t, ok)

	reply, err := m.Advance(ctx, sess, "hello world")
	require.NoError(t, err)
	require.NotNil(t, reply.Image)
	assert.Equal(t, "hello world", cr.payload)
}

func TestWifiFlow(t *testing.T) {
	m, cr := newTestMachine()
	sess := state.NewSession()
	ctx := context.Background()

	_, ok := m.Seed(ctx, sess, ChoiceWifi)
	require.True(t, ok)
	assert.Equal(t, StepAwaitingSSID, sess.Step)

	reply, err := m.Advance(ctx, sess, strings.Repeat("x", 33))
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "Invalid SSID")
	assert.Equal(t, StepAwaitingSSID, sess.Step)

	reply, err = m.Advance(ctx, sess, "HomeNet")
	require.NoError(t, err)
	assert.Equal(t, "Please send the Wi-Fi password:", reply.Text)
	assert.Equal(t, StepAwaitingPassword, sess.Step)

	reply, err = m.Advance(ctx, sess, "short")
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "Invalid SSID or Password")
	assert.Equal(t, StepAwaitingPassword, sess.Step)

	reply, err = m.Advance(ctx, sess, "hunter2hunter2")
	require.NoError(t, err)
	require.NotNil(t, reply.Image)
	assert.Equal(t, "WIFI:T:WPA;S:HomeNet;P:hunter2hunter2;;", cr.payload)
	assert.Equal(t, "📶 Scan to connect to Wi-Fi", reply.Image.Caption)
	assert.Equal(t, state.StepIdle, sess.Step)
}

func TestContactFlow(t *testing.T) {
	m, cr := newTestMachine()
	sess := state.NewSession()
	ctx := context.Background()

	_, ok := m.Seed(ctx, sess, ChoiceContact)
	require.True(t, ok)

	steps := []struct {
		input      string
		nextPrompt string
	}{
		{"Ada", "Please send the surname:"},
		{"Lovelace", "Please send the phone number with prefix:"},
		{"+34600111222", "Please send the email:"},
		{"ada@example.com", "Please send the company name:"},
		{"Analytical Engines", "Please send the job title:"},
		{"Engineer", "Please send the Website URL 🔗:"},
	}
	for _, st := range steps {
		reply, err := m.Advance(ctx, sess, st.input)
		require.NoError(t, err)
		assert.Equal(t, st.nextPrompt, reply.Text)
	}

	reply, err := m.Advance(ctx, sess, "https://example.com")
	require.NoError(t, err)
	require.NotNil(t, reply.Image)
	assert.Equal(t, "📇 Scan to read de vcard 📞", reply.Image.Caption)
	assert.Contains(t, cr.payload, "BEGIN:VCARD")
	assert.Contains(t, cr.payload, "N:Lovelace;Ada;;;")
	assert.Contains(t, cr.payload, "TEL;CELL:+34600111222")
	assert.Contains(t, cr.payload, "EMAIL:ada@example.com")
	assert.Contains(t, cr.payload, "ORG:Analytical Engines")
	assert.Equal(t, state.StepIdle, sess.Step)
}

func TestContactFlowRejectsBadEmail(t *testing.T) {
	m, _ := newTestMachine()
	sess := state.NewSession()
	ctx := context.Background()

	_, ok := m.Seed(ctx, sess, ChoiceContact)
	require.True(t, ok)
	for _, input := range []string{"Ada", "Lovelace", "+34600111222"} {
		_, err := m.Advance(ctx, sess, input)
		require.NoError(t, err)
	}

	reply, err := m.Advance(ctx, sess, "not-an-email")
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "Invalid email")
	assert.Equal(t, StepAwaitingEmail, sess.Step)
}

func TestUnknownStepFallsBackToMenu(t *testing.T) {
	m, _ := newTestMachine()
	sess := state.NewSession()
	sess.Step = state.Step("stale_step")
	sess.Set("ssid", "leftover")

	reply, err := m.Advance(context.Background(), sess, "anything")
	require.NoError(t, err)
	assert.True(t, reply.ShowMenu)
	assert.Empty(t, reply.Text)
	assert.Equal(t, state.StepIdle, sess.Step)
	assert.Empty(t, sess.Get("ssid"))
}

func TestRenderFailureResetsAndApologises(t *testing.T) {
	cr := &capturingRender{err: errors.New("encode blew up")}
	m := NewMachineWithRender(cr.render)
	sess := state.NewSession()
	ctx := context.Background()

	_, ok := m.Seed(ctx, sess, ChoiceURL)
	require.True(t, ok)

	reply, err := m.Advance(ctx, sess, "https://example.com")
	require.Error(t, err)
	assert.Nil(t, reply.Image)
	assert.Equal(t, "⚠️ An unexpected error occurred. Please try again.", reply.Text)
	assert.True(t, reply.ShowMenu)
	assert.Equal(t, state.StepIdle, sess.Step)
}

func TestSeedIgnoresNonFlowChoices(t *testing.T) {
	m, _ := newTestMachine()
	sess := state.NewSession()

	_, ok := m.Seed(context.Background(), sess, ChoiceAbout)
	assert.False(t, ok)
	_, ok = m.Seed(context.Background(), sess, "nonsense")
	assert.False(t, ok)
	assert.Equal(t, state.StepIdle, sess.Step)
}

func TestSeedClearsEarlierFlow(t *testing.T) {
	m, _ := newTestMachine()
	sess := state.NewSession()
	ctx := context.Background()

	_, ok := m.Seed(ctx, sess, ChoiceWifi)
	require.True(t, ok)
	_, err := m.Advance(ctx, sess, "HomeNet")
	require.NoError(t, err)

	_, ok = m.Seed(ctx, sess, ChoiceURL)
	require.True(t, ok)
	assert.Equal(t, StepAwaitingURL, sess.Step)
	assert.Empty(t, sess.Get("ssid"))
}
