// Package flows implements the guided conversations that end in a QR code.
// Each flow is a linear chain of steps; a chat's session records the step it
// is waiting on and the fields collected so far. Advancing is pure apart
// from rendering, so whole conversations are exercised directly in tests.
package flows

import (
	"context"
	"log/slog"

	"github.com/jpizquierdo/qrcodegen/app/qr"
	"github.com/jpizquierdo/qrcodegen/core/logger"
	"github.com/jpizquierdo/qrcodegen/core/telegram/state"
)

// Conversation steps. A session is on exactly one of these (or idle).
const (
	StepAwaitingURL      state.Step = "awaiting_url"
	StepAwaitingSvgURL   state.Step = "awaiting_svg_url"
	StepAwaitingText     state.Step = "awaiting_text"
	StepAwaitingSSID     state.Step = "awaiting_ssid"
	StepAwaitingPassword state.Step = "awaiting_password"
	StepAwaitingName     state.Step = "awaiting_name"
	StepAwaitingSurname  state.Step = "awaiting_surname"
	StepAwaitingPhone    state.Step = "awaiting_phone"
	StepAwaitingEmail    state.Step = "awaiting_email"
	StepAwaitingCompany  state.Step = "awaiting_company"
	StepAwaitingTitle    state.Step = "awaiting_title"
	StepAwaitingWebsite  state.Step = "awaiting_website"
)

// Menu choice tags, carried as callback data.
const (
	ChoiceURL     = "url_qr"
	ChoiceSvgURL  = "svg_url_qr"
	ChoiceText    = "text_qr"
	ChoiceWifi    = "wifi_qr"
	ChoiceContact = "contact_info"
	ChoiceAbout   = "about"
	ChoiceBack    = "back"
)

// Session field keys.
const (
	fieldSSID    = "ssid"
	fieldName    = "name"
	fieldSurname = "surname"
	fieldPhone   = "phone_number"
	fieldEmail   = "email"
	fieldCompany = "company"
	fieldTitle   = "title"
)

const (
	captionDefault = "Here is your QR code!"
	captionWifi    = "📶 Scan to connect to Wi-Fi"
	captionContact = "📇 Scan to read de vcard 📞"

	msgRenderFailed = "⚠️ An unexpected error occurred. Please try again."
)

// Image is a rendered QR code ready to be sent back.
type Image struct {
	Data    []byte
	Format  qr.Format
	Caption string
}

// Reply is the outcome of seeding or advancing a conversation: an optional
// text message, an optional image, and whether the main menu should follow.
type Reply struct {
	Text     string
	Image    *Image
	ShowMenu bool
}

type stepFunc func(ctx context.Context, sess *state.Session, input string) (Reply, error)

// RenderFunc produces image bytes for a payload; swapped out in tests.
type RenderFunc func(ctx context.Context, payload string, format qr.Format) ([]byte, error)

// Machine drives sessions through the flow steps.
type Machine struct {
	render RenderFunc
	steps  map[state.Step]stepFunc
	seeds  map[string]seed
}

type seed struct {
	step   state.Step
	prompt string
}

// NewMachine builds a machine rendering through qr.Render.
func NewMachine() *Machine {
	return NewMachineWithRender(qr.Render)
}

// NewMachineWithRender builds a machine with a custom renderer.
func NewMachineWithRender(render RenderFunc) *Machine {
	m := &Machine{render: render}
	m.steps = map[state.Step]stepFunc{
		StepAwaitingURL:      m.stepURL,
		StepAwaitingSvgURL:   m.stepSvgURL,
		StepAwaitingText:     m.stepText,
		StepAwaitingSSID:     m.stepSSID,
		StepAwaitingPassword: m.stepPassword,
		StepAwaitingName:     m.stepName,
		StepAwaitingSurname:  m.stepSurname,
		StepAwaitingPhone:    m.stepPhone,
		StepAwaitingEmail:    m.stepEmail,
		StepAwaitingCompany:  m.stepCompany,
		StepAwaitingTitle:    m.stepTitle,
		StepAwaitingWebsite:  m.stepWebsite,
	}
	m.seeds = map[string]seed{
		ChoiceURL:     {step: StepAwaitingURL, prompt: promptURL},
		ChoiceSvgURL:  {step: StepAwaitingSvgURL, prompt: promptURL},
		ChoiceText:    {step: StepAwaitingText, prompt: promptText},
		ChoiceWifi:    {step: StepAwaitingSSID, prompt: promptSSID},
		ChoiceContact: {step: StepAwaitingName, prompt: promptName},
	}
	return m
}

// Seed puts an idle session onto the first step of the flow selected from
// the menu. It reports false for choices that do not start a flow.
func (m *Machine) Seed(ctx context.Context, sess *state.Session, choice string) (Reply, bool) {
	sd, ok := m.seeds[choice]
	if !ok {
		return Reply{}, false
	}
	sess.Reset()
	sess.Step = sd.step
	logger.Debug(ctx, "flows", "flow.seed",
		slog.String("status", "ok"),
		slog.String("flow", choice),
		slog.String("step", string(sd.step)),
	)
	return Reply{Text: sd.prompt}, true
}

// Advance consumes one inbound message for the session's current step.
// Validation failures reply with an error message and leave the step
// unchanged; terminal steps render the code, reply with the image, and reset
// the session. A session on no known step falls back to a cleared menu.
func (m *Machine) Advance(ctx context.Context, sess *state.Session, input string) (Reply, error) {
	step, ok := m.steps[sess.Step]
	if !ok {
		logger.Debug(ctx, "flows", "flow.unknown_step",
			slog.String("status", "skip"),
			slog.String("step", string(sess.Step)),
		)
		sess.Reset()
		return Reply{ShowMenu: true}, nil
	}
	return step(ctx, sess, input)
}

// finish renders the payload and resets the session. Render failures reset
// too and apologise: the user restarts from the menu.
func (m *Machine) finish(ctx context.Context, sess *state.Session, payload string, format qr.Format, caption string) (Reply, error) {
	flow := string(sess.Step)
	img, err := m.render(ctx, payload, format)
	sess.Reset()
	if err != nil {
		logger.Error(ctx, "flows", "flow.render_failed",
			slog.String("status", "fail"),
			slog.String("step", flow),
			slog.String("err", err.Error()),
		)
		return Reply{Text: msgRenderFailed, ShowMenu: true}, err
	}
	logger.Info(ctx, "flows", "flow.done",
		slog.String("status", "ok"),
		slog.String("step", flow),
		slog.String("format", string(format)),
	)
	return Reply{
		Image:    &Image{Data: img, Format: format, Caption: caption},
		ShowMenu: true,
	}, nil
}
