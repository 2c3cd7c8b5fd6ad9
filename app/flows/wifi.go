package flows

import (
	"context"

	"github.com/jpizquierdo/qrcodegen/app/qr"
	"github.com/jpizquierdo/qrcodegen/app/validate"
	"github.com/jpizquierdo/qrcodegen/core/telegram/state"
)

const (
	promptSSID     = "Please send the Wi-Fi SSID:"
	promptPassword = "Please send the Wi-Fi password:"
)

func (m *Machine) stepSSID(ctx context.Context, sess *state.Session, input string) (Reply, error) {
	ssid, err := validate.ValidateSSID(input)
	if err != nil {
		return Reply{Text: validate.Message(err)}, nil
	}
	sess.Set(fieldSSID, string(ssid))
	sess.Step = StepAwaitingPassword
	return Reply{Text: promptPassword}, nil
}

func (m *Machine) stepPassword(ctx context.Context, sess *state.Session, input string) (Reply, error) {
	password, err := validate.ValidatePassword(input)
	if err != nil {
		return Reply{Text: validate.Message(err)}, nil
	}
	ssid := validate.SSID(sess.Get(fieldSSID))
	return m.finish(ctx, sess, qr.WifiPayload(ssid, password), qr.FormatPNG, captionWifi)
}
