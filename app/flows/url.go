package flows

import (
	"context"
	"strings"

	"github.com/jpizquierdo/qrcodegen/app/qr"
	"github.com/jpizquierdo/qrcodegen/app/validate"
	"github.com/jpizquierdo/qrcodegen/core/telegram/state"
)

const promptURL = "Please send the URL:"

func (m *Machine) stepURL(ctx context.Context, sess *state.Session, input string) (Reply, error) {
	u, err := validate.ValidateURL(strings.TrimSpace(input))
	if err != nil {
		return Reply{Text: validate.Message(err)}, nil
	}
	return m.finish(ctx, sess, qr.URLPayload(u), qr.FormatPNG, captionDefault)
}

func (m *Machine) stepSvgURL(ctx context.Context, sess *state.Session, input string) (Reply, error) {
	u, err := validate.ValidateURL(strings.TrimSpace(input))
	if err != nil {
		return Reply{Text: validate.Message(err)}, nil
	}
	return m.finish(ctx, sess, qr.URLPayload(u), qr.FormatSVG, captionDefault)
}
