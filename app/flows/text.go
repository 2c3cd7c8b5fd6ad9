package flows

import (
	"context"

	"github.com/jpizquierdo/qrcodegen/app/qr"
	"github.com/jpizquierdo/qrcodegen/core/telegram/state"
)

const promptText = "Please send the text:"

// Free text is encoded as-is: any non-empty message is a valid payload.
func (m *Machine) stepText(ctx context.Context, sess *state.Session, input string) (Reply, error) {
	if input == "" {
		return Reply{Text: promptText}, nil
	}
	return m.finish(ctx, sess, qr.TextPayload(input), qr.FormatPNG, captionDefault)
}
