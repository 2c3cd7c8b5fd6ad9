package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreconfig "github.com/jpizquierdo/qrcodegen/core/config"
	"github.com/jpizquierdo/qrcodegen/core/telegram/state"

	"github.com/jpizquierdo/qrcodegen/app/flows"

	tele "gopkg.in/telebot.v4"
)

type sentMessage struct {
	what interface{}
	opts []interface{}
}

// recordingContext captures outbound sends for a fixed chat. Only the
// methods the handlers under test touch are implemented.
type recordingContext struct {
	tele.Context
	chat *tele.Chat
	sent []sentMessage
}

func newRecordingContext(chatID int64) *recordingContext {
	return &recordingContext{chat: &tele.Chat{ID: chatID}}
}

func (r *recordingContext) Chat() *tele.Chat { return r.chat }

func (r *recordingContext) Send(what interface{}, opts ...interface{}) error {
	r.sent = append(r.sent, sentMessage{what: what, opts: opts})
	return nil
}

func markupOf(msg sentMessage) *tele.ReplyMarkup {
	for _, o := range msg.opts {
		if so, ok := o.(*tele.SendOptions); ok && so != nil {
			return so.ReplyMarkup
		}
		if rm, ok := o.(*tele.ReplyMarkup); ok {
			return rm
		}
	}
	return nil
}

func TestHandleStartSendsWelcomeThenMenu(t *testing.T) {
	app := New(&coreconfig.Config{})
	c := newRecordingContext(7)

	require.NoError(t, app.handleStart(c))
	require.Len(t, c.sent, 2)

	assert.Equal(t, welcomeText, c.sent[0].what)
	assert.Nil(t, markupOf(c.sent[0]), "welcome line carries no keyboard")

	assert.Equal(t, menuPrompt, c.sent[1].what)
	require.NotNil(t, markupOf(c.sent[1]), "menu message carries the inline keyboard")
	assert.Len(t, markupOf(c.sent[1]).InlineKeyboard, 7)
}

func TestHandleStartAbandonsFlowInProgress(t *testing.T) {
	app := New(&coreconfig.Config{})
	sess := app.sessions.Get(7)
	sess.Step = flows.StepAwaitingURL

	c := newRecordingContext(7)
	require.NoError(t, app.handleStart(c))

	assert.False(t, app.InProgress(7))
	got := app.sessions.Get(7)
	assert.Equal(t, state.StepIdle, got.Step)
}
