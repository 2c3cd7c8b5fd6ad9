package bot

import (
	"fmt"

	"github.com/jpizquierdo/qrcodegen/core/buildinfo"
	"github.com/jpizquierdo/qrcodegen/core/telegram/helpers"

	"github.com/jpizquierdo/qrcodegen/app/flows"
	"github.com/jpizquierdo/qrcodegen/app/qr"

	tele "gopkg.in/telebot.v4"
)

func (a *App) handleStart(c tele.Context) error {
	if err := helpers.SendText(c, welcomeText); err != nil {
		return err
	}
	return a.sendMenu(c, menuPrompt)
}

func (a *App) handleMore(c tele.Context) error {
	return a.sendMenu(c, menuPrompt)
}

// handleFlowChoice returns a callback handler that starts the chosen flow.
func (a *App) handleFlowChoice(choice string) tele.HandlerFunc {
	return func(c tele.Context) error {
		ctx := helpers.BuildContext(c)
		sess := a.sessions.Get(chatID(c))
		reply, ok := a.machine.Seed(ctx, sess, choice)
		if !ok {
			return a.sendMenu(c, menuPrompt)
		}
		return helpers.SendText(c, reply.Text)
	}
}

func (a *App) handleBack(c tele.Context) error {
	return a.sendMenu(c, menuPrompt)
}

func (a *App) handleAbout(c tele.Context) error {
	about := fmt.Sprintf(
		"🤖 *QR Code Generator Bot* `%s`\n\n"+
			"I turn URLs, free text, Wi-Fi credentials, and contact cards into QR codes.\n\n"+
			"Source: https://github.com/jpizquierdo/qrcodegen\n"+
			"Created with ❤️ using Go.",
		buildinfo.Version,
	)
	if err := helpers.SendMD(c, about); err != nil {
		return err
	}
	return a.sendMenu(c, menuPrompt)
}

// Handle consumes one text message for the chat's in-progress flow.
func (a *App) Handle(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	sess := a.sessions.Get(chatID(c))
	reply, err := a.machine.Advance(ctx, sess, c.Text())
	if derr := a.deliver(c, reply); derr != nil && err == nil {
		err = derr
	}
	return err
}

// deliver sends whatever the flow produced: an error or prompt text, a
// rendered code, and optionally the menu.
func (a *App) deliver(c tele.Context, reply flows.Reply) error {
	if reply.Text != "" {
		if err := helpers.SendText(c, reply.Text); err != nil {
			return err
		}
	}
	if reply.Image != nil {
		var err error
		switch reply.Image.Format {
		case qr.FormatSVG:
			err = helpers.SendDocument(c, reply.Image.Data, "qrcode.svg", "image/svg+xml", reply.Image.Caption)
		default:
			err = helpers.SendPhoto(c, reply.Image.Data, reply.Image.Caption)
		}
		if err != nil {
			return err
		}
	}
	if reply.ShowMenu {
		return a.sendMenu(c, menuPrompt)
	}
	return nil
}
