package bot

import (
	tele "gopkg.in/telebot.v4"
)

// Fallbacks implement ui.FallbackProvider: anything the bot cannot place in
// a conversation lands back on the menu.

func (a *App) UnknownText() tele.HandlerFunc {
	return func(c tele.Context) error {
		return a.sendMenu(c, menuPrompt)
	}
}

func (a *App) UnknownDocument() tele.HandlerFunc {
	return func(c tele.Context) error {
		return a.sendMenu(c, menuPrompt)
	}
}

func (a *App) UnknownCallback() tele.HandlerFunc {
	return func(c tele.Context) error {
		_ = c.Respond(&tele.CallbackResponse{Text: "Unsupported action"})
		return nil
	}
}
