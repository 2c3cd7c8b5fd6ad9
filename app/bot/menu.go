package bot

import (
	"github.com/jpizquierdo/qrcodegen/core/telegram/helpers"
	"github.com/jpizquierdo/qrcodegen/core/telegram/keyboard"

	"github.com/jpizquierdo/qrcodegen/app/flows"

	tele "gopkg.in/telebot.v4"
)

const (
	welcomeText = "👋 Choose and option and I'll generate a QR code for you!"
	menuPrompt  = "Choose an option below:"
)

func menuMarkup() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "🔗 URL QR Code", Unique: flows.ChoiceURL},
		{Text: "🖼 SVG URL QR Code", Unique: flows.ChoiceSvgURL},
		{Text: "📝 Text QR Code", Unique: flows.ChoiceText},
		{Text: "📞 Contact Info", Unique: flows.ChoiceContact},
		{Text: "📶 Wi-Fi QR Code", Unique: flows.ChoiceWifi},
		{Text: "ℹ️ About", Unique: flows.ChoiceAbout},
		{Text: "🔄 Reset Command", Unique: flows.ChoiceBack},
	})
}

// sendMenu shows the option menu. Showing the menu always abandons any flow
// in progress for the chat.
func (a *App) sendMenu(c tele.Context, text string) error {
	a.sessions.Clear(chatID(c))
	return helpers.SendText(c, text, &tele.SendOptions{ReplyMarkup: menuMarkup()})
}
