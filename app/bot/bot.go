// Package bot wires the QR code flows into a Telegram bot: commands, the
// inline menu, callback routing, and delivery of rendered codes.
package bot

import (
	coreconfig "github.com/jpizquierdo/qrcodegen/core/config"
	coretelegram "github.com/jpizquierdo/qrcodegen/core/telegram"
	"github.com/jpizquierdo/qrcodegen/core/telegram/commands"
	"github.com/jpizquierdo/qrcodegen/core/telegram/router"
	"github.com/jpizquierdo/qrcodegen/core/telegram/state"
	"github.com/jpizquierdo/qrcodegen/core/telegram/ui"

	"github.com/jpizquierdo/qrcodegen/app/flows"

	tele "gopkg.in/telebot.v4"
)

var (
	_ router.Conversation = (*App)(nil)
	_ ui.FallbackProvider = (*App)(nil)
)

// App owns the per-chat sessions and the flow machine.
type App struct {
	cfg      *coreconfig.Config
	sessions *state.Store
	machine  *flows.Machine
}

// New builds the bot application.
func New(cfg *coreconfig.Config) *App {
	return &App{
		cfg:      cfg,
		sessions: state.NewStore(),
		machine:  flows.NewMachine(),
	}
}

// InProgress reports whether the chat has a flow waiting for input.
func (a *App) InProgress(chatID int64) bool {
	return a.sessions.InProgress(chatID)
}

// TelegramRunOptions assembles registry, middlewares, and routes.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()

	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.handleStart,
		Description: "Show the QR code menu",
	})
	reg.RegisterCommand("/more", commands.Command{
		Handler:     a.handleMore,
		Description: "Show the menu again",
		Aliases:     []string{"menu"},
	})

	for _, choice := range []string{
		flows.ChoiceURL,
		flows.ChoiceSvgURL,
		flows.ChoiceText,
		flows.ChoiceWifi,
		flows.ChoiceContact,
	} {
		if err := reg.RegisterCallback(choice, a.handleFlowChoice(choice)); err != nil {
			return coretelegram.RunOptions{}, err
		}
	}
	if err := reg.RegisterCallback(flows.ChoiceAbout, a.handleAbout); err != nil {
		return coretelegram.RunOptions{}, err
	}
	if err := reg.RegisterCallback(flows.ChoiceBack, a.handleBack); err != nil {
		return coretelegram.RunOptions{}, err
	}
	reg.SetTextFallback(a.UnknownText())

	routes := router.CommandRoutes(reg)
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{
		NotFound: a.UnknownCallback(),
	}))
	routes = append(routes, router.TextRoutes(a, reg, router.TextOptions{
		UnknownText:     a.UnknownText(),
		UnknownDocument: a.UnknownDocument(),
	})...)

	return coretelegram.RunOptions{
		Config:      a.cfg,
		Registry:    reg,
		Middlewares: coretelegram.DefaultMiddlewares(a.cfg, nil),
		Routes:      routes,
	}, nil
}

func chatID(c tele.Context) int64 {
	if chat := c.Chat(); chat != nil {
		return chat.ID
	}
	return 0
}
