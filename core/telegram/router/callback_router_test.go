package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tg "github.com/jpizquierdo/qrcodegen/core/telegram"

	tele "gopkg.in/telebot.v4"
)

// callbackContext is a minimal tele.Context for exercising the callback
// route without a live bot. Only the methods the route reads are backed.
type callbackContext struct {
	tele.Context
	cb        *tele.Callback
	kv        map[string]interface{}
	responded bool
}

func newCallbackContext(key string) *callbackContext {
	return &callbackContext{
		cb: &tele.Callback{Unique: key},
		kv: make(map[string]interface{}),
	}
}

func (s *callbackContext) Update() tele.Update      { return tele.Update{ID: 1, Callback: s.cb} }
func (s *callbackContext) Callback() *tele.Callback { return s.cb }
func (s *callbackContext) Sender() *tele.User       { return &tele.User{ID: 5} }
func (s *callbackContext) Chat() *tele.Chat         { return &tele.Chat{ID: 5} }
func (s *callbackContext) Text() string             { return "" }

func (s *callbackContext) Set(key string, val interface{}) { s.kv[key] = val }
func (s *callbackContext) Get(key string) interface{}      { return s.kv[key] }

func (s *callbackContext) Respond(resp ...*tele.CallbackResponse) error {
	s.responded = true
	return nil
}

func TestCallbackRoutePrefersCustomNotFound(t *testing.T) {
	reg := tg.NewRegistry()

	custom := 0
	route := CallbackRoute(reg, CallbackOptions{
		NotFound: func(c tele.Context) error {
			custom++
			return nil
		},
	})

	c := newCallbackContext("no_such_key")
	require.NoError(t, route.Handler(c))
	assert.Equal(t, 1, custom, "option NotFound handles unknown keys")
	assert.True(t, c.responded)
}

func TestCallbackRouteRegisteredHandlerWins(t *testing.T) {
	reg := tg.NewRegistry()
	handled := 0
	require.NoError(t, reg.RegisterCallback("ping", func(c tele.Context) error {
		handled++
		return nil
	}))

	notFound := 0
	route := CallbackRoute(reg, CallbackOptions{
		NotFound: func(c tele.Context) error {
			notFound++
			return nil
		},
	})

	c := newCallbackContext("ping")
	require.NoError(t, route.Handler(c))
	assert.Equal(t, 1, handled)
	assert.Zero(t, notFound)
}

func TestCallbackRouteFallsBackToRegistryDefault(t *testing.T) {
	reg := tg.NewRegistry()
	deflt := 0
	reg.SetCallbackNotFound(func(c tele.Context) error {
		deflt++
		return nil
	})

	c := newCallbackContext("no_such_key")
	route := CallbackRoute(reg, CallbackOptions{})
	require.NoError(t, route.Handler(c))
	assert.Equal(t, 1, deflt, "registry default used when no option is set")
}
