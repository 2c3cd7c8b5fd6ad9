package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInlineButtonsOnePerRow(t *testing.T) {
	markup := InlineButtons([]InlineBtn{
		{Text: "A", Unique: "a"},
		{Text: "B", Unique: "b"},
	})
	require.Len(t, markup.InlineKeyboard, 2)
	assert.Equal(t, "A", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "B", markup.InlineKeyboard[1][0].Text)
}

func TestInlineButtonsNPerRow(t *testing.T) {
	buttons := []InlineBtn{
		{Text: "A", Unique: "a"},
		{Text: "B", Unique: "b"},
		{Text: "C", Unique: "c"},
		{Text: "D", Unique: "d"},
		{Text: "E", Unique: "e"},
	}
	markup := InlineButtonsNPerRow(buttons, 2)
	require.Len(t, markup.InlineKeyboard, 3)
	assert.Len(t, markup.InlineKeyboard[0], 2)
	assert.Len(t, markup.InlineKeyboard[1], 2)
	assert.Len(t, markup.InlineKeyboard[2], 1, "odd button ends on its own row")
}
