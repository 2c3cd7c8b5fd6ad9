package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpizquierdo/qrcodegen/app/flows"
)

func TestMenuMarkupLayout(t *testing.T) {
	markup := menuMarkup()
	require.Len(t, markup.InlineKeyboard, 7, "one button per row")

	wantUniques := []string{
		flows.ChoiceURL,
		flows.ChoiceSvgURL,
		flows.ChoiceText,
		flows.ChoiceContact,
		flows.ChoiceWifi,
		flows.ChoiceAbout,
		flows.ChoiceBack,
	}
	for i, want := range wantUniques {
		row := markup.InlineKeyboard[i]
		require.Len(t, row, 1)
		assert.Equal(t, want, row[0].Unique)
		assert.NotEmpty(t, row[0].Text)
	}
}
