package qr

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpizquierdo/qrcodegen/app/validate"
)

func TestWifiPayload(t *testing.T) {
	got := WifiPayload(validate.SSID("TestSSID"), validate.Password("TestPassword"))
	assert.Equal(t, "WIFI:T:WPA;S:TestSSID;P:TestPassword;;", got)
}

func TestWifiPayloadDoesNotEscape(t *testing.T) {
	// the format performs no escaping; a semicolon passes through untouched
	got := WifiPayload(validate.SSID("a;b"), validate.Password("pass;word"))
	assert.Equal(t, "WIFI:T:WPA;S:a;b;P:pass;word;;", got)
}

func TestContactPayload(t *testing.T) {
	got := ContactPayload(Contact{
		Name:    "Joel",
		Surname: "Perez",
		Phone:   "+34600312511",
		Email:   validate.Email("joelperez91@gmail.com"),
		Company: "Example Inc.",
		Title:   "Software Engineer",
		URL:     validate.URL("https://github.com/jpizquierdo"),
	})

	want := strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:Perez;Joel;;;",
		"TEL;CELL:+34600312511",
		"EMAIL:joelperez91@gmail.com",
		"ORG:Example Inc.",
		"TITLE:Software Engineer",
		"URL:https://github.com/jpizquierdo",
		"END:VCARD",
	}, "\n")
	assert.Equal(t, want, got)
	assert.Len(t, strings.Split(got, "\n"), 9)
}

func TestContactPayloadOptionalFieldsMayBeEmpty(t *testing.T) {
	got := ContactPayload(Contact{
		Name:    "Joel",
		Surname: "Perez",
		Phone:   "+34600312511",
		Email:   validate.Email("joelperez91@gmail.com"),
	})
	assert.Contains(t, got, "ORG:\n")
	assert.Contains(t, got, "TITLE:\n")
	assert.Contains(t, got, "URL:\nEND:VCARD")
}

func TestRenderPNG(t *testing.T) {
	img, err := Render(context.Background(), "https://example.com", FormatPNG)
	require.NoError(t, err)
	require.NotEmpty(t, img)
	assert.Equal(t, []byte("\x89PNG"), img[:4])
}

func TestRenderPNGGeometry(t *testing.T) {
	data, err := Render(context.Background(), "https://example.com", FormatPNG)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, bounds.Dx(), bounds.Dy())
	assert.Zero(t, bounds.Dx()%moduleSize, "size is a whole number of modules")

	// the quiet zone is all white
	border := quietModules * moduleSize
	for _, pt := range []image.Point{
		{0, 0},
		{border - 1, border - 1},
		{bounds.Dx() - 1, bounds.Dy() - 1},
		{bounds.Dx() / 2, border - 1},
	} {
		r, g, b, _ := img.At(pt.X, pt.Y).RGBA()
		assert.Equal(t, uint32(0xffff), r, "white at %v", pt)
		assert.Equal(t, uint32(0xffff), g)
		assert.Equal(t, uint32(0xffff), b)
	}
}

func TestRenderSVG(t *testing.T) {
	img, err := Render(context.Background(), "https://example.com", FormatSVG)
	require.NoError(t, err)
	require.NotEmpty(t, img)
	assert.Contains(t, string(img), "<svg")
}

func TestRenderTextPayload(t *testing.T) {
	img, err := Render(context.Background(), TextPayload("blabla bleble cositas"), FormatPNG)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), img[:4])
}

func TestRenderFailsOnOversizedPayload(t *testing.T) {
	// beyond the QR version 40 capacity for any error correction level
	_, err := Render(context.Background(), strings.Repeat("x", 8000), FormatPNG)
	require.Error(t, err)
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, "render_error", renderErr.Code())
}
