package qr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"

	"github.com/aaronarduino/goqrsvg"
	svg "github.com/ajstarks/svgo"
	"github.com/boombuler/barcode/qr"

	"github.com/jpizquierdo/qrcodegen/core/logger"
)

// Format selects the output image kind.
type Format string

const (
	// FormatPNG renders a raster image; the default for every flow.
	FormatPNG Format = "png"
	// FormatSVG renders a vector document; used by the SVG URL flow only.
	FormatSVG Format = "svg"
)

// Fixed symbol parameters. Scanned output size is part of the bot's visible
// behaviour, so these are constants rather than configuration.
const (
	moduleSize   = 10 // pixels per module
	quietModules = 4  // border width in modules
)

// RenderError reports a failure inside the symbol encoder, e.g. a payload
// too large for the fixed parameters.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("qr render: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Code labels the error kind for structured logs.
func (e *RenderError) Code() string { return "render_error" }

// Render encodes payload into a QR symbol and returns the image bytes in the
// requested format. Error correction level L, 10px modules and a 4-module
// quiet zone are fixed.
func Render(ctx context.Context, payload string, format Format) ([]byte, error) {
	code, err := qr.Encode(payload, qr.L, qr.Auto)
	if err != nil {
		logger.Error(ctx, "qr", "render.encode_failed",
			slog.String("status", "fail"),
			slog.String("format", string(format)),
			slog.Int("payload_len", len(payload)),
			slog.String("err", err.Error()),
		)
		return nil, &RenderError{Err: err}
	}

	var buf bytes.Buffer
	switch format {
	case FormatSVG:
		canvas := svg.New(&buf)
		qs := goqrsvg.NewQrSVG(code, moduleSize)
		qs.StartQrSVG(canvas)
		if err := qs.WriteQrSVG(canvas); err != nil {
			return nil, &RenderError{Err: err}
		}
		canvas.End()
	default:
		if err := png.Encode(&buf, rasterize(code)); err != nil {
			return nil, &RenderError{Err: err}
		}
	}

	logger.Debug(ctx, "qr", "render.done",
		slog.String("status", "ok"),
		slog.String("format", string(format)),
		slog.Int("payload_len", len(payload)),
		slog.Int("image_bytes", buf.Len()),
	)
	return buf.Bytes(), nil
}

// rasterize draws the symbol at exactly moduleSize pixels per module with a
// quietModules-wide white border on every side.
func rasterize(code image.Image) *image.NRGBA {
	modules := code.Bounds().Dx()
	off := quietModules * moduleSize
	size := (modules + 2*quietModules) * moduleSize

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			var col color.Color = color.White
			if x >= off && y >= off {
				mx := (x - off) / moduleSize
				my := (y - off) / moduleSize
				if mx < modules && my < modules {
					col = code.At(mx, my)
				}
			}
			img.Set(x, y, col)
		}
	}
	return img
}
