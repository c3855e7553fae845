package ui

import (
	"bytes"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	regularSource *text.GoTextFaceSource
	boldSource    *text.GoTextFaceSource
	monoSource    *text.GoTextFaceSource
)

const (
	defaultFontSize = 14.0
	titleFontSize   = 18.0
	fenFontSize     = 13.0
	coordFontSize   = 12.0
)

// loadFonts parses the embedded Go fonts. Text is skipped if a face fails to load.
func loadFonts(log zerolog.Logger) {
	var err error
	if regularSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err != nil {
		log.Error().Err(err).Msg("failed to load regular font")
	}
	if boldSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF)); err != nil {
		log.Error().Err(err).Msg("failed to load bold font")
	}
	if monoSource, err = text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF)); err != nil {
		log.Error().Err(err).Msg("failed to load mono font")
	}
}

// face returns a face from src at the given logical size, scaled for HiDPI.
func face(src *text.GoTextFaceSource, size float64) *text.GoTextFace {
	if src == nil {
		return nil
	}
	return &text.GoTextFace{Source: src, Size: size * UIScale}
}

// MeasureText returns the logical width and height of s.
func MeasureText(s string, src *text.GoTextFaceSource, size float64) (width, height float64) {
	f := face(src, size)
	if f == nil {
		return 0, 0
	}
	w, h := text.Measure(s, f, 0)
	return w / UIScale, h / UIScale
}

// drawText draws s with its top-left corner at the logical point (x, y).
func drawText(screen *ebiten.Image, s string, src *text.GoTextFaceSource, size float64, x, y float64, c color.Color) {
	f := face(src, size)
	if f == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x*UIScale, y*UIScale)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, f, op)
}

// drawTextCentered draws s centred on the logical point (cx, cy).
func drawTextCentered(screen *ebiten.Image, s string, src *text.GoTextFaceSource, size float64, cx, cy float64, c color.Color) {
	w, h := MeasureText(s, src, size)
	drawText(screen, s, src, size, cx-w/2, cy-h/2, c)
}

// wrapText splits s into lines no wider than maxWidth. Lines break after a
// '/' or a space, so a FEN string wraps between ranks and fields.
func wrapText(s string, maxWidth float64, measure func(string) float64) []string {
	var tokens []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '/' || s[i] == ' ' {
			tokens = append(tokens, s[start:i+1])
			start = i + 1
		}
	}
	if start < len(s) {
		tokens = append(tokens, s[start:])
	}

	var lines []string
	var line strings.Builder
	for _, tok := range tokens {
		if line.Len() > 0 && measure(line.String()+strings.TrimRight(tok, " ")) > maxWidth {
			lines = append(lines, strings.TrimRight(line.String(), " "))
			line.Reset()
		}
		line.WriteString(tok)
	}
	if line.Len() > 0 {
		lines = append(lines, strings.TrimRight(line.String(), " "))
	}
	return lines
}
