package loader

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// LineMetrics reports the raster footprint of one laid-out line.
type LineMetrics struct {
	Text  string
	Width float64
}

// TextMetrics reports the raster footprint of a laid-out multi-line string.
type TextMetrics struct {
	Width      float64
	Height     float64
	LineHeight float64
	Ascent     float64
	Lines      []LineMetrics
}

var (
	fontOnce    sync.Once
	fontErr     error
	regularFont *sfnt.Font
	boldFont    *sfnt.Font
)

func parseFonts() {
	regularFont, fontErr = opentype.Parse(goregular.TTF)
	if fontErr != nil {
		return
	}
	boldFont, fontErr = opentype.Parse(gobold.TTF)
}

// Measure lays text out at the given pixel size and reports its metrics.
// Lines split on newlines; the overall width is the widest line. Text that
// cannot be laid out is an error, never a silently omitted element.
func Measure(text string, sizePx float64, bold bool) (TextMetrics, error) {
	if text == "" {
		return TextMetrics{}, fmt.Errorf("loader: cannot measure empty text")
	}
	if sizePx <= 0 {
		return TextMetrics{}, fmt.Errorf("loader: font size %v out of range", sizePx)
	}

	fontOnce.Do(parseFonts)
	if fontErr != nil {
		return TextMetrics{}, fmt.Errorf("%w: font: %v", ErrDecode, fontErr)
	}

	src := regularFont
	if bold {
		src = boldFont
	}

	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return TextMetrics{}, fmt.Errorf("%w: face: %v", ErrDecode, err)
	}
	defer face.Close()

	fm := face.Metrics()
	lineHeight := fixedToFloat(fm.Height)
	ascent := fixedToFloat(fm.Ascent)

	d := &font.Drawer{Face: face}
	var out TextMetrics
	out.LineHeight = lineHeight
	out.Ascent = ascent

	for _, line := range strings.Split(text, "\n") {
		w := fixedToFloat(d.MeasureString(line))
		out.Lines = append(out.Lines, LineMetrics{Text: line, Width: w})
		if w > out.Width {
			out.Width = w
		}
	}
	out.Height = lineHeight * float64(len(out.Lines))

	return out, nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
