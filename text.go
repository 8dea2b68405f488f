package willowui

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pkg/errors"
)

// Font is the interface for text measurement. Shaping and glyph metrics live
// behind it.
type Font interface {
	MeasureString(s string) (width, height float64)
	LineHeight() float64
}

// TTFFont wraps Ebitengine's text/v2 for TrueType font measurement.
type TTFFont struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, errors.Wrap(err, "willowui: parse TTF data")
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	return &TTFFont{
		face: face,
		lh:   m.HAscent + m.HDescent + m.HLineGap,
	}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// StringWidth returns the width in whole pixels of s rendered in e's font,
// or 0 when e has no font.
func StringWidth(e *Element, s string) int {
	f := e.Font()
	if f == nil {
		return 0
	}
	w, _ := f.MeasureString(s)
	return int(w)
}
