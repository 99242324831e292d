package text

import (
	"golang.org/x/image/font"
)

// Measurer exposes the face metrics the layout needs: string width in pixels
// plus the face ascent and descent. Abstracting this keeps ComposeLine a pure
// function that tests can drive with synthetic metrics.
type Measurer interface {
	Width(s string) int
	Ascent() int
	Descent() int
}

// Run is one positioned segment of a composed line. X is the horizontal
// offset from the line's left edge. TopY is the vertical offset from the
// line's top edge to the run's own top (baseline minus this run's ascent),
// for renderers that anchor text at the top-left; renderers that position a
// dot on the baseline can use Line.Baseline directly.
type Run struct {
	Text   string
	Latin  bool
	X      int
	TopY   int
	Width  int
	Ascent int
}

// Line is a fully laid out mixed-script line of text.
type Line struct {
	Runs     []Run
	Width    int
	Height   int // max ascent + max descent across runs
	Baseline int // offset from line top to the shared baseline
}

// ComposeLine segments s and positions each run left to right on one shared
// baseline. The baseline sits at the maximum ascent across all runs, so runs
// set in fonts with different metrics still align visually; each run's TopY
// is the shared baseline minus its own ascent.
func ComposeLine(s string, latin, jp Measurer) Line {
	segments := Split(s)

	var line Line
	maxAscent, maxDescent := 0, 0

	for _, seg := range segments {
		m := jp
		if seg.Latin {
			m = latin
		}
		if a := m.Ascent(); a > maxAscent {
			maxAscent = a
		}
		if d := m.Descent(); d > maxDescent {
			maxDescent = d
		}
	}

	x := 0
	for _, seg := range segments {
		m := jp
		if seg.Latin {
			m = latin
		}
		w := m.Width(seg.Text)
		line.Runs = append(line.Runs, Run{
			Text:   seg.Text,
			Latin:  seg.Latin,
			X:      x,
			TopY:   maxAscent - m.Ascent(),
			Width:  w,
			Ascent: m.Ascent(),
		})
		x += w
	}

	line.Width = x
	line.Height = maxAscent + maxDescent
	line.Baseline = maxAscent
	return line
}

// FaceMeasurer adapts a font.Face to the Measurer interface.
type FaceMeasurer struct {
	Face font.Face
}

func (fm FaceMeasurer) Width(s string) int {
	return font.MeasureString(fm.Face, s).Ceil()
}

func (fm FaceMeasurer) Ascent() int {
	return fm.Face.Metrics().Ascent.Ceil()
}

func (fm FaceMeasurer) Descent() int {
	return fm.Face.Metrics().Descent.Ceil()
}
