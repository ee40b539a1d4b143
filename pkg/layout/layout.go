// Package layout turns a raw caption string into wrapped lines and an exact
// pixel origin inside a target band.
//
// Text measurement is injected as a function so the engine can be exercised
// with a deterministic fake instead of a real font renderer.
package layout

import (
	"fmt"
	"strings"
)

// MeasureFunc reports the pixel bounding box a (possibly multi-line) text
// block occupies when rendered, inter-line spacing included.
type MeasureFunc func(text string) (width, height int)

// HAlign selects the horizontal placement of the caption block.
type HAlign string

// VAlign selects the vertical placement of the caption block inside the band.
type VAlign string

const (
	AlignLeft   HAlign = "left"
	AlignCenter HAlign = "center"
	AlignRight  HAlign = "right"

	AlignTop    VAlign = "top"
	AlignMiddle VAlign = "middle"
	AlignBottom VAlign = "bottom"
)

// ParseHAlign validates a horizontal alignment name.
func ParseHAlign(s string) (HAlign, error) {
	switch a := HAlign(s); a {
	case AlignLeft, AlignCenter, AlignRight:
		return a, nil
	}
	return "", fmt.Errorf("invalid align %q: use left, center or right", s)
}

// ParseVAlign validates a vertical alignment name.
func ParseVAlign(s string) (VAlign, error) {
	switch a := VAlign(s); a {
	case AlignTop, AlignMiddle, AlignBottom:
		return a, nil
	}
	return "", fmt.Errorf("invalid valign %q: use top, middle or bottom", s)
}

// Band is the rectangular region appended below the source image that hosts
// the caption.
type Band struct {
	TopY       int // y of the band's first row in the output image
	Height     int // band height in pixels
	ImageWidth int // full output image width
}

// Margins between the caption block and the band edges.
const (
	marginX = 20
	marginY = 10
)

// CaptionLayout is a wrapped caption ready to draw: its lines, the top-left
// origin, and the measured bounding box the origin was derived from.
type CaptionLayout struct {
	Lines  []string
	X, Y   int
	Width  int
	Height int
}

// Text returns the wrapped block as a single newline-joined string.
func (l CaptionLayout) Text() string {
	return strings.Join(l.Lines, "\n")
}

// Engine wraps caption text and positions it inside a band.
type Engine struct {
	Measure MeasureFunc
}

// Layout wraps text to wrapWidth and computes the draw origin.
//
// Literal "\n" escapes are converted to real line breaks first, so captions
// can carry breaks through shells and config files. Each paragraph is then
// wrapped independently; blank lines survive as empty output lines. The
// origin places the measured block according to align/valign — when the band
// is smaller than the block the text simply overflows, nothing is clamped.
func (e *Engine) Layout(text string, wrapWidth int, align HAlign, valign VAlign, band Band) CaptionLayout {
	lines := e.wrap(normalizeNewlines(text), wrapWidth)

	w, h := e.Measure(strings.Join(lines, "\n"))

	var y int
	switch valign {
	case AlignTop:
		y = band.TopY + marginY
	case AlignBottom:
		y = band.TopY + band.Height - h - marginY
	default: // middle
		y = band.TopY + (band.Height-h)/2
	}

	var x int
	switch align {
	case AlignLeft:
		x = marginX
	case AlignRight:
		x = band.ImageWidth - w - marginX
	default: // center
		x = (band.ImageWidth - w) / 2
	}

	return CaptionLayout{Lines: lines, X: x, Y: y, Width: w, Height: h}
}

// normalizeNewlines converts the two-character escape "\n" into a real
// line break.
func normalizeNewlines(text string) string {
	return strings.ReplaceAll(text, `\n`, "\n")
}

// wrap splits text into paragraphs and word-wraps each one. A blank
// paragraph is kept as an empty line, not dropped.
func (e *Engine) wrap(text string, maxWidth int) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		if strings.TrimSpace(paragraph) == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, e.wrapParagraph(paragraph, maxWidth)...)
	}
	return lines
}

// wrapParagraph greedily packs words into lines no wider than maxWidth.
// The candidate line is measured before a word is committed. A single word
// wider than maxWidth goes on its own line unsplit and overflows.
func (e *Engine) wrapParagraph(paragraph string, maxWidth int) []string {
	var lines []string
	var current string

	for _, word := range strings.Fields(paragraph) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}

		if w, _ := e.Measure(candidate); w <= maxWidth {
			current = candidate
			continue
		}

		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}

	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
