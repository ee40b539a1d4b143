// measure.go — Pixel measurement of multi-line text blocks with a font.Face.
package caption

import (
	"strings"

	"golang.org/x/image/font"
)

// lineSpacing is the fixed gap in pixels between wrapped caption lines,
// shared by measurement and drawing.
const lineSpacing = 4

// blockMeasurer reports the bounding box of a newline-separated text block:
// the widest line by the summed line heights plus inter-line spacing. An
// empty string still counts as one (empty) line, so its box is
// (0, lineHeight).
type blockMeasurer struct {
	face font.Face
}

func (m blockMeasurer) lineHeight() int {
	metrics := m.face.Metrics()
	return (metrics.Ascent + metrics.Descent).Ceil()
}

// Measure implements layout.MeasureFunc.
func (m blockMeasurer) Measure(text string) (int, int) {
	lines := strings.Split(text, "\n")

	var width int
	for _, line := range lines {
		if w := font.MeasureString(m.face, line).Ceil(); w > width {
			width = w
		}
	}

	height := len(lines)*m.lineHeight() + (len(lines)-1)*lineSpacing
	return width, height
}
