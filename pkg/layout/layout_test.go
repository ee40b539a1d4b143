package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeMeasure is a deterministic stand-in for a font renderer: every glyph
// is 10px wide, every line 16px tall with 4px spacing between lines.
func fakeMeasure(text string) (int, int) {
	lines := strings.Split(text, "\n")
	var width int
	for _, line := range lines {
		if w := 10 * len([]rune(line)); w > width {
			width = w
		}
	}
	return width, 16*len(lines) + 4*(len(lines)-1)
}

func newEngine() *Engine {
	return &Engine{Measure: fakeMeasure}
}

func TestWrapGreedy(t *testing.T) {
	e := newEngine()

	// 12 glyphs per 120px line.
	lines := e.wrap("aaaa bbbb cccc dddd", 120)
	assert.Equal(t, []string{"aaaa bbbb", "cccc dddd"}, lines)
}

func TestWrapIdempotent(t *testing.T) {
	e := newEngine()

	first := e.wrap("the quick brown fox jumps over the lazy dog", 150)
	second := e.wrap(strings.Join(first, "\n"), 150)
	assert.Equal(t, first, second)
}

func TestWrapNoOverflowWhenWordsFit(t *testing.T) {
	e := newEngine()

	const maxWidth = 100
	lines := e.wrap("one two three four five six seven eight nine ten", maxWidth)
	for _, line := range lines {
		w, _ := fakeMeasure(line)
		assert.LessOrEqual(t, w, maxWidth, "line %q too wide", line)
	}
}

func TestWrapOversizedWordStandsAlone(t *testing.T) {
	e := newEngine()

	// "incomprehensible" is 160px, wider than any line allows.
	lines := e.wrap("an incomprehensible word", 100)
	assert.Equal(t, []string{"an", "incomprehensible", "word"}, lines)
}

func TestWrapEmptyText(t *testing.T) {
	e := newEngine()

	assert.Equal(t, []string{""}, e.wrap("", 100))
}

func TestWrapPreservesBlankLines(t *testing.T) {
	e := newEngine()

	lines := e.wrap("line1\n\nline2", 500)
	assert.Equal(t, []string{"line1", "", "line2"}, lines)
}

func TestLayoutNormalizesEscapedNewlines(t *testing.T) {
	e := newEngine()

	got := e.Layout(`one\ntwo`, 500, AlignLeft, AlignTop, Band{TopY: 0, Height: 100, ImageWidth: 500})
	assert.Equal(t, []string{"one", "two"}, got.Lines)
	assert.Equal(t, "one\ntwo", got.Text())
}

func TestLayoutVerticalOrigins(t *testing.T) {
	e := newEngine()
	band := Band{TopY: 300, Height: 200, ImageWidth: 1000}

	// Pin the block to 300x40 so the offsets are easy to read.
	e.Measure = func(string) (int, int) { return 300, 40 }

	top := e.Layout("x", 900, AlignLeft, AlignTop, band)
	assert.Equal(t, 310, top.Y)

	middle := e.Layout("x", 900, AlignLeft, AlignMiddle, band)
	assert.Equal(t, 300+80, middle.Y)

	bottom := e.Layout("x", 900, AlignLeft, AlignBottom, band)
	assert.Equal(t, 300+200-40-10, bottom.Y)
}

func TestLayoutHorizontalOrigins(t *testing.T) {
	e := newEngine()
	e.Measure = func(string) (int, int) { return 300, 40 }
	band := Band{TopY: 0, Height: 200, ImageWidth: 1000}

	left := e.Layout("x", 900, AlignLeft, AlignTop, band)
	assert.Equal(t, 20, left.X)

	right := e.Layout("x", 900, AlignRight, AlignTop, band)
	assert.Equal(t, 680, right.X)

	center := e.Layout("x", 900, AlignCenter, AlignTop, band)
	assert.Equal(t, 350, center.X)
}

func TestLayoutEmptyCaption(t *testing.T) {
	e := newEngine()

	got := e.Layout("", 360, AlignLeft, AlignTop, Band{TopY: 300, Height: 75, ImageWidth: 400})
	assert.Equal(t, []string{""}, got.Lines)
	assert.Equal(t, 0, got.Width)
	assert.Equal(t, 16, got.Height)
	assert.Equal(t, 20, got.X)
	assert.Equal(t, 310, got.Y)
}

func TestParseAlign(t *testing.T) {
	for _, s := range []string{"left", "center", "right"} {
		a, err := ParseHAlign(s)
		assert.NoError(t, err)
		assert.Equal(t, HAlign(s), a)
	}
	_, err := ParseHAlign("justify")
	assert.Error(t, err)

	for _, s := range []string{"top", "middle", "bottom"} {
		a, err := ParseVAlign(s)
		assert.NoError(t, err)
		assert.Equal(t, VAlign(s), a)
	}
	_, err = ParseVAlign("baseline")
	assert.Error(t, err)
}
