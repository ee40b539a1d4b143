// Package caption appends a captioned padding band to the bottom of an image.
//
// The pipeline is strictly sequential: open the source, resolve every size
// and color spec up front (a bad value must never leave a partial output
// file), extend the canvas with the background band, lay the caption out
// inside it, draw, save.
package caption

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/xob0t/captionpad/pkg/dimension"
	"github.com/xob0t/captionpad/pkg/layout"
)

// Options holds one invocation's worth of captioning parameters. Padding and
// WrapWidth are pixel-or-percent strings; Background and TextColor are color
// specs understood by ResolveColor.
type Options struct {
	Input      string
	Output     string
	Text       string
	Padding    string
	Background string
	TextColor  string
	Font       string
	FontSize   float64
	Align      layout.HAlign
	VAlign     layout.VAlign
	WrapWidth  string
}

// Process captions a single image according to opts.
func Process(opts Options) error {
	src, err := imaging.Open(opts.Input)
	if err != nil {
		return fmt.Errorf("open %s: %w", opts.Input, err)
	}
	width := src.Bounds().Dx()
	height := src.Bounds().Dy()

	// Validate everything before touching pixels.
	padding, err := dimension.Resolve(opts.Padding, height)
	if err != nil {
		return fmt.Errorf("padding: %w", err)
	}
	wrapWidth, err := dimension.Resolve(opts.WrapWidth, width)
	if err != nil {
		return fmt.Errorf("wrap width: %w", err)
	}
	background, err := ResolveColor(opts.Background)
	if err != nil {
		return fmt.Errorf("background color: %w", err)
	}
	textColor, err := ResolveColor(opts.TextColor)
	if err != nil {
		return fmt.Errorf("text color: %w", err)
	}

	fm, err := NewFontManager(opts.Font)
	if err != nil {
		return err
	}
	face, err := fm.GetFace(opts.FontSize, 72)
	if err != nil {
		return err
	}

	canvas := imaging.New(width, height+padding, background)
	canvas = imaging.Paste(canvas, src, image.Pt(0, 0))

	engine := layout.Engine{Measure: blockMeasurer{face: face}.Measure}
	band := layout.Band{TopY: height, Height: padding, ImageWidth: width}
	placed := engine.Layout(opts.Text, wrapWidth, opts.Align, opts.VAlign, band)

	drawLines(canvas, placed, opts.Align, face, textColor)

	if err := imaging.Save(canvas, opts.Output); err != nil {
		return fmt.Errorf("save %s: %w", opts.Output, err)
	}
	return nil
}

// drawLines renders a laid-out caption block. Lines are shifted inside the
// block's width for center/right alignment; the drawer's dot sits on the
// baseline, one ascent below each line's top edge.
func drawLines(dst *image.NRGBA, placed layout.CaptionLayout, align layout.HAlign, face font.Face, col color.NRGBA) {
	m := blockMeasurer{face: face}
	step := m.lineHeight() + lineSpacing
	ascent := face.Metrics().Ascent.Ceil()

	for i, line := range placed.Lines {
		if line == "" {
			continue
		}

		x := placed.X
		switch align {
		case layout.AlignCenter:
			x += (placed.Width - font.MeasureString(face, line).Ceil()) / 2
		case layout.AlignRight:
			x += placed.Width - font.MeasureString(face, line).Ceil()
		}

		drawer := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(col),
			Face: face,
			Dot:  fixed.P(x, placed.Y+ascent+i*step),
		}
		drawer.DrawString(line)
	}
}
