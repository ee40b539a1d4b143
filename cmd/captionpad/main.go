// captionpad — Append a captioned padding band to the bottom of an image.
//
// Usage:
//
//	captionpad -i <input> -o <output> -c <caption> [options]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/xob0t/captionpad/pkg/caption"
	"github.com/xob0t/captionpad/pkg/config"
	"github.com/xob0t/captionpad/pkg/layout"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("captionpad", flag.ExitOnError)

	var (
		input      string
		output     string
		text       string
		padding    string
		bgColor    string
		textColor  string
		fontName   string
		fontSize   float64
		align      string
		valign     string
		wrapWidth  string
		configPath string
	)

	fs.StringVar(&input, "i", "", "Input image path")
	fs.StringVar(&input, "input", "", "Input image path")
	fs.StringVar(&output, "o", "", "Output image path")
	fs.StringVar(&output, "output", "", "Output image path")
	fs.StringVar(&text, "c", "", "Caption text")
	fs.StringVar(&text, "caption", "", "Caption text")
	fs.StringVar(&padding, "p", "", "Bottom padding (pixels or %)")
	fs.StringVar(&padding, "padding", "", "Bottom padding (pixels or %)")
	fs.StringVar(&bgColor, "b", "", "Background color of the padding band")
	fs.StringVar(&bgColor, "bg-color", "", "Background color of the padding band")
	fs.StringVar(&textColor, "t", "", "Text color")
	fs.StringVar(&textColor, "text-color", "", "Text color")
	fs.StringVar(&fontName, "f", "", "Font name or path")
	fs.StringVar(&fontName, "font", "", "Font name or path")
	fs.Float64Var(&fontSize, "s", 0, "Font size in points")
	fs.Float64Var(&fontSize, "font-size", 0, "Font size in points")
	fs.StringVar(&align, "a", "", "Horizontal alignment: left, center, right")
	fs.StringVar(&align, "align", "", "Horizontal alignment: left, center, right")
	fs.StringVar(&valign, "valign", "", "Vertical alignment inside the band: top, middle, bottom")
	fs.StringVar(&wrapWidth, "wrap-width", "", "Wrap width (pixels or % of image width)")
	fs.StringVar(&configPath, "config", "", "YAML file with default option values")

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}

	if input == "" || output == "" || text == "" {
		printUsage()
		return fmt.Errorf("input (-i), output (-o) and caption (-c) are required")
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	// Flags given on the command line win over the config file.
	applyDefault(&padding, cfg.Padding)
	applyDefault(&bgColor, cfg.BgColor)
	applyDefault(&textColor, cfg.TextColor)
	applyDefault(&fontName, cfg.Font)
	applyDefault(&align, cfg.Align)
	applyDefault(&valign, cfg.VAlign)
	applyDefault(&wrapWidth, cfg.WrapWidth)
	if fontSize <= 0 {
		fontSize = cfg.FontSize
	}

	hAlign, err := layout.ParseHAlign(align)
	if err != nil {
		return err
	}
	vAlign, err := layout.ParseVAlign(valign)
	if err != nil {
		return err
	}

	err = caption.Process(caption.Options{
		Input:      input,
		Output:     output,
		Text:       text,
		Padding:    padding,
		Background: bgColor,
		TextColor:  textColor,
		Font:       fontName,
		FontSize:   fontSize,
		Align:      hAlign,
		VAlign:     vAlign,
		WrapWidth:  wrapWidth,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Saved output image to: %s\n", output)
	return nil
}

// applyDefault fills an unset string flag from the config value.
func applyDefault(flagValue *string, cfgValue string) {
	if *flagValue == "" {
		*flagValue = cfgValue
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`captionpad — Add a caption band to the bottom of an image

USAGE:
    captionpad -i <input> -o <output> -c <caption> [options]

REQUIRED:
    -i, --input <path>       Input image (png, jpg, gif, tif, bmp)
    -o, --output <path>      Output image; format follows the extension
    -c, --caption <text>     Caption text ("\n" starts a new line)

OPTIONS:
    -p, --padding <size>     Band height, pixels or % of image height (default: 200)
    -b, --bg-color <color>   Band color: name, hex or r,g,b (default: black)
    -t, --text-color <color> Text color (default: white)
    -f, --font <name|path>   TTF/OTF font name or path (default: arial)
    -s, --font-size <pt>     Font size in points (default: 16)
    -a, --align <mode>       left, center or right (default: left)
    --valign <mode>          top, middle or bottom (default: top)
    --wrap-width <size>      Wrap width, pixels or % of image width (default: 90%)
    --config <path>          YAML file with default option values

EXAMPLES:
    captionpad -i photo.jpg -o captioned.jpg -c "Hello world"
    captionpad -i photo.jpg -o out.png -c "line one\nline two" -p 25% -a center
    captionpad -i scan.png -o out.png -c "Figure 3" -b 1a1a2e -t 255,204,0
`)
}
