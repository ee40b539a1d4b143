// fonts.go — Font loading with a name-or-path lookup and embedded fallback.
// A font that cannot be read or parsed is never fatal: rendering continues
// with the embedded Go Regular font.
package caption

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontManager resolves a font name or path to renderable faces.
type FontManager struct {
	parsed *opentype.Font
}

// NewFontManager loads the font named by nameOrPath. A bare name gets a
// ".ttf" suffix appended ("arial" → "arial.ttf"). When the file is missing
// or unparsable the embedded Go font is used instead.
func NewFontManager(nameOrPath string) (*FontManager, error) {
	var fontData []byte

	if nameOrPath != "" {
		path := nameOrPath
		if ext := filepath.Ext(path); ext != ".ttf" && ext != ".otf" {
			path += ".ttf"
		}

		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("Warning: could not load font %q, using default\n", path)
		} else {
			fontData = data
		}
	}

	if fontData != nil {
		if parsed, err := opentype.Parse(fontData); err == nil {
			return &FontManager{parsed: parsed}, nil
		}
		fmt.Printf("Warning: could not parse font %q, using default\n", nameOrPath)
	}

	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse embedded font: %w", err)
	}
	return &FontManager{parsed: parsed}, nil
}

// GetFace returns a font.Face at the specified point size.
func (fm *FontManager) GetFace(size float64, dpi float64) (font.Face, error) {
	if dpi <= 0 {
		dpi = 72
	}

	face, err := opentype.NewFace(fm.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}

	return face, nil
}
