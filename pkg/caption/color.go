// color.go — Caption color resolution: "r,g,b" triples, hex, and named colors.
package caption

import (
	"errors"
	"fmt"
	"image/color"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/xob0t/captionpad/pkg/dimension"
)

// ErrInvalidColor is returned when a color string matches none of the
// recognized formats.
var ErrInvalidColor = errors.New("invalid color")

var (
	rgbTriple = regexp.MustCompile(`^\d{1,3},\d{1,3},\d{1,3}$`)
	hexDigits = regexp.MustCompile(`^[0-9a-fA-F]{6}$|^[0-9a-fA-F]{3}$`)
)

// ResolveColor maps a color specification to a concrete RGB value.
//
// Accepted forms: three comma-separated integers 0–255 ("255,0,127"), a 3- or
// 6-digit hex string with or without a leading "#", or an SVG color name
// ("black", "white", "rebeccapurple", ...).
func ResolveColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)

	if rgbTriple.MatchString(s) {
		return resolveTriple(s)
	}

	hex := strings.TrimPrefix(s, "#")
	if hexDigits.MatchString(hex) {
		return resolveHex(hex), nil
	}

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}, nil
	}

	return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// resolveTriple parses "r,g,b". The grammar admits values up to 999, so the
// 0–255 range is checked separately and reported as a range violation.
func resolveTriple(s string) (color.NRGBA, error) {
	parts := strings.Split(s, ",")

	var vals [3]uint8
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		if v > 255 {
			return color.NRGBA{}, fmt.Errorf("rgb values must be between 0 and 255: %w", dimension.ErrInvalid)
		}
		vals[i] = uint8(v)
	}

	return color.NRGBA{R: vals[0], G: vals[1], B: vals[2], A: 255}, nil
}

// resolveHex converts a validated 3- or 6-digit hex string. Short form
// doubles each digit: "1af" → "11aaff".
func resolveHex(hex string) color.NRGBA {
	if len(hex) == 3 {
		hex = strings.Repeat(string(hex[0]), 2) +
			strings.Repeat(string(hex[1]), 2) +
			strings.Repeat(string(hex[2]), 2)
	}

	r, _ := strconv.ParseUint(hex[0:2], 16, 8)
	g, _ := strconv.ParseUint(hex[2:4], 16, 8)
	b, _ := strconv.ParseUint(hex[4:6], 16, 8)

	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}
