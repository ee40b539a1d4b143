// Package dimension resolves pixel-or-percent size strings to pixel values.
//
// A spec is either a bare integer ("200" → 200px) or a percentage of a base
// dimension ("25%" or "%25" → base*25/100). The same grammar serves both the
// bottom-padding height (base = image height) and the caption wrap width
// (base = image width).
package dimension

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalid is returned when a size string matches neither the absolute
// nor the percentage grammar.
var ErrInvalid = errors.New("invalid dimension")

// A percentage needs at least one "%" marker, leading or trailing.
var sizePattern = regexp.MustCompile(`^%?(\d+)%?$`)

// Resolve converts a size string to a pixel count.
//
// A string containing a "%" anywhere is a percentage of base, truncated to
// an integer. Percentages above 100 are allowed — a band taller than the
// source image is valid. Without a "%" the string must be all digits and is
// taken as absolute pixels.
func Resolve(spec string, base int) (int, error) {
	spec = strings.TrimSpace(spec)

	m := sizePattern.FindStringSubmatch(spec)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalid, spec)
	}

	if strings.Contains(spec, "%") {
		percent, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalid, spec)
		}
		return base * percent / 100, nil
	}

	px, err := strconv.Atoi(spec)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalid, spec)
	}
	return px, nil
}
