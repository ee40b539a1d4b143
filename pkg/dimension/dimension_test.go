package dimension

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		spec string
		base int
		want int
	}{
		{"200", 999, 200},
		{"0", 100, 0},
		{"50%", 200, 100},
		{"%50", 200, 100},
		{"%50%", 200, 100},
		{"90%", 400, 360},
		{"25%", 300, 75},
		{"33%", 100, 33},
		{"101%", 10, 10},  // over 100% is not clamped
		{"150%", 200, 300},
		{" 120 ", 50, 120}, // surrounding whitespace is ignored
	}

	for _, tt := range tests {
		got, err := Resolve(tt.spec, tt.base)
		if err != nil {
			t.Errorf("Resolve(%q, %d) returned error: %v", tt.spec, tt.base, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Resolve(%q, %d) = %d, want %d", tt.spec, tt.base, got, tt.want)
		}
	}
}

func TestResolveInvalid(t *testing.T) {
	for _, spec := range []string{
		"",
		"-5",
		"abc",
		"12px",
		"50 %",
		"%%50",
		"1.5",
		"%",
	} {
		_, err := Resolve(spec, 100)
		if err == nil {
			t.Errorf("Resolve(%q, 100) should have failed", spec)
			continue
		}
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("Resolve(%q, 100) error = %v, want ErrInvalid", spec, err)
		}
	}
}
