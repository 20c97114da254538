package flight

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"2h 30m", 150},
		{"45m", 45},
		{"3h", 180},
		{"", 0},
		{"garbage", 0},
		{"30m 2h", 150},    // components in either order
		{"2H 30M", 150},    // case-insensitive
		{"2h30m", 150},     // no separator
		{"about 1h 5m ish", 65},
		{"0h 0m", 0},
		{"10h", 600},
		{"h m", 0}, // units without digits
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseDuration(tc.raw))
		})
	}
}

func TestParseDuration_CanonicalForms(t *testing.T) {
	// For any non-negative h and m, "{h}h {m}m" parses to h*60+m.
	for h := 0; h <= 12; h += 3 {
		for m := 0; m <= 55; m += 11 {
			s := fmt.Sprintf("%dh %dm", h, m)
			assert.Equal(t, h*60+m, ParseDuration(s), "input %q", s)
		}
	}
}

func TestParseDuration_NeverNegative(t *testing.T) {
	for _, raw := range []string{"-2h", "-45m", "x-1h-2m"} {
		assert.GreaterOrEqual(t, ParseDuration(raw), 0, "input %q", raw)
	}
}
