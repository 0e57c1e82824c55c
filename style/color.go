package style

import (
	"strconv"
	"strings"
)

// ParseHexColor decodes a #RRGGBB literal into its channels. The leading
// hash is optional.
func ParseHexColor(lit string) (Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(lit), "#")
	if len(s) != 6 {
		return Color{}, &ColorError{Literal: lit, Reason: "expected 6 hex digits"}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, &ColorError{Literal: lit, Reason: "not a hex number"}
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
