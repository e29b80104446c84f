package disks

import (
	"fmt"
	"strings"

	"github.com/matzehuels/disksort/pkg/errors"
)

// Color is the color of a single disk.
type Color uint8

const (
	Light Color = iota
	Dark
)

// String returns "L" for light disks and "D" for dark disks.
func (c Color) String() string {
	switch c {
	case Light:
		return "L"
	case Dark:
		return "D"
	default:
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
}

// ParseColor parses a single disk token. "L", "light", "D" and "dark" are
// accepted in any case.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "light":
		return Light, nil
	case "d", "dark":
		return Dark, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidRow, "unknown disk color %q", s)
	}
}
