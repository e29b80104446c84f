package disks

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/matzehuels/disksort/pkg/errors"
)

// Row is an ordered, fixed-length sequence of disks. Its length is always
// even and never changes after construction.
//
// The zero value is the empty row. Rows returned by this package never share
// their backing storage with another row, so a Row can be passed around by
// value; use [Row.Clone] before mutating a row someone else holds.
type Row struct {
	colors []Color
}

// New returns the initialized row with lightCount light and lightCount dark
// disks: even positions light, odd positions dark. New(0) returns the empty
// row. New panics if lightCount is negative.
func New(lightCount int) Row {
	if lightCount < 0 {
		panic(fmt.Sprintf("disks: negative light count %d", lightCount))
	}
	colors := make([]Color, 2*lightCount)
	for i := 1; i < len(colors); i += 2 {
		colors[i] = Dark
	}
	return Row{colors: colors}
}

// FromColors returns a row holding a copy of colors. The length must be even
// and the row must contain as many light disks as dark ones.
func FromColors(colors []Color) (Row, error) {
	if len(colors)%2 != 0 {
		return Row{}, errors.New(errors.ErrCodeInvalidRow, "row length must be even, got %d", len(colors))
	}
	light := 0
	for i, c := range colors {
		switch c {
		case Light:
			light++
		case Dark:
		default:
			return Row{}, errors.New(errors.ErrCodeInvalidRow, "invalid disk color %d at index %d", uint8(c), i)
		}
	}
	if light != len(colors)/2 {
		return Row{}, errors.New(errors.ErrCodeInvalidRow,
			"row must hold equal light and dark disks, got %d light and %d dark", light, len(colors)-light)
	}
	return Row{colors: slices.Clone(colors)}, nil
}

// Parse builds a row from text. Tokens may be separated by whitespace or
// commas ("L D L D", "l,d,l,d") or packed together ("LDLD"); the words
// "light" and "dark" are accepted too.
func Parse(s string) (Row, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})

	var colors []Color
	for _, f := range fields {
		if c, err := ParseColor(f); err == nil {
			colors = append(colors, c)
			continue
		}
		for _, r := range f {
			c, err := ParseColor(string(r))
			if err != nil {
				return Row{}, errors.Wrap(errors.ErrCodeInvalidRow, err, "parse row %q", s)
			}
			colors = append(colors, c)
		}
	}
	return FromColors(colors)
}

// Len returns the total number of disks.
func (r Row) Len() int { return len(r.colors) }

// LightCount returns the number of light disks, which is half the length.
func (r Row) LightCount() int { return len(r.colors) / 2 }

// DarkCount returns the number of dark disks, which is half the length.
func (r Row) DarkCount() int { return r.LightCount() }

// IsIndex reports whether i is a valid position in the row.
func (r Row) IsIndex(i int) bool { return i >= 0 && i < len(r.colors) }

// Get returns the color at index i. It panics if i is out of range.
func (r Row) Get(i int) Color {
	if !r.IsIndex(i) {
		panic(fmt.Sprintf("disks: index %d out of range [0,%d)", i, len(r.colors)))
	}
	return r.colors[i]
}

// Swap exchanges the disks at left and left+1. It panics unless both are
// valid indices.
func (r Row) Swap(left int) {
	if !r.IsIndex(left) || !r.IsIndex(left+1) {
		panic(fmt.Sprintf("disks: swap at %d out of range [0,%d)", left, len(r.colors)))
	}
	r.colors[left], r.colors[left+1] = r.colors[left+1], r.colors[left]
}

// Equal reports whether both rows hold the same colors in the same order.
func (r Row) Equal(other Row) bool {
	return slices.Equal(r.colors, other.colors)
}

// Clone returns a deep copy of the row.
func (r Row) Clone() Row {
	return Row{colors: slices.Clone(r.colors)}
}

// Colors returns a copy of the row's colors.
func (r Row) Colors() []Color {
	return slices.Clone(r.colors)
}

// Count returns the number of disks of color c.
func (r Row) Count(c Color) int {
	n := 0
	for _, x := range r.colors {
		if x == c {
			n++
		}
	}
	return n
}

// Inversions returns the number of (dark, light) pairs where the dark disk
// is left of the light one. Every adjacent dark/light swap removes exactly
// one inversion, so this is the minimum number of swaps needed to sort r.
func (r Row) Inversions() int {
	inv, dark := 0, 0
	for _, c := range r.colors {
		if c == Dark {
			dark++
		} else {
			inv += dark
		}
	}
	return inv
}

// IsInitialized reports whether the row alternates light and dark starting
// with light.
func (r Row) IsInitialized() bool {
	for i, c := range r.colors {
		if (i%2 == 0) != (c == Light) {
			return false
		}
	}
	return true
}

// IsSorted reports whether every light disk precedes every dark disk, with
// exactly LightCount disks on each side.
func (r Row) IsSorted() bool {
	k := r.LightCount()
	for i, c := range r.colors {
		if (i < k) != (c == Light) {
			return false
		}
	}
	return true
}

// String renders the row as space separated tokens, e.g. "L D L D".
// The empty row renders as "".
func (r Row) String() string {
	var b strings.Builder
	for i, c := range r.colors {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	return b.String()
}
