package disks

import (
	"testing"

	"github.com/matzehuels/disksort/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		lightCount int
		want       string
	}{
		{"empty", 0, ""},
		{"one pair", 1, "L D"},
		{"three pairs", 3, "L D L D L D"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.lightCount)
			if got := r.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if r.Len() != 2*tt.lightCount {
				t.Errorf("Len() = %d, want %d", r.Len(), 2*tt.lightCount)
			}
			if r.LightCount() != tt.lightCount || r.DarkCount() != tt.lightCount {
				t.Errorf("LightCount/DarkCount = %d/%d, want %d", r.LightCount(), r.DarkCount(), tt.lightCount)
			}
			if !r.IsInitialized() {
				t.Error("IsInitialized() = false, want true")
			}
		})
	}
}

func TestNewNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New(-1) did not panic")
		}
	}()
	New(-1)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"spaced", "L D L D", "L D L D", false},
		{"commas", "l,d,d,l", "L D D L", false},
		{"packed", "LLDD", "L L D D", false},
		{"words", "light dark", "L D", false},
		{"mixed", "LD l d", "L D L D", false},
		{"empty", "", "", false},
		{"odd length", "L D L", "", true},
		{"unbalanced", "L L L D", "", true},
		{"unknown token", "L X", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidRow) {
					t.Errorf("Parse(%q) error code = %v, want %v", tt.input, errors.GetCode(err), errors.ErrCodeInvalidRow)
				}
				return
			}
			if got := r.String(); got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromColorsCopies(t *testing.T) {
	colors := []Color{Dark, Light}
	r, err := FromColors(colors)
	if err != nil {
		t.Fatalf("FromColors() error = %v", err)
	}
	colors[0] = Light
	if r.Get(0) != Dark {
		t.Error("FromColors() shares storage with its argument")
	}

	out := r.Colors()
	out[0] = Light
	if r.Get(0) != Dark {
		t.Error("Colors() shares storage with the row")
	}
}

func TestFromColorsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		colors []Color
	}{
		{"invalid color", []Color{Light, Color(7)}},
		{"odd length", []Color{Light, Dark, Light}},
		{"unbalanced", []Color{Light, Light, Light, Dark}},
		{"all dark", []Color{Dark, Dark}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromColors(tt.colors); !errors.Is(err, errors.ErrCodeInvalidRow) {
				t.Errorf("FromColors(%v) error = %v, want %v", tt.colors, err, errors.ErrCodeInvalidRow)
			}
		})
	}
}

func TestSwap(t *testing.T) {
	r := New(2)
	r.Swap(1)
	if got := r.String(); got != "L L D D" {
		t.Errorf("after Swap(1) = %q, want %q", got, "L L D D")
	}
}

func TestOutOfRangePanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(Row)
	}{
		{"get negative", func(r Row) { r.Get(-1) }},
		{"get past end", func(r Row) { r.Get(r.Len()) }},
		{"swap last", func(r Row) { r.Swap(r.Len() - 1) }},
		{"swap on empty", func(Row) { New(0).Swap(0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn(New(2))
		})
	}
}

func TestEqualAndClone(t *testing.T) {
	a := New(3)
	b := a.Clone()
	if !a.Equal(b) {
		t.Fatal("clone should equal original")
	}
	b.Swap(1)
	if a.Equal(b) {
		t.Error("mutating clone changed original")
	}
	if New(1).Equal(New(2)) {
		t.Error("rows of different length should not be equal")
	}
}

func TestStates(t *testing.T) {
	tests := []struct {
		input       string
		initialized bool
		sorted      bool
		inversions  int
	}{
		{"", true, true, 0},
		{"L D", true, true, 0},
		{"D L", false, false, 1},
		{"L D L D", true, false, 1},
		{"L L D D", false, true, 0},
		{"D D L L", false, false, 4},
		{"L D L D L D", true, false, 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got := r.IsInitialized(); got != tt.initialized {
				t.Errorf("IsInitialized() = %v, want %v", got, tt.initialized)
			}
			if got := r.IsSorted(); got != tt.sorted {
				t.Errorf("IsSorted() = %v, want %v", got, tt.sorted)
			}
			if got := r.Inversions(); got != tt.inversions {
				t.Errorf("Inversions() = %d, want %d", got, tt.inversions)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	for _, s := range []string{"L", "l", "Light", " LIGHT "} {
		if c, err := ParseColor(s); err != nil || c != Light {
			t.Errorf("ParseColor(%q) = %v, %v; want Light", s, c, err)
		}
	}
	for _, s := range []string{"D", "d", "dark"} {
		if c, err := ParseColor(s); err != nil || c != Dark {
			t.Errorf("ParseColor(%q) = %v, %v; want Dark", s, c, err)
		}
	}
	if _, err := ParseColor("grey"); err == nil {
		t.Error("ParseColor(grey) should fail")
	}
	if got := Color(9).String(); got != "Color(9)" {
		t.Errorf("Color(9).String() = %q", got)
	}
}
