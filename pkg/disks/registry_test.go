package disks

import (
	"testing"

	"github.com/matzehuels/disksort/pkg/errors"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"alternate", "alternate", AlgorithmAlternate, false},
		{"lawnmower", "lawnmower", AlgorithmLawnmower, false},
		{"case and space", "  LawnMower ", AlgorithmLawnmower, false},
		{"unknown", "bubble", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Lookup(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Lookup(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidAlgorithm) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidAlgorithm)
				}
				return
			}
			if a.Name != tt.want || a.Sort == nil || a.Trace == nil {
				t.Errorf("Lookup(%q) = %+v", tt.input, a)
			}
		})
	}
}

func TestAlgorithmsOrder(t *testing.T) {
	names := Names()
	if len(names) != 2 || names[0] != AlgorithmAlternate || names[1] != AlgorithmLawnmower {
		t.Errorf("Names() = %v", names)
	}

	all := Algorithms()
	all[0].Name = "changed"
	if Algorithms()[0].Name != AlgorithmAlternate {
		t.Error("Algorithms() returned shared storage")
	}
}
