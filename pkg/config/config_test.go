package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/disksort/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	algs, err := Default().Algorithms()
	if err != nil {
		t.Fatalf("Algorithms() error = %v", err)
	}
	if len(algs) != 2 {
		t.Errorf("default algorithms = %d, want 2", len(algs))
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
algorithm = "lawnmower"
count = 7

[compare]
min = 2
max = 9

[animate]
interval = "40ms"
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Algorithm != "lawnmower" || cfg.Count != 7 {
		t.Errorf("got algorithm=%q count=%d", cfg.Algorithm, cfg.Count)
	}
	if cfg.Compare.Min != 2 || cfg.Compare.Max != 9 {
		t.Errorf("got compare=%+v", cfg.Compare)
	}
	if cfg.Animate.Interval.Duration != 40*time.Millisecond {
		t.Errorf("got interval=%v", cfg.Animate.Interval.Duration)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`count = 2`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	def := Default()
	if cfg.Count != 2 || cfg.Algorithm != def.Algorithm || cfg.Compare != def.Compare {
		t.Errorf("got %+v", cfg)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", `count = `},
		{"unknown key", `colour = "dark"`},
		{"unknown algorithm", `algorithm = "bogo"`},
		{"negative count", `count = -3`},
		{"reversed range", "[compare]\nmin = 5\nmax = 1"},
		{"bad interval", "[animate]\ninterval = \"soon\""},
		{"zero interval", "[animate]\ninterval = \"0s\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`algorithm = "alternate"`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Algorithm != "alternate" {
		t.Errorf("Algorithm = %q, want alternate", cfg.Algorithm)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Load() of a missing explicit path should fail")
	}
}

func TestLoadDefaultPathMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	got, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/xdg", "disksort", "config.toml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestResolveAlgorithms(t *testing.T) {
	for _, name := range []string{"", "all", "ALL"} {
		algs, err := ResolveAlgorithms(name)
		if err != nil || len(algs) != 2 {
			t.Errorf("ResolveAlgorithms(%q) = %d algorithms, %v", name, len(algs), err)
		}
	}
	algs, err := ResolveAlgorithms("alternate")
	if err != nil || len(algs) != 1 || algs[0].Name != "alternate" {
		t.Errorf("ResolveAlgorithms(alternate) = %v, %v", algs, err)
	}
	if _, err := ResolveAlgorithms("quick"); err == nil {
		t.Error("ResolveAlgorithms(quick) should fail")
	}
}
