package app

import (
	"path/filepath"
	"testing"

	"github.com/integrii/flaggy"
)

func TestOptionsBind(t *testing.T) {
	o := NewOptions()
	p := flaggy.NewParser("life")
	o.Bind(p)
	if err := p.ParseArgs([]string{"-c", "custom.ini", "--seed", "17"}); err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if o.ConfigPath != "custom.ini" || o.Seed != 17 {
		t.Fatalf("options = %+v", o)
	}
}

func TestOptionsLoadAppliesSeed(t *testing.T) {
	o := NewOptions()
	o.ConfigPath = filepath.Join(t.TempDir(), "config.ini")
	o.Seed = 5
	cfg, err := o.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 5 {
		t.Fatalf("seed = %d, want 5", cfg.Seed)
	}
}
