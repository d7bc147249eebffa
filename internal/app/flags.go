package app

import (
	"github.com/integrii/flaggy"

	"lifegrid/internal/config"
)

// Options represents the command-line parameters shared by the shells.
type Options struct {
	ConfigPath string
	Seed       int64
}

// NewOptions returns Options populated with sensible defaults.
func NewOptions() *Options {
	return &Options{ConfigPath: config.DefaultPath}
}

// Bind attaches the options to the provided parser.
func (o *Options) Bind(p *flaggy.Parser) {
	p.String(&o.ConfigPath, "c", "config", "Path to the INI configuration file (created with defaults if missing)")
	p.Int64(&o.Seed, "s", "seed", "Seed for random fills and colours, overrides the config file (0 keeps it)")
}

// Load reads the configuration file and applies command-line overrides.
func (o *Options) Load() (config.Config, error) {
	cfg, err := config.LoadOrCreate(o.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if o.Seed != 0 {
		cfg.Seed = o.Seed
	}
	return cfg, nil
}
