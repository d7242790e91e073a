package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/kcc/internal/flagx"
)

// Config holds runtime settings for the kcc CLI.
//
// Fields:
//   - DataDir: directory holding the profile database.
//   - TakeLast: messages shown when a query carries no count.
//   - LogLevel: debug, info, warn or error; logs go to stderr.
//   - NoColor: disables coloured output.
type Config struct {
	DataDir  string
	TakeLast int
	LogLevel string
	NoColor  bool
}

// globalFlags are the flags accepted before the command.
var globalFlags = flagx.Spec{
	Value: []string{"c", "config", "d", "n", "l"},
	Bool:  []string{"no-color"},
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = defaultDataDir()
	c.TakeLast = 10
	c.LogLevel = "warn"
	c.NoColor = false
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".kcc"
	}
	return filepath.Join(home, ".kcc")
}

// LoadConfig constructs a Config from args (usually os.Args[1:]): defaults,
// then the JSON file named by -c/-config, then the remaining global flags.
// Later sources take precedence. It also returns the command arguments that
// follow the global flags.
func LoadConfig(args []string) (*Config, []string, error) {
	flags, rest := flagx.SplitLeading(args, globalFlags)

	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, flagx.JsonConfigFlag(flags)); err != nil {
		return nil, nil, err
	}
	if err := parseFlags(cfg, flags); err != nil {
		return nil, nil, err
	}
	if cfg.TakeLast < 0 {
		return nil, nil, fmt.Errorf("default message count must not be negative, got %d", cfg.TakeLast)
	}
	return cfg, rest, nil
}
