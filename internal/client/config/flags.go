package config

import (
	"flag"
	"io"
)

// parseFlags populates Config fields from the global flags.
//
// Supported flags:
//
//	-c, -config string   JSON config file (read by parseJson)
//	-d string            data directory
//	-n int               default number of messages to show
//	-l string            log level
//	-no-color            disable coloured output
func parseFlags(cfg *Config, flags []string) error {
	fs := flag.NewFlagSet("kcc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var ignored string
	fs.StringVar(&ignored, "c", "", "path to JSON config file")
	fs.StringVar(&ignored, "config", "", "path to JSON config file")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.IntVar(&cfg.TakeLast, "n", cfg.TakeLast, "default number of messages to show")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable coloured output")

	return fs.Parse(flags)
}
