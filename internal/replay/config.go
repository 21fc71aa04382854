package replay

import (
	"flag"
	"io"
	"log/slog"

	"github.com/pkg/errors"
)

const (
	EnvScript   = "LIFO_SCRIPT"
	EnvLogLevel = "LIFO_LOG_LEVEL"
)

type Config struct {
	Script   string
	LogLevel slog.Level
	// Capacity overrides the script's initial capacity when not negative.
	Capacity int
}

// ParseConfig reads flags from args, falling back to the environment for
// values not given on the command line.
func ParseConfig(args []string, getenv func(string) string) (*Config, error) {
	fs := flag.NewFlagSet("lifo-replay", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg := &Config{}
	var level string
	fs.StringVar(&cfg.Script, "script", getenv(EnvScript), "script location (path or URL)")
	fs.StringVar(&level, "log-level", getenv(EnvLogLevel), "log level: debug, info, warn, error")
	fs.IntVar(&cfg.Capacity, "capacity", -1, "initial stack capacity, overrides the script")
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "failed to parse flags")
	}
	if cfg.Script == "" && fs.NArg() > 0 {
		cfg.Script = fs.Arg(0)
	}
	if cfg.Script == "" {
		return nil, errors.Errorf("no script given, use -script or %v", EnvScript)
	}
	if level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return nil, errors.Wrapf(err, "invalid log level %q", level)
		}
	}
	return cfg, nil
}
