package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/levocale/internal/app"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
	// Positional holds arguments left over after flag parsing.
	Positional []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth      = "LEVOCALE_WIDTH"
	envHeight     = "LEVOCALE_HEIGHT"
	envShowFooter = "LEVOCALE_FOOTER"
	envTrace      = "LEVOCALE_TRACE"
	envLogFile    = "LEVOCALE_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

type flagValues struct {
	width   int
	height  int
	footer  bool
	trace   bool
	logFile string
}

func newFlagSet(env map[string]string, v *flagValues) *pflag.FlagSet {
	fs := pflag.NewFlagSet("levocale", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.SortFlags = false
	fs.IntVar(&v.width, "width", envOrInt(env, envWidth, 0), "viewport width in cells (0 uses terminal width)")
	fs.IntVar(&v.height, "height", envOrInt(env, envHeight, 0), "viewport height in rows (0 uses terminal height)")
	fs.BoolVar(&v.footer, "footer", envOrBool(env, envShowFooter, true), "show the controls footer")
	fs.BoolVarP(&v.trace, "trace", "t", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	fs.StringVar(&v.logFile, "log-file", envOrDefault(env, envLogFile, ""), "path to the log file (default levocale.log)")
	return fs
}

// LoadArgs allows tests to supply specific args/environment. It returns
// pflag.ErrHelp when help was requested.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	var v flagValues
	fs := newFlagSet(env, &v)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if v.width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", v.width)
	}
	if v.height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", v.height)
	}

	cfg := Config{
		App: app.Config{
			Width:      v.width,
			Height:     v.height,
			ShowFooter: v.footer,
		},
		Logging: Logging{
			FilePath: v.logFile,
			Trace:    v.trace,
		},
		Flags: map[string]string{
			"width":   strconv.Itoa(v.width),
			"height":  strconv.Itoa(v.height),
			"footer":  strconv.FormatBool(v.footer),
			"trace":   strconv.FormatBool(v.trace),
			"logFile": v.logFile,
		},
		Args:       append([]string(nil), args...),
		Positional: fs.Args(),
	}

	return cfg, nil
}

// Usage returns the help text for the command line.
func Usage() string {
	var v flagValues
	fs := newFlagSet(nil, &v)
	return "Usage: levocale [flags]\n\nInteractive switcher for the system locale and keyboard layout.\n\nFlags:\n" + fs.FlagUsages()
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits. Help requests print usage and
// exit successfully.
func MustLoad() Config {
	cfg, err := Load()
	if errors.Is(err, pflag.ErrHelp) {
		fmt.Fprint(os.Stdout, Usage())
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects configurations the program cannot act on.
func Validate(cfg Config) error {
	if len(cfg.Positional) > 0 {
		return fmt.Errorf("unexpected argument %q", cfg.Positional[0])
	}
	return nil
}
