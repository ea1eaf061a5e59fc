package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected terminal-sized viewport, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer enabled by default")
	}
	if cfg.Logging.Trace || cfg.Logging.FilePath != "" {
		t.Fatalf("expected logging defaults, got %#v", cfg.Logging)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadArgsFlags(t *testing.T) {
	args := []string{"--width", "100", "--height=30", "--footer=false", "-t", "--log-file", "/tmp/levocale.log"}
	cfg, err := LoadArgs(args, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 100 || cfg.App.Height != 30 {
		t.Fatalf("expected 100x30, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("expected footer disabled")
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/levocale.log" {
		t.Fatalf("unexpected logging config %#v", cfg.Logging)
	}
	if cfg.Flags["height"] != "30" || cfg.Flags["trace"] != "true" {
		t.Fatalf("unexpected flag snapshot %#v", cfg.Flags)
	}
	if len(cfg.Args) != len(args) {
		t.Fatalf("expected raw args to be kept, got %v", cfg.Args)
	}
}

func TestLoadArgsEnvironment(t *testing.T) {
	env := []string{
		"LEVOCALE_WIDTH=90",
		"LEVOCALE_HEIGHT= 20 ",
		"LEVOCALE_FOOTER=0",
		"LEVOCALE_TRACE=true",
		"LEVOCALE_LOG_FILE=/var/tmp/l.log",
		"IGNORED",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 90 || cfg.App.Height != 20 || cfg.App.ShowFooter {
		t.Fatalf("unexpected app config %#v", cfg.App)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/var/tmp/l.log" {
		t.Fatalf("unexpected logging config %#v", cfg.Logging)
	}

	cfg, err = LoadArgs([]string{"--width", "70"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 70 {
		t.Fatalf("expected flag to override environment, got %d", cfg.App.Width)
	}
}

func TestLoadArgsIgnoresMalformedEnvironment(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"LEVOCALE_WIDTH=wide", "LEVOCALE_FOOTER=maybe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || !cfg.App.ShowFooter {
		t.Fatalf("expected defaults for malformed values, got %#v", cfg.App)
	}
}

func TestLoadArgsRejectsNegativeSizes(t *testing.T) {
	if _, err := LoadArgs([]string{"--width=-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"--height", "-4"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestLoadArgsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"--socket", "x"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestLoadArgsHelp(t *testing.T) {
	_, err := LoadArgs([]string{"--help"}, nil)
	if !errors.Is(err, pflag.ErrHelp) {
		t.Fatalf("expected pflag.ErrHelp, got %v", err)
	}
	usage := Usage()
	for _, want := range []string{"--width", "--footer", "--log-file"} {
		if !strings.Contains(usage, want) {
			t.Fatalf("expected %s in usage:\n%s", want, usage)
		}
	}
}

func TestValidateRejectsPositionalArgs(t *testing.T) {
	cfg, err := LoadArgs([]string{"extra"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected positional argument to be rejected")
	}
}
