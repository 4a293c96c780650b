package cli

import (
	"errors"
	"flag"
	"io"
	"strings"
	"time"

	"chemfetch/internal/app"
	"chemfetch/internal/config"
	"chemfetch/internal/output"
	"chemfetch/internal/pubchem"
)

type ExitError struct {
	Code int
	Err  error
}

func (e ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "error"
}

// Usage is the message printed when no compound name is supplied.
func Usage() string {
	return strings.TrimSpace(`
Usage: chemfetch [flags] <compound_name>

Resolves a compound name against the PubChem PUG REST API and prints
CAS number, IUPAC name, and Isomeric SMILES as one tab-delimited line.

Flags:
  -base-url     Override the API root URL
  -timeout      Per-request timeout in seconds (default 10)
  -user-agent   User-Agent header for API requests
  -format       Output format: tsv|json (default tsv)
  -config       Path to JSON config file
  -init-config  Interactive config wizard
  -i            Prompt for the compound name interactively

Example: chemfetch ethanol`)
}

// ParseArgs turns command-line arguments into app options. The second return
// value is true when the config wizard was requested.
func ParseArgs(args []string) (app.Options, bool, error) {
	parsed, err := parseFlags(args)
	if err != nil {
		return app.Options{}, false, ExitError{Code: 2, Err: err}
	}
	if parsed.initConfig {
		return app.Options{}, true, nil
	}

	cfg, err := loadConfig(parsed.configStr)
	if err != nil {
		return app.Options{}, false, err
	}

	applyConfigDefaults(&parsed, cfg)
	return buildOptions(parsed)
}

type parsedFlags struct {
	name        string
	configStr   string
	initConfig  bool
	interactive bool
	baseURL     stringFlag
	timeout     intFlag
	userAgent   stringFlag
	format      stringFlag
}

func parseFlags(args []string) (parsedFlags, error) {
	fs := flag.NewFlagSet("chemfetch", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	parsed := parsedFlags{}

	fs.StringVar(&parsed.configStr, "config", "", "Path to JSON config file")
	fs.BoolVar(&parsed.initConfig, "init-config", false, "Interactive config wizard")
	fs.BoolVar(&parsed.interactive, "i", false, "Prompt for the compound name interactively")
	fs.Var(&parsed.baseURL, "base-url", "Override the API root URL")
	parsed.timeout.Value = 10
	fs.Var(&parsed.timeout, "timeout", "Per-request timeout seconds")
	fs.Var(&parsed.userAgent, "user-agent", "User-Agent header")
	parsed.format.Value = string(output.FormatTSV)
	fs.Var(&parsed.format, "format", "Output format: tsv|json")

	if err := fs.Parse(args); err != nil {
		return parsed, err
	}

	parsed.name = strings.TrimSpace(fs.Arg(0))
	return parsed, nil
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		path = config.FindDefault()
	}
	if path == "" {
		return config.Config{}, nil
	}
	return config.Load(path)
}

func applyConfigDefaults(parsed *parsedFlags, cfg config.Config) {
	applyBaseURL(parsed, cfg)
	applyTimeout(parsed, cfg)
	applyUserAgent(parsed, cfg)
	applyFormat(parsed, cfg)
}

func applyBaseURL(parsed *parsedFlags, cfg config.Config) {
	if !parsed.baseURL.WasSet && cfg.BaseURL != "" {
		parsed.baseURL.Value = cfg.BaseURL
	}
}

func applyTimeout(parsed *parsedFlags, cfg config.Config) {
	if !parsed.timeout.WasSet && cfg.TimeoutSeconds > 0 {
		parsed.timeout.Value = cfg.TimeoutSeconds
	}
}

func applyUserAgent(parsed *parsedFlags, cfg config.Config) {
	if !parsed.userAgent.WasSet && cfg.UserAgent != "" {
		parsed.userAgent.Value = cfg.UserAgent
	}
}

func applyFormat(parsed *parsedFlags, cfg config.Config) {
	if !parsed.format.WasSet && cfg.Format != "" {
		parsed.format.Value = cfg.Format
	}
}

func buildOptions(parsed parsedFlags) (app.Options, bool, error) {
	format := output.Format(strings.ToLower(strings.TrimSpace(parsed.format.Value)))
	if !output.Valid(format) {
		return app.Options{}, false, ExitError{Code: 2, Err: errors.New("format must be tsv or json")}
	}
	if parsed.timeout.Value <= 0 {
		return app.Options{}, false, ExitError{Code: 2, Err: errors.New("timeout must be positive")}
	}

	baseURL := parsed.baseURL.Value
	if baseURL == "" {
		baseURL = pubchem.DefaultBaseURL
	}

	opts := app.Options{
		Name:        parsed.name,
		BaseURL:     baseURL,
		Timeout:     time.Duration(parsed.timeout.Value) * time.Second,
		UserAgent:   parsed.userAgent.Value,
		Format:      format,
		Interactive: parsed.interactive,
	}
	return opts, false, nil
}
