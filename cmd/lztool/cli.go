package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/randalmurphal/lazyconf"
	lzerrors "github.com/randalmurphal/lazyconf/errors"
)

const banner = "lztool - get info about lz files"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// cliOptions are the resolved settings for one run.
type cliOptions struct {
	Files  []string
	Count  string
	Get    string
	List   bool
	Format string
}

var (
	valueFlags = map[string]bool{"-c": true, "-get": true, "-format": true, "--config": true}
	boolFlags  = map[string]bool{"-list": true, "--help": true}
)

// logSettings configures the tool's own logging.
type logSettings struct {
	Level  string `env:"LZTOOL_LOG_LEVEL" envDefault:"warn"`
	Format string `env:"LZTOOL_LOG_FORMAT" envDefault:"text"`
}

func loadLogSettings(environ map[string]string) (logSettings, error) {
	var s logSettings
	if err := env.ParseWithOptions(&s, env.Options{Environment: environ}); err != nil {
		return logSettings{}, fmt.Errorf("reading log settings: %w", err)
	}
	return s, nil
}

func newLogger(w io.Writer, s logSettings) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.Level)); err != nil {
		return nil, &ExitError{Code: 2, Message: fmt.Sprintf("invalid LZTOOL_LOG_LEVEL %q: must be 'debug', 'info', 'warn', or 'error'", s.Level)}
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(s.Format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, &ExitError{Code: 2, Message: fmt.Sprintf("invalid LZTOOL_LOG_FORMAT %q: must be 'text' or 'json'", s.Format)}
	}
}

// positionalArgs returns the arguments that are neither flags nor flag
// values, rejecting unknown flags.
func positionalArgs(args []string) ([]string, error) {
	var positional []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "-f":
			for i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++
			}
		case valueFlags[a]:
			if i+1 >= len(args) {
				return nil, &ExitError{Code: 2, Message: "flag needs an argument: " + a}
			}
			i++
		case boolFlags[a]:
		case strings.HasPrefix(a, "-"):
			return nil, &ExitError{Code: 2, Message: "flag provided but not defined: " + a}
		default:
			positional = append(positional, a)
		}
	}
	return positional, nil
}

// parseArgs resolves the tool's options through a lazyconf Holder. It returns
// shouldExit when the help report was printed.
func parseArgs(args, locations []string, environ map[string]string, out io.Writer, logger *slog.Logger) (*cliOptions, bool, error) {
	positional, err := positionalArgs(args)
	if err != nil {
		return nil, false, err
	}

	h, err := lazyconf.Config("--config", locations,
		lazyconf.WithArgs(args...),
		lazyconf.WithLookupEnv(lookupIn(environ)),
		lazyconf.WithLogger(logger),
		lazyconf.WithOutput(out),
	)
	if err != nil {
		return nil, false, err
	}

	opts := &cliOptions{}

	files, _ := lazyconf.NewFlagGetter(args).GetAll("-f")
	opts.Files = append(files, positional...)
	fileLookup := h.Grab().Flag("-f")
	if len(opts.Files) == 0 {
		h.AddFail(fileLookup.HelpString("Files to read (-f FILE... or positional)"))
	} else {
		fileLookup.Help("Files to read (-f FILE... or positional)")
	}

	opts.Count, _ = h.Grab().
		Flag("-c").
		Conf("lztool.count").
		Help("Attribute to sum across records").
		Value()

	opts.Get, _ = h.Grab().
		Flag("-get").
		Help("Record.key to look up").
		Value()

	opts.List = h.Grab().
		Flag("-list").
		Help("List every record").
		IsPresent()

	format, ok := h.Grab().
		Flag("-format").
		Env("LZTOOL_FORMAT").
		Conf("lztool.format").
		Help("Output format: text, json or yaml").
		Value()
	if !ok {
		format = "text"
	}
	opts.Format = strings.ToLower(format)

	if h.Help(banner) {
		if failures := h.Failures(); failures != "" {
			return nil, false, &ExitError{Code: 2, Message: lzerrors.NewMissingValuesError(failures).Error()}
		}
		return nil, true, nil
	}

	switch opts.Format {
	case "text", "json", "yaml":
	default:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid format %q: must be 'text', 'json' or 'yaml'", format)}
	}

	logger.Debug("options resolved",
		slog.Int("files", len(opts.Files)),
		slog.String("count", opts.Count),
		slog.String("format", opts.Format),
	)
	return opts, false, nil
}
