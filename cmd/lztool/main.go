// Command lztool reports on lz configuration files: record counts, summed
// attributes, single lookups and record listings.
//
// Usage:
//
//	lztool [-f FILE...] [FILE...] [-c KEY] [-get Record.key] [-list] [-format text|json|yaml]
//
// Options may also come from a config file given with --config, or from
// .lztool.lz in the git root or {HOME}/.config/lztool/config.lz, in a record
// named "lztool" (count, format).
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/randalmurphal/lazyconf/config"
	lzerrors "github.com/randalmurphal/lazyconf/errors"
)

func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:], env.ToMap(os.Environ())); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the program logic so tests can drive it with their own streams,
// arguments and environment.
func run(stdout, stderr io.Writer, args []string, environ map[string]string) error {
	settings, err := loadLogSettings(environ)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	logger, err := newLogger(stderr, settings)
	if err != nil {
		return err
	}

	resolver := config.NewResolver(config.ResolverConfig{
		GlobalConfigDir: "lztool",
		LocalConfigName: ".lztool.lz",
		LookupEnv:       lookupIn(environ),
		ErrWriter:       stderr,
	})

	opts, shouldExit, err := parseArgs(args, resolver.Paths(), environ, stdout, logger)
	if err != nil {
		return toExitError(err)
	}
	if shouldExit {
		return nil
	}

	files, err := loadFiles(opts.Files, logger)
	if err != nil {
		return toExitError(err)
	}

	rep := buildReport(files, opts)
	return render(stdout, rep, opts.Format, isTTYWriter(stdout))
}

// toExitError turns library errors into a runtime failure with a readable message.
func toExitError(err error) error {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &ExitError{Code: 1, Message: lzerrors.Wrap(err).Error()}
}

func lookupIn(environ map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := environ[key]
		return v, ok
	}
}
