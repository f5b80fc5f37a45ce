package lazyconf

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/randalmurphal/lazyconf/brace"
	lzerrors "github.com/randalmurphal/lazyconf/errors"
)

// Config builds a Holder wired to the usual sources, searched in this order:
//
//  1. the file named by the locFlag argument, if given (Conf)
//  2. command-line arguments (Flag)
//  3. the environment, then any WithDotEnv files (Env)
//  4. each of locs that loads (Conf)
//
// Paths may contain {VAR} references, expanded from the environment. Missing
// or unreadable files are skipped. An error is returned only when the file
// named by locFlag cannot be expanded or does not parse.
func Config(locFlag string, locs []string, opts ...Option) (*Holder, error) {
	o := newOptions(opts)
	h := newHolder(o)

	h.AddHelp(fmt.Sprintf("Config file location flag: %q\ndefault locations : %s", locFlag, quoteList(locs)))

	flags := NewFlagGetter(o.args)
	if raw, ok := flags.Get(locFlag); ok && locFlag != "" {
		path, err := brace.ReplaceLookup(raw, o.lookupEnv)
		if err != nil {
			return nil, fmt.Errorf("config location %q: %w", raw, err)
		}

		local, err := LoadLocalFS(o.fsys, path)
		switch {
		case err == nil:
			h.Add(Conf, local)
		case lzerrors.IsParse(err):
			return nil, err
		default:
			o.logger.Warn("config file not loaded",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
		}
	}

	// The flagged file is searched before every default location.
	h.Add(Flag, flags)
	h.Add(Env, NewEnvGetter(o.lookupEnv))

	for _, path := range o.dotenv {
		ef, err := LoadEnvFile(o.fsys, path)
		if err != nil {
			o.logger.Debug("dotenv file skipped",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
			continue
		}
		h.Add(Env, ef)
	}

	for _, loc := range locs {
		path, err := brace.ReplaceLookup(loc, o.lookupEnv)
		if err != nil {
			o.logger.Debug("config location skipped",
				slog.String("location", loc),
				slog.String("error", err.Error()),
			)
			continue
		}

		local, err := LoadLocalFS(o.fsys, path)
		if err != nil {
			o.logger.Debug("config file skipped",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
			continue
		}
		h.Add(Conf, local)
	}

	return h, nil
}

func quoteList(locs []string) string {
	quoted := make([]string, len(locs))
	for i, l := range locs {
		quoted[i] = strconv.Quote(l)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
