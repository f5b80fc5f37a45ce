package lazyconf

import (
	"io"
	"log/slog"
	"os"
)

// Option configures a Holder or the Config bootstrap.
type Option func(*options)

type options struct {
	args      []string
	lookupEnv func(string) (string, bool)
	fsys      FileSystem
	logger    *slog.Logger
	out       io.Writer
	dotenv    []string
}

func newOptions(opts []Option) options {
	o := options{
		args:      os.Args[1:],
		lookupEnv: os.LookupEnv,
		fsys:      OSFS{},
		out:       os.Stdout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// WithArgs sets the command-line arguments read by the flag source.
// Defaults to os.Args[1:].
func WithArgs(args ...string) Option {
	return func(o *options) {
		o.args = args
	}
}

// WithLookupEnv sets the environment lookup used for Env sources and {VAR}
// expansion. Defaults to os.LookupEnv.
func WithLookupEnv(lookup func(string) (string, bool)) Option {
	return func(o *options) {
		if lookup != nil {
			o.lookupEnv = lookup
		}
	}
}

// WithFS sets the file system config files are read from.
func WithFS(fsys FileSystem) Option {
	return func(o *options) {
		if fsys != nil {
			o.fsys = fsys
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithOutput sets where Help writes its report. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// WithDotEnv registers dotenv files as Env sources after the process
// environment. Missing files are skipped.
func WithDotEnv(paths ...string) Option {
	return func(o *options) {
		o.dotenv = append(o.dotenv, paths...)
	}
}
