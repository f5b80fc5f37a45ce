// Package lazyconf resolves configuration values from command-line flags,
// environment variables and configuration files, in an order chosen per value.
//
// The package is organized around a registry of value sources:
//
//   - Holder: ordered sources, each tagged Flag, Env or Conf
//   - Grabber: a single lookup naming which tags and keys to try, in order
//   - Local: a file-backed source that resolves relative paths against the
//     file's own directory
//   - Config: bootstrap that wires flags, the environment and config files
//
// Subpackages:
//
//   - lz: the lz record format, plus YAML, TOML and HCL decoders into records
//   - brace: {VAR} substitution
//   - config: discovery of project-local and global config file locations
//   - errors: error kinds and CLI error messages
//   - testutil: test fixtures
//
// # Quick Start
//
//	cfg, err := lazyconf.Config("-c", []string{"conf/app.lz", "{HOME}/.config/app.lz"})
//	if err != nil {
//	    return err // only when -c names a malformed file
//	}
//
//	power, _ := cfg.Grab().
//	    Conf("Superman.power").
//	    Flag("-power").
//	    Env("SUPERMAN_POWER").
//	    Require("What power")
//
//	age, err := lazyconf.As[int](cfg.Grab().Conf("Superman.age"))
//
//	if cfg.Help("A program to collect superpowers") {
//	    return nil // --help was given or a required value is missing
//	}
//
// Every terminal call on a Grabber adds to the help report, so the output of
// Help lists each setting along with where it was looked for.
package lazyconf
