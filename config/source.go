package config

// Source indicates which layer a config location belongs to.
type Source string

// Configuration source constants.
const (
	// SourceLocal indicates project config in the git root
	// (e.g., .myapp.lz).
	SourceLocal Source = "local"

	// SourceGlobal indicates per-user config
	// (e.g., {HOME}/.config/<app>/config.lz).
	SourceGlobal Source = "global"

	// SourceDefault indicates an extra location supplied by the application.
	SourceDefault Source = "default"

	// SourceFlag indicates a location given on the command line.
	SourceFlag Source = "flag"
)
