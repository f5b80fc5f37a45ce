package lazyconf

import "fmt"

// Tag classifies a registered source.
type Tag int

const (
	// Flag marks command-line argument sources.
	Flag Tag = iota
	// Env marks environment variable sources.
	Env
	// Conf marks configuration file sources.
	Conf
)

// String returns the name used in help text.
func (t Tag) String() string {
	switch t {
	case Flag:
		return "Flag"
	case Env:
		return "Env"
	case Conf:
		return "Conf"
	default:
		return fmt.Sprintf("Tag(%d)", int(t))
	}
}
