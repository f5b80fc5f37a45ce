package lazyconf

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/randalmurphal/lazyconf/brace"
)

type entry struct {
	tag Tag
	src Getable
}

// Holder is an ordered registry of tagged sources. It also accumulates the
// help report and the list of missing required values.
//
// Sources must all be added before the Holder is shared. The help and
// failure buffers are safe for concurrent use.
type Holder struct {
	entries []entry

	lookupEnv func(string) (string, bool)
	logger    *slog.Logger
	out       io.Writer

	mu    sync.Mutex
	help  strings.Builder
	fails strings.Builder
}

// NewHolder creates an empty Holder. WithLookupEnv, WithLogger and WithOutput
// apply; other options are ignored.
func NewHolder(opts ...Option) *Holder {
	return newHolder(newOptions(opts))
}

func newHolder(o options) *Holder {
	return &Holder{
		lookupEnv: o.lookupEnv,
		logger:    o.logger,
		out:       o.out,
	}
}

// Add registers a source under tag. Sources are searched in the order they
// were added.
func (h *Holder) Add(tag Tag, g Getable) {
	h.entries = append(h.entries, entry{tag: tag, src: g})
	h.logger.Debug("source registered",
		slog.String("tag", tag.String()),
		slog.Int("index", len(h.entries)-1),
	)
}

// Get returns the value for key from the first source tagged tag that has it.
func (h *Holder) Get(tag Tag, key string) (string, bool) {
	for _, e := range h.entries {
		if e.tag != tag {
			continue
		}
		if v, ok := e.src.Get(key); ok {
			return v, true
		}
	}
	return "", false
}

// GetLocal is Get for path values. The value has {VAR} references expanded
// and is then localized by the source that supplied it. If expansion fails
// the raw value is localized instead.
func (h *Holder) GetLocal(tag Tag, key string) (string, bool) {
	for _, e := range h.entries {
		if e.tag != tag {
			continue
		}
		v, ok := e.src.Get(key)
		if !ok {
			continue
		}
		expanded, err := brace.ReplaceLookup(v, h.lookupEnv)
		if err != nil {
			h.logger.Debug("path not expanded",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
			return localize(e.src, v), true
		}
		return localize(e.src, expanded), true
	}
	return "", false
}

// IsPresent reports whether any source tagged tag knows key.
func (h *Holder) IsPresent(tag Tag, key string) bool {
	for _, e := range h.entries {
		if e.tag == tag && isPresent(e.src, key) {
			return true
		}
	}
	return false
}

// Len returns the number of registered sources.
func (h *Holder) Len() int {
	return len(h.entries)
}

// Tags returns the tag of each registered source, in search order.
func (h *Holder) Tags() []Tag {
	tags := make([]Tag, len(h.entries))
	for i, e := range h.entries {
		tags[i] = e.tag
	}
	return tags
}

// AddHelp appends a line to the help report.
func (h *Holder) AddHelp(s string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.help.WriteString(s)
	h.help.WriteByte('\n')
}

// AddFail records a missing required value.
func (h *Holder) AddFail(s string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fails.WriteString(s)
	h.fails.WriteByte('\n')
	h.logger.Debug("required value missing", slog.String("entry", s))
}

// HelpMessage returns the accumulated help text.
func (h *Holder) HelpMessage() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.help.String()
}

// Failures returns the accumulated failure text, empty when nothing failed.
func (h *Holder) Failures() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.fails.String()
}

// HelpString builds the report: the banner, any missing values, then the
// help for every setting that was asked for.
func (h *Holder) HelpString(banner string) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.fails.Len() > 0 {
		return banner + "\nMissing:\n" + h.fails.String() + "\n" + h.help.String()
	}
	return banner + "\n" + h.help.String() + "\n"
}

// Help writes the report when "--help" was passed as a flag or a required
// value is missing, and reports whether it did.
func (h *Holder) Help(banner string) bool {
	if !h.IsPresent(Flag, "--help") && h.Failures() == "" {
		return false
	}
	fmt.Fprintln(h.out, h.HelpString(banner))
	return true
}

// Grab starts a lookup against h.
func (h *Holder) Grab() *Grabber {
	return &Grabber{h: h}
}
