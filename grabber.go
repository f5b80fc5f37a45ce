package lazyconf

import (
	"fmt"
	"strings"
)

type want struct {
	tag Tag
	key string
}

// Grabber describes one configuration lookup: a list of (tag, key)
// candidates tried in the order they were added. Candidate order decides
// priority, not the order sources were registered.
//
// A Grabber is single use. After a terminal method (IsPresent, Value,
// Resolve, Path, Require, As, RequireAs) any further call panics.
type Grabber struct {
	h      *Holder
	wants  []want
	closed bool
}

// Resolved is a value together with the candidate that produced it.
type Resolved struct {
	Value string
	Tag   Tag
	Key   string
}

// Flag adds a command-line flag candidate.
func (g *Grabber) Flag(key string) *Grabber {
	return g.add(Flag, key)
}

// Env adds an environment variable candidate.
func (g *Grabber) Env(key string) *Grabber {
	return g.add(Env, key)
}

// Conf adds a config file candidate, usually "Record.attribute".
func (g *Grabber) Conf(key string) *Grabber {
	return g.add(Conf, key)
}

func (g *Grabber) add(tag Tag, key string) *Grabber {
	g.check(tag.String())
	g.wants = append(g.wants, want{tag: tag, key: key})
	return g
}

func (g *Grabber) check(op string) {
	if g.closed {
		panic(fmt.Sprintf("lazyconf: Grabber.%s called after the lookup was consumed", op))
	}
}

func (g *Grabber) close(op string) {
	g.check(op)
	g.closed = true
}

// IsPresent reports whether any candidate is present.
func (g *Grabber) IsPresent() bool {
	g.close("IsPresent")
	for _, w := range g.wants {
		if g.h.IsPresent(w.tag, w.key) {
			return true
		}
	}
	return false
}

// Value returns the first candidate value found. A value that is present but
// empty counts as found.
func (g *Grabber) Value() (string, bool) {
	g.close("Value")
	r, ok := g.resolve()
	return r.Value, ok
}

// Resolve is Value plus the tag and key that produced the value.
func (g *Grabber) Resolve() (Resolved, bool) {
	g.close("Resolve")
	return g.resolve()
}

func (g *Grabber) resolve() (Resolved, bool) {
	for _, w := range g.wants {
		if v, ok := g.h.Get(w.tag, w.key); ok {
			return Resolved{Value: v, Tag: w.tag, Key: w.key}, true
		}
	}
	return Resolved{}, false
}

// Path returns the first candidate value as a path: {VAR} references are
// expanded and relative paths resolved against the supplying file.
func (g *Grabber) Path() (string, bool) {
	g.close("Path")
	for _, w := range g.wants {
		if v, ok := g.h.GetLocal(w.tag, w.key); ok {
			return v, true
		}
	}
	return "", false
}

// Require is Value for a mandatory setting. The candidates are added to the
// help report under label when found, and to the failures otherwise.
func (g *Grabber) Require(label string) (string, bool) {
	g.close("Require")
	hs := g.helpString(label)
	r, ok := g.resolve()
	if !ok {
		g.h.AddFail(hs)
		return "", false
	}
	g.h.AddHelp(hs)
	return r.Value, true
}

// Help adds the candidates to the help report under label. The lookup stays
// open.
func (g *Grabber) Help(label string) *Grabber {
	g.check("Help")
	g.h.AddHelp(g.helpString(label))
	return g
}

// HelpString returns the help entry for the candidates added so far.
func (g *Grabber) HelpString(label string) string {
	g.check("HelpString")
	return g.helpString(label)
}

func (g *Grabber) helpString(label string) string {
	var b strings.Builder
	b.WriteString(label)
	b.WriteString(":\n")
	for _, w := range g.wants {
		fmt.Fprintf(&b, "\t%s:%s,", w.tag, w.key)
	}
	return b.String()
}

func (g *Grabber) notFound() error {
	keys := make([]string, len(g.wants))
	for i, w := range g.wants {
		keys[i] = w.tag.String() + ":" + w.key
	}
	return fmt.Errorf("%w: %s", ErrNotFound, strings.Join(keys, ", "))
}

// As returns the first candidate value converted to T. It fails with
// ErrNotFound when no candidate has a value and ErrTypeParse when the value
// does not convert.
func As[T any](g *Grabber) (T, error) {
	g.close("As")
	r, ok := g.resolve()
	if !ok {
		var zero T
		return zero, g.notFound()
	}
	return parseAs[T](r.Value)
}

// RequireAs is As for a mandatory setting. A missing or unconvertible value
// is recorded as a failure; otherwise the candidates are added to the help
// report.
func RequireAs[T any](g *Grabber, label string) (T, error) {
	g.close("RequireAs")
	hs := g.helpString(label)

	var (
		v   T
		err error
	)
	if r, ok := g.resolve(); ok {
		v, err = parseAs[T](r.Value)
	} else {
		err = g.notFound()
	}

	if err != nil {
		g.h.AddFail(hs)
		return v, err
	}
	g.h.AddHelp(hs)
	return v, nil
}
