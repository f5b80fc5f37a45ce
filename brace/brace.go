// Package brace expands {...} placeholders in strings.
//
// Expansion is recursive and innermost-first: in "{a{b}c}" the resolver is
// first called with "b", its result is spliced into the outer span, and the
// resolver is then called with the assembled outer text. A backslash copies
// the next character literally, so "\{" and "\}" never open or close a span.
//
//	home, err := brace.ReplaceEnv("{HOME}/.config/app.lz")
package brace

import (
	"os"
	"strings"

	lzerrors "github.com/randalmurphal/lazyconf/errors"
)

// Resolver maps the expanded text of one {...} span to its replacement.
type Resolver func(string) (string, error)

// Replace expands every {...} span in s using f.
func Replace(s string, f Resolver) (string, error) {
	sc := &scanner{runes: []rune(s)}
	return sc.replace(f, 0)
}

// ReplaceSimple expands s with a resolver that cannot fail.
func ReplaceSimple(s string, f func(string) string) (string, error) {
	return Replace(s, func(v string) (string, error) {
		return f(v), nil
	})
}

// ReplaceLookup expands s, resolving each span through lookup.
// A span lookup does not know fails with ErrEnvVar.
func ReplaceLookup(s string, lookup func(string) (string, bool)) (string, error) {
	return Replace(s, func(name string) (string, error) {
		v, ok := lookup(name)
		if !ok {
			return "", lzerrors.EnvVarError(name)
		}
		return v, nil
	})
}

// ReplaceEnv expands s, resolving each span as an environment variable.
func ReplaceEnv(s string) (string, error) {
	return ReplaceLookup(s, os.LookupEnv)
}

// scanner holds the cursor shared by every level of the recursion.
type scanner struct {
	runes []rune
	pos   int
}

func (sc *scanner) next() (rune, bool) {
	if sc.pos >= len(sc.runes) {
		return 0, false
	}
	r := sc.runes[sc.pos]
	sc.pos++
	return r, true
}

func (sc *scanner) replace(f Resolver, depth int) (string, error) {
	var res strings.Builder
	for {
		c, ok := sc.next()
		if !ok {
			break
		}
		switch c {
		case '\\':
			esc, ok := sc.next()
			if !ok {
				return "", lzerrors.ErrUnterminatedEscape
			}
			res.WriteRune(esc)
		case '{':
			inner, err := sc.replace(f, depth+1)
			if err != nil {
				return "", err
			}
			rep, err := f(inner)
			if err != nil {
				return "", err
			}
			res.WriteString(rep)
		case '}':
			if depth == 0 {
				return "", lzerrors.ErrUnbalancedBrace
			}
			return res.String(), nil
		default:
			res.WriteRune(c)
		}
	}
	if depth > 0 {
		return "", lzerrors.ErrUnbalancedBrace
	}
	return res.String(), nil
}
