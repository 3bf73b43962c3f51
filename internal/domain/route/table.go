// Package route provides the static route table that maps canonical
// navigation targets to builder factories.
package route

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"

	"github.com/bnema/riblet/internal/domain/rib"
)

// Params are the values extracted from a matched target: pattern variables
// first, then query values (first value per key) not shadowed by a variable.
type Params map[string]string

// Match describes a successful table lookup.
type Match struct {
	Entry     *Entry
	Target    *url.URL
	Canonical string
	Params    Params
}

// BuilderFactory returns the builder for a matched target.
type BuilderFactory func(m Match) rib.Builder

// Entry pairs a pattern with the factory producing its builder.
//
// Patterns are absolute URIs whose host, path and query values may hold
// {name} or {name:regexp} variables, e.g. "fave://item/{id:[0-9]+}" or
// "https://example.com/deals/{slug}?city={city}".
type Entry struct {
	Name    string
	Pattern string
	Factory BuilderFactory
}

// Table is an ordered, immutable route table. The first matching entry wins.
// A Table may be read from several goroutines.
type Table struct {
	entries []*Entry
	router  *mux.Router
	byRoute map[*mux.Route]*Entry
}

// NewTable compiles entries in order. It fails with a *ConfigurationError
// on the first entry that cannot be compiled.
func NewTable(entries ...Entry) (*Table, error) {
	t := &Table{
		entries: make([]*Entry, 0, len(entries)),
		router:  mux.NewRouter(),
		byRoute: make(map[*mux.Route]*Entry, len(entries)),
	}

	for i := range entries {
		entry := entries[i]
		if entry.Factory == nil {
			return nil, &ConfigurationError{Op: "compile", Pattern: entry.Pattern, Err: ErrNilFactory}
		}
		r, err := compile(t.router, entry.Pattern)
		if err != nil {
			return nil, &ConfigurationError{Op: "compile", Pattern: entry.Pattern, Err: err}
		}
		if entry.Name == "" {
			entry.Name = entry.Pattern
		}
		e := &entry
		t.entries = append(t.entries, e)
		t.byRoute[r] = e
	}

	return t, nil
}

// Match looks up a canonical target. It never mutates the table.
func (t *Table) Match(target *url.URL) (Match, bool) {
	if t == nil || target == nil || target.Scheme == "" {
		return Match{}, false
	}

	req := requestFor(target)
	var rm mux.RouteMatch
	if !t.router.Match(req, &rm) || rm.MatchErr != nil || rm.Route == nil {
		return Match{}, false
	}

	entry, ok := t.byRoute[rm.Route]
	if !ok {
		return Match{}, false
	}

	params := make(Params, len(rm.Vars))
	for k, v := range target.Query() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	for k, v := range rm.Vars {
		params[k] = v
	}

	return Match{
		Entry:     entry,
		Target:    target,
		Canonical: target.String(),
		Params:    params,
	}, true
}

// Entries returns the entries in match order.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = *e
	}
	return out
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

func compile(router *mux.Router, pattern string) (*mux.Route, error) {
	parts, err := splitPattern(pattern)
	if err != nil {
		return nil, err
	}

	r := router.NewRoute().Schemes(parts.scheme)
	if parts.host != "" {
		r = r.Host(lowerOutsideVars(parts.host))
	}
	r = r.Path(pathOrRoot(parts.path))

	if parts.query != "" {
		pairs, err := queryPairs(parts.query)
		if err != nil {
			return nil, err
		}
		r = r.Queries(pairs...)
	}

	if err := r.GetError(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return r, nil
}

type patternParts struct {
	scheme string
	host   string
	path   string
	query  string
}

// splitPattern splits "scheme://host/path?query" without url.Parse, which
// rejects braces in hosts. Separators inside {var} are ignored.
func splitPattern(pattern string) (patternParts, error) {
	pattern = strings.TrimSpace(pattern)
	scheme, rest, ok := strings.Cut(pattern, "://")
	if !ok || scheme == "" {
		return patternParts{}, fmt.Errorf("%w: expected scheme://host/path", ErrInvalidPattern)
	}
	if strings.ContainsAny(scheme, "{}/?") {
		return patternParts{}, fmt.Errorf("%w: invalid scheme %q", ErrInvalidPattern, scheme)
	}

	parts := patternParts{scheme: strings.ToLower(scheme)}
	hostEnd := indexOutsideVars(rest, "/?")
	if hostEnd < 0 {
		parts.host = rest
		return parts, nil
	}
	parts.host = rest[:hostEnd]
	rest = rest[hostEnd:]

	queryStart := indexOutsideVars(rest, "?")
	if queryStart < 0 {
		parts.path = rest
		return parts, nil
	}
	parts.path = rest[:queryStart]
	parts.query = rest[queryStart+1:]
	return parts, nil
}

func indexOutsideVars(s, chars string) int {
	depth := 0
	for i, r := range s {
		switch {
		case r == '{':
			depth++
		case r == '}' && depth > 0:
			depth--
		case depth == 0 && strings.ContainsRune(chars, r):
			return i
		}
	}
	return -1
}

// queryPairs splits the raw pattern query without unescaping braces.
func queryPairs(rawQuery string) ([]string, error) {
	var pairs []string
	for _, part := range strings.Split(rawQuery, "&") {
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		if key == "" {
			return nil, fmt.Errorf("%w: empty query key", ErrInvalidPattern)
		}
		pairs = append(pairs, key, value)
	}
	return pairs, nil
}

func requestFor(target *url.URL) *http.Request {
	u := *target
	u.Path = pathOrRoot(u.Path)
	return &http.Request{
		Method: http.MethodGet,
		URL:    &u,
		Host:   u.Host,
		Header: make(http.Header),
	}
}

func pathOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

// lowerOutsideVars lowercases a host template, leaving {var} names intact.
func lowerOutsideVars(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '{':
			depth++
		case r == '}' && depth > 0:
			depth--
		case depth == 0:
			r = toLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
