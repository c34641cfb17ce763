// Package cluster normalizes free-text localities into service-area clusters.
package cluster

import (
	_ "embed"
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// ID is a canonical service-area identifier.
type ID string

//go:embed aliases.yaml
var defaultTable []byte

type table struct {
	Clusters map[string][]string `yaml:"clusters"`
}

// Resolver maps normalized locality spellings onto cluster ids. It is immutable
// after construction and safe for concurrent use.
type Resolver struct {
	aliases map[string]ID
}

// NewResolver loads the embedded alias table.
func NewResolver() (*Resolver, error) {
	return Parse(defaultTable)
}

// MustNewResolver panics when the embedded table is malformed.
func MustNewResolver() *Resolver {
	r, err := NewResolver()
	if err != nil {
		panic(err)
	}
	return r
}

// Parse builds a Resolver from a YAML alias table. An alias listed under two
// clusters is rejected.
func Parse(data []byte) (*Resolver, error) {
	var t table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse cluster table: %w", err)
	}
	r := &Resolver{aliases: make(map[string]ID)}
	for id, aliases := range t.Clusters {
		cid := ID(id)
		// the cluster id itself is always an alias
		all := append([]string{id}, aliases...)
		for _, a := range all {
			n := Normalize(a)
			if n == "" {
				continue
			}
			if prev, ok := r.aliases[n]; ok && prev != cid {
				return nil, fmt.Errorf("alias %q maps to both %s and %s", n, prev, cid)
			}
			r.aliases[n] = cid
		}
	}
	return r, nil
}

// Resolve returns the cluster for a locality. ok is false for anything outside
// the service area; callers must reject those.
func (r *Resolver) Resolve(locality string) (ID, bool) {
	n := Normalize(locality)
	if n == "" {
		return "", false
	}
	id, ok := r.aliases[n]
	return id, ok
}

// Clusters lists every known cluster id.
func (r *Resolver) Clusters() []ID {
	seen := make(map[ID]bool)
	var out []ID
	for _, id := range r.aliases {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// Normalize lowercases, keeps the part before the first comma ("Toronto, ON"),
// drops punctuation, turns '-' and '_' into spaces and collapses whitespace.
func Normalize(s string) string {
	s = strings.ToLower(s)
	if i := strings.IndexByte(s, ','); i >= 0 {
		s = s[:i]
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '-' || r == '_':
			b.WriteRune(' ')
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
