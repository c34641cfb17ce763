// Package pairkey derives the canonical key of an unordered participant pair.
package pairkey

import (
	"fmt"
	"strconv"
	"strings"
)

// Key identifies an unordered pair. Low < High always holds for keys built by Canonical.
type Key struct {
	Low  uint64
	High uint64
}

// Canonical orders two participant ids by numeric value, so Canonical(a, b) == Canonical(b, a)
// no matter which side of a race computes it.
func Canonical(a, b uint64) Key {
	if a < b {
		return Key{Low: a, High: b}
	}
	return Key{Low: b, High: a}
}

// Contains reports whether id is one of the two parties.
func (k Key) Contains(id uint64) bool {
	return k.Low == id || k.High == id
}

// Other returns the counterpart of id, or false when id is not a party.
func (k Key) Other(id uint64) (uint64, bool) {
	switch id {
	case k.Low:
		return k.High, true
	case k.High:
		return k.Low, true
	}
	return 0, false
}

// String renders "low:high". The separator cannot appear in a decimal id,
// which keeps the rendering injective.
func (k Key) String() string {
	return strconv.FormatUint(k.Low, 10) + ":" + strconv.FormatUint(k.High, 10)
}

// Parse is the inverse of String.
func Parse(s string) (Key, error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return Key{}, fmt.Errorf("invalid pair key %q", s)
	}
	a, err := strconv.ParseUint(lo, 10, 64)
	if err != nil {
		return Key{}, fmt.Errorf("invalid pair key %q: %w", s, err)
	}
	b, err := strconv.ParseUint(hi, 10, 64)
	if err != nil {
		return Key{}, fmt.Errorf("invalid pair key %q: %w", s, err)
	}
	return Canonical(a, b), nil
}
