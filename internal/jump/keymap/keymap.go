// Package keymap pairs jump keys with buffer positions for one jump session.
//
// A keymap is an ordered sequence of entries. Order is significant: it is the
// left-to-right discovery order of the positions, which determines which
// candidates receive the cheaper single-character keys, and prefix filtering
// preserves it.
package keymap

import (
	"fmt"
	"strings"
)

// Entry binds one jump key to one 1-based buffer position.
type Entry struct {
	// Key is the jump key, a string of length 1 or 2.
	Key string

	// Pos is the 1-based position in the buffer.
	Pos int
}

// Keymap is an ordered collection of entries with unique keys.
type Keymap []Entry

// Build zips positions with keys element-wise, preserving order.
//
// Both slices must originate from the same target count. A length mismatch is
// an internal contract violation, not a user-facing failure, and panics.
func Build(positions []int, keys []string) Keymap {
	if len(positions) != len(keys) {
		panic(fmt.Sprintf("keymap: %d positions but %d keys", len(positions), len(keys)))
	}
	km := make(Keymap, len(positions))
	for i, pos := range positions {
		km[i] = Entry{Key: keys[i], Pos: pos}
	}
	return km
}

// FilterPrefix returns the entries whose key starts with prefix, in their
// original order. The receiver is not modified.
func (km Keymap) FilterPrefix(prefix string) Keymap {
	if prefix == "" {
		out := make(Keymap, len(km))
		copy(out, km)
		return out
	}
	out := make(Keymap, 0, len(km))
	for _, e := range km {
		if strings.HasPrefix(e.Key, prefix) {
			out = append(out, e)
		}
	}
	return out
}

// Lookup returns the entry with the given key, if present.
func (km Keymap) Lookup(key string) (Entry, bool) {
	for _, e := range km {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}

// Positions returns the positions of all entries in order.
func (km Keymap) Positions() []int {
	out := make([]int, len(km))
	for i, e := range km {
		out[i] = e.Pos
	}
	return out
}
