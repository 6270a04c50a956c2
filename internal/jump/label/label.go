// Package label assigns short, prefix-free jump keys to candidate positions.
//
// Given a target count and an ordered alphabet of K characters, the assigner
// produces keys of length 1 or 2. Characters at the start of the alphabet
// become single-character keys; characters reserved from the end of the
// alphabet become two-character prefixes. Because no single key ever reuses a
// reserved prefix character, the resulting set is prefix-free: once the typed
// input equals a complete key, no other key can match a longer continuation.
package label

import (
	"errors"
	"fmt"
)

// ErrCapacityExceeded indicates the target count cannot be represented with
// keys of length 1-2 drawn from the configured alphabet.
var ErrCapacityExceeded = errors.New("target count exceeds alphabet capacity")

// Assign returns exactly n distinct jump keys drawn from alphabet.
//
// The alphabet must contain distinct characters; order matters. The first
// K-P characters become single keys, the last P characters become prefixes,
// where P is the smallest reservation count whose capacity (K-P)+P*K covers n.
// Two-character keys are emitted grouped by prefix, suffixes in alphabet
// order, and the combined sequence is truncated to n entries.
func Assign(n int, alphabet []rune) ([]string, error) {
	if n == 0 {
		return []string{}, nil
	}
	k := len(alphabet)
	if n > k*k {
		return nil, fmt.Errorf("%w: need %d keys, alphabet of %d provides at most %d", ErrCapacityExceeded, n, k, k*k)
	}

	// Smallest number of reserved prefixes whose capacity covers n. Each
	// reservation trades one single key for K two-character keys.
	prefixes := 0
	for (k-prefixes)+prefixes*k < n {
		prefixes++
	}

	keys := make([]string, 0, n)
	for _, r := range alphabet[:k-prefixes] {
		if len(keys) == n {
			return keys, nil
		}
		keys = append(keys, string(r))
	}
	for _, first := range alphabet[k-prefixes:] {
		for _, second := range alphabet {
			if len(keys) == n {
				return keys, nil
			}
			keys = append(keys, string(first)+string(second))
		}
	}
	return keys, nil
}

// Capacity returns the maximum target count representable with the given
// alphabet size.
func Capacity(alphabetSize int) int {
	return alphabetSize * alphabetSize
}
