// Package overlay computes the visual state of a jump session.
//
// The computation is a pure function of the buffer, the typed key prefix, and
// the live keymap. It produces the replacement text the renderer should show
// and the styled spans covering it. Nothing here touches a screen or holds
// state between calls.
package overlay

import (
	"strings"

	"github.com/dshills/jumpline/internal/jump/keymap"
)

// Tag classifies a span for styling. The renderer maps tags to concrete
// styles; the engine never interprets them.
type Tag uint8

const (
	// TagDim marks buffer text that is not part of any jump key.
	TagDim Tag = iota

	// TagPrimary marks a single-character jump key.
	TagPrimary

	// TagSecondary marks the first character of a two-character jump key.
	TagSecondary

	// TagTertiary marks the second character of a two-character jump key.
	TagTertiary
)

// String returns the tag name.
func (t Tag) String() string {
	switch t {
	case TagDim:
		return "dim"
	case TagPrimary:
		return "primary"
	case TagSecondary:
		return "secondary"
	case TagTertiary:
		return "tertiary"
	default:
		return "unknown"
	}
}

// Span is a tagged range of runes in the replacement text.
// Start is 0-based inclusive, End exclusive.
type Span struct {
	Start int
	End   int
	Tag   Tag
}

// Overlay is the computed visual state: the replacement text and the spans
// covering every rune of it exactly once.
type Overlay struct {
	Text  string
	Spans []Span
}

// Compute derives the overlay for the given buffer, typed prefix, and live
// keymap. Every entry key is expected to start with typed; the remaining
// characters of each key are drawn over the buffer at the entry position.
// Keys that would run past the end of the buffer extend the text.
func Compute(buffer, typed string, km keymap.Keymap) Overlay {
	runes := []rune(buffer)
	tags := make([]Tag, len(runes))

	for _, e := range km {
		displayed := strings.TrimPrefix(e.Key, typed)
		col := e.Pos - 1
		for i, r := range displayed {
			at := col + i
			for at >= len(runes) {
				runes = append(runes, ' ')
				tags = append(tags, TagDim)
			}
			runes[at] = r
			tags[at] = keyTag(len(displayed), i)
		}
	}

	return Overlay{
		Text:  string(runes),
		Spans: compress(tags),
	}
}

// keyTag returns the tag for character i of a displayed key of length n.
func keyTag(n, i int) Tag {
	if n == 1 {
		return TagPrimary
	}
	if i == 0 {
		return TagSecondary
	}
	return TagTertiary
}

// compress folds a per-rune tag array into maximal runs of equal tags.
func compress(tags []Tag) []Span {
	spans := []Span{}
	for i := 0; i < len(tags); {
		j := i + 1
		for j < len(tags) && tags[j] == tags[i] {
			j++
		}
		spans = append(spans, Span{Start: i, End: j, Tag: tags[i]})
		i = j
	}
	return spans
}
