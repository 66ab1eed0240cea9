// Package normalize produces the canonical key form of free-text skill
// labels. Two labels that normalize to the same key are treated as the same
// skill by the matcher.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Key is the canonical form of a skill label. The empty Key is a sentinel
// for "unmatchable": callers must skip it before comparing keys.
type Key string

// Empty reports whether the key is the unmatchable sentinel.
func (k Key) Empty() bool { return k == "" }

// strippedPunctuation is the exact set of characters removed (not replaced
// with a space) during normalization. Hyphen and underscore are deliberately
// absent: hyphenated compound terms keep their spelling, so "data-entry" and
// "data entry" produce different keys.
const strippedPunctuation = `.,;:!?()[]{}'"`

// stripAccents decomposes, drops combining marks, and recomposes.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizer turns raw skill strings into Keys. The zero value applies the
// standard pipeline; options extend it.
type Normalizer struct {
	foldAccents bool
}

// New creates a Normalizer with configuration options.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Key normalizes a raw skill string. The steps run in a fixed order and each
// step feeds the next:
//
//  1. lowercase
//  2. trim leading/trailing whitespace
//  3. strip the fixed punctuation set
//  4. collapse whitespace runs to a single space
//  5. delete all remaining whitespace
//
// Step 5 makes the key spacing-invariant: "Data Entry." and "data   entry"
// both become "dataentry". That buys recall on spacing variants at the cost
// of occasionally merging distinct multi-word skills that concatenate to the
// same character sequence.
func (n *Normalizer) Key(raw string) Key {
	s := raw
	if n.foldAccents {
		if folded, _, err := transform.String(stripAccents, s); err == nil {
			s = folded
		}
	}

	s = strings.ToLower(s)
	s = strings.TrimSpace(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(strippedPunctuation, r) {
			continue
		}
		b.WriteRune(r)
	}
	s = b.String()

	fields := strings.Fields(s)
	s = strings.Join(fields, " ")

	s = strings.ReplaceAll(s, " ", "")
	return Key(s)
}
