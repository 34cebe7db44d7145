// Package nameparse extracts brand, base-product, and flavor tokens from
// free-text product names. Extraction is anchored on a priority-ordered
// list of known product-type phrases and degrades to positional token
// splits when nothing matches; it never fails on arbitrary input.
package nameparse

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// packSuffixRe matches a trailing parenthetical pack annotation such as
// "(4ct)", "(12 pack)", or "(8)".
var packSuffixRe = regexp.MustCompile(`\s*\(\s*\d+\s*[A-Za-z]*\s*\)\s*$`)

// DefaultPhrases returns the built-in product-type phrase list.
// Multi-word phrases come before the single words they contain so that
// e.g. "protein bar" is matched before "bar".
func DefaultPhrases() []string {
	return []string{
		"protein pastry",
		"protein chips",
		"protein cookie",
		"protein shake",
		"protein powder",
		"protein puffs",
		"protein bar",
		"energy drink",
		"energy bar",
		"granola bar",
		"meal replacement",
		"rice cakes",
		"trail mix",
		"bar",
		"bars",
		"chips",
		"cookie",
		"cookies",
		"crisps",
		"crackers",
		"gummies",
		"jerky",
		"pastry",
		"popcorn",
		"powder",
		"pretzels",
		"puffs",
		"shake",
	}
}

// Tokens holds the segments extracted from one product name.
type Tokens struct {
	Brand  string
	Base   string
	Flavor string
}

// Tokenizer segments product names against a fixed phrase list.
type Tokenizer struct {
	phrases []string
}

// New creates a Tokenizer for the given phrase list. Phrases are matched
// longest-first regardless of input order; a nil or empty list falls back
// to DefaultPhrases.
func New(phrases []string) *Tokenizer {
	if len(phrases) == 0 {
		phrases = DefaultPhrases()
	}

	sorted := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			sorted = append(sorted, p)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})

	return &Tokenizer{phrases: sorted}
}

// Tokenize splits a product name into brand, base, and flavor segments.
//
// The trailing pack annotation is stripped first, then the longest
// matching product-type phrase anchors the split: base is everything
// through the phrase, flavor is everything after it. With no phrase
// match, base is the first two whitespace tokens and flavor the rest.
// Brand is always the first token of the original name.
func (t *Tokenizer) Tokenize(name string) Tokens {
	name = strings.TrimSpace(name)
	if name == "" {
		return Tokens{}
	}

	var tok Tokens
	tok.Brand = strings.Fields(name)[0]

	stripped := strings.TrimSpace(packSuffixRe.ReplaceAllString(name, ""))
	if stripped == "" {
		stripped = name
	}

	if end, ok := t.matchPhrase(stripped); ok {
		tok.Base = strings.TrimSpace(stripped[:end])
		tok.Flavor = strings.TrimSpace(stripped[end:])
		return tok
	}

	fields := strings.Fields(stripped)
	if len(fields) <= 2 {
		tok.Base = strings.Join(fields, " ")
		return tok
	}
	tok.Base = strings.Join(fields[:2], " ")
	tok.Flavor = strings.Join(fields[2:], " ")
	return tok
}

// matchPhrase finds the first phrase (longest phrases attempted first)
// occurring in s on word boundaries and returns the byte offset just
// past the match.
func (t *Tokenizer) matchPhrase(s string) (end int, ok bool) {
	lower := strings.ToLower(s)
	for _, phrase := range t.phrases {
		idx := indexWord(lower, phrase)
		if idx >= 0 {
			return idx + len(phrase), true
		}
	}
	return 0, false
}

// indexWord returns the index of the first word-boundary occurrence of
// phrase in s, or -1. Both arguments must already be lowercased.
func indexWord(s, phrase string) int {
	from := 0
	for {
		idx := strings.Index(s[from:], phrase)
		if idx < 0 {
			return -1
		}
		idx += from

		if boundedAt(s, idx, idx+len(phrase)) {
			return idx
		}
		from = idx + 1
		if from >= len(s) {
			return -1
		}
	}
}

func boundedAt(s string, start, end int) bool {
	if start > 0 {
		r := rune(s[start-1])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	if end < len(s) {
		r := rune(s[end])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// DisplayName composes the human-readable family name from its segments,
// e.g. "Legendary Foods Protein Pastry Cherry Crumble (4ct)". The brand
// segment is omitted when the base name already starts with it, so
// "Clif" + "Clif Builders Bar" does not double the brand.
func DisplayName(brand, base, flavor string, packCount *int, packUnit *string) string {
	parts := make([]string, 0, 4)

	brand = strings.TrimSpace(brand)
	base = strings.TrimSpace(base)
	flavor = strings.TrimSpace(flavor)

	if brand != "" && !hasBrandPrefix(base, brand) {
		parts = append(parts, brand)
	}
	if base != "" {
		parts = append(parts, base)
	}
	if flavor != "" {
		parts = append(parts, flavor)
	}
	if packCount != nil {
		unit := "ct"
		if packUnit != nil && *packUnit != "" {
			unit = *packUnit
		}
		parts = append(parts, fmt.Sprintf("(%d%s)", *packCount, unit))
	}

	if len(parts) == 0 {
		return "Unknown product"
	}
	return strings.Join(parts, " ")
}

func hasBrandPrefix(base, brand string) bool {
	if len(base) < len(brand) {
		return false
	}
	return strings.EqualFold(base[:len(brand)], brand)
}
