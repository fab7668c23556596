// Package regex implements a small backtracking regular-expression
// dialect: literals, \d, \w, ., [...] and [^...] classes, the $ anchor,
// quantifiers (?, *, +, {n}, {n,}, {n,m}), capturing groups,
// backreferences and alternation. A leading ^ anchors the whole pattern.
//
// Matching is leftmost with greedy-first backtracking and may take
// exponential time on pathological patterns; that trade-off is accepted,
// not mitigated.
package regex

import (
	"strings"
	"unicode/utf8"

	"github.com/coregx/ahocorasick"
)

// Pattern is a compiled pattern. It is immutable after Compile and may be
// shared freely across repeated Find calls; each call owns its capture
// state.
type Pattern struct {
	expr      string
	tokens    []token
	anchored  bool
	prefilter *ahocorasick.Automaton
}

// Compile parses pattern into a Pattern. The dialect has no parse errors:
// malformed constructs degrade to a best-effort pattern, so Compile
// always succeeds.
func Compile(pattern string) *Pattern {
	expr := pattern
	anchored := strings.HasPrefix(pattern, "^")
	if anchored {
		pattern = pattern[1:]
	}
	tokens := parse(pattern)
	p := &Pattern{expr: expr, tokens: tokens, anchored: anchored}
	if !anchored {
		p.prefilter = buildPrefilter(tokens)
	}
	return p
}

// Anchored reports whether the pattern is tried only at the start of the
// text (the source pattern began with ^).
func (p *Pattern) Anchored() bool { return p.anchored }

// String returns the source pattern, including any leading ^.
func (p *Pattern) String() string { return p.expr }

// MatchAt attempts a match at the very start of text and returns the
// matched length in bytes.
func (p *Pattern) MatchAt(text string) (int, bool) {
	return matchAt(p.tokens, text)
}

// Find returns the byte boundaries of the leftmost match in text.
// Anchored patterns are tried only at offset 0; otherwise every rune
// boundary is tried left to right, skipping offsets the prefilter proves
// impossible.
func (p *Pattern) Find(text string) (start, end int, ok bool) {
	if p.anchored {
		n, ok := matchAt(p.tokens, text)
		return 0, n, ok
	}
	if p.prefilter != nil {
		return p.findFiltered(text)
	}
	for i := 0; ; {
		if n, ok := matchAt(p.tokens, text[i:]); ok {
			return i, i + n, true
		}
		if i >= len(text) {
			return 0, 0, false
		}
		_, width := utf8.DecodeRuneInString(text[i:])
		i += width
	}
}

// findFiltered tries only offsets where a required literal prefix occurs.
func (p *Pattern) findFiltered(text string) (int, int, bool) {
	haystack := []byte(text)
	at := 0
	for at < len(haystack) {
		m := p.prefilter.Find(haystack, at)
		if m == nil {
			break
		}
		if n, ok := matchAt(p.tokens, text[m.Start:]); ok {
			return m.Start, m.Start + n, true
		}
		at = m.Start + 1
	}
	return 0, 0, false
}
