package regex

import (
	"strings"
	"unicode/utf8"
)

// captureSet maps a capturing-group id to the text that group captured
// during the current match attempt. Speculative branches work on a clone
// and commit it back only when the whole continuation succeeds, so a
// failed alternative never leaks captures into a sibling attempt.
type captureSet map[int]string

func (c captureSet) clone() captureSet {
	out := make(captureSet, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// matchesRune reports whether a single-character token accepts c.
func matchesRune(t token, c rune) bool {
	switch t := t.(type) {
	case wildcardToken:
		return true
	case literalToken:
		return c == t.char
	case digitToken:
		return c >= '0' && c <= '9'
	case wordToken:
		return c >= 'a' && c <= 'z' ||
			c >= 'A' && c <= 'Z' ||
			c >= '0' && c <= '9' ||
			c == '_'
	case charClassToken:
		return t.set[c] != t.negated
	default:
		return false // zero-width tokens never consume a character
	}
}

// matchAt attempts a match anchored at the start of text and returns the
// matched length in bytes. A miss is a normal negative result, never an
// error.
func matchAt(tokens []token, text string) (int, bool) {
	caps := make(captureSet)
	return matchHere(tokens, text, &caps)
}

// matchHere matches tokens against a prefix of text and returns the number
// of bytes consumed. caps reflects committed captures only: every
// speculative path runs on its own clone.
func matchHere(tokens []token, text string, caps *captureSet) (int, bool) {
	if len(tokens) == 0 {
		return 0, true // pattern exhausted
	}

	switch t := tokens[0].(type) {
	case endAnchorToken:
		if text == "" {
			return 0, true
		}
		return 0, false

	case alternationToken:
		// First branch whose whole continuation succeeds wins.
		for _, branch := range [2][]token{t.left, t.right} {
			branchCaps := caps.clone()
			n, ok := matchHere(branch, text, &branchCaps)
			if !ok {
				continue
			}
			if rest, ok := matchHere(tokens[1:], text[n:], &branchCaps); ok {
				*caps = branchCaps
				return n + rest, true
			}
		}
		return 0, false

	case groupToken:
		// Greedy: try every rune-boundary length, longest first. The body
		// must consume exactly the tried length, and the capture is only
		// committed when the rest of the pattern also succeeds.
		bounds := runeBoundaries(text)
		for i := len(bounds) - 1; i >= 0; i-- {
			tryLen := bounds[i]
			innerCaps := caps.clone()
			n, ok := matchHere(t.body, text[:tryLen], &innerCaps)
			if !ok || n != tryLen {
				continue
			}
			innerCaps[t.id] = text[:n]
			if rest, ok := matchHere(tokens[1:], text[n:], &innerCaps); ok {
				*caps = innerCaps
				return n + rest, true
			}
		}
		return 0, false

	case backrefToken:
		// Missing or not-yet-filled captures fail to match, never error.
		captured, ok := (*caps)[t.id]
		if !ok || !strings.HasPrefix(text, captured) {
			return 0, false
		}
		if rest, ok := matchHere(tokens[1:], text[len(captured):], caps); ok {
			return len(captured) + rest, true
		}
		return 0, false

	case quantifierToken:
		if t.max == 0 {
			// Repetition exhausted; hand over to the rest of the pattern.
			return matchHere(tokens[1:], text, caps)
		}

		saved := caps.clone()

		// Greedy attempt: one more occurrence of inner, then this
		// quantifier again with decremented bounds ahead of the same rest,
		// so further repetitions stay possible. Zero-width occurrences
		// only recurse while min is unsatisfied, or they would loop.
		if n, ok := matchHere([]token{t.inner}, text, caps); ok && (n > 0 || t.min > 0) {
			next := quantifierToken{inner: t.inner, min: t.min, max: t.max}
			if next.min > 0 {
				next.min--
			}
			if next.max > 0 {
				next.max--
			}
			rest := append([]token{next}, tokens[1:]...)
			if total, ok := matchHere(rest, text[n:], caps); ok {
				return n + total, true
			}
		}

		// Fallback: treat the repetition as finished. Only legal once the
		// minimum is satisfied, and never with captures from the failed
		// greedy path still visible.
		*caps = saved
		if t.min == 0 {
			return matchHere(tokens[1:], text, caps)
		}
		return 0, false

	default:
		// Single-character tokens consume exactly one rune.
		c, width := utf8.DecodeRuneInString(text)
		if width == 0 || !matchesRune(tokens[0], c) {
			return 0, false
		}
		if rest, ok := matchHere(tokens[1:], text[width:], caps); ok {
			return width + rest, true
		}
		return 0, false
	}
}

// runeBoundaries returns every byte offset in text that starts a rune,
// plus len(text), in increasing order. Group try-lengths iterate over
// these so a multi-byte character is never split.
func runeBoundaries(text string) []int {
	bounds := make([]int, 0, len(text)+1)
	for i := range text {
		bounds = append(bounds, i)
	}
	return append(bounds, len(text))
}
