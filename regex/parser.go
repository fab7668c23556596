package regex

import (
	"strconv"
	"strings"
)

// parse converts a pattern into a token sequence in a single left-to-right
// pass. The dialect has no parse errors: malformed constructs (unterminated
// [, ( or {, stray quantifiers, bad integers in {}) degrade to a
// best-effort token tree.
//
// parse never sees a leading ^; the caller strips it and records the
// anchoring separately.
func parse(pattern string) []token {
	groups := 0
	return parseTokens([]rune(pattern), &groups)
}

// parseTokens is the recursive worker. groups is the next-unused-group-id
// counter, shared across all recursive calls so ids stay globally unique
// and follow opening-paren order even across nested and sibling groups.
func parseTokens(pattern []rune, groups *int) []token {
	var tokens []token
	pos := 0
	for pos < len(pattern) {
		c := pattern[pos]
		pos++
		switch c {
		case '\\':
			if pos >= len(pattern) {
				break // dangling escape is dropped
			}
			esc := pattern[pos]
			pos++
			switch {
			case esc == 'd':
				tokens = append(tokens, digitToken{})
			case esc == 'w':
				tokens = append(tokens, wordToken{})
			case esc >= '0' && esc <= '9':
				tokens = append(tokens, backrefToken{id: int(esc - '0')})
			default:
				// unknown escapes pass through as literals
				tokens = append(tokens, literalToken{char: esc})
			}

		case '$':
			tokens = append(tokens, endAnchorToken{})

		case '[':
			negated := false
			if pos < len(pattern) && pattern[pos] == '^' {
				negated = true
				pos++
			}
			set := make(map[rune]bool)
			for pos < len(pattern) && pattern[pos] != ']' {
				set[pattern[pos]] = true
				pos++
			}
			if pos < len(pattern) {
				pos++ // ']'
			}
			tokens = append(tokens, charClassToken{set: set, negated: negated})

		case '(':
			*groups++
			id := *groups

			// Scan to the matching ')' tracking plain paren depth.
			depth := 1
			start := pos
			for pos < len(pattern) {
				switch pattern[pos] {
				case '(':
					depth++
				case ')':
					depth--
				}
				if depth == 0 {
					break
				}
				pos++
			}
			span := pattern[start:pos]
			if pos < len(pattern) {
				pos++ // ')'
			}

			// Split on '|' at depth 0 only; parts parse left to right so
			// nested group ids keep their encounter order.
			parts := splitAlternatives(span)
			var body []token
			if len(parts) > 1 {
				alt := alternationToken{
					left:  parseTokens(parts[0], groups),
					right: parseTokens(parts[1], groups),
				}
				for _, part := range parts[2:] {
					alt = alternationToken{
						left:  []token{alt},
						right: parseTokens(part, groups),
					}
				}
				body = []token{alt}
			} else {
				body = parseTokens(span, groups)
			}
			// Always exactly one group token per parenthesized span, so a
			// following quantifier applies to the whole group.
			tokens = append(tokens, groupToken{body: body, id: id})

		case '{':
			start := pos
			for pos < len(pattern) && pattern[pos] != '}' {
				pos++
			}
			bounds := string(pattern[start:pos])
			if pos < len(pattern) {
				pos++ // '}'
			}
			if len(tokens) == 0 {
				break // stray quantifier, dropped
			}
			prev := tokens[len(tokens)-1]
			min, max := parseBounds(bounds)
			tokens[len(tokens)-1] = quantifierToken{inner: prev, min: min, max: max}

		case '+', '?', '*':
			if len(tokens) == 0 {
				break // stray quantifier, dropped
			}
			prev := tokens[len(tokens)-1]
			q := quantifierToken{inner: prev}
			switch c {
			case '+':
				q.min, q.max = 1, -1
			case '?':
				q.min, q.max = 0, 1
			case '*':
				q.min, q.max = 0, -1
			}
			tokens[len(tokens)-1] = q

		case '.':
			tokens = append(tokens, wildcardToken{})

		default:
			tokens = append(tokens, literalToken{char: c})
		}
	}
	return tokens
}

// splitAlternatives splits a group body on '|' at parenthesis depth 0.
func splitAlternatives(span []rune) [][]rune {
	var parts [][]rune
	depth := 0
	start := 0
	for i, c := range span {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		case '|':
			if depth == 0 {
				parts = append(parts, span[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, span[start:])
}

// parseBounds reads the interior of a {} quantifier. Missing or malformed
// integers default to 0 for the minimum and to unbounded for the maximum;
// with no comma both bounds equal the single integer.
func parseBounds(bounds string) (min, max int) {
	parts := strings.Split(bounds, ",")
	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || min < 0 {
		min = 0
	}
	if !strings.Contains(bounds, ",") {
		return min, min
	}
	max = -1
	if len(parts) > 1 {
		if m, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil && m >= 0 {
			max = m
		}
	}
	return min, max
}
