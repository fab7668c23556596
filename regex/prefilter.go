package regex

import "github.com/coregx/ahocorasick"

// buildPrefilter compiles the pattern's required literal prefixes into an
// Aho-Corasick automaton used to skip start offsets that cannot possibly
// begin a match. It returns nil when no sound prefix set exists; the
// caller then falls back to trying every offset. The prefilter only
// prunes candidate offsets, so match results are identical with and
// without it.
func buildPrefilter(tokens []token) *ahocorasick.Automaton {
	prefixes := literalPrefixes(tokens)
	if len(prefixes) == 0 {
		return nil
	}
	builder := ahocorasick.NewBuilder()
	seen := make(map[string]bool, len(prefixes))
	for _, p := range prefixes {
		if seen[p] {
			continue
		}
		seen[p] = true
		builder.AddPattern([]byte(p))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return auto
}

// literalPrefixes returns a set of literal strings such that every match
// of tokens must begin with one of them, or nil when that cannot be
// established. A leading literal run is required outright; a leading
// group contributes one prefix per alternation branch provided every
// branch itself leads with a literal (which also rules out the group
// matching zero characters).
func literalPrefixes(tokens []token) []string {
	if len(tokens) == 0 {
		return nil
	}
	switch t := tokens[0].(type) {
	case literalToken:
		return []string{literalRun(tokens)}
	case groupToken:
		return literalPrefixes(t.body)
	case alternationToken:
		left := literalPrefixes(t.left)
		if left == nil {
			return nil
		}
		right := literalPrefixes(t.right)
		if right == nil {
			return nil
		}
		return append(left, right...)
	}
	return nil
}

// literalRun collects the maximal leading run of plain literal tokens.
func literalRun(tokens []token) string {
	var run []rune
	for _, t := range tokens {
		lit, ok := t.(literalToken)
		if !ok {
			break
		}
		run = append(run, lit.char)
	}
	return string(run)
}
