package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/funkybooboo/grep-go/regex"
)

// searchOpts controls how matches on a line are printed.
type searchOpts struct {
	onlyMatch bool // print each match on its own line
	useColor  bool
	prefix    string // "filename:" or ""
}

// searchLines scans r line by line, prints matches to w, and reports
// whether anything matched.
func searchLines(w io.Writer, r io.Reader, pat *regex.Pattern, opts searchOpts) bool {
	scanner := bufio.NewScanner(r)
	found := false
	for scanner.Scan() {
		if searchLine(w, scanner.Text(), pat, opts) {
			found = true
		}
	}
	if err := scanner.Err(); err != nil {
		log("searchLines", "error", fmt.Sprintf("read error: %v", err))
	}
	return found
}

// searchLine finds every match on one line: the matcher is re-invoked on
// successively advanced suffixes, advancing past each match (or by one
// rune when the match was empty). Anchored patterns are tried once, at
// the true start of the line. Without -o a matching line prints once with
// every match span highlighted in place; with -o each match prints on its
// own line.
func searchLine(w io.Writer, line string, pat *regex.Pattern, opts searchOpts) bool {
	lineHasMatch := false
	var buf strings.Builder // the line with match spans rewritten
	last := 0               // end of the previous match within line
	offset := 0             // start of the current suffix within line

	for {
		start, end, ok := pat.Find(line[offset:])
		if !ok {
			break
		}
		lineHasMatch = true
		start += offset
		end += offset

		matched := line[start:end]
		if opts.useColor {
			matched = colorize(matched)
		}
		if opts.onlyMatch {
			fmt.Fprintf(w, "%s%s\n", opts.prefix, matched)
		} else {
			buf.WriteString(line[last:start])
			buf.WriteString(matched)
			last = end
		}

		if pat.Anchored() {
			break
		}
		if end > start {
			offset = end
		} else {
			// empty match: advance by one rune or we would loop forever
			if end >= len(line) {
				break
			}
			_, width := utf8.DecodeRuneInString(line[end:])
			offset = end + width
		}
	}

	if !opts.onlyMatch && lineHasMatch {
		buf.WriteString(line[last:])
		fmt.Fprintf(w, "%s%s\n", opts.prefix, buf.String())
	}
	return lineHasMatch
}
