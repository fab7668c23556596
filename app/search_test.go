package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/funkybooboo/grep-go/regex"
)

func runSearch(t *testing.T, pattern, input string, opts searchOpts) (string, bool) {
	t.Helper()
	var out bytes.Buffer
	found := searchLines(&out, strings.NewReader(input), regex.Compile(pattern), opts)
	return out.String(), found
}

func TestSearchLinesPrintsMatchingLines(t *testing.T) {
	out, found := runSearch(t, "wor", "hello\nworld\nword\n", searchOpts{})
	if !found {
		t.Fatal("expected a match")
	}
	if out != "world\nword\n" {
		t.Errorf("output = %q, want %q", out, "world\nword\n")
	}
}

func TestSearchLinesNoMatch(t *testing.T) {
	out, found := runSearch(t, "zzz", "hello\nworld\n", searchOpts{})
	if found {
		t.Fatal("expected no match")
	}
	if out != "" {
		t.Errorf("output = %q, want empty", out)
	}
}

func TestSearchLinesOnlyMatch(t *testing.T) {
	// -o prints each match on its own line, advancing past every match
	out, _ := runSearch(t, "a+", "baaa aa b\n", searchOpts{onlyMatch: true})
	if out != "aaa\naa\n" {
		t.Errorf("output = %q, want %q", out, "aaa\naa\n")
	}
}

func TestSearchLinesFilenamePrefix(t *testing.T) {
	out, _ := runSearch(t, "wor", "world\n", searchOpts{prefix: "f.txt:"})
	if out != "f.txt:world\n" {
		t.Errorf("output = %q, want %q", out, "f.txt:world\n")
	}
}

func TestSearchLinesHighlightsInPlace(t *testing.T) {
	out, _ := runSearch(t, "b+", "abba abc\n", searchOpts{useColor: true})
	want := "a" + colorize("bb") + "a a" + colorize("b") + "c\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestSearchLinesAnchoredTriesOnlyLineStart(t *testing.T) {
	out, _ := runSearch(t, "^a", "aba\nba\n", searchOpts{onlyMatch: true})
	// one match on the first line, none on the second
	if out != "a\n" {
		t.Errorf("output = %q, want %q", out, "a\n")
	}
}

func TestSearchLinesEmptyMatchesAdvance(t *testing.T) {
	// an empty match advances by one rune instead of looping
	out, _ := runSearch(t, "x*", "ab\n", searchOpts{onlyMatch: true})
	if out != "\n\n\n" {
		t.Errorf("output = %q, want three empty matches", out)
	}
}
