package main

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	top := filepath.Join(dir, "top.txt")
	nested := filepath.Join(sub, "nested.txt")
	for _, p := range []string{top, nested} {
		if err := os.WriteFile(p, []byte("x\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if got := collectFiles(top, false); !equalStrings(got, []string{top}) {
		t.Errorf("file: got %v, want %v", got, []string{top})
	}
	if got := collectFiles(dir, false); got != nil {
		t.Errorf("dir without -r: got %v, want nil", got)
	}
	got := collectFiles(dir, true)
	sort.Strings(got)
	want := []string{nested, top}
	sort.Strings(want)
	if !equalStrings(got, want) {
		t.Errorf("recursive: got %v, want %v", got, want)
	}
	if got := collectFiles(filepath.Join(dir, "missing"), true); got != nil {
		t.Errorf("missing path: got %v, want nil", got)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestResolveUseColor(t *testing.T) {
	if resolveUseColor(colorNever) {
		t.Error("never should be off")
	}
	if !resolveUseColor(colorAlways) {
		t.Error("always should be on")
	}
	// auto depends on whether the test runner's stdout is a terminal, so
	// only check that it does not panic
	resolveUseColor(colorAuto)
}
