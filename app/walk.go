package main

import (
	"os"
	"path/filepath"
)

// collectFiles expands a CLI path to concrete files: the file itself, or
// every regular file under it when recursive. Unreadable entries are
// skipped.
func collectFiles(root string, recursive bool) []string {
	info, err := os.Stat(root)
	if err != nil {
		return nil
	}
	if !info.IsDir() {
		return []string{root}
	}
	if !recursive {
		return nil
	}
	var out []string
	filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err == nil && info.Mode().IsRegular() {
			out = append(out, path)
		}
		return nil
	})
	return out
}
