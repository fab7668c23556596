package main

import (
	"fmt"
	"os"

	"github.com/pkg/profile"

	"github.com/funkybooboo/grep-go/regex"
)

func main() {
	os.Exit(run(os.Args))
}

// run returns the process exit code: 0 if anything matched, 1 if nothing
// did, 2 on usage or I/O errors.
func run(args []string) int {
	cfg, err := parseArgs(args)
	if err != nil {
		log("run", "error", fmt.Sprintf("argument parsing failed: %v", err))
		return 2
	}

	if cfg.profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	pat := regex.Compile(cfg.pattern)
	opts := searchOpts{
		onlyMatch: cfg.onlyMatch,
		useColor:  resolveUseColor(cfg.color),
	}

	// No paths: read stdin
	if len(cfg.paths) == 0 {
		if searchLines(os.Stdout, os.Stdin, pat, opts) {
			return 0
		}
		return 1
	}

	var files []string
	for _, p := range cfg.paths {
		files = append(files, collectFiles(p, cfg.recursive)...)
	}

	// recursive always shows the filename prefix; otherwise only when
	// searching multiple files
	showFilename := cfg.recursive || len(files) > 1

	found := false
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			log("run", "error", fmt.Sprintf("failed to open %q: %v", path, err))
			return 2
		}
		if showFilename {
			opts.prefix = path + ":"
		}
		if searchLines(os.Stdout, f, pat, opts) {
			found = true
		}
		f.Close()
	}

	if found {
		return 0
	}
	return 1
}
