package main

import "fmt"

const usage = "usage: mygrep [-r] [-o] [--color=WHEN] [--profile] -E <pattern> [paths...]"

type colorWhen int

const (
	colorNever colorWhen = iota
	colorAlways
	colorAuto
)

// config holds everything parseArgs extracts from the command line.
type config struct {
	pattern   string
	onlyMatch bool // -o: print each match on its own line
	recursive bool // -r: walk directories
	color     colorWhen
	profile   bool // --profile: write a CPU profile for this run
	paths     []string
}

// parseArgs handles [flags...] -E <pattern> [paths...]. Everything after
// the pattern is a path.
func parseArgs(args []string) (config, error) {
	var cfg config
	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "-r":
			cfg.recursive = true
		case "-o":
			cfg.onlyMatch = true
		case "--color=always":
			cfg.color = colorAlways
		case "--color=never":
			cfg.color = colorNever
		case "--color=auto":
			cfg.color = colorAuto
		case "--profile":
			cfg.profile = true
		case "-E":
			if i+1 >= len(args) {
				return config{}, fmt.Errorf("missing pattern after -E\n%s", usage)
			}
			cfg.pattern = args[i+1]
			cfg.paths = args[i+2:]
			return cfg, nil
		default:
			return config{}, fmt.Errorf("unknown argument %q\n%s", args[i], usage)
		}
	}
	return config{}, fmt.Errorf("missing -E <pattern>\n%s", usage)
}
