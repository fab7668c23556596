package main

import (
	"reflect"
	"testing"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want config
	}{
		{
			name: "pattern only",
			args: []string{"mygrep", "-E", "a+b"},
			want: config{pattern: "a+b", paths: []string{}},
		},
		{
			name: "pattern and paths",
			args: []string{"mygrep", "-E", "x", "a.txt", "b.txt"},
			want: config{pattern: "x", paths: []string{"a.txt", "b.txt"}},
		},
		{
			name: "recursive with only-match",
			args: []string{"mygrep", "-r", "-o", "-E", "x", "dir"},
			want: config{pattern: "x", recursive: true, onlyMatch: true, paths: []string{"dir"}},
		},
		{
			name: "color always",
			args: []string{"mygrep", "--color=always", "-E", "x"},
			want: config{pattern: "x", color: colorAlways, paths: []string{}},
		},
		{
			name: "color auto and profile",
			args: []string{"mygrep", "--color=auto", "--profile", "-E", "x"},
			want: config{pattern: "x", color: colorAuto, profile: true, paths: []string{}},
		},
		{
			name: "flag-looking path after pattern",
			args: []string{"mygrep", "-E", "x", "-r"},
			want: config{pattern: "x", paths: []string{"-r"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(tt.args)
			if err != nil {
				t.Fatalf("parseArgs(%v): %v", tt.args, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseArgs(%v) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseArgsErrors(t *testing.T) {
	bad := [][]string{
		{"mygrep"},
		{"mygrep", "-r"},
		{"mygrep", "-E"},
		{"mygrep", "--color=sometimes", "-E", "x"},
		{"mygrep", "pattern-without-dash-E"},
	}
	for _, args := range bad {
		if _, err := parseArgs(args); err == nil {
			t.Errorf("parseArgs(%v): expected an error", args)
		}
	}
}
