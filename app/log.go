package main

import (
	"fmt"
	"os"
	"strings"
)

var logMode = "error" // lower to "debug" when chasing the matcher
var logLevels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

func log(funcName, level, message string) {
	if logLevels[level] >= logLevels[logMode] {
		fmt.Fprintf(os.Stderr, "[%s] [%s] %s\n",
			funcName, strings.ToUpper(level), message)
	}
}
