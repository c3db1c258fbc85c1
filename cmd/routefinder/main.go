package main

import (
	"errors"
	"fmt"
	"os"
)

// errFatal marks failures whose messages have already been printed
var errFatal = errors.New("fatal")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFatal) {
			fmt.Fprintf(os.Stderr, "routefinder: %v\n", err)
		}
		os.Exit(1)
	}
}
