// Package main provides the CLI entrypoint for fixdict-generator.
//
// fixdict-generator reads a FIX Orchestra repository (XML or YAML) and writes
// a Go package implementing the dictionary runtime interfaces for one
// protocol version:
//
//	fixdict-generator --output fix44/fix44.go --module FIX_4_4 --orchestration FixRepository44.xml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
