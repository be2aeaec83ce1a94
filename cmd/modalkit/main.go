// Package main is a terminal host demonstrating the modalkit input
// engine against a simple in-memory buffer.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	host, err := newHost(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init terminal: %v\n", err)
		return 1
	}
	defer screen.Fini()

	if err := host.Run(screen); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.ShortcutsPath, "shortcuts", "", "Path to the shortcut expansion file")
	flag.StringVar(&opts.ShortcutsPath, "s", "", "Path to the shortcut expansion file (shorthand)")
	flag.StringVar(&opts.TransformScript, "transform", "", "Path to a Lua transform script")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Modalkit - modal editing demo host\n\n")
		fmt.Fprintf(os.Stderr, "Usage: modalkit [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  Escape        Enter normal mode\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+T        Run the configured text transform\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+Q        Quit\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Modalkit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	return opts
}
