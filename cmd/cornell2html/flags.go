package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// htmlFlags holds all flags for cornell2html.
type htmlFlags struct {
	output  string
	config  string
	title   string
	quiet   bool
	verbose bool
	version bool
}

const usageText = `Usage: cornell2html [flags] <input.md> [input2.md ...]

Converts Cornell-style notes from Markdown to a styled HTML document.

Flags:
`

// parseFlags parses command-line arguments into flags and positional inputs.
func parseFlags(args []string) (*htmlFlags, []string, error) {
	flags := &htmlFlags{}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageText)
		fs.PrintDefaults()
	}

	fs.StringVarP(&flags.output, "output", "o", "", "output file (single input) or directory (multiple inputs)")
	fs.StringVar(&flags.config, "config", "", "path to YAML config file")
	fs.StringVar(&flags.title, "title", "", "HTML document title")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress success messages")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output to stderr")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return flags, fs.Args(), nil
}
