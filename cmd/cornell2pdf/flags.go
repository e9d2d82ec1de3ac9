package main

import (
	"fmt"
	"time"

	flag "github.com/spf13/pflag"
)

// pdfFlags holds all flags for cornell2pdf.
type pdfFlags struct {
	output      string
	config      string
	pageSize    string
	orientation string
	margin      float64
	timeout     time.Duration
	workers     int
	quiet       bool
	verbose     bool
	version     bool
	helped      bool
}

const usageText = `Usage: cornell2pdf [flags] <input.md> [input2.md ...]

Converts Cornell-style notes from Markdown to a paginated PDF document.
PDF rendering uses headless Chrome; set ROD_BROWSER_BIN to use a
pre-installed browser.

Flags:
`

// parseFlags parses command-line arguments into flags and positional inputs.
// Help requests are not errors; flags.helped is set instead.
func parseFlags(args []string) (*pdfFlags, []string, error) {
	flags := &pdfFlags{}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageText)
		fs.PrintDefaults()
	}

	fs.StringVarP(&flags.output, "output", "o", "", "output file (single input) or directory (multiple inputs)")
	fs.StringVar(&flags.config, "config", "", "path to YAML config file")
	fs.StringVar(&flags.pageSize, "page-size", "", "page size: letter or a4 (default letter)")
	fs.StringVar(&flags.orientation, "orientation", "", "page orientation: portrait or landscape (default portrait)")
	fs.Float64Var(&flags.margin, "margin", 0, "side margin in inches (default 0.75)")
	fs.DurationVar(&flags.timeout, "timeout", 0, "per-document rendering timeout (default 30s)")
	fs.IntVar(&flags.workers, "workers", 0, "parallel conversions for multiple inputs (default: CPU count, max 4)")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress success messages")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output to stderr")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			flags.helped = true
			return flags, nil, nil
		}
		return nil, nil, err
	}

	return flags, fs.Args(), nil
}
