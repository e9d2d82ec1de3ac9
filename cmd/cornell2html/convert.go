package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	cornell "github.com/maxgiraldo/cornell-notes"
	"github.com/maxgiraldo/cornell-notes/internal/config"
	"github.com/maxgiraldo/cornell-notes/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput     = errors.New("no input file specified")
	ErrReadInput   = errors.New("failed to read input file")
	ErrWriteOutput = errors.New("failed to write output file")
)

// filePermissions for generated documents: rw-r--r--.
const filePermissions = 0o644

// run orchestrates flag parsing, config loading, and conversion.
func run(args []string) error {
	flags, inputs, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.version {
		fmt.Printf("cornell2html version %s\n", Version)
		return nil
	}

	if len(inputs) == 0 {
		return ErrNoInput
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	title := flags.title
	if title == "" {
		title = cfg.Document.Title
	}

	var opts []cornell.Option
	if title != "" {
		opts = append(opts, cornell.WithDocumentTitle(title))
	}

	conv := cornell.NewHTMLConverter(opts...)
	defer conv.Close()

	ctx := context.Background()
	for _, inputPath := range inputs {
		outputPath := resolveOutputPath(inputPath, flags.output, len(inputs) > 1, cfg.Output.DefaultDir)
		if flags.verbose {
			fmt.Fprintf(os.Stderr, "Converting %s -> %s\n", inputPath, outputPath)
		}
		if err := convertFile(ctx, conv, inputPath, outputPath); err != nil {
			return err
		}
		if !flags.quiet {
			fmt.Printf("HTML generated successfully: %s\n", outputPath)
		}
	}
	return nil
}

// convertFile reads one notes file, converts it, and writes the HTML output.
func convertFile(ctx context.Context, conv *cornell.Converter, inputPath, outputPath string) error {
	if !fileutil.FileExists(inputPath) {
		return fmt.Errorf("%w: %s", ErrReadInput, inputPath)
	}

	src, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	out, err := conv.Convert(ctx, cornell.Input{Source: string(src)})
	if err != nil {
		return fmt.Errorf("converting %s: %w", inputPath, err)
	}

	if err := os.WriteFile(outputPath, out, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// resolveOutputPath determines where the converted document goes. Default is
// the input basename with the target extension, in the current directory.
// With multiple inputs, --output names a directory.
func resolveOutputPath(inputPath, output string, multi bool, defaultDir string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + ".html"
	switch {
	case output != "" && !multi:
		return output
	case output != "":
		return filepath.Join(output, base)
	case defaultDir != "":
		return filepath.Join(defaultDir, base)
	default:
		return base
	}
}
