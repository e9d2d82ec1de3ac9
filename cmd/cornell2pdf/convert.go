package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	cornell "github.com/maxgiraldo/cornell-notes"
	"github.com/maxgiraldo/cornell-notes/internal/config"
	"github.com/maxgiraldo/cornell-notes/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input file specified")
	ErrReadInput        = errors.New("failed to read input file")
	ErrWriteOutput      = errors.New("failed to write output file")
	ErrInvalidWorkers   = errors.New("invalid worker count")
	ErrConversionFailed = errors.New("conversion failed")
)

// filePermissions for generated documents: rw-r--r--.
const filePermissions = 0o644

// maxDefaultWorkers caps the default pool size; each worker holds a browser.
const maxDefaultWorkers = 4

// fileToConvert represents a single file to process.
type fileToConvert struct {
	inputPath  string
	outputPath string
}

// conversionResult holds the outcome of a single conversion.
type conversionResult struct {
	inputPath  string
	outputPath string
	err        error
	duration   time.Duration
}

// run orchestrates config loading, pool setup, and batch conversion.
func run(flags *pdfFlags, inputs []string) error {
	if flags.helped {
		return nil
	}
	if flags.version {
		fmt.Printf("cornell2pdf version %s\n", Version)
		return nil
	}
	if flags.workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, flags.workers)
	}
	if len(inputs) == 0 {
		return ErrNoInput
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		var err error
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	page := buildPageSettings(flags, cfg)
	if err := page.Validate(); err != nil {
		return err
	}

	opts := []cornell.Option{cornell.WithPageSettings(page)}
	if flags.timeout > 0 {
		opts = append(opts, cornell.WithTimeout(flags.timeout))
	}
	if cfg.Document.Title != "" {
		opts = append(opts, cornell.WithDocumentTitle(cfg.Document.Title))
	}

	files := make([]fileToConvert, 0, len(inputs))
	for _, inputPath := range inputs {
		files = append(files, fileToConvert{
			inputPath:  inputPath,
			outputPath: resolveOutputPath(inputPath, flags.output, len(inputs) > 1, cfg.Output.DefaultDir),
		})
	}

	pool := newConverterPool(resolvePoolSize(flags.workers, len(files)), func() (*cornell.Converter, error) {
		return cornell.NewPDFConverter(opts...)
	})
	defer pool.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results := convertBatch(ctx, pool, files)

	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", res.inputPath, res.err)
			continue
		}
		if !flags.quiet {
			fmt.Printf("PDF generated successfully: %s\n", res.outputPath)
		}
		if flags.verbose {
			fmt.Fprintf(os.Stderr, "%s converted in %s\n", res.inputPath, res.duration.Round(time.Millisecond))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrConversionFailed, failed, len(results))
	}
	return nil
}

// buildPageSettings merges CLI flags over config over library defaults.
func buildPageSettings(flags *pdfFlags, cfg *config.Config) *cornell.PageSettings {
	page := cornell.DefaultPageSettings()

	if cfg.Page.Size != "" {
		page.Size = cfg.Page.Size
	}
	if cfg.Page.Orientation != "" {
		page.Orientation = cfg.Page.Orientation
	}
	if cfg.Page.Margin != 0 {
		page.Margin = cfg.Page.Margin
	}

	if flags.pageSize != "" {
		page.Size = flags.pageSize
	}
	if flags.orientation != "" {
		page.Orientation = flags.orientation
	}
	if flags.margin != 0 {
		page.Margin = flags.margin
	}
	return page
}

// resolvePoolSize picks the pool size: explicit --workers wins, otherwise CPU
// count capped at maxDefaultWorkers, never more than the number of files.
func resolvePoolSize(workers, files int) int {
	size := workers
	if size < 1 {
		size = runtime.NumCPU()
		if size > maxDefaultWorkers {
			size = maxDefaultWorkers
		}
	}
	if size > files {
		size = files
	}
	if size < 1 {
		size = 1
	}
	return size
}

// convertBatch processes files concurrently using the converter pool.
// Results are returned in input order.
func convertBatch(ctx context.Context, pool *converterPool, files []fileToConvert) []conversionResult {
	jobs := make(chan int)
	results := make([]conversionResult, len(files))

	var wg sync.WaitGroup
	for w := 0; w < pool.Size(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire()
			if err != nil {
				for idx := range jobs {
					results[idx] = conversionResult{
						inputPath:  files[idx].inputPath,
						outputPath: files[idx].outputPath,
						err:        err,
					}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				results[idx] = convertFile(ctx, conv, files[idx])
			}
		}()
	}

	for idx := range files {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	return results
}

// convertFile reads one notes file, converts it, and writes the PDF output.
func convertFile(ctx context.Context, conv *cornell.Converter, file fileToConvert) conversionResult {
	start := time.Now()
	res := conversionResult{inputPath: file.inputPath, outputPath: file.outputPath}

	if !fileutil.FileExists(file.inputPath) {
		res.err = fmt.Errorf("%w: %s", ErrReadInput, file.inputPath)
		return res
	}

	src, err := os.ReadFile(file.inputPath)
	if err != nil {
		res.err = fmt.Errorf("%w: %v", ErrReadInput, err)
		return res
	}

	out, err := conv.Convert(ctx, cornell.Input{Source: string(src)})
	if err != nil {
		res.err = err
		return res
	}

	if err := os.WriteFile(file.outputPath, out, filePermissions); err != nil {
		res.err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		return res
	}

	res.duration = time.Since(start)
	return res
}

// resolveOutputPath determines where the converted document goes. Default is
// the input basename with the target extension, in the current directory.
// With multiple inputs, --output names a directory.
func resolveOutputPath(inputPath, output string, multi bool, defaultDir string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + ".pdf"
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
