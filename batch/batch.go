package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/gnolang/daysin/internal"
	tt "github.com/gnolang/daysin/internal/types"
)

// DefaultConfigPath is used when no --config flag is given.
const DefaultConfigPath = ".daysin.yaml"

type Engine interface {
	Run(filePath string) ([]tt.Result, error)
	RunSource(source []byte) ([]tt.Result, error)
	IgnoreRule(rule string)
	IgnorePath(path string)
}

// Processor evaluates a single file with the given engine.
type Processor func(Engine, string) ([]tt.Result, error)

// Options controls how directories are walked.
type Options struct {
	// Workers bounds concurrent file evaluation. Zero means runtime.NumCPU.
	Workers int
	// Progress receives the progress bar. Nil disables it.
	Progress io.Writer
}

// New builds an engine from the configuration file at configurationPath.
// A missing file yields the default configuration.
func New(configurationPath string) (*internal.Engine, error) {
	config, err := parseConfigurationFile(configurationPath)
	if err != nil {
		return nil, err
	}

	return internal.NewEngine(config.Rules)
}

func ProcessSources(
	ctx context.Context,
	logger *zap.Logger,
	engine Engine,
	sources [][]byte,
	processor func(Engine, []byte) ([]tt.Result, error),
) ([]tt.Result, error) {
	var allResults []tt.Result
	for i, source := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results, err := processor(engine, source)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing source", zap.Int("source", i), zap.Error(err))
			}
			return nil, err
		}
		allResults = append(allResults, results...)
	}

	return allResults, nil
}

func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine Engine,
	paths []string,
	processor Processor,
	opts Options,
) ([]tt.Result, error) {
	var allResults []tt.Result
	for _, path := range paths {
		results, err := ProcessPath(ctx, logger, engine, path, processor, opts)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		allResults = append(allResults, results...)
	}

	return allResults, nil
}

func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine Engine,
	path string,
	processor Processor,
	opts Options,
) ([]tt.Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		if !hasDesiredExtension(path) {
			return nil, nil
		}
		return processor(engine, path)
	}

	var files []string
	err = filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fileInfo.IsDir() && hasDesiredExtension(filePath) {
			files = append(files, filePath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", path, err)
	}

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription(path),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// results are stored per file so the output order is stable
	perFile := make([][]tt.Result, len(files))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, filePath := range files {
		if gctx.Err() != nil {
			break
		}
		i, filePath := i, filePath
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fileResults, err := processor(engine, filePath)
			if err != nil {
				// a broken file is logged and skipped, the rest of the walk continues
				if logger != nil {
					logger.Error("Error processing file", zap.String("file", filePath), zap.Error(err))
				}
				return nil
			}
			mu.Lock()
			perFile[i] = fileResults
			mu.Unlock()
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if bar != nil {
		_ = bar.Finish()
	}

	var results []tt.Result
	for _, r := range perFile {
		results = append(results, r...)
	}
	return results, nil
}

func ProcessFile(engine Engine, filePath string) ([]tt.Result, error) {
	return engine.Run(filePath)
}

func ProcessSource(engine Engine, source []byte) ([]tt.Result, error) {
	return engine.RunSource(source)
}

// Failures returns the results that carry a finding.
func Failures(results []tt.Result) []tt.Result {
	var out []tt.Result
	for _, r := range results {
		if r.Failed() {
			out = append(out, r)
		}
	}
	return out
}

func hasDesiredExtension(path string) bool {
	return filepath.Ext(path) == internal.BatchExt
}

// Config represents the overall configuration with a name and per-operation rules.
type Config struct {
	Name  string                   `yaml:"name"`
	Rules map[string]tt.ConfigRule `yaml:"rules"`
}

// DefaultConfig lists every operation with its built-in severity.
func DefaultConfig() (Config, error) {
	engine, err := internal.NewEngine(nil)
	if err != nil {
		return Config{}, err
	}
	config := Config{
		Name:  "daysin",
		Rules: make(map[string]tt.ConfigRule),
	}
	for name, severity := range engine.Severities() {
		config.Rules[name] = tt.ConfigRule{Severity: severity}
	}
	return config, nil
}

func parseConfigurationFile(configurationPath string) (Config, error) {
	var config Config
	if configurationPath == "" {
		configurationPath = DefaultConfigPath
	}

	// Read the configuration file
	f, err := os.Open(configurationPath)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, err
	}
	defer f.Close()

	// Parse the configuration file
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	err = decoder.Decode(&config)
	if err != nil && !errors.Is(err, io.EOF) {
		return config, fmt.Errorf("error parsing %s: %w", configurationPath, err)
	}

	return config, nil
}
