package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/toyz/specgen/internal/errors"
	"github.com/toyz/specgen/internal/generator"
	"github.com/toyz/specgen/internal/models"
	"github.com/toyz/specgen/internal/utils"
)

// GenerationSummary reports what a run did
type GenerationSummary struct {
	SourcesMatched int
	SpecsGenerated int
	SpecsSkipped   int
	SpecsFailed    int
	BlocksWritten  int
	GeneratedFiles []string
}

// fileResult is the outcome of generating the spec of one source
type fileResult struct {
	source     string
	spec       *models.GeneratedSpec
	skipReason string
	err        error
}

// Generator coordinates the CLI generation process
type Generator struct {
	specGenerator generator.SpecGenerator
	diagnostics   *utils.DiagnosticSystem
	stdout        io.Writer
	summary       GenerationSummary
}

// NewGenerator creates a new CLI generator
func NewGenerator(diagnostics *utils.DiagnosticSystem) *Generator {
	if diagnostics == nil {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}
	return &Generator{
		specGenerator: generator.NewGenerator(),
		diagnostics:   diagnostics,
		stdout:        os.Stdout,
		summary:       GenerationSummary{GeneratedFiles: make([]string, 0)},
	}
}

// SetStdout sets where specs are printed when Config.Stdout is set
func (g *Generator) SetStdout(w io.Writer) {
	g.stdout = w
}

// GetSummary returns the generation summary of the last run
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// Run executes the complete generation process
func (g *Generator) Run(ctx context.Context, config Config) error {
	startTime := time.Now()
	g.summary = GenerationSummary{GeneratedFiles: make([]string, 0)}

	if err := config.Validate(); err != nil {
		return err
	}

	g.diagnostics.Verbose("Starting spec generation at %s", startTime.Format("15:04:05"))
	g.diagnostics.Debug("Patterns: %v", config.Patterns)

	sources, err := g.scan(config)
	if err != nil {
		return err
	}
	g.summary.SourcesMatched = len(sources)
	g.diagnostics.Info("Found %d source files", len(sources))

	results, err := g.generateAll(ctx, config, sources)
	if err != nil {
		return err
	}

	errs := errors.NewMultipleErrors()
	for _, result := range results {
		errs.Add(g.report(config, result))
	}

	g.diagnostics.Verbose("Generation finished in %s", time.Since(startTime).Round(time.Millisecond))

	return errs.ErrorOrNil()
}

// scan resolves the configured patterns into source files
func (g *Generator) scan(config Config) ([]string, error) {
	scanner := NewSourceScanner(config.Exclude, config.DescriptorSuffix)

	scanned, err := scanner.Scan(config.Patterns)
	if err != nil {
		return nil, err
	}

	for _, pattern := range scanned.Unmatched {
		g.diagnostics.Warn("No source files match '%s'", pattern)
	}

	if len(scanned.Sources) == 0 {
		return nil, &models.GeneratorError{
			Type:    models.ErrorTypeValidation,
			Message: "No source files found",
			Suggestions: []string{
				"Check that the paths or patterns exist",
				"Quote globs like 'src/**/*.js' so the shell passes them through",
				"Make sure the files are not excluded by the exclude patterns",
			},
		}
	}

	return scanned.Sources, nil
}

// generateAll renders the specs of every source concurrently, keeping input order
func (g *Generator) generateAll(ctx context.Context, config Config, sources []string) ([]fileResult, error) {
	results := make([]fileResult, len(sources))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(config.Concurrency)

	for i, source := range sources {
		i, source := i, source
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			results[i] = generateFile(g.specGenerator, config, source)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// generateFile renders the spec of one source file. A source without a
// descriptor is skipped.
func generateFile(specGenerator generator.SpecGenerator, config Config, source string) fileResult {
	result := fileResult{source: source}

	content, err := os.ReadFile(source)
	if err != nil {
		result.err = fileError(models.ErrorTypeFileSystem, source, "failed to read source", err)
		return result
	}

	descriptorPath := source + config.DescriptorSuffix
	descriptorJSON, err := os.ReadFile(descriptorPath)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			result.skipReason = fmt.Sprintf("no descriptor at %s", descriptorPath)
			return result
		}
		result.err = fileError(models.ErrorTypeFileSystem, source, "failed to read descriptor", err)
		return result
	}

	specPath := SpecPath(source, config)

	genCtx := models.NewContext(source, string(content), descriptorJSON)
	genCtx.ImportPath = ImportPath(specPath, source)

	spec, err := specGenerator.Generate(genCtx)
	if err != nil {
		result.err = fileError(generateErrorType(err), source, "failed to generate spec", err)
		return result
	}

	if !config.Stdout {
		spec.FilePath = specPath
	}
	result.spec = spec

	return result
}

// generateErrorType tells a bad descriptor apart from a rendering failure
func generateErrorType(err error) models.ErrorType {
	var coded errors.SpecgenError
	if stderrors.As(err, &coded) && coded.ErrorCode() != errors.ParseErrorCode {
		return models.ErrorTypeGeneration
	}
	return models.ErrorTypeDescriptor
}

// report prints the outcome of one file and persists its spec
func (g *Generator) report(config Config, result fileResult) error {
	switch {
	case result.err != nil:
		g.summary.SpecsFailed++
		g.diagnostics.Error("%v", result.err)
		var genErr *models.GeneratorError
		if stderrors.As(result.err, &genErr) {
			g.diagnostics.Suggestions(genErr.Suggestions)
		}
		return result.err

	case result.skipReason != "":
		g.summary.SpecsSkipped++
		g.diagnostics.Warn("Skipping %s: %s", result.source, result.skipReason)
		return nil
	}

	spec := result.spec

	if config.Stdout {
		fmt.Fprintf(g.stdout, "// %s\n%s\n", spec.SourcePath, spec.Content)
		g.summary.SpecsGenerated++
		g.summary.BlocksWritten += spec.TotalBlocks()
		return nil
	}

	if !config.Force {
		if _, err := os.Stat(spec.FilePath); err == nil {
			g.summary.SpecsSkipped++
			g.diagnostics.Warn("Skipping %s: %s already exists (use --force to overwrite)", result.source, spec.FilePath)
			return nil
		}
	}

	if err := writeSpec(spec); err != nil {
		g.summary.SpecsFailed++
		wrapped := fileError(models.ErrorTypeFileSystem, result.source, "failed to write spec", err)
		g.diagnostics.Error("%v", wrapped)
		return wrapped
	}

	g.summary.SpecsGenerated++
	g.summary.BlocksWritten += spec.TotalBlocks()
	g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, spec.FilePath)
	g.diagnostics.Verbose("Wrote %s (%d blocks)", spec.FilePath, spec.TotalBlocks())

	return nil
}

// fileError annotates a per-file failure
func fileError(errType models.ErrorType, source, message string, cause error) error {
	genErr := &models.GeneratorError{
		Type:    errType,
		File:    source,
		Message: fmt.Sprintf("%s: %v", message, cause),
		Cause:   cause,
	}

	var coded errors.SpecgenError
	if stderrors.As(cause, &coded) {
		genErr.Suggestions = coded.Suggestions()
	}

	return genErr
}

// writeSpec writes the spec file, creating its directory when needed
func writeSpec(spec *models.GeneratedSpec) error {
	if err := os.MkdirAll(filepath.Dir(spec.FilePath), 0755); err != nil {
		return errors.WrapFileSystemError("create directory for", spec.FilePath, err)
	}
	if err := os.WriteFile(spec.FilePath, []byte(spec.Content), 0644); err != nil {
		return errors.WrapFileSystemError("write", spec.FilePath, err)
	}
	return nil
}

// SpecPath returns where the spec of source is written
func SpecPath(source string, config Config) string {
	dir := filepath.Dir(source)
	if config.OutDir != "" {
		if filepath.IsAbs(config.OutDir) {
			dir = config.OutDir
		} else {
			dir = filepath.Join(dir, config.OutDir)
		}
	}

	base := filepath.Base(source)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + config.SpecSuffix

	return filepath.Join(dir, name)
}

// ImportPath returns the module specifier a spec at specPath uses to import source
func ImportPath(specPath, source string) string {
	rel, err := filepath.Rel(filepath.Dir(specPath), source)
	if err != nil {
		return "./" + filepath.Base(source)
	}

	rel = filepath.ToSlash(rel)
	if !strings.HasPrefix(rel, "../") {
		rel = "./" + rel
	}
	return rel
}
