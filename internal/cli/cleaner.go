package cli

import (
	stderrors "errors"
	"os"

	"github.com/toyz/specgen/internal/errors"
	"github.com/toyz/specgen/internal/generator"
)

// CleanResult lists what a clean pass did with the spec of each matched source
type CleanResult struct {
	Removed []string
	// Kept holds specs that no longer match the generated scaffold
	Kept []string
}

// Cleaner handles removing generated spec files
type Cleaner struct {
	config        Config
	specGenerator generator.SpecGenerator
}

// NewCleaner creates a new cleaner
func NewCleaner(config Config) *Cleaner {
	return &Cleaner{
		config:        config,
		specGenerator: generator.NewGenerator(),
	}
}

// CleanGeneratedFiles removes the spec of every matched source that has a
// descriptor, but only while the spec is byte-identical to what generation
// produces for it now. Edited specs are kept.
func (c *Cleaner) CleanGeneratedFiles() (CleanResult, error) {
	result := CleanResult{Removed: make([]string, 0), Kept: make([]string, 0)}

	config := c.config
	config.Stdout = false

	scanner := NewSourceScanner(config.Exclude, config.DescriptorSuffix)
	scanned, err := scanner.Scan(config.Patterns)
	if err != nil {
		return result, err
	}

	errs := errors.NewMultipleErrors()
	for _, source := range scanned.Sources {
		generated := generateFile(c.specGenerator, config, source)
		if generated.skipReason != "" {
			continue
		}
		if generated.err != nil {
			errs.Add(generated.err)
			continue
		}

		specPath := generated.spec.FilePath
		existing, err := os.ReadFile(specPath)
		if err != nil {
			if !stderrors.Is(err, os.ErrNotExist) {
				errs.Add(errors.WrapFileSystemError("read", specPath, err))
			}
			continue
		}

		if string(existing) != generated.spec.Content {
			result.Kept = append(result.Kept, specPath)
			continue
		}

		if err := os.Remove(specPath); err != nil {
			errs.Add(errors.WrapFileSystemError("remove", specPath, err))
			continue
		}
		result.Removed = append(result.Removed, specPath)
	}

	return result, errs.ErrorOrNil()
}
