package cli

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/toyz/specgen/internal/errors"
)

// SourceScanner expands source patterns into the module files to generate specs for
type SourceScanner struct {
	excludes         []string
	descriptorSuffix string
}

// NewSourceScanner creates a new source scanner
func NewSourceScanner(excludes []string, descriptorSuffix string) *SourceScanner {
	return &SourceScanner{
		excludes:         excludes,
		descriptorSuffix: descriptorSuffix,
	}
}

// ScanResult holds the sources found and the patterns that matched nothing
type ScanResult struct {
	Sources   []string
	Unmatched []string
}

// Scan resolves plain paths and doublestar globs like "src/**/*.js" into a
// sorted, de-duplicated list of regular files
func (s *SourceScanner) Scan(patterns []string) (*ScanResult, error) {
	seen := make(map[string]bool)
	result := &ScanResult{}

	for _, pattern := range patterns {
		if !doublestar.ValidatePathPattern(pattern) {
			return nil, errors.WrapParseError("pattern '"+pattern+"'", doublestar.ErrBadPattern).
				WithSuggestions("Check for unbalanced brackets or braces")
		}

		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, errors.WrapParseError("pattern '"+pattern+"'", err).
				WithSuggestions("Quote globs so the shell does not expand them", "Check for unbalanced brackets or braces")
		}

		matched := false
		for _, match := range matches {
			if !s.accepts(match) {
				continue
			}

			info, err := os.Stat(match)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}

			matched = true
			if !seen[match] {
				seen[match] = true
				result.Sources = append(result.Sources, match)
			}
		}

		if !matched {
			result.Unmatched = append(result.Unmatched, pattern)
		}
	}

	sort.Strings(result.Sources)
	return result, nil
}

// accepts checks a path against the descriptor suffix and the exclude patterns
func (s *SourceScanner) accepts(path string) bool {
	if s.descriptorSuffix != "" && strings.HasSuffix(path, s.descriptorSuffix) {
		return false
	}

	// patterns are relative, so match absolute paths from their first component
	slashPath := strings.TrimPrefix(filepath.ToSlash(path), "/")
	for _, pattern := range s.excludes {
		matched, err := doublestar.Match(pattern, slashPath)
		if err != nil {
			continue
		}
		if matched {
			return false
		}
	}
	return true
}
