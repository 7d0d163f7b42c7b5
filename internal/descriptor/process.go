// Package descriptor loads module descriptors and prepares them for generation.
package descriptor

import (
	"regexp"

	"github.com/toyz/specgen/internal/models"
)

var (
	// component prop and emit type declarations are not runtime values
	typeOnlyExportRE = regexp.MustCompile(`(Props|Emits)$`)

	// matched against raw source text, not a resolved import graph
	componentHostRE = regexp.MustCompile(`import \{.+(on[A-Z][A-Za-z]*|getCurrentInstance).+\} from 'vue'`)
)

// IsTypeOnlyExport checks if an exported name is a props or emits type declaration
func IsTypeOnlyExport(name string) bool {
	return typeOnlyExportRE.MatchString(name)
}

// IsComponentHost checks if the source imports lifecycle hooks or
// getCurrentInstance from vue
func IsComponentHost(source string) bool {
	return componentHostRE.MatchString(source)
}

// Process returns a copy of raw prepared for generation. Type-only exports are
// dropped from the named exports and the variables, an empty variables map
// becomes nil, and ComponentHost is computed from source. raw is not modified.
func Process(raw *models.Descriptor, source string) *models.Descriptor {
	d := raw.Clone()

	if d.Variables == nil {
		d.Variables = make(map[string]models.Entry)
	}

	namedExports := make([]string, 0, len(d.NamedExports))
	for _, name := range d.NamedExports {
		if IsTypeOnlyExport(name) {
			delete(d.Variables, name)
			continue
		}
		namedExports = append(namedExports, name)
	}
	d.NamedExports = namedExports

	for name := range d.Variables {
		if IsTypeOnlyExport(name) {
			delete(d.Variables, name)
		}
	}

	if len(d.Variables) == 0 {
		d.Variables = nil
	}

	d.ComponentHost = IsComponentHost(source)

	return d
}
