package templates

import (
	"fmt"
	"strings"
)

// namedImport is an `import { a, b } from 'source'` statement
type namedImport struct {
	source string
	names  []string
}

// ImportManager handles import generation and deduplication for a spec file
type ImportManager struct {
	imports      []*namedImport
	moduleImport string
}

// NewImportManager creates a new import manager
func NewImportManager() *ImportManager {
	return &ImportManager{
		imports: make([]*namedImport, 0),
	}
}

// SetModuleImport sets the statement importing the module under test
func (im *ImportManager) SetModuleImport(statement string) {
	im.moduleImport = statement
}

// AddNamedImport adds names imported from source. Sources keep the order they
// were first added in; names already imported from a source are skipped.
func (im *ImportManager) AddNamedImport(source string, names ...string) {
	if source == "" || len(names) == 0 {
		return
	}

	imp := im.find(source)
	if imp == nil {
		imp = &namedImport{source: source}
		im.imports = append(im.imports, imp)
	}

	for _, name := range names {
		if name != "" && !containsString(imp.names, name) {
			imp.names = append(imp.names, name)
		}
	}
}

// find returns the import for source, nil if none
func (im *ImportManager) find(source string) *namedImport {
	for _, imp := range im.imports {
		if imp.source == source {
			return imp
		}
	}
	return nil
}

// Lines returns one import statement per source, in insertion order
func (im *ImportManager) Lines() []string {
	lines := make([]string, 0, len(im.imports))
	for _, imp := range im.imports {
		lines = append(lines, fmt.Sprintf("import { %s } from '%s'", strings.Join(imp.names, ", "), imp.source))
	}
	return lines
}

// GenerateImports generates the import prologue: helper imports, a blank line,
// then the module import
func (im *ImportManager) GenerateImports() string {
	lines := im.Lines()
	lines = append(lines, "", im.moduleImport)
	return strings.Join(lines, "\n")
}

func containsString(list []string, value string) bool {
	for _, existing := range list {
		if existing == value {
			return true
		}
	}
	return false
}
