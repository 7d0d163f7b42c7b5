package models

import (
	"path/filepath"
	"strings"
	"unicode"
)

// Context carries everything a single generation pass needs about the
// module under test
type Context struct {
	// TargetPath is the path of the source module
	TargetPath string

	// TargetContent is the raw source text of the module
	TargetContent string

	// DescriptorJSON is the AST-derived JSON description of the module
	DescriptorJSON []byte

	// ImportPath is the module specifier the spec file imports the module with
	ImportPath string

	// PascalName is the binding used for a default export
	PascalName string
}

// NewContext creates a context for a spec file living beside its module
func NewContext(targetPath, targetContent string, descriptorJSON []byte) *Context {
	base := filepath.Base(targetPath)
	return &Context{
		TargetPath:     targetPath,
		TargetContent:  targetContent,
		DescriptorJSON: descriptorJSON,
		ImportPath:     "./" + base,
		PascalName:     BindingName(strings.TrimSuffix(base, filepath.Ext(base))),
	}
}

// PascalCase converts a file name like "use-counter" or "q_btn" to "UseCounter" / "QBtn"
func PascalCase(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var result strings.Builder
	for _, part := range parts {
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		result.WriteString(string(runes))
	}
	return result.String()
}

// FallbackBinding names the default export of a module whose file name has no
// letters or digits
const FallbackBinding = "Module"

// BindingName returns PascalCase(name) as a valid JavaScript identifier
func BindingName(name string) string {
	binding := PascalCase(name)
	if binding == "" {
		return FallbackBinding
	}
	if unicode.IsDigit([]rune(binding)[0]) {
		return "_" + binding
	}
	return binding
}
