package templates

import (
	"fmt"
	"strings"

	"github.com/toyz/specgen/internal/models"
)

// Module specifiers referenced by generated spec files
const (
	TestFrameworkModule = "vitest"
	MountHelperModule   = "@vue/test-utils"
	VueModule           = "vue"
)

// FileHeader returns the import prologue of the spec file for d
func FileHeader(ctx *models.Context, d *models.Descriptor) string {
	im := NewImportManager()
	im.AddNamedImport(TestFrameworkModule, "describe", "test", "expect")

	if NeedsMount(d) {
		im.AddNamedImport(MountHelperModule, "mount")
		im.AddNamedImport(VueModule, "defineComponent")
	}

	im.SetModuleImport(ModuleImportStatement(ctx, d))

	return im.GenerateImports()
}

// ModuleImportStatement returns the statement importing the module under test,
// binding the default export and every named export
func ModuleImportStatement(ctx *models.Context, d *models.Descriptor) string {
	var bindings []string

	if d.DefaultExport {
		bindings = append(bindings, ctx.PascalName)
	}

	if len(d.NamedExports) > 0 {
		bindings = append(bindings, fmt.Sprintf("{ %s }", strings.Join(d.NamedExports, ", ")))
	}

	if len(bindings) == 0 {
		return fmt.Sprintf("import '%s'", ctx.ImportPath)
	}

	return fmt.Sprintf("import %s from '%s'", strings.Join(bindings, ", "), ctx.ImportPath)
}
