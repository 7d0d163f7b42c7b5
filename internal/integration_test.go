package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/specgen/internal/descriptor"
	"github.com/toyz/specgen/internal/generator"
	"github.com/toyz/specgen/internal/models"
	"github.com/toyz/specgen/internal/templates"
)

// TestComposableGenerationIntegration tests the complete flow from descriptor
// JSON to spec text for a module mixing every identifier kind
func TestComposableGenerationIntegration(t *testing.T) {
	source := `import { ref, getCurrentInstance } from 'vue'

export const QDialogProps = {}
export const QDialogEmits = []
export const dialogDefaults = { persistent: false }

export class DialogPlugin {
  constructor (opts) {}
}

export function useDialog (opts) {
  const vm = getCurrentInstance()
  return ref(vm !== null)
}

export function createDialog () {}

export default {}
`

	descriptorJSON := `{
  "defaultExport": true,
  "namedExports": ["QDialogProps", "QDialogEmits", "dialogDefaults", "DialogPlugin", "useDialog", "createDialog"],
  "variables": {
    "QDialogProps": { "accessor": "QDialogProps" },
    "QDialogEmits": { "accessor": "QDialogEmits" },
    "dialogDefaults": { "accessor": "dialogDefaults" }
  },
  "classes": {
    "DialogPlugin": { "accessor": "DialogPlugin", "constructorParams": "{ persistent: true }" }
  },
  "functions": {
    "useDialog": { "accessor": "useDialog", "params": "{}" },
    "createDialog": { "accessor": "createDialog" }
  }
}`

	ctx := models.NewContext("src/composables/use-dialog.js", source, []byte(descriptorJSON))

	d, err := descriptor.Load(ctx)
	require.NoError(t, err)
	require.True(t, d.ComponentHost)
	assert.Equal(t, []string{"dialogDefaults", "DialogPlugin", "useDialog", "createDialog"}, d.NamedExports)

	header := templates.FileHeader(ctx, d)
	headerLines := strings.Split(header, "\n")
	assert.Equal(t, []string{
		"import { describe, test, expect } from 'vitest'",
		"import { mount } from '@vue/test-utils'",
		"import { defineComponent } from 'vue'",
		"",
		"import UseDialog, { dialogDefaults, DialogPlugin, useDialog, createDialog } from './use-dialog.js'",
	}, headerLines)

	spec, err := generator.NewGenerator().GenerateFromDescriptor(ctx, d)
	require.NoError(t, err)

	content := spec.Content
	assert.True(t, strings.HasPrefix(content, header+"\n\n"))
	assert.NotContains(t, content, "QDialogProps")
	assert.NotContains(t, content, "QDialogEmits")
	assert.Contains(t, content, "describe('[(variable)dialogDefaults]'")
	assert.Contains(t, content, "const instance = new DialogPlugin({ persistent: true })")
	assert.Contains(t, content, "// eslint-disable-next-line\n              const result = useDialog({})")
	assert.Contains(t, content, "        const result = createDialog()\n        expect(result).toBeDefined()")
	assert.Equal(t, 1, strings.Count(content, "mount("))
	assert.Equal(t, 4, spec.TotalBlocks())
}

// TestPlainModuleIntegration checks that a composable name alone does not pull
// in the host component scaffold
func TestPlainModuleIntegration(t *testing.T) {
	source := "import { ref } from 'vue'\nexport function useCounter () { return ref(0) }\n"
	descriptorJSON := `{"namedExports": ["useCounter"], "functions": {"useCounter": {"accessor": "useCounter"}}}`

	ctx := models.NewContext("use-counter.js", source, []byte(descriptorJSON))

	spec, err := generator.NewGenerator().Generate(ctx)
	require.NoError(t, err)

	assert.False(t, spec.Descriptor.ComponentHost)
	assert.Nil(t, spec.Descriptor.Variables)
	assert.NotContains(t, spec.Content, "@vue/test-utils")
	assert.NotContains(t, spec.Content, "defineComponent")
	assert.Contains(t, spec.Content, "const result = useCounter()")
}
