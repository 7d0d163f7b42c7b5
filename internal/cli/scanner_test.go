package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFiles creates files (and their directories) relative to root
func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func TestSourceScanner_Scan(t *testing.T) {
	// root/
	//   ├── src/
	//   │   ├── use-counter.js
	//   │   ├── use-counter.js.json (descriptor, skipped)
	//   │   ├── use-counter.test.js (spec, skipped)
	//   │   └── utils/format.js
	//   └── node_modules/lib/index.js (skipped)
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"src/use-counter.js":            "export function useCounter () {}",
		"src/use-counter.js.json":       "{}",
		"src/use-counter.test.js":       "",
		"src/utils/format.js":           "export function format () {}",
		"node_modules/lib/index.js":     "",
		"src/__tests__/helpers/util.js": "",
	})

	scanner := NewSourceScanner(DefaultExcludes, DefaultDescriptorSuffix)

	result, err := scanner.Scan([]string{
		filepath.Join(root, "**", "*.js"),
		filepath.Join(root, "src", "use-counter.js"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "src", "use-counter.js"),
		filepath.Join(root, "src", "utils", "format.js"),
	}, result.Sources)

	assert.Empty(t, result.Unmatched)
}

func TestSourceScanner_UnmatchedPattern(t *testing.T) {
	root := t.TempDir()
	scanner := NewSourceScanner(DefaultExcludes, DefaultDescriptorSuffix)

	missing := filepath.Join(root, "missing.js")
	result, err := scanner.Scan([]string{missing})
	require.NoError(t, err)

	assert.Empty(t, result.Sources)
	assert.Equal(t, []string{missing}, result.Unmatched)
}

func TestSourceScanner_SkipsDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dir.js"), 0755))

	scanner := NewSourceScanner(nil, DefaultDescriptorSuffix)
	result, err := scanner.Scan([]string{filepath.Join(root, "*.js")})
	require.NoError(t, err)

	assert.Empty(t, result.Sources)
}

func TestSourceScanner_InvalidPattern(t *testing.T) {
	scanner := NewSourceScanner(nil, DefaultDescriptorSuffix)

	_, err := scanner.Scan([]string{"src/[.js"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse pattern")
}
