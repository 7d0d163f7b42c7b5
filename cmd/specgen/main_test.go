package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeModule(t *testing.T, dir, name, source, descriptor string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(source), 0644))
	require.NoError(t, os.WriteFile(path+".json", []byte(descriptor), 0644))
	return path
}

// TestCLIArgumentParsing tests the CLI argument handling
func TestCLIArgumentParsing(t *testing.T) {
	t.Run("help flag", func(t *testing.T) {
		code, _, stderr := runCLI(t, "--help")

		assert.Equal(t, 0, code)
		assert.Contains(t, stderr, "Usage:")
		assert.Contains(t, stderr, "Spec Scaffolding Generator")
		assert.Contains(t, stderr, "--out")
		assert.Contains(t, stderr, "source-patterns")
	})

	t.Run("no arguments", func(t *testing.T) {
		code, _, stderr := runCLI(t)

		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "At least one source pattern is required")
	})

	t.Run("unknown flag", func(t *testing.T) {
		code, _, _ := runCLI(t, "--bogus", "a.js")
		assert.Equal(t, 1, code)
	})

	t.Run("nothing matches", func(t *testing.T) {
		code, stdout, stderr := runCLI(t, filepath.Join(t.TempDir(), "*.js"))

		assert.Equal(t, 1, code)
		assert.Contains(t, stdout, "No source files match")
		assert.Contains(t, stderr, "No source files found")
	})

	t.Run("missing config file", func(t *testing.T) {
		code, _, stderr := runCLI(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "a.js")

		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "Invalid configuration")
	})
}

func TestCLIGenerate(t *testing.T) {
	dir := t.TempDir()
	source := writeModule(t, dir, "use-counter.js",
		"import { onMounted } from 'vue'\nexport function useCounter () {}\n",
		`{"namedExports": ["useCounter"], "functions": {"useCounter": {"accessor": "useCounter"}}}`)

	code, stdout, _ := runCLI(t, "--out", "__tests__", source)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "Generation Complete!")
	assert.Contains(t, stdout, "Specs generated: 1")

	specPath := filepath.Join(dir, "__tests__", "use-counter.test.js")
	content, err := os.ReadFile(specPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "import { useCounter } from '../use-counter.js'")

	code, stdout, _ = runCLI(t, "--clean", "--out", "__tests__", source)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "Removed 1 spec files")
	assert.NoFileExists(t, specPath)
}

func TestCLIStdout(t *testing.T) {
	dir := t.TempDir()
	source := writeModule(t, dir, "store.js",
		"export class Store {}\n",
		`{"namedExports": ["Store"], "classes": {"Store": {"accessor": "Store", "constructorParams": "{}"}}}`)

	code, stdout, stderr := runCLI(t, "--stdout", source)
	require.Equal(t, 0, code)

	assert.Contains(t, stdout, "const instance = new Store({})")
	assert.NotContains(t, stdout, "Generation Complete!")
	assert.Contains(t, stderr, "Generation Complete!")
	assert.NoFileExists(t, filepath.Join(dir, "store.test.js"))
}

func TestCLIConfigFile(t *testing.T) {
	dir := t.TempDir()
	source := writeModule(t, dir, "format.js",
		"export function format (a, b) {}\n",
		`{"namedExports": ["format"], "functions": {"format": {"accessor": "format", "params": "1, 2"}}}`)

	configPath := filepath.Join(dir, "specgen.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("specSuffix: .spec.js\n"), 0644))

	code, _, _ := runCLI(t, "--config", configPath, "--quiet", source)
	require.Equal(t, 0, code)

	content, err := os.ReadFile(filepath.Join(dir, "format.spec.js"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "// eslint-disable-next-line\n        const result = format(1, 2)")
}
