package generator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/toyz/specgen/internal/descriptor"
	"github.com/toyz/specgen/internal/errors"
	"github.com/toyz/specgen/internal/models"
	"github.com/toyz/specgen/internal/templates"
)

// Generator implements the SpecGenerator interface
type Generator struct {
	registry *templates.TemplateRegistry
}

// NewGenerator creates a new spec generator using the default templates
func NewGenerator() *Generator {
	return &Generator{
		registry: templates.DefaultTemplateRegistry,
	}
}

// Generate loads the descriptor carried by ctx and renders the complete spec file
func (g *Generator) Generate(ctx *models.Context) (*models.GeneratedSpec, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}

	d, err := descriptor.Load(ctx)
	if err != nil {
		return nil, err
	}

	return g.GenerateFromDescriptor(ctx, d)
}

// GenerateFromDescriptor renders the complete spec file for an already processed descriptor
func (g *Generator) GenerateFromDescriptor(ctx *models.Context, d *models.Descriptor) (*models.GeneratedSpec, error) {
	if ctx == nil || d == nil {
		return nil, fmt.Errorf("context and descriptor cannot be nil")
	}

	spec := &models.GeneratedSpec{
		SourcePath: ctx.TargetPath,
		Descriptor: d,
		Counts:     make(map[models.Kind]int),
	}

	var content strings.Builder
	content.WriteString(templates.FileHeader(ctx, d))
	content.WriteString("\n\n")
	content.WriteString(fmt.Sprintf("describe('[%s API]', () => {\n", ctx.PascalName))

	first := true
	for _, id := range templates.Identifiers() {
		entries := d.EntriesOf(id.Kind)
		if len(entries) == 0 {
			continue
		}

		if !first {
			content.WriteString("\n")
		}
		first = false

		block, err := g.generateCategory(id, entries, d)
		if err != nil {
			return nil, errors.WrapGenerateError(id.CategoryID, err).
				WithLocation(errors.SourceLocation{File: ctx.TargetPath})
		}

		content.WriteString(block)
		spec.Counts[id.Kind] = len(entries)
	}

	content.WriteString("})\n")
	spec.Content = content.String()

	return spec, nil
}

// generateCategory renders one category describe holding a block per entry
func (g *Generator) generateCategory(id templates.Identifier, entries map[string]models.Entry, d *models.Descriptor) (string, error) {
	var category strings.Builder
	category.WriteString(fmt.Sprintf("  describe('%s', () => {", id.CategoryID))

	for _, name := range sortedNames(entries) {
		block, err := id.CreateTestWith(g.registry, templates.TestInput{
			TestID:     id.TestID(name),
			Entry:      entries[name],
			Descriptor: d,
		})
		if err != nil {
			return "", err
		}
		category.WriteString(block)
	}

	category.WriteString("  })\n")
	return category.String(), nil
}

// sortedNames returns the entry names in a stable order
func sortedNames(entries map[string]models.Entry) []string {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
