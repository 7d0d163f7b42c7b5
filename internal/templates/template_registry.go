package templates

import (
	"bytes"
	"text/template"

	"github.com/toyz/specgen/internal/errors"
)

// Template names
const (
	VariableTemplate       = "variable"
	ClassTemplate          = "class"
	FunctionTemplate       = "function"
	ComposableTestTemplate = "composable-test"
	PlainTestTemplate      = "plain-test"
)

// TemplateRegistry provides a centralized way to access all templates
type TemplateRegistry struct {
	templates map[string]string
}

// NewTemplateRegistry creates a new template registry with all templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]string),
	}

	registry.registerIdentifierTemplates()
	registry.registerFunctionTestTemplates()

	return registry
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (string, bool) {
	tpl, exists := tr.templates[name]
	return tpl, exists
}

// Execute renders the named template with data
func (tr *TemplateRegistry) Execute(name string, data interface{}) (string, error) {
	tpl, exists := tr.Get(name)
	if !exists {
		return "", errors.Newf(errors.TemplateErrorCode, "template not found: %s", name)
	}
	return ExecuteTemplate(name, tpl, data)
}

// registerIdentifierTemplates registers the describe blocks, one per identifier kind.
// Output is vitest source; indentation places each block inside a category describe.
func (tr *TemplateRegistry) registerIdentifierTemplates() {
	tr.templates[VariableTemplate] = `
    describe('{{.TestID}}', () => {
      test.todo('is defined correctly', () => {
        expect({{.Accessor}}).toBeTypeOf('object')
        expect(Object.keys({{.Accessor}})).not.toHaveLength(0)
      })
    })
`

	tr.templates[ClassTemplate] = `
    describe('{{.TestID}}', () => {
      test.todo('can be instantiated', () => {
        const instance = new {{.Accessor}}({{.ConstructorParams}})

        // TODO: do something with "instance"
        expect(instance).toBeDefined() // this is here for linting only
      })
    })
`

	tr.templates[FunctionTemplate] = `
    describe('{{.TestID}}', () => {
      {{.Body}}
    })
`
}

// registerFunctionTestTemplates registers the test bodies used inside a function block.
// Keep ComposableTestTemplate in sync with the imports added by NeedsMount.
func (tr *TemplateRegistry) registerFunctionTestTemplates() {
	tr.templates[ComposableTestTemplate] = `test.todo('can be used in a Vue Component', () => {
        const wrapper = mount(
          defineComponent({
            template: '<div />',
            setup () {
              {{if .Lint}}// eslint-disable-next-line
              {{end}}const result = {{.Accessor}}({{.Params}})
              return { result }
            }
          })
        )

        // TODO: test the outcome
        expect(wrapper).toBeDefined() // this is here for lint only
      })`

	tr.templates[PlainTestTemplate] = `test.todo('has correct return value', () => {
        {{if .Lint}}// eslint-disable-next-line
        {{end}}const result = {{.Accessor}}({{.Params}})
        expect(result).toBeDefined()
      })`
}

// ExecuteTemplate parses and renders a template string
func ExecuteTemplate(name, templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return "", errors.WrapTemplateError(name, "parse", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.WrapTemplateError(name, "execute", err)
	}

	return buf.String(), nil
}

// DefaultTemplateRegistry provides a global instance for convenience
var DefaultTemplateRegistry = NewTemplateRegistry()
