package templates

import (
	"fmt"

	"github.com/toyz/specgen/internal/models"
)

// TestInput is what a test generator receives for one exported identifier
type TestInput struct {
	TestID     string
	Entry      models.Entry
	Descriptor *models.Descriptor
}

// TestGenerator renders the describe block for one identifier
type TestGenerator func(registry *TemplateRegistry, in TestInput) (string, error)

// Identifier describes how one kind of exported identifier is scaffolded
type Identifier struct {
	Kind       models.Kind
	CategoryID string
	createTest TestGenerator
}

// TestID returns the describe title for the named identifier
func (i Identifier) TestID(name string) string {
	return fmt.Sprintf("[(%s)%s]", i.Kind, name)
}

// CreateTest renders the describe block for one entry with the default registry
func (i Identifier) CreateTest(in TestInput) (string, error) {
	return i.createTest(DefaultTemplateRegistry, in)
}

// CreateTestWith renders the describe block for one entry with the given registry
func (i Identifier) CreateTestWith(registry *TemplateRegistry, in TestInput) (string, error) {
	return i.createTest(registry, in)
}

var identifiers = []Identifier{
	{Kind: models.KindVariable, CategoryID: "[Variables]", createTest: VariableTest},
	{Kind: models.KindClass, CategoryID: "[Classes]", createTest: ClassTest},
	{Kind: models.KindFunction, CategoryID: "[Functions]", createTest: FunctionTest},
}

// Identifiers returns every identifier kind in generation order
func Identifiers() []Identifier {
	result := make([]Identifier, len(identifiers))
	copy(result, identifiers)
	return result
}

// IdentifierFor returns the identifier definition of a kind
func IdentifierFor(kind models.Kind) (Identifier, bool) {
	for _, id := range identifiers {
		if id.Kind == kind {
			return id, true
		}
	}
	return Identifier{}, false
}

type testData struct {
	TestID            string
	Accessor          string
	Params            string
	ConstructorParams string
	Lint              bool
	Body              string
}

func newTestData(in TestInput) testData {
	return testData{
		TestID:            in.TestID,
		Accessor:          in.Entry.Accessor,
		Params:            in.Entry.Params,
		ConstructorParams: in.Entry.ConstructorParams,
		Lint:              in.Entry.HasParams(),
	}
}

// VariableTest renders the block checking an exported object is populated
func VariableTest(registry *TemplateRegistry, in TestInput) (string, error) {
	return registry.Execute(VariableTemplate, newTestData(in))
}

// ClassTest renders the block constructing an instance of an exported class
func ClassTest(registry *TemplateRegistry, in TestInput) (string, error) {
	return registry.Execute(ClassTemplate, newTestData(in))
}

// FunctionTest renders the block invoking an exported function, inside a
// host component when the function is a composable of a component host
func FunctionTest(registry *TemplateRegistry, in TestInput) (string, error) {
	data := newTestData(in)

	bodyTemplate := PlainTestTemplate
	if in.Descriptor != nil && IsComposable(in.Descriptor, in.Entry) {
		bodyTemplate = ComposableTestTemplate
	}

	body, err := registry.Execute(bodyTemplate, data)
	if err != nil {
		return "", err
	}
	data.Body = body

	return registry.Execute(FunctionTemplate, data)
}
