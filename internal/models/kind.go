package models

// Kind identifies the kind of an exported identifier
type Kind int

const (
	KindVariable Kind = iota
	KindClass
	KindFunction
)

// Kinds lists every kind in generation order
var Kinds = []Kind{KindVariable, KindClass, KindFunction}

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindVariable:
		return "variable"
	case KindClass:
		return "class"
	case KindFunction:
		return "function"
	default:
		return "unknown"
	}
}
