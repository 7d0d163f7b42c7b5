package models

// Entry holds the per-identifier metadata extracted from a source module
type Entry struct {
	Accessor          string `json:"accessor"`
	Params            string `json:"params,omitempty"`            // functions only
	ConstructorParams string `json:"constructorParams,omitempty"` // classes only
}

// HasParams reports whether invoking the entry passes any arguments
func (e Entry) HasParams() bool {
	return e.Params != ""
}

// Descriptor is the statically-analyzed shape of one source module.
// A nil Variables, Classes or Functions map means the kind is absent.
type Descriptor struct {
	DefaultExport bool             `json:"defaultExport,omitempty"`
	NamedExports  []string         `json:"namedExports"`
	Variables     map[string]Entry `json:"variables,omitempty"`
	Classes       map[string]Entry `json:"classes,omitempty"`
	Functions     map[string]Entry `json:"functions,omitempty"`

	// ComponentHost is computed from the module source, never read from JSON
	ComponentHost bool `json:"componentHost"`
}

// HasNamedExport checks if name is part of the named exports
func (d *Descriptor) HasNamedExport(name string) bool {
	for _, existing := range d.NamedExports {
		if existing == name {
			return true
		}
	}
	return false
}

// EntriesOf returns the entries for the given kind
func (d *Descriptor) EntriesOf(kind Kind) map[string]Entry {
	switch kind {
	case KindVariable:
		return d.Variables
	case KindClass:
		return d.Classes
	case KindFunction:
		return d.Functions
	default:
		return nil
	}
}

// Clone returns a deep copy of the descriptor
func (d *Descriptor) Clone() *Descriptor {
	clone := &Descriptor{
		DefaultExport: d.DefaultExport,
		ComponentHost: d.ComponentHost,
		Variables:     cloneEntries(d.Variables),
		Classes:       cloneEntries(d.Classes),
		Functions:     cloneEntries(d.Functions),
	}

	if d.NamedExports != nil {
		clone.NamedExports = make([]string, len(d.NamedExports))
		copy(clone.NamedExports, d.NamedExports)
	}

	return clone
}

func cloneEntries(entries map[string]Entry) map[string]Entry {
	if entries == nil {
		return nil
	}

	clone := make(map[string]Entry, len(entries))
	for name, entry := range entries {
		clone[name] = entry
	}
	return clone
}
