package descriptor

import (
	"encoding/json"

	"github.com/toyz/specgen/internal/errors"
	"github.com/toyz/specgen/internal/models"
)

// Decode parses descriptor JSON without post-processing it
func Decode(data []byte) (*models.Descriptor, error) {
	var d models.Descriptor

	if err := json.Unmarshal(data, &d); err != nil {
		return nil, errors.WrapParseError("module descriptor", err).
			WithSuggestions("Regenerate the descriptor from the module source")
	}

	// computed from source, never trusted from input
	d.ComponentHost = false

	if d.NamedExports == nil {
		d.NamedExports = make([]string, 0)
	}

	return &d, nil
}

// Load decodes the descriptor carried by ctx and prepares it for generation
func Load(ctx *models.Context) (*models.Descriptor, error) {
	raw, err := Decode(ctx.DescriptorJSON)
	if err != nil {
		if be, ok := err.(*errors.BaseError); ok && ctx.TargetPath != "" {
			be.WithLocation(errors.SourceLocation{File: ctx.TargetPath})
		}
		return nil, err
	}

	return Process(raw, ctx.TargetContent), nil
}
