package generator

import "github.com/toyz/specgen/internal/models"

// SpecGenerator defines the interface for generating spec files from module descriptors
type SpecGenerator interface {
	Generate(ctx *models.Context) (*models.GeneratedSpec, error)
	GenerateFromDescriptor(ctx *models.Context, d *models.Descriptor) (*models.GeneratedSpec, error)
}
