package models

// GeneratedSpec represents a generated spec file
type GeneratedSpec struct {
	SourcePath string       // path of the module under test
	FilePath   string       // path where the spec should be written, empty for stdout
	Content    string       // generated vitest source
	Descriptor *Descriptor  // descriptor after post-processing
	Counts     map[Kind]int // generated blocks per identifier kind
}

// TotalBlocks returns the number of generated identifier blocks
func (g *GeneratedSpec) TotalBlocks() int {
	total := 0
	for _, count := range g.Counts {
		total += count
	}
	return total
}
