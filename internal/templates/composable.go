package templates

import (
	"regexp"

	"github.com/toyz/specgen/internal/models"
)

var composableRE = regexp.MustCompile(`use[A-Z]`)

// IsComposableName checks if an accessor follows the use<Name> convention
func IsComposableName(accessor string) bool {
	return composableRE.MatchString(accessor)
}

// IsComposable decides whether a function entry is scaffolded inside a host
// component. FunctionTest and NeedsMount must both go through here.
func IsComposable(d *models.Descriptor, entry models.Entry) bool {
	return d.ComponentHost && IsComposableName(entry.Accessor)
}

// NeedsMount checks if any function of the descriptor gets the host component scaffold
func NeedsMount(d *models.Descriptor) bool {
	if !d.ComponentHost || d.Functions == nil {
		return false
	}

	for _, entry := range d.Functions {
		if IsComposable(d, entry) {
			return true
		}
	}
	return false
}
