package fs

import (
	"path/filepath"
	"sort"

	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/plugkit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// Resolver implements the InputResolver interface using filepath.Glob.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveInputs resolves the given input patterns to a list of concrete file paths.
func (r *Resolver) ResolveInputs(inputs []string, root string) ([]string, error) {
	uniquePaths := make(map[string]bool)

	for _, input := range inputs {
		path := resolve(root, input)

		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", path)
		}

		if len(matches) == 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrInputNotFound, "failed to resolve inputs"), "path", path)
		}

		for _, match := range matches {
			uniquePaths[match] = true
		}
	}

	// Convert map to slice and sort
	result := make([]string, 0, len(uniquePaths))
	for path := range uniquePaths {
		result = append(result, path)
	}
	sort.Strings(result)

	return result, nil
}
