package ports

// InputResolver expands input patterns into concrete files.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type InputResolver interface {
	// ResolveInputs resolves glob patterns relative to root into sorted, unique paths.
	ResolveInputs(inputs []string, root string) ([]string, error)
}
