package ports

import "iter"

// Walker lists the files below a directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=walker.go -destination=mocks/mock_walker.go -package=mocks
type Walker interface {
	// WalkFiles yields every regular file below root, skipping VCS metadata
	// and names matching ignores.
	WalkFiles(root string, ignores []string) iter.Seq[string]
}
