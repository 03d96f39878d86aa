package ports

// Hasher defines the interface for computing content hashes.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFileHash returns the hash of a file's content.
	ComputeFileHash(path string) (uint64, error)

	// ComputeFilesHash returns one hex digest over the paths and contents of files.
	ComputeFilesHash(paths []string) (string, error)
}
