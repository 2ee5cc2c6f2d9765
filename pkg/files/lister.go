package files

import "context"

// Lister reads the immediate children of a directory.
// Failures are reported as *ListError.
type Lister interface {
	List(ctx context.Context, path string) ([]DirEntry, error)
}
