package files

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

type ErrorKind int

const (
	Other ErrorKind = iota
	NotFound
	PermissionDenied
	NotADirectory
)

func (k ErrorKind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case PermissionDenied:
		return "permission denied"
	case NotADirectory:
		return "not a directory"
	default:
		return "failed"
	}
}

var (
	ErrNotFound         = errors.New(NotFound.String())
	ErrPermissionDenied = errors.New(PermissionDenied.String())
	ErrNotADirectory    = errors.New(NotADirectory.String())
)

// ListError is returned when a directory cannot be listed.
type ListError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *ListError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *ListError) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels, so errors.Is(err, files.ErrNotFound) works
// for any wrapped ListError.
func (e *ListError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == NotFound
	case ErrPermissionDenied:
		return e.Kind == PermissionDenied
	case ErrNotADirectory:
		return e.Kind == NotADirectory
	default:
		return false
	}
}

// NewListError classifies an OS error for path.
func NewListError(path string, err error) *ListError {
	var listErr *ListError
	if errors.As(err, &listErr) {
		return listErr
	}
	return &ListError{Kind: KindOf(err), Path: path, Err: err}
}

// KindOf maps an OS error to an ErrorKind.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return Other
	case errors.Is(err, fs.ErrNotExist):
		return NotFound
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied
	case errors.Is(err, syscall.ENOTDIR):
		return NotADirectory
	default:
		return Other
	}
}
