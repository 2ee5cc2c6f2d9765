package ftpaths

import "fmt"

// EnvironmentError means a required user directory could not be determined.
// It is fatal for startup.
type EnvironmentError struct {
	Label Label
	Err   error
}

func (e *EnvironmentError) Error() string {
	return fmt.Sprintf("failed to determine %s directory: %v", e.Label, e.Err)
}

func (e *EnvironmentError) Unwrap() error {
	return e.Err
}

// DirectoryCreationError is reported when a synthesized location could not be
// created. The location is registered regardless.
type DirectoryCreationError struct {
	Label Label
	Path  string
	Err   error
}

func (e *DirectoryCreationError) Error() string {
	return fmt.Sprintf("failed to create %s directory %s: %v", e.Label, e.Path, e.Err)
}

func (e *DirectoryCreationError) Unwrap() error {
	return e.Err
}
