//go:build !windows

package ftpaths

import "path/filepath"

// freedesktop.org trash layout
var trashRelPath = filepath.Join("Trash", "files")
