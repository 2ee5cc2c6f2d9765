//go:build windows

package ftpaths

const trashRelPath = "Trash"
