// Package files defines directory listing types shared by listers and the
// navigation state.
package files

import (
	"time"
)

// DirEntry is an immediate child of a listed directory.
// Size and ModTime are meaningful only when HasInfo is true.
type DirEntry struct {
	Path    string
	Name    string
	IsDir   bool
	Size    uint64
	ModTime time.Time
	HasInfo bool
}

type DirEntryOption func(*DirEntry)

func Size(v uint64) DirEntryOption {
	return func(e *DirEntry) {
		e.Size = v
		e.HasInfo = true
	}
}

func ModTime(v time.Time) DirEntryOption {
	return func(e *DirEntry) {
		e.ModTime = v
		e.HasInfo = true
	}
}

func NewDirEntry(path, name string, isDir bool, o ...DirEntryOption) DirEntry {
	entry := DirEntry{
		Path:  path,
		Name:  name,
		IsDir: isDir,
	}
	for _, opt := range o {
		opt(&entry)
	}
	return entry
}
