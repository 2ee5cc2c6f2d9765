// Package ftnav owns the navigation state of the explorer: which directory is
// shown, under which label, and what it contains.
package ftnav

import "github.com/filetug/ftexplorer/pkg/files"

// DefaultLabel is the label shown before the first navigation.
const DefaultLabel = "Favorites"

// State is a consistent snapshot: Entries is always the listing of Path.
type State struct {
	Label   string
	Path    string
	Entries []files.DirEntry
}

// Navigated reports whether any navigation has succeeded yet.
func (s State) Navigated() bool {
	return s.Path != ""
}

func (s State) clone() State {
	entries := make([]files.DirEntry, len(s.Entries))
	copy(entries, s.Entries)
	s.Entries = entries
	return s
}

// Request asks the navigator to show Path under Label.
type Request struct {
	Label string
	Path  string
}
