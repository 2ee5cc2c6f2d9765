// Package ftsettings reads the optional settings file of the explorer.
package ftsettings

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/filetug/ftexplorer/pkg/fsutils"
)

const (
	AppDirName       = "ftexplorer"
	SettingsFileName = "settings.yaml"
)

var xdgDataHome = func() string {
	return xdg.DataHome
}

// AppDataDir returns the directory that holds settings, logs and the
// recent/favorites folders.
func AppDataDir() (string, error) {
	dataHome := xdgDataHome()
	if dataHome == "" {
		return "", fmt.Errorf("data home directory is not known")
	}
	return filepath.Join(dataHome, AppDirName), nil
}

// Bookmark is an extra sidebar entry. It is never created on disk.
type Bookmark struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}

type Settings struct {
	LogLevel  string     `yaml:"log_level,omitempty"`
	LogFile   string     `yaml:"log_file,omitempty"`
	Watch     bool       `yaml:"watch,omitempty"`
	Bookmarks []Bookmark `yaml:"bookmarks,omitempty"`
}

var readYAML = fsutils.ReadYAMLFile

// Load reads settings from filePath. A missing file gives zero settings.
func Load(filePath string) (settings Settings, err error) {
	if err = readYAML(filePath, false, &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to read settings from %s: %w", filePath, err)
	}
	for i, b := range settings.Bookmarks {
		if b.Path == "" {
			return Settings{}, fmt.Errorf("bookmark #%d %q has no path", i+1, b.Label)
		}
	}
	return settings, nil
}

// ExpandedBookmarks returns the bookmarks with ~ expanded and labels
// defaulting to the last path element.
func (s Settings) ExpandedBookmarks() []Bookmark {
	if len(s.Bookmarks) == 0 {
		return nil
	}
	bookmarks := make([]Bookmark, len(s.Bookmarks))
	for i, b := range s.Bookmarks {
		b.Path = filepath.Clean(fsutils.ExpandHome(b.Path))
		if b.Label == "" {
			b.Label = filepath.Base(b.Path)
		}
		bookmarks[i] = b
	}
	return bookmarks
}
