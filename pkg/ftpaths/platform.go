package ftpaths

import (
	"errors"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/filetug/ftexplorer/pkg/ftsettings"
)

// PlatformPaths answers the OS-specific directory questions.
type PlatformPaths interface {
	HomeDir() (string, error)
	DocumentsDir() (string, error)
	DownloadsDir() (string, error)
	MusicDir() (string, error)
	PicturesDir() (string, error)
	VideosDir() (string, error)
	AppDataDir() (string, error)
	TrashDir() (string, error)
}

var errNotSet = errors.New("not set")

// NewPlatformPaths returns the PlatformPaths of the running OS.
func NewPlatformPaths() PlatformPaths {
	xdg.Reload()
	return xdgPaths{
		home:     xdg.Home,
		dataHome: xdg.DataHome,
		user:     xdg.UserDirs,
	}
}

type xdgPaths struct {
	home     string
	dataHome string
	user     xdg.UserDirectories
}

func nonEmpty(p string) (string, error) {
	if p == "" {
		return "", errNotSet
	}
	return p, nil
}

func (p xdgPaths) HomeDir() (string, error)      { return nonEmpty(p.home) }
func (p xdgPaths) DocumentsDir() (string, error) { return nonEmpty(p.user.Documents) }
func (p xdgPaths) DownloadsDir() (string, error) { return nonEmpty(p.user.Download) }
func (p xdgPaths) MusicDir() (string, error)     { return nonEmpty(p.user.Music) }
func (p xdgPaths) PicturesDir() (string, error)  { return nonEmpty(p.user.Pictures) }
func (p xdgPaths) VideosDir() (string, error)    { return nonEmpty(p.user.Videos) }

func (p xdgPaths) AppDataDir() (string, error) {
	if p.dataHome == "" {
		return "", errNotSet
	}
	return filepath.Join(p.dataHome, ftsettings.AppDirName), nil
}

func (p xdgPaths) TrashDir() (string, error) {
	if p.dataHome == "" {
		return "", errNotSet
	}
	return filepath.Join(p.dataHome, trashRelPath), nil
}
