package ftpaths

import (
	"context"
	"os"
	"path/filepath"

	"github.com/filetug/ftexplorer/pkg/fsutils"
	"github.com/rs/zerolog"
)

const (
	recentDirName        = "recent"
	favoritesDirName     = "favorites"
	fallbackTrashDirName = "Trash"
)

// Registry holds the resolved well-known locations. It is immutable.
type Registry struct {
	locations      []KnownLocation
	byLabel        map[Label]KnownLocation
	creationErrors []*DirectoryCreationError
}

// Lookup returns the location registered under label.
func (r *Registry) Lookup(label Label) (KnownLocation, bool) {
	loc, ok := r.byLabel[label]
	return loc, ok
}

// Locations returns all locations in sidebar order.
func (r *Registry) Locations() []KnownLocation {
	locations := make([]KnownLocation, len(r.locations))
	copy(locations, r.locations)
	return locations
}

// CreationErrors lists synthesized directories that could not be created.
func (r *Registry) CreationErrors() []*DirectoryCreationError {
	return r.creationErrors
}

type resolveOptions struct {
	logger     zerolog.Logger
	appDataDir string
	mkdirAll   func(path string, perm os.FileMode) error
	dirExists  func(path string) (bool, error)
}

type ResolveOption func(o *resolveOptions)

func WithLogger(logger zerolog.Logger) ResolveOption {
	return func(o *resolveOptions) {
		o.logger = logger
	}
}

// WithAppDataDir overrides the platform application data directory.
func WithAppDataDir(dir string) ResolveOption {
	return func(o *resolveOptions) {
		o.appDataDir = dir
	}
}

func WithMkdirAll(mkdirAll func(path string, perm os.FileMode) error) ResolveOption {
	return func(o *resolveOptions) {
		o.mkdirAll = mkdirAll
	}
}

// Resolve queries the platform for every well-known location and makes sure
// the synthesized ones exist on disk.
//
// A required OS directory that cannot be determined yields *EnvironmentError.
// Failing to create a synthesized directory is logged and recorded in
// CreationErrors but does not fail resolution.
func Resolve(ctx context.Context, platform PlatformPaths, options ...ResolveOption) (*Registry, error) {
	o := resolveOptions{
		logger:    zerolog.Nop(),
		mkdirAll:  os.MkdirAll,
		dirExists: fsutils.DirExists,
	}
	for _, option := range options {
		option(&o)
	}

	required := []struct {
		label Label
		get   func() (string, error)
	}{
		{Home, platform.HomeDir},
		{Documents, platform.DocumentsDir},
		{Downloads, platform.DownloadsDir},
		{Music, platform.MusicDir},
		{Pictures, platform.PicturesDir},
		{Videos, platform.VideosDir},
	}

	r := &Registry{
		byLabel: make(map[Label]KnownLocation, len(sidebarOrder)),
	}

	for _, item := range required {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p, err := item.get()
		if err == nil && p == "" {
			err = errNotSet
		}
		if err != nil {
			return nil, &EnvironmentError{Label: item.label, Err: err}
		}
		r.byLabel[item.label] = KnownLocation{Label: item.label, Path: filepath.Clean(p)}
	}

	appDataDir := o.appDataDir
	if appDataDir == "" {
		var err error
		if appDataDir, err = platform.AppDataDir(); err != nil {
			return nil, &EnvironmentError{Label: "application data", Err: err}
		}
	}
	trashDir, err := platform.TrashDir()
	if err != nil || trashDir == "" {
		trashDir = filepath.Join(appDataDir, fallbackTrashDirName)
		o.logger.Warn().Err(err).Str("path", trashDir).Msg("platform trash unknown, using app data dir")
	}

	synthesized := []KnownLocation{
		{Label: Recent, Path: filepath.Join(appDataDir, recentDirName)},
		{Label: Favorites, Path: filepath.Join(appDataDir, favoritesDirName)},
		{Label: Trash, Path: filepath.Clean(trashDir)},
	}
	for _, loc := range synthesized {
		if creationErr := ensureDir(o, loc); creationErr != nil {
			o.logger.Warn().Err(creationErr.Err).
				Str("label", string(loc.Label)).
				Str("path", loc.Path).
				Msg("failed to create directory")
			r.creationErrors = append(r.creationErrors, creationErr)
		}
		r.byLabel[loc.Label] = loc
	}

	r.locations = make([]KnownLocation, 0, len(sidebarOrder))
	for _, label := range sidebarOrder {
		r.locations = append(r.locations, r.byLabel[label])
	}
	o.logger.Debug().Int("count", len(r.locations)).Str("app_data_dir", appDataDir).Msg("resolved well-known locations")
	return r, nil
}

func ensureDir(o resolveOptions, loc KnownLocation) *DirectoryCreationError {
	exists, err := o.dirExists(loc.Path)
	if err != nil {
		return &DirectoryCreationError{Label: loc.Label, Path: loc.Path, Err: err}
	}
	if exists {
		return nil
	}
	if err = o.mkdirAll(loc.Path, 0o755); err != nil {
		return &DirectoryCreationError{Label: loc.Label, Path: loc.Path, Err: err}
	}
	o.logger.Info().Str("path", loc.Path).Msg("directory created")
	return nil
}
