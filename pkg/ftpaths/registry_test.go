package ftpaths

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlatform struct {
	root     string
	failing  Label
	appErr   error
	trashErr error
}

func (p fakePlatform) dir(label Label) (string, error) {
	if label == p.failing {
		return "", errors.New("no such user dir")
	}
	return filepath.Join(p.root, "home", string(label)), nil
}

func (p fakePlatform) HomeDir() (string, error) {
	if p.failing == Home {
		return "", errors.New("no home")
	}
	return filepath.Join(p.root, "home"), nil
}
func (p fakePlatform) DocumentsDir() (string, error) { return p.dir(Documents) }
func (p fakePlatform) DownloadsDir() (string, error) { return p.dir(Downloads) }
func (p fakePlatform) MusicDir() (string, error)     { return p.dir(Music) }
func (p fakePlatform) PicturesDir() (string, error)  { return p.dir(Pictures) }
func (p fakePlatform) VideosDir() (string, error)    { return p.dir(Videos) }
func (p fakePlatform) AppDataDir() (string, error) {
	if p.appErr != nil {
		return "", p.appErr
	}
	return filepath.Join(p.root, "data", "ftexplorer"), nil
}
func (p fakePlatform) TrashDir() (string, error) {
	if p.trashErr != nil {
		return "", p.trashErr
	}
	return filepath.Join(p.root, "data", "Trash", "files"), nil
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("creates_synthesized_dirs", func(t *testing.T) {
		root := t.TempDir()
		registry, err := Resolve(ctx, fakePlatform{root: root})
		require.NoError(t, err)
		assert.Empty(t, registry.CreationErrors())

		for _, label := range []Label{Recent, Favorites, Trash} {
			loc, ok := registry.Lookup(label)
			require.True(t, ok, label)
			info, err := os.Stat(loc.Path)
			require.NoError(t, err, label)
			assert.True(t, info.IsDir(), label)
		}
		recent, _ := registry.Lookup(Recent)
		assert.Equal(t, filepath.Join(root, "data", "ftexplorer", "recent"), recent.Path)
	})

	t.Run("sidebar_order", func(t *testing.T) {
		registry, err := Resolve(ctx, fakePlatform{root: t.TempDir()})
		require.NoError(t, err)
		var labels []Label
		for _, loc := range registry.Locations() {
			labels = append(labels, loc.Label)
		}
		assert.Equal(t, []Label{Recent, Favorites, Home, Documents, Downloads, Music, Pictures, Videos, Trash}, labels)
	})

	t.Run("locations_is_a_copy", func(t *testing.T) {
		registry, err := Resolve(ctx, fakePlatform{root: t.TempDir()})
		require.NoError(t, err)
		locations := registry.Locations()
		locations[0].Path = "/mutated"
		assert.NotEqual(t, "/mutated", registry.Locations()[0].Path)
	})

	t.Run("existing_dirs_are_kept", func(t *testing.T) {
		root := t.TempDir()
		favorites := filepath.Join(root, "data", "ftexplorer", "favorites")
		require.NoError(t, os.MkdirAll(favorites, 0o755))
		marker := filepath.Join(favorites, "marker.txt")
		require.NoError(t, os.WriteFile(marker, []byte("x"), 0o644))

		_, err := Resolve(ctx, fakePlatform{root: root})
		require.NoError(t, err)
		_, err = os.Stat(marker)
		assert.NoError(t, err)
	})

	t.Run("app_data_dir_override", func(t *testing.T) {
		root := t.TempDir()
		custom := filepath.Join(root, "custom")
		registry, err := Resolve(ctx, fakePlatform{root: root}, WithAppDataDir(custom))
		require.NoError(t, err)
		favorites, _ := registry.Lookup(Favorites)
		assert.Equal(t, filepath.Join(custom, "favorites"), favorites.Path)
		assert.DirExists(t, favorites.Path)
	})

	for _, label := range []Label{Home, Documents, Downloads, Music, Pictures, Videos} {
		t.Run("missing_"+string(label), func(t *testing.T) {
			registry, err := Resolve(ctx, fakePlatform{root: t.TempDir(), failing: label})
			assert.Nil(t, registry)
			var envErr *EnvironmentError
			require.ErrorAs(t, err, &envErr)
			assert.Equal(t, label, envErr.Label)
			assert.Contains(t, err.Error(), string(label))
		})
	}

	t.Run("app_data_dir_error", func(t *testing.T) {
		_, err := Resolve(ctx, fakePlatform{root: t.TempDir(), appErr: errors.New("no data home")})
		var envErr *EnvironmentError
		assert.ErrorAs(t, err, &envErr)
	})

	t.Run("trash_dir_unknown", func(t *testing.T) {
		root := t.TempDir()
		var logs bytes.Buffer
		registry, err := Resolve(ctx, fakePlatform{root: root, trashErr: errors.New("no trash")},
			WithLogger(zerolog.New(&logs)),
		)
		require.NoError(t, err)
		trash, ok := registry.Lookup(Trash)
		require.True(t, ok)
		assert.Equal(t, filepath.Join(root, "data", "ftexplorer", "Trash"), trash.Path)
		assert.DirExists(t, trash.Path)
		assert.Contains(t, logs.String(), "no trash")
	})

	t.Run("creation_failure_is_not_fatal", func(t *testing.T) {
		var logs bytes.Buffer
		mkdirErr := errors.New("read-only file system")
		registry, err := Resolve(ctx, fakePlatform{root: t.TempDir()},
			WithLogger(zerolog.New(&logs)),
			WithMkdirAll(func(string, os.FileMode) error {
				return mkdirErr
			}),
		)
		require.NoError(t, err)

		creationErrors := registry.CreationErrors()
		require.Len(t, creationErrors, 3)
		for _, creationErr := range creationErrors {
			assert.ErrorIs(t, creationErr, mkdirErr)
			loc, ok := registry.Lookup(creationErr.Label)
			assert.True(t, ok)
			assert.Equal(t, loc.Path, creationErr.Path)
		}
		assert.Contains(t, logs.String(), "failed to create directory")
	})

	t.Run("canceled_context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := Resolve(canceled, fakePlatform{root: t.TempDir()})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestXdgPaths(t *testing.T) {
	p := xdgPaths{}
	_, err := p.HomeDir()
	assert.ErrorIs(t, err, errNotSet)
	_, err = p.AppDataDir()
	assert.ErrorIs(t, err, errNotSet)
	_, err = p.TrashDir()
	assert.ErrorIs(t, err, errNotSet)

	p = xdgPaths{home: "/home/u", dataHome: "/home/u/.local/share"}
	p.user.Documents = "/home/u/Documents"
	home, err := p.HomeDir()
	assert.NoError(t, err)
	assert.Equal(t, "/home/u", home)
	docs, err := p.DocumentsDir()
	assert.NoError(t, err)
	assert.Equal(t, "/home/u/Documents", docs)
	appData, err := p.AppDataDir()
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/u/.local/share", "ftexplorer"), appData)
	trash, err := p.TrashDir()
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/u/.local/share", trashRelPath), trash)
}

func TestEnvironmentError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	err := &EnvironmentError{Label: Music, Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to determine Music directory: cause", err.Error())
}
