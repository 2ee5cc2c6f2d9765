package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/filetug/ftexplorer/pkg/ftdrives"
	"github.com/filetug/ftexplorer/pkg/ftpaths"
	"github.com/filetug/ftexplorer/pkg/ftsettings"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPlatform struct {
	root        string
	documentErr error
}

func (p testPlatform) dir(name string) (string, error) {
	return filepath.Join(p.root, name), nil
}

func (p testPlatform) HomeDir() (string, error) { return p.dir("home") }
func (p testPlatform) DocumentsDir() (string, error) {
	if p.documentErr != nil {
		return "", p.documentErr
	}
	return p.dir("Documents")
}
func (p testPlatform) DownloadsDir() (string, error) { return p.dir("Downloads") }
func (p testPlatform) MusicDir() (string, error)     { return p.dir("Music") }
func (p testPlatform) PicturesDir() (string, error)  { return p.dir("Pictures") }
func (p testPlatform) VideosDir() (string, error)    { return p.dir("Videos") }
func (p testPlatform) AppDataDir() (string, error)   { return p.dir("appdata") }
func (p testPlatform) TrashDir() (string, error)     { return p.dir("Trash") }

type fakeWatcher struct {
	dirs   []string
	closed bool
}

func (w *fakeWatcher) Watch(dir string) error {
	w.dirs = append(w.dirs, dir)
	return nil
}

func (w *fakeWatcher) Close() error {
	w.closed = true
	return nil
}

type runRecorder struct {
	calls int
	err   error
}

// stubSeams replaces everything that touches the real environment and
// returns the stderr buffer and the recorder of run calls.
func stubSeams(t *testing.T, platform testPlatform) (*bytes.Buffer, *runRecorder) {
	t.Helper()
	oldStderr := osStderr
	oldRun := run
	oldNewPlatformPaths := newPlatformPaths
	oldEnumerateDrives := enumerateDrives
	oldAppDataDir := appDataDir
	t.Cleanup(func() {
		osStderr = oldStderr
		run = oldRun
		newPlatformPaths = oldNewPlatformPaths
		enumerateDrives = oldEnumerateDrives
		appDataDir = oldAppDataDir
	})

	stderr := new(bytes.Buffer)
	osStderr = stderr
	recorder := &runRecorder{}
	run = func(app application) error {
		recorder.calls++
		return recorder.err
	}
	newPlatformPaths = func() ftpaths.PlatformPaths {
		return platform
	}
	enumerateDrives = func(context.Context, zerolog.Logger) []ftdrives.DriveRoot {
		return []ftdrives.DriveRoot{{Path: platform.root}}
	}
	appDataDir = func() (string, error) {
		return filepath.Join(platform.root, "appdata"), nil
	}
	return stderr, recorder
}

func TestExecute(t *testing.T) {
	t.Run("starts_ui", func(t *testing.T) {
		root := t.TempDir()
		_, recorder := stubSeams(t, testPlatform{root: root})

		assert.Equal(t, 0, execute([]string{"--log-level", "debug"}))
		assert.Equal(t, 1, recorder.calls)
		assert.FileExists(t, filepath.Join(root, "appdata", "ftexplorer.log"))
		assert.DirExists(t, filepath.Join(root, "appdata", "favorites"))
		assert.DirExists(t, filepath.Join(root, "appdata", "recent"))
		assert.DirExists(t, filepath.Join(root, "Trash"))
	})

	t.Run("data_dir_flag", func(t *testing.T) {
		root := t.TempDir()
		_, recorder := stubSeams(t, testPlatform{root: root})
		dataDir := filepath.Join(root, "custom")

		assert.Equal(t, 0, execute([]string{"--data-dir", dataDir}))
		assert.Equal(t, 1, recorder.calls)
		assert.DirExists(t, filepath.Join(dataDir, "favorites"))
		assert.FileExists(t, filepath.Join(dataDir, "ftexplorer.log"))
	})

	t.Run("environment_error_is_fatal", func(t *testing.T) {
		stderr, recorder := stubSeams(t, testPlatform{root: t.TempDir(), documentErr: errors.New("no XDG_DOCUMENTS_DIR")})

		assert.Equal(t, 1, execute([]string{"--log-file", "-"}))
		assert.Zero(t, recorder.calls)
		assert.Contains(t, stderr.String(), "Documents")
		assert.Contains(t, stderr.String(), "no XDG_DOCUMENTS_DIR")
	})

	t.Run("invalid_log_level", func(t *testing.T) {
		stderr, recorder := stubSeams(t, testPlatform{root: t.TempDir()})

		assert.Equal(t, 1, execute([]string{"--log-level", "chatty"}))
		assert.Zero(t, recorder.calls)
		assert.Contains(t, stderr.String(), "chatty")
	})

	t.Run("unexpected_argument", func(t *testing.T) {
		stderr, recorder := stubSeams(t, testPlatform{root: t.TempDir()})

		assert.Equal(t, 1, execute([]string{"somewhere"}))
		assert.Zero(t, recorder.calls)
		assert.Contains(t, stderr.String(), "ftexplorer:")
	})

	t.Run("run_error", func(t *testing.T) {
		stderr, recorder := stubSeams(t, testPlatform{root: t.TempDir()})
		recorder.err = errors.New("terminal not available")

		assert.Equal(t, 1, execute(nil))
		assert.Contains(t, stderr.String(), "terminal not available")
	})
}

func TestExecute_Watch(t *testing.T) {
	oldNewWatcher := newWatcher
	t.Cleanup(func() {
		newWatcher = oldNewWatcher
	})

	t.Run("enabled", func(t *testing.T) {
		_, recorder := stubSeams(t, testPlatform{root: t.TempDir()})
		w := &fakeWatcher{}
		newWatcher = func(onChange func(string), _ zerolog.Logger) (dirWatcher, error) {
			assert.NotNil(t, onChange)
			return w, nil
		}

		assert.Equal(t, 0, execute([]string{"--watch"}))
		assert.Equal(t, 1, recorder.calls)
		assert.True(t, w.closed)
		assert.Empty(t, w.dirs, "nothing is shown before the first navigation")
	})

	t.Run("watcher_failure_is_not_fatal", func(t *testing.T) {
		_, recorder := stubSeams(t, testPlatform{root: t.TempDir()})
		newWatcher = func(func(string), zerolog.Logger) (dirWatcher, error) {
			return nil, errors.New("inotify limit")
		}

		assert.Equal(t, 0, execute([]string{"--watch"}))
		assert.Equal(t, 1, recorder.calls)
	})
}

func TestExecute_Profiling(t *testing.T) {
	oldHTTPListenAndServe := httpListenAndServe
	t.Cleanup(func() {
		httpListenAndServe = oldHTTPListenAndServe
	})
	addr := make(chan string, 1)
	release := make(chan struct{})
	httpListenAndServe = func(a string, _ http.Handler) error {
		addr <- a
		<-release
		return errors.New("stopped")
	}

	root := t.TempDir()
	_, recorder := stubSeams(t, testPlatform{root: root})
	lines := make(lineWriter, 4)
	osStderr = lines
	cpuProfile := filepath.Join(root, "cpu.prof")

	assert.Equal(t, 0, execute([]string{"--pprof", "localhost:0", "--cpuprofile", cpuProfile}))
	assert.Equal(t, 1, recorder.calls)
	assert.Equal(t, "localhost:0", <-addr)
	assert.FileExists(t, cpuProfile)

	// the server goroutine reports through the writer it captured at start
	osStderr = io.Discard
	close(release)
	assert.Equal(t, "pprof server error: stopped\n", <-lines)
}

type lineWriter chan string

func (w lineWriter) Write(p []byte) (int, error) {
	w <- string(p)
	return len(p), nil
}

func TestLoadConfig(t *testing.T) {
	oldAppDataDir := appDataDir
	t.Cleanup(func() {
		appDataDir = oldAppDataDir
	})
	dataDir := t.TempDir()
	appDataDir = func() (string, error) {
		return dataDir, nil
	}
	settings := "log_level: warn\nlog_file: /var/log/fte.log\nwatch: true\nbookmarks:\n  - label: Src\n    path: /src\n"
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, ftsettings.SettingsFileName), []byte(settings), 0o644))

	t.Run("settings_file", func(t *testing.T) {
		cfg, err := loadConfig(cliFlags{})
		require.NoError(t, err)
		assert.Equal(t, config{
			dataDir:   dataDir,
			logFile:   "/var/log/fte.log",
			logLevel:  "warn",
			watch:     true,
			bookmarks: []ftsettings.Bookmark{{Label: "Src", Path: filepath.Clean("/src")}},
		}, cfg)
	})

	t.Run("flags_override", func(t *testing.T) {
		flags := cliFlags{
			logFile:  "-",
			logLevel: "debug",
			watch:    false,
			changed: func(name string) bool {
				return name == "log-file" || name == "log-level" || name == "watch"
			},
		}
		cfg, err := loadConfig(flags)
		require.NoError(t, err)
		assert.Equal(t, "-", cfg.logFile)
		assert.Equal(t, "debug", cfg.logLevel)
		assert.False(t, cfg.watch)
	})

	t.Run("explicit_settings_file", func(t *testing.T) {
		other := filepath.Join(t.TempDir(), "other.yaml")
		cfg, err := loadConfig(cliFlags{settingsFile: other})
		require.NoError(t, err)
		assert.Empty(t, cfg.logLevel)
		assert.Equal(t, filepath.Join(dataDir, "ftexplorer.log"), cfg.logFile)
		assert.Nil(t, cfg.bookmarks)
	})

	t.Run("broken_settings_file", func(t *testing.T) {
		broken := filepath.Join(t.TempDir(), "broken.yaml")
		require.NoError(t, os.WriteFile(broken, []byte("watch: [x"), 0o644))
		cfg, err := loadConfig(cliFlags{settingsFile: broken})
		assert.Error(t, err)
		assert.False(t, cfg.watch)
	})

	t.Run("no_data_dir", func(t *testing.T) {
		appDataDir = func() (string, error) {
			return "", errors.New("unknown")
		}
		defer func() {
			appDataDir = func() (string, error) { return dataDir, nil }
		}()
		cfg, err := loadConfig(cliFlags{})
		require.NoError(t, err)
		assert.Empty(t, cfg.dataDir)
		assert.Equal(t, "-", cfg.logFile)
	})
}
