package explorer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/filetug/ftexplorer/pkg/files/osfile"
	"github.com/filetug/ftexplorer/pkg/ftnav"
	"github.com/filetug/ftexplorer/pkg/ftpaths"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// testApp records what the explorer asks of the application.
type testApp struct {
	focused  tview.Primitive
	root     tview.Primitive
	mouse    bool
	stopped  bool
	queued   int
	deferred bool
	pending  []func()
}

func (a *testApp) Run() error { return nil }

func (a *testApp) QueueUpdateDraw(f func()) {
	a.queued++
	if a.deferred {
		a.pending = append(a.pending, f)
		return
	}
	f()
}

func (a *testApp) SetFocus(p tview.Primitive) { a.focused = p }

func (a *testApp) SetRoot(root tview.Primitive, _ bool) { a.root = root }

func (a *testApp) Stop() { a.stopped = true }

func (a *testApp) EnableMouse(b bool) { a.mouse = b }

type testPlatform struct {
	root string
}

func (p testPlatform) sub(name string) (string, error) {
	dir := filepath.Join(p.root, "home", name)
	return dir, os.MkdirAll(dir, 0o755)
}

func (p testPlatform) HomeDir() (string, error)      { return p.sub("") }
func (p testPlatform) DocumentsDir() (string, error) { return p.sub("Documents") }
func (p testPlatform) DownloadsDir() (string, error) { return p.sub("Downloads") }
func (p testPlatform) MusicDir() (string, error)     { return p.sub("Music") }
func (p testPlatform) PicturesDir() (string, error)  { return p.sub("Pictures") }
func (p testPlatform) VideosDir() (string, error)    { return p.sub("Videos") }
func (p testPlatform) AppDataDir() (string, error) {
	return filepath.Join(p.root, "data", "ftexplorer"), nil
}
func (p testPlatform) TrashDir() (string, error) {
	return filepath.Join(p.root, "data", "Trash", "files"), nil
}

type fixture struct {
	app      *testApp
	explorer *Explorer
	nav      *ftnav.Navigator
	registry *ftpaths.Registry
	root     string
}

func newFixture(t *testing.T, deps Deps) *fixture {
	t.Helper()
	root := t.TempDir()
	registry, err := ftpaths.Resolve(context.Background(), testPlatform{root: root})
	require.NoError(t, err)
	nav := ftnav.New(osfile.NewLister())
	deps.Registry = registry
	deps.Navigator = nav
	deps.Logger = zerolog.Nop()
	app := &testApp{}
	e := SetupApp(context.Background(), app, deps)
	return &fixture{app: app, explorer: e, nav: nav, registry: registry, root: root}
}

func (f *fixture) location(t *testing.T, label ftpaths.Label) string {
	t.Helper()
	loc, ok := f.registry.Lookup(label)
	require.True(t, ok)
	return loc.Path
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
