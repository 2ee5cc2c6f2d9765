// Package explorer renders the navigation state with tview: a title bar, a
// sidebar of places, the listing of the current directory and a preview.
//
// All handlers run on the tview event goroutine and talk to the navigator by
// method calls, so the navigator has a single writer.
package explorer

import (
	"context"
	"os"

	"github.com/filetug/ftexplorer/pkg/files"
	"github.com/filetug/ftexplorer/pkg/ftdrives"
	"github.com/filetug/ftexplorer/pkg/ftnav"
	"github.com/filetug/ftexplorer/pkg/ftpaths"
	"github.com/filetug/ftexplorer/pkg/ftsettings"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
)

const sidebarWidth = 26

// DirWatcher follows the directory being shown.
type DirWatcher interface {
	Watch(dir string) error
}

type Deps struct {
	Registry  *ftpaths.Registry
	Drives    []ftdrives.DriveRoot
	Bookmarks []ftsettings.Bookmark
	Navigator *ftnav.Navigator
	Logger    zerolog.Logger
}

type Explorer struct {
	*tview.Flex

	app     App
	ctx     context.Context
	nav     *ftnav.Navigator
	logger  zerolog.Logger
	watcher DirWatcher

	titleBar  *titleBar
	sidebar   *sidebar
	mainPanel *mainPanel
	preview   *preview
	statusBar *statusBar

	focusOrder []tview.Primitive
	focusIndex int
}

var osStat = os.Stat

func New(ctx context.Context, app App, deps Deps) *Explorer {
	e := &Explorer{
		app:    app,
		ctx:    ctx,
		nav:    deps.Navigator,
		logger: deps.Logger,
	}

	var locations []ftpaths.KnownLocation
	if deps.Registry != nil {
		locations = deps.Registry.Locations()
	}

	e.titleBar = newTitleBar()
	e.sidebar = newSidebar(sidebarItems(locations, deps.Bookmarks, deps.Drives), e.dispatch)
	e.mainPanel = newMainPanel(e.openEntry, e.goUp, e.previewEntry)
	e.preview = newPreview()
	e.statusBar = newStatusBar()

	e.focusOrder = []tview.Primitive{e.sidebar, e.mainPanel, e.preview}
	e.trackFocus(e.sidebar.Box, 0)
	e.trackFocus(e.mainPanel.Box, 1)
	e.trackFocus(e.preview.Box, 2)

	body := tview.NewFlex().
		AddItem(e.sidebar, sidebarWidth, 0, true).
		AddItem(e.mainPanel, 0, 3, false).
		AddItem(e.preview, 0, 2, false)

	e.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(e.titleBar, 1, 0, false).
		AddItem(body, 0, 1, true).
		AddItem(e.statusBar, 1, 0, false)
	e.SetInputCapture(e.inputCapture)

	e.nav.OnChange(e.stateChanged)
	e.titleBar.update(e.nav.Current())
	return e
}

// SetWatcher enables refreshing when the shown directory changes on disk.
func (e *Explorer) SetWatcher(w DirWatcher) {
	e.watcher = w
	if state := e.nav.Current(); state.Navigated() && w != nil {
		e.watch(state.Path)
	}
}

func (e *Explorer) trackFocus(box *tview.Box, index int) {
	box.SetFocusFunc(func() {
		e.focusIndex = index
		box.SetBorderColor(Style.FocusedBorderColor)
	})
	box.SetBlurFunc(func() {
		box.SetBorderColor(Style.BlurBorderColor)
	})
}

// dispatch handles a navigation request coming from the UI.
func (e *Explorer) dispatch(req ftnav.Request) {
	if _, err := e.nav.Navigate(e.ctx, req); err != nil {
		e.statusBar.showError(err)
		return
	}
	e.app.SetFocus(e.mainPanel)
}

func (e *Explorer) goUp() {
	if _, err := e.nav.Parent(e.ctx); err != nil {
		e.statusBar.showError(err)
	}
}

func (e *Explorer) refresh() {
	if _, err := e.nav.Refresh(e.ctx); err != nil {
		e.statusBar.showError(err)
	}
}

func (e *Explorer) openEntry(entry files.DirEntry) {
	if !entry.IsDir {
		// a symlink to a directory is listed as a non-directory
		if fi, err := osStat(entry.Path); err != nil || !fi.IsDir() {
			e.previewEntry(entry)
			return
		}
	}
	if _, err := e.nav.Open(e.ctx, entry); err != nil {
		e.statusBar.showError(err)
	}
}

func (e *Explorer) previewEntry(entry files.DirEntry) {
	e.logger.Debug().Str("path", entry.Path).Msg("file selected")
	if err := e.preview.show(entry); err != nil {
		e.statusBar.showError(err)
	}
}

func (e *Explorer) stateChanged(state ftnav.State) {
	e.titleBar.update(state)
	e.mainPanel.setState(state)
	if e.preview.path != "" && !e.isListed(e.preview.path, state) {
		e.preview.clear()
	}
	e.statusBar.showHint(defaultHint)
	if i := e.sidebar.indexOf(state.Label, state.Path); i >= 0 {
		e.sidebar.SetCurrentItem(i)
	}
	if e.watcher != nil {
		e.watch(state.Path)
	}
}

func (e *Explorer) isListed(path string, state ftnav.State) bool {
	for _, entry := range state.Entries {
		if entry.Path == path {
			return true
		}
	}
	return false
}

func (e *Explorer) watch(dir string) {
	if err := e.watcher.Watch(dir); err != nil {
		e.logger.Warn().Err(err).Str("path", dir).Msg("failed to watch directory")
	}
}

// DirChanged is called by the watcher from its own goroutine.
func (e *Explorer) DirChanged(dir string) {
	e.app.QueueUpdateDraw(func() {
		if e.nav.Current().Path == dir {
			e.refresh()
		}
	})
}

func (e *Explorer) cycleFocus(step int) {
	n := len(e.focusOrder)
	e.focusIndex = ((e.focusIndex+step)%n + n) % n
	e.app.SetFocus(e.focusOrder[e.focusIndex])
}

func (e *Explorer) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyTab:
		e.cycleFocus(1)
		return nil
	case tcell.KeyBacktab:
		e.cycleFocus(-1)
		return nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.goUp()
		return nil
	case tcell.KeyF5, tcell.KeyCtrlR:
		e.refresh()
		return nil
	case tcell.KeyEscape:
		if e.focusIndex != 0 {
			e.cycleFocus(-e.focusIndex)
			return nil
		}
		e.app.Stop()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q', 'Q':
			if e.focusIndex == 0 {
				e.app.Stop()
				return nil
			}
		}
	}
	return event
}
