package explorer

import (
	"github.com/rivo/tview"
)

// App is the part of *tview.Application the explorer talks to.
type App interface {
	Run() error
	QueueUpdateDraw(f func())
	SetFocus(p tview.Primitive)
	SetRoot(root tview.Primitive, fullscreen bool)
	Stop()
	EnableMouse(bool)
}

type AppMethod func(na *appProxy)

func NewApp(app *tview.Application, o ...AppMethod) App {
	a := &appProxy{}
	if app != nil {
		a.setFocus = func(primitive tview.Primitive) {
			_ = app.SetFocus(primitive)
		}
		a.setRoot = func(root tview.Primitive, fullscreen bool) {
			_ = app.SetRoot(root, fullscreen)
		}
		a.enableMouse = func(b bool) {
			_ = app.EnableMouse(b)
		}
		a.queueUpdateDraw = func(f func()) {
			_ = app.QueueUpdateDraw(f)
		}
		a.run = app.Run
		a.stop = app.Stop
	}
	for _, m := range o {
		m(a)
	}
	return a
}

func WithQueueUpdateDraw(queueUpdateDraw func(f func())) AppMethod {
	return func(na *appProxy) {
		na.queueUpdateDraw = queueUpdateDraw
	}
}

func WithSetFocus(setFocus func(p tview.Primitive)) AppMethod {
	return func(na *appProxy) {
		na.setFocus = setFocus
	}
}

func WithSetRoot(setRoot func(root tview.Primitive, fullscreen bool)) AppMethod {
	return func(na *appProxy) {
		na.setRoot = setRoot
	}
}

func WithEnableMouse(enableMouse func(bool)) AppMethod {
	return func(na *appProxy) {
		na.enableMouse = enableMouse
	}
}

func WithRun(run func() error) AppMethod {
	return func(na *appProxy) {
		na.run = run
	}
}

func WithStop(stop func()) AppMethod {
	return func(na *appProxy) {
		na.stop = stop
	}
}

var _ App = (*appProxy)(nil)

// appProxy tolerates missing hooks so tests only wire what they observe.
type appProxy struct {
	queueUpdateDraw func(func())
	setFocus        func(tview.Primitive)
	setRoot         func(tview.Primitive, bool)
	enableMouse     func(bool)
	run             func() error
	stop            func()
}

func (n appProxy) EnableMouse(b bool) {
	if n.enableMouse != nil {
		n.enableMouse(b)
	}
}

func (n appProxy) QueueUpdateDraw(f func()) {
	if n.queueUpdateDraw != nil {
		n.queueUpdateDraw(f)
		return
	}
	f()
}

func (n appProxy) SetFocus(p tview.Primitive) {
	if n.setFocus != nil {
		n.setFocus(p)
	}
}

func (n appProxy) SetRoot(root tview.Primitive, fullscreen bool) {
	if n.setRoot != nil {
		n.setRoot(root, fullscreen)
	}
}

func (n appProxy) Run() error {
	if n.run == nil {
		return nil
	}
	return n.run()
}

func (n appProxy) Stop() {
	if n.stop != nil {
		n.stop()
	}
}
