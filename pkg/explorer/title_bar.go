package explorer

import (
	"fmt"

	"github.com/filetug/ftexplorer/pkg/ftnav"
	"github.com/rivo/tview"
)

const appTitle = "ftexplorer"

type titleBar struct {
	*tview.TextView
}

func newTitleBar() *titleBar {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	tv.SetBackgroundColor(Style.TitleBarBackground)
	tb := &titleBar{TextView: tv}
	tb.update(ftnav.State{Label: ftnav.DefaultLabel})
	return tb
}

func (tb *titleBar) update(state ftnav.State) {
	path := state.Path
	if path == "" {
		path = "select a location"
	}
	tb.SetText(fmt.Sprintf(" [%s::b]%s[-::-]  [%s::b]%s[-::-]  [%s]%s[-]",
		colorTag(Style.TitleColor), appTitle,
		colorTag(Style.TitleColor), tview.Escape(state.Label),
		colorTag(Style.PathColor), tview.Escape(path),
	))
}
