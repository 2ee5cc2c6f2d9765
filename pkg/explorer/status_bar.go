package explorer

import (
	"errors"
	"fmt"

	"github.com/filetug/ftexplorer/pkg/files"
	"github.com/rivo/tview"
)

const defaultHint = "Enter/click: open  Backspace: up  F5: refresh  Tab: switch panel  q: quit"

type statusBar struct {
	*tview.TextView
}

func newStatusBar() *statusBar {
	sb := &statusBar{
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetWrap(false),
	}
	sb.showHint(defaultHint)
	return sb
}

func (sb *statusBar) showHint(text string) {
	sb.SetTextColor(Style.HintColor)
	sb.SetText(" " + tview.Escape(text))
}

func (sb *statusBar) showError(err error) {
	sb.SetTextColor(Style.ErrorColor)
	sb.SetText(" " + tview.Escape(errorText(err)))
}

func errorText(err error) string {
	var listErr *files.ListError
	if errors.As(err, &listErr) {
		return fmt.Sprintf("Cannot open %s: %s", listErr.Path, listErr.Kind)
	}
	return err.Error()
}
