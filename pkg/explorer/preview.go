package explorer

import (
	"bytes"
	"fmt"

	"github.com/filetug/ftexplorer/pkg/chroma2tcell"
	"github.com/filetug/ftexplorer/pkg/files"
	"github.com/filetug/ftexplorer/pkg/fsutils"
	"github.com/rivo/tview"
)

const previewMaxBytes = 10 * 1024

var readFileData = fsutils.ReadFileData

type preview struct {
	*tview.TextView
	path string
}

func newPreview() *preview {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetScrollable(true)
	tv.SetBorder(true).
		SetTitle(" Preview ").
		SetTitleAlign(tview.AlignLeft).
		SetBorderColor(Style.BlurBorderColor)
	return &preview{TextView: tv}
}

func (p *preview) clear() {
	p.path = ""
	p.SetTitle(" Preview ")
	p.SetTextColor(tview.Styles.PrimaryTextColor)
	p.SetText("")
}

// show renders the beginning of a file. Errors are returned for the status bar
// and also shown in place of the content.
func (p *preview) show(entry files.DirEntry) error {
	p.path = entry.Path
	p.SetTitle(" " + tview.Escape(entry.Name) + " ")
	p.SetTextColor(tview.Styles.PrimaryTextColor)
	p.ScrollToBeginning()

	data, err := readFileData(entry.Path, previewMaxBytes)
	if err != nil {
		p.SetTextColor(Style.ErrorColor)
		p.SetText(tview.Escape(fmt.Sprintf("Failed to read file: %v", err)))
		return err
	}
	if bytes.IndexByte(data, 0) >= 0 {
		p.SetTextColor(Style.HintColor)
		if !entry.HasInfo {
			p.SetText("Binary file")
			return nil
		}
		p.SetText(fmt.Sprintf("Binary file, %s", fsutils.GetSizeShortText(entry.Size)))
		return nil
	}
	text, _, err := chroma2tcell.ColorizeFile(entry.Name, string(data))
	if err != nil {
		text = tview.Escape(string(data))
	}
	p.SetText(text)
	return nil
}
