package explorer

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/filetug/ftexplorer/pkg/files"
	"github.com/filetug/ftexplorer/pkg/fsutils"
	"github.com/filetug/ftexplorer/pkg/ftnav"
	"github.com/rivo/tview"
)

const parentRowName = ".."

type mainPanel struct {
	*tview.Table
	rows []files.DirEntry // rows[i] is table row i+1; Path=="" marks ".."
	dir  string

	open    func(entry files.DirEntry)
	up      func()
	preview func(entry files.DirEntry)
}

func newMainPanel(open func(files.DirEntry), up func(), preview func(files.DirEntry)) *mainPanel {
	table := tview.NewTable().
		SetFixed(1, 0).
		SetSelectable(true, false)
	table.SetBorder(true).
		SetTitleAlign(tview.AlignLeft).
		SetBorderColor(Style.BlurBorderColor)
	p := &mainPanel{
		Table:   table,
		open:    open,
		up:      up,
		preview: preview,
	}
	table.SetSelectedFunc(func(row, _ int) {
		p.activate(row)
	})
	table.SetSelectionChangedFunc(func(row, _ int) {
		if entry, ok := p.entryAt(row); ok && !entry.IsDir && entry.Path != "" {
			p.preview(entry)
		}
	})
	p.showPlaceholder()
	return p
}

func (p *mainPanel) showPlaceholder() {
	p.Clear()
	p.rows = nil
	p.dir = ""
	p.SetTitle(" Files ")
	p.setHeader()
	p.SetCell(1, 0, tview.NewTableCell("Select a location on the left").
		SetTextColor(Style.HintColor).
		SetSelectable(false))
}

func (p *mainPanel) setHeader() {
	p.SetCell(0, 0, tview.NewTableCell("Name").SetTextColor(Style.TableHeaderColor).SetExpansion(1).SetSelectable(false))
	p.SetCell(0, 1, tview.NewTableCell("Size").SetTextColor(Style.TableHeaderColor).SetAlign(tview.AlignRight).SetSelectable(false))
	p.SetCell(0, 2, tview.NewTableCell("Modified").SetTextColor(Style.TableHeaderColor).SetAlign(tview.AlignRight).SetSelectable(false))
}

// sortedForDisplay orders directories first, then by name. The navigation
// state keeps the OS order; only the view is sorted.
func sortedForDisplay(entries []files.DirEntry) []files.DirEntry {
	sorted := make([]files.DirEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].IsDir != sorted[j].IsDir {
			return sorted[i].IsDir
		}
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}

func hasParent(dirPath string) bool {
	return filepath.Dir(dirPath) != dirPath
}

func (p *mainPanel) setState(state ftnav.State) {
	var keepName string
	if state.Path == p.dir {
		if entry, ok := p.entryAt(p.selectedRow()); ok {
			keepName = entry.Name
		}
	}
	p.dir = state.Path
	p.Clear()
	p.SetTitle(fmt.Sprintf(" %s (%d) ", tview.Escape(state.Label), len(state.Entries)))
	p.setHeader()

	p.rows = p.rows[:0]
	if hasParent(state.Path) {
		p.rows = append(p.rows, files.DirEntry{Name: parentRowName, IsDir: true})
	}
	p.rows = append(p.rows, sortedForDisplay(state.Entries)...)

	now := time.Now()
	for i, entry := range p.rows {
		row := i + 1
		color := entryColor(entry)
		name := entry.Name
		if entry.IsDir {
			name += string(filepath.Separator)
		}
		nameCell := tview.NewTableCell(" " + tview.Escape(name)).SetTextColor(color).SetExpansion(1)
		nameCell.SetClickedFunc(p.clickedFunc(row))
		p.SetCell(row, 0, nameCell)
		var sizeText, modText string
		if entry.HasInfo {
			if !entry.IsDir {
				sizeText = fsutils.GetSizeShortText(entry.Size)
			}
			modText = modifiedText(entry.ModTime, now)
		}
		p.SetCell(row, 1, tview.NewTableCell(sizeText).SetAlign(tview.AlignRight).SetTextColor(Style.MetaColor))
		p.SetCell(row, 2, tview.NewTableCell(modText).SetAlign(tview.AlignRight).SetTextColor(Style.MetaColor))
	}
	p.ScrollToBeginning()
	if len(p.rows) > 0 {
		p.Select(p.rowOf(keepName), 0)
	}
}

// rowOf returns the table row showing name, falling back to the first row.
func (p *mainPanel) rowOf(name string) int {
	if name != "" {
		for i, entry := range p.rows {
			if entry.Name == name {
				return i + 1
			}
		}
	}
	return 1
}

func (p *mainPanel) clickedFunc(row int) func() bool {
	return func() bool {
		if row == p.selectedRow() {
			p.activate(row)
			return true
		}
		return false
	}
}

func (p *mainPanel) selectedRow() int {
	row, _ := p.GetSelection()
	return row
}

func modifiedText(t time.Time, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	if t.Year() == now.Year() && t.YearDay() == now.YearDay() {
		return t.Format("15:04:05")
	}
	return t.Format("2006-01-02")
}

func (p *mainPanel) entryAt(row int) (files.DirEntry, bool) {
	i := row - 1
	if i < 0 || i >= len(p.rows) {
		return files.DirEntry{}, false
	}
	return p.rows[i], true
}

func (p *mainPanel) activate(row int) {
	entry, ok := p.entryAt(row)
	if !ok {
		return
	}
	switch {
	case entry.Name == parentRowName && entry.Path == "":
		p.up()
	case entry.IsDir:
		p.open(entry)
	default:
		p.preview(entry)
	}
}
