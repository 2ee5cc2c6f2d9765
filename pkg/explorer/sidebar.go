package explorer

import (
	"strings"

	"github.com/filetug/ftexplorer/pkg/ftdrives"
	"github.com/filetug/ftexplorer/pkg/ftnav"
	"github.com/filetug/ftexplorer/pkg/ftpaths"
	"github.com/filetug/ftexplorer/pkg/ftsettings"
	"github.com/rivo/tview"
)

type sidebarItem struct {
	label     string
	path      string
	separator bool
}

type sidebar struct {
	*tview.List
	items    []sidebarItem
	dispatch func(req ftnav.Request)
}

func sidebarItems(locations []ftpaths.KnownLocation, bookmarks []ftsettings.Bookmark, drives []ftdrives.DriveRoot) []sidebarItem {
	items := make([]sidebarItem, 0, len(locations)+len(bookmarks)+len(drives)+2)
	for _, loc := range locations {
		items = append(items, sidebarItem{label: string(loc.Label), path: loc.Path})
	}
	if len(bookmarks) > 0 {
		items = append(items, sidebarItem{separator: true})
		for _, b := range bookmarks {
			items = append(items, sidebarItem{label: b.Label, path: b.Path})
		}
	}
	if len(drives) > 0 {
		items = append(items, sidebarItem{separator: true})
		for _, d := range drives {
			items = append(items, sidebarItem{label: d.Path, path: d.Path})
		}
	}
	return items
}

func newSidebar(items []sidebarItem, dispatch func(req ftnav.Request)) *sidebar {
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true).
		SetWrapAround(false)
	list.SetBackgroundColor(Style.SidebarBackground)
	list.SetBorder(true).
		SetTitle(" Places ").
		SetTitleAlign(tview.AlignLeft).
		SetBorderColor(Style.BlurBorderColor)

	s := &sidebar{
		List:     list,
		items:    items,
		dispatch: dispatch,
	}
	for _, item := range items {
		if item.separator {
			list.AddItem(separatorText, "", 0, nil)
			continue
		}
		list.AddItem(" "+tview.Escape(item.label), "", 0, nil)
	}
	list.SetSelectedFunc(func(index int, _ string, _ string, _ rune) {
		s.selected(index)
	})
	return s
}

var separatorText = "[" + colorTag(Style.SeparatorColor) + "]" + strings.Repeat("─", 20) + "[-]"

func (s *sidebar) selected(index int) {
	if index < 0 || index >= len(s.items) {
		return
	}
	item := s.items[index]
	if item.separator {
		return
	}
	s.dispatch(ftnav.Request{Label: item.label, Path: item.path})
}

// indexOf returns the position of the entry for label and path, or -1.
func (s *sidebar) indexOf(label, path string) int {
	for i, item := range s.items {
		if !item.separator && item.label == label && item.path == path {
			return i
		}
	}
	return -1
}
