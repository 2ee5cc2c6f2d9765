package explorer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

type Styles struct {
	FocusedBorderColor tcell.Color
	BlurBorderColor    tcell.Color

	TitleBarBackground tcell.Color
	TitleColor         tcell.Color
	PathColor          tcell.Color

	SidebarBackground tcell.Color
	SeparatorColor    tcell.Color

	TableHeaderColor tcell.Color
	DirColor         tcell.Color
	MetaColor        tcell.Color

	HintColor  tcell.Color
	ErrorColor tcell.Color
}

var Style = Styles{
	FocusedBorderColor: tcell.ColorCornflowerBlue,
	BlurBorderColor:    tcell.ColorGray,

	TitleBarBackground: tcell.NewHexColor(0x19191a),
	TitleColor:         tcell.ColorWhite,
	PathColor:          tcell.ColorLightGray,

	SidebarBackground: tcell.NewHexColor(0x19191a),
	SeparatorColor:    tcell.NewHexColor(0x545454),

	TableHeaderColor: tcell.ColorWhiteSmoke,
	DirColor:         tcell.ColorCornflowerBlue,
	MetaColor:        tcell.ColorDarkGray,

	HintColor:  tcell.ColorSlateGray,
	ErrorColor: tcell.ColorRed,
}

// colorTag formats c for use inside a tview color tag.
func colorTag(c tcell.Color) string {
	return fmt.Sprintf("#%06x", c.Hex())
}
