package explorer

import (
	"path/filepath"
	"strings"

	"github.com/filetug/ftexplorer/pkg/files"
	"github.com/gdamore/tcell/v2"
)

var fileColors = map[string]tcell.Color{
	"exe":  tcell.ColorRed,
	"go":   tcell.ColorAqua,
	"rs":   tcell.ColorOrange,
	"c":    tcell.ColorDodgerBlue,
	"h":    tcell.ColorDodgerBlue,
	"cpp":  tcell.ColorDodgerBlue,
	"js":   tcell.ColorYellow,
	"ts":   tcell.ColorDeepSkyBlue,
	"py":   tcell.ColorLightGreen,
	"sh":   tcell.ColorGreen,
	"html": tcell.ColorOrangeRed,
	"css":  tcell.ColorViolet,
	"json": tcell.ColorGold,
	"yaml": tcell.ColorLightYellow,
	"yml":  tcell.ColorLightYellow,
	"toml": tcell.ColorLightYellow,
	"md":   tcell.ColorBisque,
	"txt":  tcell.ColorWhite,
	"log":  tcell.ColorRosyBrown,
	"csv":  tcell.ColorLightGreen,
	"pdf":  tcell.ColorIndianRed,
	"jpg":  tcell.ColorMediumPurple,
	"jpeg": tcell.ColorMediumPurple,
	"png":  tcell.ColorMediumPurple,
	"gif":  tcell.ColorMediumPurple,
	"mp3":  tcell.ColorLightSalmon,
	"flac": tcell.ColorLightSalmon,
	"mp4":  tcell.ColorLightSalmon,
	"mov":  tcell.ColorLightSalmon,
	"zip":  tcell.ColorSandyBrown,
	"gz":   tcell.ColorSandyBrown,
}

func GetColorByFileExt(name string) tcell.Color {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if color, ok := fileColors[ext]; ok {
		return color
	}
	return tcell.ColorWhiteSmoke
}

func entryColor(e files.DirEntry) tcell.Color {
	if e.IsDir {
		return Style.DirColor
	}
	return GetColorByFileExt(e.Name)
}
