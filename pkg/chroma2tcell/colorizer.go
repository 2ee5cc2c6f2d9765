// Package chroma2tcell turns chroma syntax tokens into tview color tags.
package chroma2tcell

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rivo/tview"
)

const DefaultStyle = "dracula"

var getStyle = styles.Get

var getFallbackStyle = func() *chroma.Style {
	return styles.Fallback
}

var matchLexer = lexers.Match

// Colorize tokenises text with lexer and wraps every styled token in a
// tview color tag. Token text is escaped so file content cannot inject tags.
func Colorize(text, styleName string, lexer chroma.Lexer) (string, error) {
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	style := getStyle(styleName)
	if style == nil {
		style = getFallbackStyle()
	}

	var sb strings.Builder
	for _, token := range iterator.Tokens() {
		value := tview.Escape(token.Value)
		entry := style.Get(token.Type)
		if !entry.Colour.IsSet() {
			sb.WriteString(value)
			continue
		}
		sb.WriteString("[" + entry.Colour.String() + "]")
		sb.WriteString(value)
		sb.WriteString("[-]")
	}

	return sb.String(), nil
}

// ColorizeFile picks a lexer by file name. ok is false when no lexer matches,
// in which case the text is returned escaped but uncolored.
func ColorizeFile(fileName, text string) (colorized string, ok bool, err error) {
	lexer := matchLexer(fileName)
	if lexer == nil {
		return tview.Escape(text), false, nil
	}
	colorized, err = Colorize(text, DefaultStyle, lexer)
	return colorized, err == nil, err
}
