package tui

import (
	"bytes"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlightContent colors config content for the terminal.
// The config type picks the lexer; the data id's extension is tried next.
// Content that cannot be tokenised is returned unchanged.
func highlightContent(content, configType, dataID string) string {
	if content == "" {
		return content
	}

	var lexer chroma.Lexer
	if configType != "" && configType != "text" {
		lexer = lexers.Get(configType)
	}
	if lexer == nil {
		lexer = lexers.Match(dataID)
	}
	if lexer == nil {
		return content
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return content
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return content
	}
	return buf.String()
}
