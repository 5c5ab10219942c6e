package main

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	fieldColor  = color.New(color.FgCyan)
	stringColor = color.New(color.FgGreen)
	symbolColor = color.New(color.FgYellow)
)

// useColor colorizes only when forced or when the destination is a terminal,
// so piped and file output stays clean for downstream consumers.
func useColor(cfg *Config, w io.Writer) bool {
	if cfg.Color {
		color.NoColor = false
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// highlight walks the encoded text token by token: string literals green,
// quoted symbols yellow, namespaced field names cyan, everything else
// untouched. Escapes inside strings are honored so an embedded quote does
// not end the colored span early.
func highlight(s string) string {
	var sb strings.Builder
	i := 0
	for i < len(s) {
		switch c := s[i]; {
		case c == '"':
			j := i + 1
			for j < len(s) {
				if s[j] == '\\' && j+1 < len(s) {
					j += 2
					continue
				}
				if s[j] == '"' {
					j++
					break
				}
				j++
			}
			sb.WriteString(stringColor.Sprint(s[i:j]))
			i = j
		case c == '\'':
			j := i + 1
			for j < len(s) && !isDelim(s[j]) {
				j++
			}
			sb.WriteString(symbolColor.Sprint(s[i:j]))
			i = j
		case isDelim(c):
			sb.WriteByte(c)
			i++
		default:
			j := i
			for j < len(s) && !isDelim(s[j]) {
				j++
			}
			tok := s[i:j]
			if strings.Contains(tok, ":") {
				sb.WriteString(fieldColor.Sprint(tok))
			} else {
				sb.WriteString(tok)
			}
			i = j
		}
	}
	return sb.String()
}

func isDelim(c byte) bool {
	return c == '(' || c == ')' || c == ' ' || c == '\n'
}
