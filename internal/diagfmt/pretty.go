package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"litlint/internal/diag"
	"litlint/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	codeColor    = color.New(color.Bold)
	caretColor   = color.New(color.FgRed, color.Bold)
	noteColor    = color.New(color.FgBlue)
)

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

func displayPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(f.Path); err == nil {
			return abs
		}
		return f.Path
	case PathModeBasename:
		return filepath.Base(f.Path)
	case PathModeRelative, PathModeAuto:
		return f.DisplayPath(fs.BaseDir())
	default:
		return f.Path
	}
}

// Pretty formats diagnostics in a human-readable way. It walks bag.Items()
// (bag.Sort() is expected to have run already). Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// followed by the source line and a ^~~~ underline covering the span, then
// any notes in the same layout.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printEntry(w, fs, opts, d.Severity, d.Code.ID(), d.Message, d.Primary)
		if opts.ShowNotes {
			for _, note := range d.Notes {
				printEntry(w, fs, opts, diag.SevInfo, "", note.Msg, note.Span)
			}
		}
	}
}

func printEntry(w io.Writer, fs *source.FileSet, opts PrettyOpts, sev diag.Severity, code, msg string, span source.Span) {
	f := fs.Get(span.File)
	start, end := fs.Resolve(span)
	path := displayPath(f, fs, opts.PathMode)

	if code == "" {
		// Secondary note: no severity or code of its own.
		label := "NOTE"
		if opts.Color {
			label = noteColor.Sprint(label)
		}
		fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", path, start.Line, start.Col, label, msg)
	} else {
		sevText := strings.ToUpper(sev.String())
		if opts.Color {
			sevText = severityColor(sev).Sprint(sevText)
			code = codeColor.Sprint(code)
		}
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, sevText, code, msg)
	}

	if opts.NoContext {
		return
	}
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}

	fmt.Fprintf(w, "  %s\n", line)
	fmt.Fprintf(w, "  %s\n", underline(line, start, end, opts.Color))
}

// underline builds the ^~~~ marker row under the source line. Columns are
// rune-based, so the padding is measured with display widths to stay aligned
// with tabs and wide runes.
func underline(line string, start, end source.LineCol, useColor bool) string {
	runes := []rune(line)

	startCol := int(start.Col)
	if startCol < 1 {
		startCol = 1
	}
	if startCol > len(runes)+1 {
		startCol = len(runes) + 1
	}

	endCol := startCol + 1
	if end.Line == start.Line && int(end.Col) > startCol {
		endCol = int(end.Col)
	}
	if endCol > len(runes)+1 {
		endCol = len(runes) + 1
	}

	var pad strings.Builder
	for _, r := range runes[:startCol-1] {
		if r == '\t' {
			pad.WriteRune('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}

	markerWidth := 0
	for _, r := range runes[startCol-1 : endCol-1] {
		markerWidth += runewidth.RuneWidth(r)
	}
	if markerWidth < 1 {
		markerWidth = 1
	}

	marker := "^" + strings.Repeat("~", markerWidth-1)
	if useColor {
		marker = caretColor.Sprint(marker)
	}
	return pad.String() + marker
}
