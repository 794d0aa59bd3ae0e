package clifmt

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

const (
	defaultTableWidth     = 100
	defaultMinDetailWidth = 36
)

type NameDetailRow struct {
	Name   string
	Detail string
}

type NameDetailTableOptions struct {
	Title          string
	Rows           []NameDetailRow
	EmptyText      string
	NameHeader     string
	DetailHeader   string
	MinDetailWidth int
}

// PrintNameDetailTable renders a two-column table with the detail column
// word-wrapped to the terminal width.
func PrintNameDetailTable(out io.Writer, opts NameDetailTableOptions) {
	if out == nil {
		out = os.Stdout
	}

	if title := strings.TrimSpace(opts.Title); title != "" {
		fmt.Fprintln(out, Headerf("%s (%d)", title, len(opts.Rows)))
	}
	if len(opts.Rows) == 0 {
		empty := strings.TrimSpace(opts.EmptyText)
		if empty == "" {
			empty = "No entries."
		}
		fmt.Fprintln(out, Warn(empty))
		return
	}

	nameHeader := opts.NameHeader
	if nameHeader == "" {
		nameHeader = "NAME"
	}
	detailHeader := opts.DetailHeader
	if detailHeader == "" {
		detailHeader = "DETAILS"
	}

	nameWidth := utf8.RuneCountInString(nameHeader)
	for _, row := range opts.Rows {
		if w := utf8.RuneCountInString(row.Name); w > nameWidth {
			nameWidth = w
		}
	}
	detailWidth := detailColumnWidth(out, nameWidth, opts.MinDetailWidth)

	fmt.Fprintf(out, "%s  %s\n", Key(padRight(nameHeader, nameWidth)), Key(detailHeader))
	fmt.Fprintf(out, "%s  %s\n", Dim(strings.Repeat("-", nameWidth)), Dim(strings.Repeat("-", detailWidth)))

	for _, row := range opts.Rows {
		lines := wrapWords(strings.TrimSpace(row.Detail), detailWidth)
		fmt.Fprintf(out, "%s  %s\n", Success(padRight(row.Name, nameWidth)), lines[0])
		for _, line := range lines[1:] {
			fmt.Fprintf(out, "%s  %s\n", strings.Repeat(" ", nameWidth), line)
		}
	}
}

func detailColumnWidth(out io.Writer, nameWidth, minWidth int) int {
	if minWidth <= 0 {
		minWidth = defaultMinDetailWidth
	}
	width := defaultTableWidth
	if file, ok := out.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		if w, _, err := term.GetSize(int(file.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	if detail := width - nameWidth - 2; detail > minWidth {
		return detail
	}
	return minWidth
}

func padRight(s string, width int) string {
	if missing := width - utf8.RuneCountInString(s); missing > 0 {
		return s + strings.Repeat(" ", missing)
	}
	return s
}

func wrapWords(text string, width int) []string {
	if text == "" || width <= 0 {
		return []string{text}
	}
	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		switch {
		case current == "":
			current = word
		case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
