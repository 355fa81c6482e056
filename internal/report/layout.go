package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const (
	rule     = "═══════════════════════════════════════════════════════════════"
	thinRule = "───────────────────────────────────────────────────────────────"
)

// Banner prints a title between double rules
func Banner(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "     %s\n", title)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
}

// Section prints a heading underlined with a single rule
func Section(w io.Writer, title string) {
	fmt.Fprintf(w, "%s:\n", title)
	fmt.Fprintln(w, thinRule)
}

// Box frames a one-line headline result
func Box(w io.Writer, text string) {
	width := max(len([]rune(text))+4, 43)
	fmt.Fprintf(w, "  ╔%s╗\n", strings.Repeat("═", width))
	fmt.Fprintf(w, "  ║  %s%s║\n", text, strings.Repeat(" ", width-len([]rune(text))-2))
	fmt.Fprintf(w, "  ╚%s╝\n", strings.Repeat("═", width))
	fmt.Fprintln(w)
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func tabwriterRight(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
}
