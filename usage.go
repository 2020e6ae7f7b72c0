package cmdline

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mitchellh/go-wordwrap"
)

// usageWidth is the column where help text wraps.
const usageWidth = 76

var usageHeading = lipgloss.NewStyle().Bold(true)

// PrintUsage writes a one-line synopsis built from the definitions,
// followed by the help text of every option and argument in definition
// sequence. prog is the program name for the synopsis, typically
// Result.Prog or os.Args[0].
func (p *Parser) PrintUsage(w io.Writer, prog string) {
	fmt.Fprintf(w, "%s %s", usageHeading.Render("Usage:"), prog)
	if len(p.options) > 0 {
		fmt.Fprint(w, " [options]")
	}
	for _, a := range p.arguments {
		name := a.displayName()
		if a.variadic() {
			name += variadicMarker
		}
		if a.Kind == Optional {
			name = "[" + name + "]"
		}
		fmt.Fprintf(w, " %s", name)
	}
	fmt.Fprintln(w)

	if len(p.options) > 0 {
		fmt.Fprintf(w, "\n%s\n", usageHeading.Render("Options:"))
		labels := make([]string, len(p.options))
		for i, o := range p.options {
			labels[i] = optionLabel(o)
		}
		col := labelColumn(labels)
		for i, o := range p.options {
			printEntry(w, labels[i], o.Doc, col)
		}
	}

	if len(p.arguments) > 0 {
		fmt.Fprintf(w, "\n%s\n", usageHeading.Render("Arguments:"))
		labels := make([]string, len(p.arguments))
		for i, a := range p.arguments {
			labels[i] = a.Name
		}
		col := labelColumn(labels)
		for i, a := range p.arguments {
			doc := a.Doc
			if a.Kind == Optional && !a.variadic() {
				doc = strings.TrimSpace(doc + " (optional)")
			}
			printEntry(w, labels[i], doc, col)
		}
	}
}

// optionLabel formats an option the way the user writes it, with the
// value name appended for value kinds.
func optionLabel(o *Option) string {
	var b strings.Builder
	switch {
	case len(o.Short) > 0 && len(o.Long) > 0:
		fmt.Fprintf(&b, "-%s, --%s", o.Short, o.Long)
	case len(o.Short) > 0:
		fmt.Fprintf(&b, "-%s", o.Short)
	default:
		fmt.Fprintf(&b, "    --%s", o.Long)
	}
	switch o.Kind {
	case MandatoryValue:
		fmt.Fprintf(&b, " %s", o.ValueName)
	case OptionalValue:
		fmt.Fprintf(&b, " [%s]", o.ValueName)
	}
	return b.String()
}

// labelColumn returns the column where help text starts, two spaces
// after the widest label, capped so one oversized label does not push
// everything to the right.
func labelColumn(labels []string) int {
	col := 0
	for _, l := range labels {
		if len(l) > col {
			col = len(l)
		}
	}
	if col > 24 {
		col = 24
	}
	return col + 2
}

// printEntry writes one two-column help entry, wrapping the text and
// moving it to its own lines under an oversized label.
func printEntry(w io.Writer, label, doc string, col int) {
	wrapped := strings.Split(wordwrap.WrapString(doc, uint(usageWidth-col-2)), "\n")
	if len(doc) == 0 {
		wrapped = nil
	}
	if len(label)+2 > col {
		fmt.Fprintf(w, "  %s\n", label)
		label = ""
	}
	if len(wrapped) == 0 {
		if len(label) > 0 {
			fmt.Fprintf(w, "  %s\n", label)
		}
		return
	}
	for _, line := range wrapped {
		fmt.Fprintf(w, "  %-*s%s\n", col, label, line)
		label = ""
	}
}
