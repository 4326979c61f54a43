package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	suiteStyle  = lipgloss.NewStyle().Bold(true)
	bulletStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	nameStyle   = lipgloss.NewStyle().Faint(true)
)

func SuiteHeader(w io.Writer, class, style string) {
	if style == "" {
		style = "?"
	}
	fmt.Fprintln(w, suiteStyle.Render(class)+"  "+nameStyle.Render("("+style+")"))
}

func SuiteError(w io.Writer, class string, err error) {
	fmt.Fprintln(w, errStyle.Render("err")+"  "+class+": "+err.Error())
}

// Selection prints one selection. Test names are listed beneath unless the
// selection is a single test named like its display name.
func Selection(w io.Writer, display string, testNames []string) {
	fmt.Fprintln(w, "  "+bulletStyle.Render("•")+" "+display)
	if len(testNames) == 1 && testNames[0] == display {
		return
	}
	for _, n := range testNames {
		fmt.Fprintln(w, "      "+nameStyle.Render("→ "+n))
	}
}

func ListRow(w io.Writer, class, display string, count, classWidth int) {
	fmt.Fprintf(w, "%-*s  %s  %s\n", classWidth, class, display, nameStyle.Render(fmt.Sprintf("(%d)", count)))
}

func ShowNames(w io.Writer, class, display string, testNames []string) {
	fmt.Fprintln(w, suiteStyle.Render(display)+"  "+nameStyle.Render(class))
	for _, n := range testNames {
		fmt.Fprintln(w, "  "+n)
	}
}

func Suggestions(w io.Writer, names []string) {
	fmt.Fprintln(w, "did you mean:")
	fmt.Fprintln(w, "  "+strings.Join(names, "\n  "))
}

func IndexSummary(w io.Writer, runID string, suites, selections, failed int) {
	fmt.Fprintf(w, "indexed %d selections from %d suites (run %s)\n", selections, suites, runID)
	if failed > 0 {
		fmt.Fprintln(w, errStyle.Render(fmt.Sprintf("%d suites failed", failed)))
	}
}
