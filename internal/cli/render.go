package cli

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	nameStyle = lipgloss.NewStyle().
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))

	okStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("42"))

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	errorDetailStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("203"))
)

// renderTable aligns rows with a tabwriter and styles the header line.
// Styling is applied after alignment so escape sequences do not skew column
// widths.
func renderTable(header []string, rows [][]string) (string, error) {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	if err := w.Flush(); err != nil {
		return "", err
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	lines[0] = headerStyle.Render(strings.TrimRight(lines[0], " "))
	return strings.Join(lines, "\n") + "\n", nil
}

// renderResult formats one test-examples summary line.
func renderResult(name string, err error) string {
	if err == nil {
		return fmt.Sprintf("%s: %s", nameStyle.Render(name), okStyle.Render("OK"))
	}
	return fmt.Sprintf("%s: %s\n%s", nameStyle.Render(name), failStyle.Render("Failed"), errorDetailStyle.Render(err.Error()))
}
