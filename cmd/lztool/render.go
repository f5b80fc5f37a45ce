package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type styles struct {
	enabled bool
	header  lipgloss.Style
	name    lipgloss.Style
	value   lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(enabled bool) styles {
	return styles{
		enabled: enabled,
		header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		name:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		value:   lipgloss.NewStyle().Bold(true),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (s styles) apply(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return st.Render(text)
}

func render(w io.Writer, rep report, format string, color bool) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	default:
		renderText(w, rep, newStyles(color))
		return nil
	}
}

func renderText(w io.Writer, rep report, st styles) {
	if len(rep.Records) > 0 {
		renderTable(w, rep.Records, st)
		fmt.Fprintln(w)
	}

	if l := rep.Lookup; l != nil {
		if l.Found {
			fmt.Fprintf(w, "%s = %s %s\n", l.Key, st.apply(st.value, l.Value), st.apply(st.muted, "("+l.File+")"))
		} else {
			fmt.Fprintf(w, "%s: %s\n", l.Key, st.apply(st.muted, "not found"))
		}
	}

	if rep.Counted != nil {
		fmt.Fprintf(w, "Counted Total = %d\n", *rep.Counted)
	}
	fmt.Fprintf(w, "Total Entries = %d\n", rep.Entries)
}

// renderTable prints records in aligned columns. Padding is computed on the
// plain text so styling does not skew widths.
func renderTable(w io.Writer, rows []recordRow, st styles) {
	headers := []string{"RECORD", "FILE", "ATTRIBUTES"}
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{displayName(r.Name), r.File, formatAttributes(r.Attributes)}
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range cells {
		for i, c := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(c))
		}
	}

	line := func(row []string, style func(int, string) string) string {
		parts := make([]string, len(row))
		for i, c := range row {
			if i == len(row)-1 {
				parts[i] = style(i, c)
				continue
			}
			parts[i] = style(i, runewidth.FillRight(c, widths[i]))
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	fmt.Fprintln(w, line(headers, func(_ int, s string) string { return st.apply(st.header, s) }))
	for _, row := range cells {
		fmt.Fprintln(w, line(row, func(i int, s string) string {
			if i == 0 {
				return st.apply(st.name, s)
			}
			return s
		}))
	}
}

func displayName(name string) string {
	if name == "" {
		return "(top level)"
	}
	return name
}

func formatAttributes(attrs map[string]string) string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + attrs[k]
	}
	return strings.Join(parts, " ")
}
