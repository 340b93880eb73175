// Package observability provides formatted output utilities for CLI tools.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for CLI tools
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSeedPlan outputs the number of documents queued per collection.
func (p *Printer) PrintSeedPlan(perCollection map[string]int) {
	if len(perCollection) == 0 {
		p.printBox("Seed Plan", "No documents to write.")
		return
	}

	collections := make([]string, 0, len(perCollection))
	for name := range perCollection {
		collections = append(collections, name)
	}
	sort.Strings(collections)

	var sb strings.Builder
	total := 0
	for _, name := range collections {
		sb.WriteString(fmt.Sprintf("%-20s %d\n", name, perCollection[name]))
		total += perCollection[name]
	}
	sb.WriteString(fmt.Sprintf("\nTotal: %d", total))

	p.printBox("Seed Plan", sb.String())
}

// PrintSeedSummary outputs the final write and warning counts.
func (p *Printer) PrintSeedSummary(written, warnings int) {
	content := fmt.Sprintf("Documents written:  %d\nSchema warnings:    %d", written, warnings)
	p.printBox("Seed Complete", content)
}
