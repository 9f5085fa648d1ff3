// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/news-digest/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
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

// PrintArticles outputs a human-readable summary of the collected articles.
func (p *Printer) PrintArticles(articles []types.Article) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total articles collected: %d\n", len(articles)))

	bySource := make(map[string]int)
	for _, article := range articles {
		bySource[article.Source]++
	}
	if len(bySource) > 0 {
		sb.WriteString(fmt.Sprintf("Sources: %d\n", len(bySource)))
	}
	sb.WriteString("\n")

	count := min(len(articles), maxItemsToShow)
	for i := 0; i < count; i++ {
		article := articles[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, article.Title))
		sb.WriteString(fmt.Sprintf("    %s\n", article.Source))
	}
	if len(articles) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(articles)-maxItemsToShow))
	}

	p.printBox("COLLECTED ARTICLES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDigest outputs a short summary of the generated digest.
func (p *Printer) PrintDigest(digest types.Digest) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Provider: %s\n", digest.Provider))
	sb.WriteString(fmt.Sprintf("Size:     %d bytes\n", len(digest.HTML)))
	sb.WriteString(fmt.Sprintf("Words:    ~%d", len(strings.Fields(digest.HTML))))

	p.printBox("GENERATED DIGEST", sb.String())
}
