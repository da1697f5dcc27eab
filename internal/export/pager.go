package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/jimezsa/jobfeed/internal/catalog"
)

// Summary renders the result header, e.g. "14 Jobs Found, showing 7-12".
func Summary(page catalog.Page) string {
	noun := "Jobs"
	if page.Total == 1 {
		noun = "Job"
	}
	if page.Total == 0 {
		return "0 Jobs Found"
	}
	return fmt.Sprintf("%d %s Found, showing %d-%d", page.Total, noun, page.Start, page.End)
}

// PageLine renders the compact page navigation. emphasize marks the current
// page; nil leaves it plain.
func PageLine(page catalog.Page, emphasize func(string) string) string {
	if len(page.Indicators) == 0 {
		return ""
	}
	parts := make([]string, 0, len(page.Indicators))
	for _, indicator := range page.Indicators {
		label := indicator.String()
		if !indicator.Ellipsis && indicator.Page == page.Number && emphasize != nil {
			label = emphasize(label)
		}
		parts = append(parts, label)
	}
	return fmt.Sprintf("Page %d of %d: %s", page.Number, page.TotalPages, strings.Join(parts, " "))
}

// WritePager writes the summary and page line, skipping the page line when
// there is nothing to navigate.
func WritePager(w io.Writer, page catalog.Page, emphasize func(string) string) error {
	if _, err := fmt.Fprintln(w, Summary(page)); err != nil {
		return err
	}
	line := PageLine(page, emphasize)
	if line == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
