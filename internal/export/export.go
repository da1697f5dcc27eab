package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"text/tabwriter"
	"time"
	"unicode/utf8"

	"github.com/jimezsa/jobfeed/internal/feed"
	"github.com/jimezsa/jobfeed/internal/models"
	"github.com/muesli/termenv"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatTSV      Format = "tsv"
)

type WriteOptions struct {
	ColorEnabled bool
	Hyperlinks   bool
	LinkStyle    LinkStyle
	// Now anchors relative posted dates; zero means time.Now.
	Now time.Time
}

type LinkStyle string

const (
	LinkStyleShort LinkStyle = "short"
	LinkStyleFull  LinkStyle = "full"
)

func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "tsv":
		return FormatTSV, nil
	case "table", "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format: %s", value)
	}
}

func WriteJobs(w io.Writer, jobs []models.Job, format Format, opts WriteOptions) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, jobs)
	case FormatCSV:
		return writeCSV(w, jobs, ',')
	case FormatTSV:
		return writeCSV(w, jobs, '\t')
	case FormatMarkdown:
		return writeMarkdown(w, jobs, opts)
	default:
		return writeTable(w, jobs, opts)
	}
}

// WriteJSON writes any value as indented JSON.
func WriteJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func writeCSV(w io.Writer, jobs []models.Job, delim rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim
	if err := writer.Write(csvHeader()); err != nil {
		return err
	}
	for _, job := range jobs {
		if err := writer.Write(csvRow(job)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeTable(w io.Writer, jobs []models.Job, opts WriteOptions) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(tableHeader(), "\t"))
	output := termenv.NewOutput(w)
	now := opts.now()
	for _, job := range jobs {
		fmt.Fprintln(tw, strings.Join(tableRow(job, output, opts, now), "\t"))
	}
	return tw.Flush()
}

func writeMarkdown(w io.Writer, jobs []models.Job, opts WriteOptions) error {
	if len(jobs) == 0 {
		_, err := fmt.Fprintln(w, "No jobs found.")
		return err
	}
	now := opts.now()
	for _, job := range jobs {
		applyLine := "  Apply: -"
		if link := applyURL(job); link != "" {
			applyLine = fmt.Sprintf("  Apply: [Apply now](<%s>)", link)
		}
		lines := []string{
			fmt.Sprintf("- **%s** (%s)", safe(job.Title), safe(job.Company)),
			fmt.Sprintf("  Location: %s", safe(job.Location)),
			fmt.Sprintf("  Category: %s", safe(job.Category)),
			fmt.Sprintf("  Type: %s", safe(job.Type)),
			fmt.Sprintf("  Salary: %s", safe(job.Salary)),
			fmt.Sprintf("  Posted: %s", feed.PostedAgo(job.PostedOn, now)),
			applyLine,
			fmt.Sprintf("  Summary: %s", truncate(safe(job.Description), 240)),
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func csvHeader() []string {
	return []string{
		"id",
		"title",
		"company",
		"location",
		"category",
		"type",
		"salary",
		"posted_on",
		"apply_link",
		"description",
	}
}

func csvRow(job models.Job) []string {
	return []string{
		job.ID,
		job.Title,
		job.Company,
		job.Location,
		job.Category,
		job.Type,
		job.Salary,
		job.PostedOn,
		job.ApplyLink,
		job.Description,
	}
}

func safe(value string) string {
	return strings.TrimSpace(value)
}

// truncate keeps at most max runes.
func truncate(value string, max int) string {
	if max <= 0 || utf8.RuneCountInString(value) <= max {
		return value
	}
	return strings.TrimSpace(string([]rune(value)[:max])) + "..."
}

// applyURL returns the apply link, or "" for the "#" placeholder.
func applyURL(job models.Job) string {
	link := safe(job.ApplyLink)
	if link == "" || link == feed.DefaultApplyLink {
		return ""
	}
	return link
}

func tableHeader() []string {
	return []string{
		"title",
		"company",
		"location",
		"category",
		"posted",
		"apply",
	}
}

func tableRow(job models.Job, output *termenv.Output, opts WriteOptions, now time.Time) []string {
	const linkColor = "#87CEEB"

	link := applyURL(job)
	displayURL := "-"
	if link != "" {
		displayURL = link
		if opts.LinkStyle == LinkStyleShort && opts.Hyperlinks {
			displayURL = shortURLLabel(link)
		}
		if opts.ColorEnabled {
			displayURL = output.String(displayURL).Foreground(output.Color(linkColor)).String()
		}
		if opts.Hyperlinks {
			displayURL = hyperlink(link, displayURL)
		}
	}
	return []string{
		safe(job.Title),
		safe(job.Company),
		safe(job.Location),
		safe(job.Category),
		feed.PostedAgo(job.PostedOn, now),
		displayURL,
	}
}

func (o WriteOptions) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

func hyperlink(url string, text string) string {
	const esc = "\x1b"
	return esc + "]8;;" + url + esc + "\\" + text + esc + "]8;;" + esc + "\\"
}

func shortURLLabel(raw string) string {
	const maxLen = 60
	label := strings.TrimSpace(raw)
	if parsed, err := url.Parse(raw); err == nil {
		host := strings.TrimPrefix(parsed.Host, "www.")
		if host != "" {
			label = host + parsed.Path
		}
	}
	label = strings.TrimSpace(label)
	if label == "" {
		label = raw
	}
	if utf8.RuneCountInString(label) > maxLen {
		label = string([]rune(label)[:maxLen-3]) + "..."
	}
	return label
}
