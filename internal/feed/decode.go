// Package feed turns raw sheet rows into canonical jobs ordered by recency.
package feed

import (
	"html"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jimezsa/jobfeed/internal/models"
)

// Source row keys. The feed is case-sensitive.
const (
	KeyTitle       = "Title"
	KeyCompany     = "Company"
	KeyLocation    = "Location"
	KeyApplyLink   = "ApplyLink"
	KeyPostedOn    = "PostedOn"
	KeyCategory    = "Category"
	KeyDescription = "Description"
	KeySalary      = "Salary"
	KeyType        = "Type"
)

// Defaults substituted for absent fields.
const (
	DefaultTitle       = "Untitled Job"
	DefaultCompany     = "Unknown Company"
	DefaultLocation    = "N/A"
	DefaultApplyLink   = "#"
	DefaultCategory    = "other"
	DefaultDescription = "No description provided."
	DefaultSalary      = "Not specified"
	DefaultType        = "Full-time"
)

// Row is one untyped object from the feed.
type Row map[string]any

// Field is a source value that is either present or absent.
type Field struct {
	Value   string
	Present bool
}

// Or returns the value when present and fallback otherwise.
func (f Field) Or(fallback string) string {
	if !f.Present {
		return fallback
	}
	return f.Value
}

// Field reads key from the row. Non-string and blank values are absent.
func (r Row) Field(key string) Field {
	raw, ok := r[key]
	if !ok {
		return Field{}
	}
	value, ok := raw.(string)
	if !ok {
		return Field{}
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return Field{}
	}
	return Field{Value: value, Present: true}
}

// Decode converts a row into a Job with the given 1-based position as its id.
func Decode(row Row, position int) models.Job {
	category := row.Field(KeyCategory)
	if category.Present {
		category.Value = strings.ToLower(category.Value)
	}

	description := row.Field(KeyDescription)
	if description.Present {
		description.Value = plainText(description.Value)
		description.Present = description.Value != ""
	}

	return models.Job{
		ID:          strconv.Itoa(position),
		Title:       row.Field(KeyTitle).Or(DefaultTitle),
		Company:     row.Field(KeyCompany).Or(DefaultCompany),
		Location:    row.Field(KeyLocation).Or(DefaultLocation),
		ApplyLink:   row.Field(KeyApplyLink).Or(DefaultApplyLink),
		PostedOn:    row.Field(KeyPostedOn).Or(""),
		Category:    category.Or(DefaultCategory),
		Description: description.Or(DefaultDescription),
		Salary:      row.Field(KeySalary).Or(DefaultSalary),
		Type:        row.Field(KeyType).Or(DefaultType),
	}
}

// plainText drops markup pasted into a sheet cell and collapses whitespace.
// Inline elements join their text; block elements separate it.
func plainText(value string) string {
	if strings.ContainsAny(value, "<&") {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(value))
		if err == nil {
			doc.Find("script, style, noscript").Remove()
			var b strings.Builder
			collectText(doc.Selection, &b)
			value = b.String()
		} else {
			value = html.UnescapeString(value)
		}
	}
	return strings.Join(strings.Fields(value), " ")
}

var blockElements = map[string]bool{
	"address": true, "article": true, "blockquote": true, "br": true,
	"dd": true, "div": true, "dl": true, "dt": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true, "hr": true, "li": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"td": true, "th": true, "tr": true, "ul": true,
}

func collectText(sel *goquery.Selection, b *strings.Builder) {
	sel.Contents().Each(func(_ int, s *goquery.Selection) {
		name := goquery.NodeName(s)
		if name == "#text" {
			b.WriteString(s.Text())
			return
		}
		block := blockElements[name]
		if block {
			b.WriteByte(' ')
		}
		collectText(s, b)
		if block {
			b.WriteByte(' ')
		}
	})
}
