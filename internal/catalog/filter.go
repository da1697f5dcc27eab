// Package catalog filters and paginates normalized jobs. Every function is a
// pure transform of its arguments.
package catalog

import (
	"strings"

	"github.com/jimezsa/jobfeed/internal/models"
)

// CategoryAll disables the category predicate.
const CategoryAll = "all"

// Category is one selectable entry of the category sidebar.
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Categories is the fixed selector list, "all" first.
var Categories = []Category{
	{ID: CategoryAll, Label: "All Jobs"},
	{ID: "fresher", Label: "Fresher Jobs"},
	{ID: "remote", Label: "Remote Jobs"},
	{ID: "government", Label: "Government Jobs"},
	{ID: "it", Label: "IT Jobs"},
	{ID: "internship", Label: "Internships"},
}

// CategoryCount is a category with the number of jobs it selects.
type CategoryCount struct {
	Category
	Count int `json:"count"`
}

// ValidCategory reports whether id is one of Categories.
func ValidCategory(id string) bool {
	for _, category := range Categories {
		if category.ID == id {
			return true
		}
	}
	return false
}

// Filter returns the jobs matching both the text query and the category
// selector, in input order.
func Filter(jobs []models.Job, query string, category string) []models.Job {
	needle := strings.ToLower(query)
	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if !matchesQuery(job, needle) || !matchesCategory(job, category) {
			continue
		}
		out = append(out, job)
	}
	return out
}

func matchesQuery(job models.Job, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(job.Title), needle) ||
		strings.Contains(strings.ToLower(job.Company), needle) ||
		strings.Contains(strings.ToLower(job.Location), needle)
}

func matchesCategory(job models.Job, category string) bool {
	return category == CategoryAll || job.Category == category
}

// Stats counts the jobs each entry of Categories would select.
func Stats(jobs []models.Job) []CategoryCount {
	byCategory := make(map[string]int, len(Categories))
	for _, job := range jobs {
		byCategory[job.Category]++
	}

	counts := make([]CategoryCount, 0, len(Categories))
	for _, category := range Categories {
		count := byCategory[category.ID]
		if category.ID == CategoryAll {
			count = len(jobs)
		}
		counts = append(counts, CategoryCount{Category: category, Count: count})
	}
	return counts
}
