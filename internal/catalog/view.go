package catalog

import (
	"strings"

	"github.com/jimezsa/jobfeed/internal/models"
)

// View is the result of one filter-and-paginate call.
type View struct {
	Page
	Query    string `json:"query"`
	Category string `json:"category"`
}

// Query filters jobs with params and returns the requested page. An empty
// category means "all".
func Query(jobs []models.Job, params models.ListParams) (View, error) {
	category := strings.TrimSpace(params.Category)
	if category == "" {
		category = CategoryAll
	}

	filtered := Filter(jobs, params.Query, category)
	page, err := Paginate(filtered, params.Page, PageSize)
	if err != nil {
		return View{}, err
	}
	return View{Page: page, Query: params.Query, Category: category}, nil
}
