package catalog

import (
	"errors"
	"strconv"

	"github.com/jimezsa/jobfeed/internal/models"
)

// PageSize is the number of jobs shown per page.
const PageSize = 6

const maxPlainIndicators = 5

var ErrPageOutOfRange = errors.New("page out of range")

// Indicator is one entry of the compact page navigation. Ellipsis entries
// are placeholders and carry no page.
type Indicator struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

func (i Indicator) String() string {
	if i.Ellipsis {
		return "…"
	}
	return strconv.Itoa(i.Page)
}

// Page is one slice of a filtered job list. Start and End are the 1-based
// positions of the first and last job shown.
type Page struct {
	Jobs       []models.Job `json:"jobs"`
	Number     int          `json:"page"`
	Size       int          `json:"page_size"`
	Total      int          `json:"total"`
	TotalPages int          `json:"total_pages"`
	Start      int          `json:"start"`
	End        int          `json:"end"`
	Indicators []Indicator  `json:"indicators"`
}

// Remaining is the number of jobs after this page.
func (p Page) Remaining() int {
	return p.Total - p.End
}

// TotalPages returns ceil(total/size), 0 for an empty list.
func TotalPages(total int, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// InRange reports whether page is navigable.
func InRange(page int, totalPages int) bool {
	return page >= 1 && page <= totalPages
}

// Navigate moves to requested when it is in range. Otherwise the current page
// is kept and ok is false.
func Navigate(current int, requested int, totalPages int) (page int, ok bool) {
	if !InRange(requested, totalPages) {
		return current, false
	}
	return requested, true
}

// Paginate returns the requested 1-based page. Page 1 of an empty list is an
// empty page with no indicators; any other out-of-range page is refused.
func Paginate(jobs []models.Job, number int, size int) (Page, error) {
	if size <= 0 {
		size = PageSize
	}
	if number < 1 {
		return Page{}, ErrPageOutOfRange
	}
	total := len(jobs)
	totalPages := TotalPages(total, size)
	if totalPages == 0 && number == 1 {
		return Page{Jobs: []models.Job{}, Size: size}, nil
	}
	if !InRange(number, totalPages) {
		return Page{}, ErrPageOutOfRange
	}

	start := (number - 1) * size
	end := min(start+size, total)

	return Page{
		Jobs:       jobs[start:end:end],
		Number:     number,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
		Start:      start + 1,
		End:        end,
		Indicators: Indicators(number, totalPages),
	}, nil
}

// Indicators builds the compact page list:
//
//	totalPages <= 5           1 2 3 4 5
//	current <= 3              1 2 3 4 5 … N
//	current >= N-2            1 … N-4 N-3 N-2 N-1 N
//	otherwise                 1 … c-1 c c+1 … N
func Indicators(current int, totalPages int) []Indicator {
	if totalPages <= 0 {
		return nil
	}
	if totalPages <= maxPlainIndicators {
		return pageRange(1, totalPages)
	}

	ellipsis := Indicator{Ellipsis: true}
	last := Indicator{Page: totalPages}
	first := Indicator{Page: 1}

	switch {
	case current <= 3:
		out := pageRange(1, maxPlainIndicators)
		return append(out, ellipsis, last)
	case current >= totalPages-2:
		out := []Indicator{first, ellipsis}
		return append(out, pageRange(totalPages-4, totalPages)...)
	default:
		out := []Indicator{first, ellipsis}
		out = append(out, pageRange(current-1, current+1)...)
		return append(out, ellipsis, last)
	}
}

func pageRange(from int, to int) []Indicator {
	out := make([]Indicator, 0, to-from+1)
	for page := from; page <= to; page++ {
		out = append(out, Indicator{Page: page})
	}
	return out
}
