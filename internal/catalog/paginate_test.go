package catalog

import (
	"strconv"
	"strings"
	"testing"

	"github.com/jimezsa/jobfeed/internal/models"
	"github.com/stretchr/testify/require"
)

func numberedJobs(n int) []models.Job {
	jobs := make([]models.Job, 0, n)
	for i := 1; i <= n; i++ {
		jobs = append(jobs, models.Job{ID: strconv.Itoa(i), Title: "Job " + strconv.Itoa(i), Category: "it"})
	}
	return jobs
}

func render(indicators []Indicator) string {
	parts := make([]string, 0, len(indicators))
	for _, indicator := range indicators {
		parts = append(parts, indicator.String())
	}
	return strings.Join(parts, " ")
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int
		want  int
	}{
		{0, 0},
		{1, 1},
		{6, 1},
		{7, 2},
		{12, 2},
		{14, 3},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, TotalPages(tc.total, PageSize), "total=%d", tc.total)
	}
}

func TestPaginateScenario(t *testing.T) {
	page, err := Paginate(numberedJobs(14), 1, PageSize)
	require.NoError(t, err)
	require.Equal(t, 3, page.TotalPages)
	require.Equal(t, "1 2 3", render(page.Indicators))
	require.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, jobIDs(page.Jobs))
	require.Equal(t, 1, page.Start)
	require.Equal(t, 6, page.End)
	require.Equal(t, 8, page.Remaining())

	last, err := Paginate(numberedJobs(14), 3, PageSize)
	require.NoError(t, err)
	require.Equal(t, []string{"13", "14"}, jobIDs(last.Jobs))
	require.Equal(t, 13, last.Start)
	require.Equal(t, 14, last.End)
	require.Zero(t, last.Remaining())
}

func TestPaginateCoverage(t *testing.T) {
	for _, total := range []int{1, 5, 6, 7, 12, 13, 31} {
		jobs := numberedJobs(total)
		totalPages := TotalPages(total, PageSize)

		var joined []models.Job
		for number := 1; number <= totalPages; number++ {
			page, err := Paginate(jobs, number, PageSize)
			require.NoError(t, err)
			joined = append(joined, page.Jobs...)
		}
		require.Equal(t, jobs, joined, "total=%d", total)
	}
}

func TestPaginateRefusesOutOfRange(t *testing.T) {
	jobs := numberedJobs(14)

	_, err := Paginate(jobs, 0, PageSize)
	require.ErrorIs(t, err, ErrPageOutOfRange)

	_, err = Paginate(jobs, 4, PageSize)
	require.ErrorIs(t, err, ErrPageOutOfRange)
}

func TestPaginateEmpty(t *testing.T) {
	page, err := Paginate(nil, 1, PageSize)
	require.NoError(t, err)
	require.Zero(t, page.TotalPages)
	require.Zero(t, page.Total)
	require.Empty(t, page.Jobs)
	require.Nil(t, page.Indicators)

	_, ok := Navigate(0, 1, page.TotalPages)
	require.False(t, ok)

	for _, number := range []int{0, -1, 2} {
		_, err := Paginate(nil, number, PageSize)
		require.ErrorIs(t, err, ErrPageOutOfRange, "page %d", number)
	}
}

func TestPaginateAppendDoesNotLeak(t *testing.T) {
	jobs := numberedJobs(12)
	page, err := Paginate(jobs, 1, PageSize)
	require.NoError(t, err)

	_ = append(page.Jobs, models.Job{ID: "x"})
	require.Equal(t, "7", jobs[6].ID)
}

func TestNavigate(t *testing.T) {
	page, ok := Navigate(2, 3, 3)
	require.True(t, ok)
	require.Equal(t, 3, page)

	page, ok = Navigate(2, 0, 3)
	require.False(t, ok)
	require.Equal(t, 2, page)

	page, ok = Navigate(2, 4, 3)
	require.False(t, ok)
	require.Equal(t, 2, page)
}

func TestIndicators(t *testing.T) {
	cases := []struct {
		current    int
		totalPages int
		want       string
	}{
		{1, 0, ""},
		{1, 1, "1"},
		{2, 5, "1 2 3 4 5"},
		{1, 10, "1 2 3 4 5 … 10"},
		{3, 10, "1 2 3 4 5 … 10"},
		{4, 10, "1 … 3 4 5 … 10"},
		{7, 10, "1 … 6 7 8 … 10"},
		{8, 10, "1 … 6 7 8 9 10"},
		{10, 10, "1 … 6 7 8 9 10"},
		{4, 6, "1 … 2 3 4 5 6"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, render(Indicators(tc.current, tc.totalPages)), "current=%d total=%d", tc.current, tc.totalPages)
	}
}

func TestIndicatorEllipsisIsNotNavigable(t *testing.T) {
	for _, indicator := range Indicators(5, 20) {
		if indicator.Ellipsis {
			require.Zero(t, indicator.Page)
			_, ok := Navigate(5, indicator.Page, 20)
			require.False(t, ok)
		}
	}
}

func TestQuery(t *testing.T) {
	jobs := append(sampleJobs(), numberedJobs(8)...)

	view, err := Query(jobs, models.ListParams{Category: "it", Page: 2})
	require.NoError(t, err)
	require.Equal(t, "it", view.Category)
	require.Equal(t, 9, view.Total)
	require.Equal(t, 2, view.TotalPages)
	require.Len(t, view.Jobs, 3)

	view, err = Query(jobs, models.ListParams{Query: "officer", Page: 1})
	require.NoError(t, err)
	require.Equal(t, CategoryAll, view.Category)
	require.Equal(t, 2, view.Total)

	view, err = Query(jobs, models.ListParams{Query: "nothing matches", Page: 1})
	require.NoError(t, err)
	require.Zero(t, view.TotalPages)
	require.Empty(t, view.Indicators)

	_, err = Query(jobs, models.ListParams{Category: "it", Page: 3})
	require.ErrorIs(t, err, ErrPageOutOfRange)
}
