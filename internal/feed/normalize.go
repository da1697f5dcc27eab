package feed

import (
	"sort"

	"github.com/jimezsa/jobfeed/internal/models"
)

// Normalize decodes every row in feed order and sorts the result newest
// posted first. Equal and unparsable dates keep their feed order.
func Normalize(rows []Row) []models.Job {
	jobs := make([]models.Job, 0, len(rows))
	instants := make([]Instant, 0, len(rows))
	for idx, row := range rows {
		job := Decode(row, idx+1)
		jobs = append(jobs, job)
		instants = append(instants, ParsePosted(job.PostedOn))
	}

	order := make([]int, len(jobs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return instants[order[i]].Compare(instants[order[j]]) > 0
	})

	sorted := make([]models.Job, len(jobs))
	for i, idx := range order {
		sorted[i] = jobs[idx]
	}
	return sorted
}
