package catalog

import (
	"testing"

	"github.com/jimezsa/jobfeed/internal/feed"
	"github.com/jimezsa/jobfeed/internal/models"
	"github.com/stretchr/testify/require"
)

func sampleJobs() []models.Job {
	return []models.Job{
		{ID: "1", Title: "Senior React Developer", Company: "TechCorp Solutions", Location: "Bangalore, India", Category: "remote"},
		{ID: "2", Title: "Software Engineer - Fresher", Company: "Infosys Limited", Location: "Hyderabad, India", Category: "fresher"},
		{ID: "3", Title: "Data Scientist", Company: "Microsoft India", Location: "Chennai, India", Category: "remote"},
		{ID: "4", Title: "Government Officer - Grade A", Company: "Government of India", Location: "New Delhi, India", Category: "government"},
		{ID: "5", Title: "Full Stack Developer", Company: "Startup Inc", Location: "Mumbai, India", Category: "it"},
		{ID: "6", Title: "Forest Officer", Company: "Forest Department", Location: "Kerala, India", Category: "other"},
	}
}

func jobIDs(jobs []models.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, job.ID)
	}
	return out
}

func TestFilterQueryMatchesTitleCompanyLocation(t *testing.T) {
	jobs := sampleJobs()

	require.Equal(t, []string{"1", "5"}, jobIDs(Filter(jobs, "DEVELOPER", CategoryAll)))
	require.Equal(t, []string{"3"}, jobIDs(Filter(jobs, "microsoft", CategoryAll)))
	require.Equal(t, []string{"6"}, jobIDs(Filter(jobs, "kerala", CategoryAll)))
	require.Len(t, Filter(jobs, "india", CategoryAll), 6)
	require.Empty(t, Filter(jobs, "rust", CategoryAll))
}

func TestFilterEmptyQueryAndAllReturnsEverything(t *testing.T) {
	jobs := sampleJobs()
	require.Equal(t, jobs, Filter(jobs, "", CategoryAll))
}

func TestFilterCategoryIsExact(t *testing.T) {
	jobs := sampleJobs()

	require.Equal(t, []string{"1", "3"}, jobIDs(Filter(jobs, "", "remote")))
	require.Empty(t, Filter(jobs, "", "Remote"))
	require.Empty(t, Filter(jobs, "", "internship"))
	require.Equal(t, []string{"6"}, jobIDs(Filter(jobs, "", "other")))
}

func TestFilterConjunction(t *testing.T) {
	jobs := sampleJobs()
	queries := []string{"", "developer", "india", "officer", "zzz"}

	for _, query := range queries {
		for _, category := range Categories {
			both := Filter(jobs, query, category.ID)
			textOnly := setOf(Filter(jobs, query, CategoryAll))
			categoryOnly := setOf(Filter(jobs, "", category.ID))
			for _, job := range both {
				require.Contains(t, textOnly, job.ID, "query=%q category=%q", query, category.ID)
				require.Contains(t, categoryOnly, job.ID, "query=%q category=%q", query, category.ID)
			}
		}
	}
}

func TestFilterIsDeterministicAndPure(t *testing.T) {
	jobs := sampleJobs()
	before := append([]models.Job(nil), jobs...)

	first := Filter(jobs, "officer", CategoryAll)
	second := Filter(jobs, "officer", CategoryAll)

	require.Equal(t, first, second)
	require.Equal(t, before, jobs)
}

func TestFilterScenario(t *testing.T) {
	jobs := feed.Normalize([]feed.Row{
		{"Title": "Dev", "Category": "Remote", "PostedOn": "01/01/2025 10:00"},
		{"Title": "Intern", "Category": "Fresher", "PostedOn": "02/01/2025 09:00"},
	})

	got := Filter(jobs, "dev", CategoryAll)
	require.Len(t, got, 1)
	require.Equal(t, "Dev", got[0].Title)
}

func TestStats(t *testing.T) {
	stats := Stats(sampleJobs())
	require.Len(t, stats, len(Categories))

	counts := map[string]int{}
	for _, stat := range stats {
		counts[stat.ID] = stat.Count
	}
	require.Equal(t, map[string]int{
		"all":        6,
		"fresher":    1,
		"remote":     2,
		"government": 1,
		"it":         1,
		"internship": 0,
	}, counts)
	require.Equal(t, "All Jobs", stats[0].Label)
}

func TestValidCategory(t *testing.T) {
	require.True(t, ValidCategory("all"))
	require.True(t, ValidCategory("internship"))
	require.False(t, ValidCategory("other"))
	require.False(t, ValidCategory("Remote"))
}

func setOf(jobs []models.Job) map[string]struct{} {
	out := make(map[string]struct{}, len(jobs))
	for _, job := range jobs {
		out[job.ID] = struct{}{}
	}
	return out
}
