package synth

import (
	"fmt"
	"net/url"
	"strings"

	"careerpulse/internal/types"
)

var (
	fallbackCompanies = []string{"TechNova", "Stellar AI", "Nexus Systems"}
	fallbackLocations = []string{"Remote", "San Francisco, CA", "London, UK"}
	fallbackSalaries  = []string{"$120k - $160k", "$100k - $140k", "$140k - $190k"}
)

// Jobs synthesizes count listings for the query. The employment type always
// defaults to Full-time; ids are deterministic so repeated fallbacks don't
// churn list keys downstream.
func (s *Synthesizer) Jobs(query string, count int) []types.Job {
	if count <= 0 {
		count = 20
	}
	title := strings.TrimSpace(query)
	if title == "" {
		title = "AI Engineer"
	}

	jobs := make([]types.Job, count)
	for i := range jobs {
		company := fallbackCompanies[i%len(fallbackCompanies)]
		jobs[i] = types.Job{
			ID:          fmt.Sprintf("fallback-%d", i),
			Title:       title,
			Company:     company,
			Location:    fallbackLocations[i%len(fallbackLocations)],
			Salary:      fallbackSalaries[i%len(fallbackSalaries)],
			Type:        types.JobTypeFullTime,
			Tags:        []string{"Hybrid", "AI"},
			Description: fmt.Sprintf("%s is hiring a %s to ship AI-assisted product features.", company, title),
			Stack:       []string{"React", "TypeScript", "Python"},
			PostedAt:    "Just now",
			Logo:        "https://ui-avatars.com/api/?name=" + url.QueryEscape(company),
			ApplyURL:    "#",
		}
	}
	return jobs
}
