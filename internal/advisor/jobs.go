package advisor

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"careerpulse/internal/types"
)

const fallbackJobCount = 20

func jobsPrompt(query string) string {
	if query == "" {
		query = "software engineering"
	}
	return fmt.Sprintf("Generate 20 highly realistic, current job listings for %q positions.", query)
}

// FetchJobs returns listings for the query. The result is always non-empty:
// a failed or empty live fetch is replaced by synthesized listings.
func (s *Service) FetchJobs(ctx context.Context, query string) []types.Job {
	data, err := s.client.Generate(ctx, jobsPrompt(query), jobListSchema())
	if err == nil {
		var wrapper struct {
			Jobs []types.Job `json:"jobs"`
		}
		if err = decode(data, &wrapper); err == nil && len(wrapper.Jobs) > 0 {
			for i := range wrapper.Jobs {
				normalizeJob(&wrapper.Jobs[i])
			}
			return wrapper.Jobs
		}
	}

	s.log.Debug("job board using fallback",
		zap.String("query", query),
		zap.Error(err))

	return s.synth.Jobs(query, fallbackJobCount)
}

// normalizeJob enforces the listing invariants: non-empty id and an
// employment type from the documented set, defaulting to Full-time.
func normalizeJob(j *types.Job) {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	switch j.Type {
	case types.JobTypeFullTime, types.JobTypeInternship, types.JobTypeContract:
	default:
		j.Type = types.JobTypeFullTime
	}
}
