package advisor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"careerpulse/internal/types"
)

func marketPrompt(query string, r types.TimeRange, points int) string {
	if query != "" {
		return fmt.Sprintf(`Generate a deep-dive AI market report for %q over a %s period.
- Pivot all growth stats and the main chart data specifically to %q for %s.
- Provide exactly %d data points in 'chartData' (one per month).
- Provide a sharp "Industry Need" analysis explaining WHY %q is critical right now.
- List top market competitors for %q.
- Include relevant market stats (Market Cap effect, Active Solutions, etc.) within the context of %q.`,
			query, r, query, r, points, query, query, query)
	}
	return fmt.Sprintf(`Generate a comprehensive AI market report for the general tech landscape today over a %s period.
- Provide exactly %d data points in 'chartData'.
- Identify 4 specific "growingTools" that are trending right now with their names, growth %%, and a 1-sentence reason.
- Include broad metrics, growth trends, and trending industry insights.`, r, points)
}

// MarketPulse returns a market report for the query over the given range.
// The chart always carries exactly r.Points() entries on the fallback path;
// the live prompt requests the same count so both paths agree.
func (s *Service) MarketPulse(ctx context.Context, query string, r types.TimeRange) *types.MarketPulse {
	points := r.Points()

	data, err := s.client.Generate(ctx, marketPrompt(query, r, points), marketPulseSchema())
	if err == nil {
		var pulse types.MarketPulse
		if err = decode(data, &pulse); err == nil {
			pulse.Source = types.SourceLive
			return &pulse
		}
	}

	s.log.Debug("market pulse using fallback",
		zap.String("query", query),
		zap.String("range", string(r)),
		zap.Error(err))

	pulse := s.synth.MarketPulse(query, points)
	pulse.Source = types.SourceFallback
	return pulse
}
