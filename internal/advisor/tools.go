package advisor

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"careerpulse/internal/types"
)

const toolsPrompt = "Generate a list of 20 trending and newly launched AI tools."

// FetchTools returns the live tool directory, or nil when the backend is
// unavailable. Nil tells the caller to keep whatever it last displayed;
// this feed has no synthesized substitute.
func (s *Service) FetchTools(ctx context.Context) []types.AITool {
	data, err := s.client.Generate(ctx, toolsPrompt, toolListSchema())
	if err != nil {
		s.log.Debug("tool directory unavailable", zap.Error(err))
		return nil
	}

	var wrapper struct {
		Tools []types.AITool `json:"tools"`
	}
	if err := decode(data, &wrapper); err != nil {
		s.log.Debug("tool directory decode failed", zap.Error(err))
		return nil
	}
	if len(wrapper.Tools) == 0 {
		return nil
	}

	for i := range wrapper.Tools {
		normalizeTool(&wrapper.Tools[i])
	}
	return wrapper.Tools
}

// normalizeTool enforces the directory invariants: rating clamped to [0,5],
// pricing restricted to the three tiers, non-empty id.
func normalizeTool(t *types.AITool) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Rating < 0 {
		t.Rating = 0
	}
	if t.Rating > 5 {
		t.Rating = 5
	}
	switch t.Pricing {
	case types.PricingFree, types.PricingFreemium, types.PricingPaid:
	default:
		t.Pricing = types.PricingFreemium
	}
}
