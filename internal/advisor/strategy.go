package advisor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"careerpulse/internal/types"
)

func strategyPrompt(productName, description string) string {
	return fmt.Sprintf(`Act as a world-class Product Architect and Market Strategist. Create a hyper-specific, forward-looking technical roadmap for the product: %q.
Description: %s

CRITICAL REQUIREMENTS:
1. Respond ONLY with a VALID JSON object matching the provided schema.
2. TECHNICAL HURDLES: Instead of generic speed/scaling, identify actual technical constraints for THIS product (e.g., "WebGPU acceleration", "Vector database indexing for LLMs").
3. COMPETITIVE EDGE: Provide a unique differentiation strategy based on current market gaps.
4. KPIS: Use realistic, data-driven targets (e.g., "Reduction in inference latency by 40%%" or "Retaining 35%% of power users").
5. USER EXPERIENCE: Suggest specific interface transitions or interaction patterns (e.g., "Command-K palette implementation").`,
		productName, description)
}

// ProductStrategy returns a strategy report for the named product.
func (s *Service) ProductStrategy(ctx context.Context, productName, description string) *types.ProductStrategy {
	data, err := s.client.Generate(ctx, strategyPrompt(productName, description), productStrategySchema())
	if err == nil {
		var strategy types.ProductStrategy
		if err = decode(data, &strategy); err == nil {
			strategy.Source = types.SourceLive
			return &strategy
		}
	}

	s.log.Debug("product strategy using fallback",
		zap.String("product", productName),
		zap.Error(err))

	strategy := s.synth.ProductStrategy(productName)
	strategy.Source = types.SourceFallback
	return strategy
}
