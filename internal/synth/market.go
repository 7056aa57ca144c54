package synth

import (
	"math"
	"strconv"
	"strings"
	"time"

	"careerpulse/internal/types"
)

// spotlightProfiles holds enriched detail records for tools we recognize in
// a market query. Unrecognized queries get no spotlight, matching the live
// schema where toolSpotlight is optional. spotlightKeys fixes the match
// order so a query naming several tools always resolves to the same one.
var spotlightKeys = []string{"chatgpt", "claude", "gemini", "midjourney"}

var spotlightProfiles = map[string]types.ToolSpotlight{
	"chatgpt": {
		Name:         "ChatGPT",
		Category:     "LLM & Conversational AI",
		Rating:       "5",
		Description:  "The industry-leading conversational AI by OpenAI.",
		Pros:         []string{"Exceptional reasoning", "Massive ecosystem"},
		Cons:         []string{"Subscription required", "Hallucinations"},
		IndustryNeed: "Critical for automation.",
		Competitors:  []string{"Claude", "Gemini"},
		UseCase:      "Coding, content",
		Pricing:      "Free / $20/mo",
		Website:      "https://chatgpt.com",
	},
	"claude": {
		Name:         "Claude",
		Category:     "LLM & Conversational AI",
		Rating:       "5",
		Description:  "Anthropic's assistant known for long-context reasoning and coding.",
		Pros:         []string{"Strong coding performance", "Large context window"},
		Cons:         []string{"Smaller plugin ecosystem", "Usage caps on lower tiers"},
		IndustryNeed: "Preferred for complex multi-file engineering work.",
		Competitors:  []string{"ChatGPT", "Gemini"},
		UseCase:      "Coding, analysis",
		Pricing:      "Free / $20/mo",
		Website:      "https://claude.ai",
	},
	"gemini": {
		Name:         "Gemini",
		Category:     "LLM & Multimodal AI",
		Rating:       "4",
		Description:  "Google's multimodal model family with deep Workspace integration.",
		Pros:         []string{"Native multimodality", "Tight Google integration"},
		Cons:         []string{"Regional availability varies", "API surface still shifting"},
		IndustryNeed: "Default choice for teams on Google Cloud.",
		Competitors:  []string{"ChatGPT", "Claude"},
		UseCase:      "Search, multimodal apps",
		Pricing:      "Free / $19.99/mo",
		Website:      "https://gemini.google.com",
	},
	"midjourney": {
		Name:         "Midjourney",
		Category:     "Image Generation",
		Rating:       "4",
		Description:  "High-fidelity text-to-image generation with a strong artist community.",
		Pros:         []string{"Photorealistic output", "Active community"},
		Cons:         []string{"Discord-first workflow", "No free tier"},
		IndustryNeed: "Standard for concept art and marketing visuals.",
		Competitors:  []string{"DALL-E", "Stable Diffusion"},
		UseCase:      "Design, marketing",
		Pricing:      "$10-$120/mo",
		Website:      "https://midjourney.com",
	},
}

// MarketPulse synthesizes a full market report with exactly points chart
// entries. Growth values stay positive inside a bounded band.
func (s *Synthesizer) MarketPulse(query string, points int) *types.MarketPulse {
	if points <= 0 {
		points = types.Range6M.Points()
	}

	labels := s.monthLabels(points)
	chart := make([]types.ChartPoint, points)
	for i := range chart {
		base := s.between(30, 70)
		trend := "stable"
		if s.rng.Float64() > 0.3 {
			trend = "increasing"
		}
		chart[i] = types.ChartPoint{
			Month:       labels[i],
			Growth:      math.Round(base + float64(i)*5),
			Label:       "+" + strconv.Itoa(int(math.Round(s.between(5, 20)))) + "%",
			DemandTrend: trend,
			TimeRate:    4.0 + float64(i)*0.1,
		}
	}

	var spotlight *types.ToolSpotlight
	q := strings.ToLower(strings.TrimSpace(query))
	for _, key := range spotlightKeys {
		if strings.Contains(q, key) {
			p := spotlightProfiles[key]
			spotlight = &p
			break
		}
	}

	return &types.MarketPulse{
		Timestamp: s.now().UTC().Format(time.RFC3339),
		Stats: types.MarketStats{
			MarketCap:       "$1.82T",
			MarketCapGrowth: "12.4%",
			ActiveTools:     "14,290",
			WeeklyNewTools:  "430",
			AvgFunding:      "$24.5M",
			FundingLabel:    "Avg. Series A Funding",
		},
		ChartData: chart,
		Insights: []types.Insight{
			{
				Tag:     "Efficiency",
				Time:    "2h ago",
				Title:   "LLM inference costs dropping",
				Content: "New techniques are lowering barriers.",
			},
			{
				Tag:     "Hiring",
				Time:    "6h ago",
				Title:   "Applied-AI roles keep widening",
				Content: "Demand for engineers who can ship LLM features outpaces supply.",
			},
		},
		Categories: []types.CategoryBreakdown{
			{Name: "Language Models", Growth: "+82%", Percentage: 40},
			{Name: "Image Generation", Growth: "+54%", Percentage: 25},
			{Name: "Developer Tools", Growth: "+47%", Percentage: 20},
		},
		GrowingTools: []types.GrowingTool{
			{Name: "Sora", Growth: "+120%", Reason: "Text-to-video breakthrough"},
			{Name: "Claude 3.5 Sonnet", Growth: "+85%", Reason: "Top-tier coding performance"},
			{Name: "Perplexity", Growth: "+65%", Reason: "AI search adoption"},
			{Name: "Midjourney v6", Growth: "+45%", Reason: "Photorealistic generations"},
		},
		ToolSpotlight:   spotlight,
		BestOverallTool: "ChatGPT",
		CAGR:            "38% CAGR",
	}
}
