package synth

import (
	"fmt"
	"strings"

	"careerpulse/internal/types"
)

// ProductStrategy synthesizes a full strategy report. Products whose name
// reads as AI-flavored get AI-specific technical hurdles.
func (s *Synthesizer) ProductStrategy(productName string) *types.ProductStrategy {
	p := strings.ToLower(productName)
	isAI := strings.Contains(p, "ai") || strings.Contains(p, "gpt") || strings.Contains(p, "llm")

	hurdles := []string{"Auto-scaling Cloud Architectures", "High-Throughput API Gateways", "Distributed Database Consistency"}
	domain := "innovative infrastructure"
	strengthLead := "Novel System Logic"
	trendLead := "Serverless Edge Computing"
	differentiator := "zero-latency operations"
	uxLead := "hyper-responsive interactions"
	if isAI {
		hurdles = []string{"LLM Inference Latency", "Vector DB Optimization", "Context Window Management"}
		domain = "intelligent automation"
		strengthLead = "Novel AI Logic"
		trendLead = "Small Language Model (SLM) Efficiency"
		differentiator = "deterministic AI outputs"
		uxLead = "proactive AI suggestions"
	}

	return &types.ProductStrategy{
		ProductName: productName,
		CurrentState: types.CurrentState{
			Analysis:   fmt.Sprintf("Market analysis reveals that %s is entering a high-growth segment with significant demand for %s.", productName, domain),
			Strengths:  []string{strengthLead, "Clear Competitive Niche", "Strong Technical Vision"},
			Weaknesses: []string{"Global Market Awareness", "Infrastructure Elasticity", "Onboarding Conversion"},
		},
		MarketAnalysis: types.MarketAnalysis{
			Competitors:     []string{"Current Market Incumbents", "Segment-Specific Challengers"},
			Trends:          []string{trendLead, "Proactive User Support"},
			Differentiation: fmt.Sprintf("Pivoting to %s to outperform established market leaders.", differentiator),
		},
		Roadmap: types.ProductRoadmap{
			ShortTerm: types.RoadmapPhase{
				Title:    "Strategic MVP Core",
				Timeline: "0-4 Months",
				Focus:    []string{"Core Logic Engine", "Target Segment Validation"},
				Details:  fmt.Sprintf("Deploy the foundational version of %s to high-value early adopters.", productName),
			},
			MidTerm: types.RoadmapPhase{
				Title:    "Ecosystem Expansion",
				Timeline: "4-9 Months",
				Focus:    []string{"High-Impact Integrations", "Security Hardening"},
				Details:  fmt.Sprintf("Scale %s by integrating with major enterprise workflows and platforms.", productName),
			},
			LongTerm: types.RoadmapPhase{
				Title:    "Vertical Domain Authority",
				Timeline: "12+ Months",
				Focus:    []string{"Internal Marketplace", "Global Distribution"},
				Details:  fmt.Sprintf("Establish %s as the primary platform for its domain.", productName),
			},
		},
		TechnicalUpgrades: hurdles,
		UXStrategy:        fmt.Sprintf("Implement %s and a minimalist command-palette interface.", uxLead),
		Monetization:      "Hybrid usage-based model with an emphasis on high-throughput enterprise tiers.",
		Risks: []types.Risk{
			{Risk: "Rapid Technological Shift", Mitigation: "Modular architecture for fast updates"},
		},
		KPIs: []types.KPI{
			{Metric: "User Retention Rate", Target: "Above 45% (MoM)"},
		},
	}
}
