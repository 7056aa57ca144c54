package synth

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpulse/internal/types"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newSeeded(seed int64) *Synthesizer {
	return New(WithSeed(seed), WithClock(fixedClock(time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC))))
}

func TestMarketPulsePointCounts(t *testing.T) {
	s := newSeeded(1)
	for _, r := range []types.TimeRange{types.Range3M, types.Range6M, types.Range1Y} {
		pulse := s.MarketPulse("", r.Points())
		assert.Len(t, pulse.ChartData, r.Points(), "range %s", r)
	}
}

func TestMonthLabelsEndAtCurrentMonth(t *testing.T) {
	s := newSeeded(1)
	labels := s.monthLabels(3)
	assert.Equal(t, []string{"JUN", "JUL", "AUG"}, labels)
}

func TestMonthLabelsWrapAcrossYearBoundary(t *testing.T) {
	s := New(WithSeed(1), WithClock(fixedClock(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC))))
	labels := s.monthLabels(4)
	assert.Equal(t, []string{"NOV", "DEC", "JAN", "FEB"}, labels)
}

func TestMonthLabelsFullYear(t *testing.T) {
	s := newSeeded(1)
	labels := s.monthLabels(12)
	require.Len(t, labels, 12)
	assert.Equal(t, "SEP", labels[0])
	assert.Equal(t, "AUG", labels[11])
}

func TestMarketPulseGrowthBounded(t *testing.T) {
	s := newSeeded(42)
	pulse := s.MarketPulse("", 12)
	for i, p := range pulse.ChartData {
		assert.Greater(t, p.Growth, 0.0, "point %d", i)
		assert.LessOrEqual(t, p.Growth, 30.0+40.0+float64(i)*5+1, "point %d", i)
		assert.Contains(t, []string{"increasing", "stable"}, p.DemandTrend)
		assert.NotEmpty(t, p.Month)
		assert.NotEmpty(t, p.Label)
	}
}

func TestMarketPulseRequiredFields(t *testing.T) {
	s := newSeeded(7)
	pulse := s.MarketPulse("vector databases", 6)

	assert.NotEmpty(t, pulse.Timestamp)
	assert.NotEmpty(t, pulse.Stats.MarketCap)
	assert.NotEmpty(t, pulse.Stats.FundingLabel)
	assert.NotEmpty(t, pulse.Insights)
	assert.NotEmpty(t, pulse.Categories)
	assert.Len(t, pulse.GrowingTools, 4)
	assert.NotEmpty(t, pulse.BestOverallTool)
	assert.NotEmpty(t, pulse.CAGR)
	assert.Nil(t, pulse.ToolSpotlight, "unrecognized query gets no spotlight")
}

func TestMarketPulseSpotlightLookup(t *testing.T) {
	s := newSeeded(7)

	pulse := s.MarketPulse("ChatGPT", 3)
	require.NotNil(t, pulse.ToolSpotlight)
	assert.Equal(t, "ChatGPT", pulse.ToolSpotlight.Name)
	assert.NotEmpty(t, pulse.ToolSpotlight.Pros)
	assert.NotEmpty(t, pulse.ToolSpotlight.Cons)

	pulse = s.MarketPulse("why is claude trending", 3)
	require.NotNil(t, pulse.ToolSpotlight)
	assert.Equal(t, "Claude", pulse.ToolSpotlight.Name)
}

func TestMarketPulseDeterministicWithSeed(t *testing.T) {
	a := newSeeded(99).MarketPulse("ChatGPT", 6)
	b := newSeeded(99).MarketPulse("ChatGPT", 6)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different output (-a +b):\n%s", diff)
	}
}

func TestMarketPulseSpotlightStableForMultiToolQuery(t *testing.T) {
	// "chatgpt vs claude" matches two spotlight keywords; the earlier key
	// must win on every call.
	for i := 0; i < 50; i++ {
		pulse := newSeeded(99).MarketPulse("chatgpt vs claude", 3)
		require.NotNil(t, pulse.ToolSpotlight)
		assert.Equal(t, "ChatGPT", pulse.ToolSpotlight.Name)
	}
}

func TestJobsDefaults(t *testing.T) {
	jobs := newSeeded(3).Jobs("", 0)
	require.Len(t, jobs, 20)
	for _, j := range jobs {
		assert.Equal(t, types.JobTypeFullTime, j.Type)
		assert.Equal(t, "AI Engineer", j.Title)
		assert.NotEmpty(t, j.ID)
		assert.NotEmpty(t, j.Company)
		assert.NotEmpty(t, j.Location)
		assert.NotEmpty(t, j.Salary)
		assert.NotEmpty(t, j.Description)
		assert.NotEmpty(t, j.Stack)
		assert.NotEmpty(t, j.Logo)
	}
}

func TestJobsUsesQueryAsTitle(t *testing.T) {
	jobs := newSeeded(3).Jobs("Platform Engineer", 5)
	require.Len(t, jobs, 5)
	for _, j := range jobs {
		assert.Equal(t, "Platform Engineer", j.Title)
	}
}

func TestLearningRoadmapKnownTech(t *testing.T) {
	r := newSeeded(5).LearningRoadmap("React")
	assert.Equal(t, "React", r.TechName)
	assert.Contains(t, r.Phases.Foundations.KeyTopics, "Hooks & Context API")
	assert.Len(t, r.Projects, 2)
	assert.Len(t, r.CareerPaths, 2)
	assert.NotEmpty(t, r.Resources)
}

func TestLearningRoadmapUnknownTechTemplated(t *testing.T) {
	r := newSeeded(5).LearningRoadmap("Zig")
	assert.Contains(t, r.Phases.Foundations.KeyTopics, "Zig Core Architecture")
	assert.Equal(t, "Enterprise Zig Management Solution", r.Projects[0].Title)

	for _, step := range []types.LearningStep{r.Phases.Foundations, r.Phases.Intermediate, r.Phases.Advanced} {
		assert.NotEmpty(t, step.Title)
		assert.NotEmpty(t, step.Description)
		assert.NotEmpty(t, step.KeyTopics)
		assert.NotEmpty(t, step.EstimatedTime)
	}
}

func TestLearningRoadmapOverlappingKeywordStable(t *testing.T) {
	// "javascript" contains both "java" and "javascript"; lookup order puts
	// java first, so that profile must win on every call.
	first := newSeeded(5).LearningRoadmap("javascript")
	assert.Contains(t, first.Phases.Foundations.KeyTopics, "JVM Internals & GC Tuning")
	for i := 0; i < 50; i++ {
		if diff := cmp.Diff(first, newSeeded(5).LearningRoadmap("javascript")); diff != "" {
			t.Fatalf("same seed produced different roadmap (-first +later):\n%s", diff)
		}
	}
}

func TestProductStrategyAIDetection(t *testing.T) {
	ai := newSeeded(5).ProductStrategy("ResumeGPT")
	assert.Contains(t, ai.TechnicalUpgrades, "LLM Inference Latency")

	infra := newSeeded(5).ProductStrategy("PipelineForge")
	assert.Contains(t, infra.TechnicalUpgrades, "Auto-scaling Cloud Architectures")

	for _, s := range []*types.ProductStrategy{ai, infra} {
		assert.NotEmpty(t, s.CurrentState.Analysis)
		assert.NotEmpty(t, s.CurrentState.Strengths)
		assert.NotEmpty(t, s.MarketAnalysis.Competitors)
		assert.NotEmpty(t, s.Roadmap.ShortTerm.Title)
		assert.NotEmpty(t, s.Roadmap.MidTerm.Focus)
		assert.NotEmpty(t, s.Roadmap.LongTerm.Details)
		assert.NotEmpty(t, s.UXStrategy)
		assert.NotEmpty(t, s.Monetization)
		assert.NotEmpty(t, s.Risks)
		assert.NotEmpty(t, s.KPIs)
	}
}

func TestSkillRoadmapRequiredFields(t *testing.T) {
	r := newSeeded(5).SkillRoadmap("Kubernetes")
	assert.NotEmpty(t, r.Title)
	assert.NotEmpty(t, r.Subtitle)
	assert.NotEmpty(t, r.Description)
	assert.NotEmpty(t, r.KeyTopics)
	require.NotEmpty(t, r.Phases)
	for _, phase := range r.Phases {
		assert.NotEmpty(t, phase.Title)
		assert.NotEmpty(t, phase.Period)
		require.NotEmpty(t, phase.Skills)
		for _, skill := range phase.Skills {
			assert.NotEmpty(t, skill.Name)
			assert.NotEmpty(t, skill.Icon)
			assert.NotEmpty(t, skill.CriticalSteps)
			assert.NotEmpty(t, skill.MasteryContent)
		}
	}
}
