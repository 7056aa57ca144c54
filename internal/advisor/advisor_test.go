package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpulse/internal/gemini"
	"careerpulse/internal/schema"
	"careerpulse/internal/synth"
	"careerpulse/internal/types"
)

// failingClient simulates a backend where every tier is exhausted.
type failingClient struct {
	err   error
	calls int
}

func (f *failingClient) Generate(ctx context.Context, prompt string, sd *schema.Descriptor) (map[string]any, error) {
	f.calls++
	return nil, f.err
}

// cannedClient returns a fixed parsed response and records the request.
type cannedClient struct {
	data       map[string]any
	lastPrompt string
	lastSchema *schema.Descriptor
}

func (c *cannedClient) Generate(ctx context.Context, prompt string, sd *schema.Descriptor) (map[string]any, error) {
	c.lastPrompt = prompt
	c.lastSchema = sd
	return c.data, nil
}

func asMap(t *testing.T, v any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func newFallbackService(err error) (*Service, *failingClient) {
	client := &failingClient{err: err}
	sy := synth.New(synth.WithSeed(1), synth.WithClock(func() time.Time {
		return time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	}))
	return New(client, WithSynthesizer(sy)), client
}

func TestMarketPulseFallbackScenario(t *testing.T) {
	svc, _ := newFallbackService(gemini.ErrEmptyResponse)

	pulse := svc.MarketPulse(context.Background(), "ChatGPT", types.Range3M)
	require.NotNil(t, pulse)

	assert.Len(t, pulse.ChartData, 3)
	require.NotNil(t, pulse.ToolSpotlight)
	assert.Equal(t, "ChatGPT", pulse.ToolSpotlight.Name)
	assert.Equal(t, types.SourceFallback, pulse.Source)
}

func TestMarketPulseFallbackMatchesSchema(t *testing.T) {
	// The synthesized report must satisfy the same required-field set as a
	// live response, so downstream consumers cannot tell them apart by shape.
	svc, _ := newFallbackService(gemini.ErrEmptyResponse)

	pulse := svc.MarketPulse(context.Background(), "", types.Range6M)
	assert.NoError(t, marketPulseSchema().Validate(asMap(t, pulse)))
}

func TestMarketPulsePointCountsPerRange(t *testing.T) {
	svc, _ := newFallbackService(gemini.ErrEmptyResponse)

	for r, want := range map[types.TimeRange]int{
		types.Range3M: 3,
		types.Range6M: 6,
		types.Range1Y: 12,
		"bogus":       6,
	} {
		pulse := svc.MarketPulse(context.Background(), "", r)
		assert.Len(t, pulse.ChartData, want, "range %s", r)
	}
}

func TestMarketPulseLive(t *testing.T) {
	client := &cannedClient{data: map[string]any{
		"timestamp":       "2026-08-15T12:00:00Z",
		"stats":           map[string]any{"marketCap": "$2T"},
		"chartData":       []any{map[string]any{"month": "AUG", "growth": 51.0}},
		"insights":        []any{},
		"categories":      []any{},
		"growingTools":    []any{},
		"bestOverallTool": "ChatGPT",
		"cagr":            "40% CAGR",
	}}
	svc := New(client)

	pulse := svc.MarketPulse(context.Background(), "ChatGPT", types.Range6M)
	assert.Equal(t, types.SourceLive, pulse.Source)
	assert.Equal(t, "$2T", pulse.Stats.MarketCap)
	assert.Contains(t, client.lastPrompt, "exactly 6 data points")
	require.NotNil(t, client.lastSchema)
}

func TestMarketPromptGeneralVsTargeted(t *testing.T) {
	client := &cannedClient{data: map[string]any{}}
	svc := New(client)

	svc.MarketPulse(context.Background(), "", types.Range3M)
	assert.Contains(t, client.lastPrompt, "general tech landscape")
	assert.Contains(t, client.lastPrompt, "exactly 3 data points")

	svc.MarketPulse(context.Background(), "ChatGPT", types.Range1Y)
	assert.Contains(t, client.lastPrompt, `"ChatGPT"`)
	assert.Contains(t, client.lastPrompt, "exactly 12 data points")
}

func TestFetchToolsFailureReturnsNil(t *testing.T) {
	svc, client := newFallbackService(gemini.ErrAuth)

	tools := svc.FetchTools(context.Background())
	assert.Nil(t, tools, "failure must signal 'keep prior data', not an empty list")
	assert.Equal(t, 1, client.calls)
}

func TestFetchToolsEmptyListReturnsNil(t *testing.T) {
	client := &cannedClient{data: map[string]any{"tools": []any{}}}
	svc := New(client)
	assert.Nil(t, svc.FetchTools(context.Background()))
}

func TestFetchToolsNormalization(t *testing.T) {
	client := &cannedClient{data: map[string]any{
		"tools": []any{
			map[string]any{"name": "SuperTool", "rating": 7.2, "pricing": "Enterprise"},
			map[string]any{"id": "t-1", "name": "OtherTool", "rating": -1.0, "pricing": "Free"},
		},
	}}
	svc := New(client)

	tools := svc.FetchTools(context.Background())
	require.Len(t, tools, 2)

	assert.NotEmpty(t, tools[0].ID)
	assert.Equal(t, 5.0, tools[0].Rating)
	assert.Equal(t, types.PricingFreemium, tools[0].Pricing)

	assert.Equal(t, "t-1", tools[1].ID)
	assert.Equal(t, 0.0, tools[1].Rating)
	assert.Equal(t, types.PricingFree, tools[1].Pricing)
}

func TestFetchJobsFallbackScenario(t *testing.T) {
	svc, _ := newFallbackService(gemini.ErrEmptyResponse)

	jobs := svc.FetchJobs(context.Background(), "")
	require.NotEmpty(t, jobs)
	for _, j := range jobs {
		assert.Equal(t, types.JobTypeFullTime, j.Type)
	}
}

func TestFetchJobsEmptyLiveResultFallsBack(t *testing.T) {
	client := &cannedClient{data: map[string]any{"jobs": []any{}}}
	svc := New(client, WithSynthesizer(synth.New(synth.WithSeed(1))))

	jobs := svc.FetchJobs(context.Background(), "Data Engineer")
	require.NotEmpty(t, jobs)
	assert.Equal(t, "Data Engineer", jobs[0].Title)
}

func TestFetchJobsLiveNormalization(t *testing.T) {
	client := &cannedClient{data: map[string]any{
		"jobs": []any{
			map[string]any{"title": "Backend Engineer", "company": "Acme", "type": "Gig"},
			map[string]any{"id": "j-1", "title": "ML Intern", "company": "Acme", "type": "Internship"},
		},
	}}
	svc := New(client)

	jobs := svc.FetchJobs(context.Background(), "backend")
	require.Len(t, jobs, 2)
	assert.Equal(t, types.JobTypeFullTime, jobs[0].Type, "unknown type defaults to Full-time")
	assert.NotEmpty(t, jobs[0].ID)
	assert.Equal(t, types.JobTypeInternship, jobs[1].Type)
}

func TestProductStrategyFallback(t *testing.T) {
	svc, _ := newFallbackService(gemini.ErrParse)

	strategy := svc.ProductStrategy(context.Background(), "ResumeGPT", "AI resume builder")
	require.NotNil(t, strategy)
	assert.Equal(t, "ResumeGPT", strategy.ProductName)
	assert.Equal(t, types.SourceFallback, strategy.Source)
	assert.NoError(t, productStrategySchema().Validate(asMap(t, strategy)))
}

func TestLearningRoadmapFallback(t *testing.T) {
	svc, _ := newFallbackService(gemini.ErrEmptyResponse)

	roadmap := svc.LearningRoadmap(context.Background(), "Rust", "become a systems engineer")
	require.NotNil(t, roadmap)
	assert.Equal(t, "Rust", roadmap.TechName)
	assert.Equal(t, types.SourceFallback, roadmap.Source)
	assert.NoError(t, learningRoadmapSchema().Validate(asMap(t, roadmap)))
}

func TestLearningRoadmapLive(t *testing.T) {
	step := map[string]any{
		"title": "t", "description": "d",
		"keyTopics": []any{"k"}, "estimatedTime": "2w",
	}
	client := &cannedClient{data: map[string]any{
		"techName":  "Go",
		"objective": "mastery",
		"phases": map[string]any{
			"foundations": step, "intermediate": step, "advanced": step,
		},
		"projects":    []any{},
		"careerPaths": []any{},
		"resources":   []any{},
	}}
	svc := New(client)

	roadmap := svc.LearningRoadmap(context.Background(), "Go", "mastery")
	assert.Equal(t, types.SourceLive, roadmap.Source)
	assert.Equal(t, "Go", roadmap.TechName)
	assert.Contains(t, client.lastPrompt, `"Go"`)
}

func TestSkillRoadmapFallback(t *testing.T) {
	svc, _ := newFallbackService(gemini.ErrEmptyResponse)

	roadmap := svc.SkillRoadmap(context.Background(), "Kubernetes")
	require.NotNil(t, roadmap)
	assert.Equal(t, types.SourceFallback, roadmap.Source)
	assert.NoError(t, skillRoadmapSchema().Validate(asMap(t, roadmap)))
}

func TestFallbackIsSilent(t *testing.T) {
	// Builders never surface errors: auth failures still produce data,
	// since the synthesizer needs no credential.
	svc, _ := newFallbackService(errors.New("hard network failure"))

	assert.NotNil(t, svc.MarketPulse(context.Background(), "x", types.Range3M))
	assert.NotEmpty(t, svc.FetchJobs(context.Background(), "x"))
	assert.NotNil(t, svc.ProductStrategy(context.Background(), "x", "y"))
	assert.NotNil(t, svc.LearningRoadmap(context.Background(), "x", "y"))
	assert.NotNil(t, svc.SkillRoadmap(context.Background(), "x"))
}
