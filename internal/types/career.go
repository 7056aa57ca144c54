// Package types defines the career-intelligence entities exchanged between
// the advisor builders, the Gemini client, and the fallback synthesizer.
// Every entity is constructed fresh per request; nothing here is persisted.
package types

// Source marks where an entity came from.
const (
	SourceLive     = "live"
	SourceFallback = "fallback"
)

// TimeRange selects the longitudinal window for market reports.
type TimeRange string

const (
	Range3M TimeRange = "3M"
	Range6M TimeRange = "6M"
	Range1Y TimeRange = "1Y"
)

// Points returns the number of monthly chart points a range requires.
// Unrecognized ranges behave like the 6M default.
func (r TimeRange) Points() int {
	switch r {
	case Range3M:
		return 3
	case Range1Y:
		return 12
	default:
		return 6
	}
}

// Pricing tiers for AI tools.
const (
	PricingFree     = "Free"
	PricingFreemium = "Freemium"
	PricingPaid     = "Paid"
)

// Employment types for job listings.
const (
	JobTypeFullTime   = "Full-time"
	JobTypeInternship = "Internship"
	JobTypeContract   = "Contract"
)

// AITool is a single entry in the tool directory.
type AITool struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating"` // 0-5
	Pricing     string   `json:"pricing"`
	Tags        []string `json:"tags"`
	Icon        string   `json:"icon"`
	URL         string   `json:"url"`
}

// Job is a single listing on the job board.
type Job struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Salary      string   `json:"salary"`
	Type        string   `json:"type"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	Stack       []string `json:"stack"`
	PostedAt    string   `json:"postedAt"`
	Logo        string   `json:"logo"`
	ApplyURL    string   `json:"applyUrl,omitempty"`
}

// MarketStats is the aggregate block at the top of a market report.
type MarketStats struct {
	MarketCap       string `json:"marketCap"`
	MarketCapGrowth string `json:"marketCapGrowth"`
	ActiveTools     string `json:"activeTools"`
	WeeklyNewTools  string `json:"weeklyNewTools"`
	AvgFunding      string `json:"avgFunding"`
	FundingLabel    string `json:"fundingLabel"`
}

// ChartPoint is one month of demand data.
type ChartPoint struct {
	Month       string  `json:"month"`
	Growth      float64 `json:"growth"`
	Label       string  `json:"label"`
	DemandTrend string  `json:"demandTrend"`
	TimeRate    float64 `json:"timeRate"`
}

// Insight is a short market-insight card.
type Insight struct {
	Tag     string `json:"tag"`
	Time    string `json:"time"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CategoryBreakdown is one slice of the category chart. Percentages across a
// report need not sum to 100.
type CategoryBreakdown struct {
	Name       string  `json:"name"`
	Growth     string  `json:"growth"`
	Percentage float64 `json:"percentage"`
}

// GrowingTool names one trending tool with its growth figure.
type GrowingTool struct {
	Name   string `json:"name"`
	Growth string `json:"growth"`
	Reason string `json:"reason"`
}

// ToolSpotlight is the enriched detail record for one recognized tool.
type ToolSpotlight struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Rating       string   `json:"rating"`
	Description  string   `json:"description"`
	Pros         []string `json:"pros"`
	Cons         []string `json:"cons"`
	IndustryNeed string   `json:"industryNeed"`
	Competitors  []string `json:"competitors"`
	UseCase      string   `json:"useCase"`
	Pricing      string   `json:"pricing"`
	Website      string   `json:"website"`
}

// MarketPulse is a full market report.
type MarketPulse struct {
	Timestamp       string              `json:"timestamp"`
	Stats           MarketStats         `json:"stats"`
	ChartData       []ChartPoint        `json:"chartData"`
	Insights        []Insight           `json:"insights"`
	Categories      []CategoryBreakdown `json:"categories"`
	GrowingTools    []GrowingTool       `json:"growingTools"`
	ToolSpotlight   *ToolSpotlight      `json:"toolSpotlight,omitempty"`
	BestOverallTool string              `json:"bestOverallTool"`
	CAGR            string              `json:"cagr"`
	Source          string              `json:"source,omitempty"`
}

// RoadmapPhase is one horizon of a product roadmap.
type RoadmapPhase struct {
	Title    string   `json:"title"`
	Timeline string   `json:"timeline"`
	Focus    []string `json:"focus"`
	Details  string   `json:"details"`
}

// CurrentState captures the as-is analysis of a product.
type CurrentState struct {
	Analysis   string   `json:"analysis"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
}

// MarketAnalysis captures the competitive picture.
type MarketAnalysis struct {
	Competitors     []string `json:"competitors"`
	Trends          []string `json:"trends"`
	Differentiation string   `json:"differentiation"`
}

// ProductRoadmap holds the three planning horizons.
type ProductRoadmap struct {
	ShortTerm RoadmapPhase `json:"shortTerm"`
	MidTerm   RoadmapPhase `json:"midTerm"`
	LongTerm  RoadmapPhase `json:"longTerm"`
}

// Risk pairs a risk with its mitigation.
type Risk struct {
	Risk       string `json:"risk"`
	Mitigation string `json:"mitigation"`
}

// KPI pairs a metric with its target.
type KPI struct {
	Metric string `json:"metric"`
	Target string `json:"target"`
}

// ProductStrategy is a full product-strategy report.
type ProductStrategy struct {
	ProductName       string         `json:"productName"`
	CurrentState      CurrentState   `json:"currentState"`
	MarketAnalysis    MarketAnalysis `json:"marketAnalysis"`
	Roadmap           ProductRoadmap `json:"roadmap"`
	TechnicalUpgrades []string       `json:"technicalUpgrades"`
	UXStrategy        string         `json:"uxStrategy"`
	Monetization      string         `json:"monetization"`
	Risks             []Risk         `json:"risks"`
	KPIs              []KPI          `json:"kpis"`
	Source            string         `json:"source,omitempty"`
}

// LearningStep is one phase of a learning roadmap.
type LearningStep struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	KeyTopics     []string `json:"keyTopics"`
	EstimatedTime string   `json:"estimatedTime"`
}

// LearningPhases holds the three ordered phases.
type LearningPhases struct {
	Foundations  LearningStep `json:"foundations"`
	Intermediate LearningStep `json:"intermediate"`
	Advanced     LearningStep `json:"advanced"`
}

// Project is a suggested practice project.
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
}

// CareerPath describes one role reachable with the target skill.
type CareerPath struct {
	Role           string   `json:"role"`
	SalaryRange    string   `json:"salaryRange"`
	RequiredSkills []string `json:"requiredSkills"`
}

// Resource is a learning-resource link.
type Resource struct {
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

// LearningRoadmap is a full technology learning plan.
type LearningRoadmap struct {
	TechName    string         `json:"techName"`
	Objective   string         `json:"objective"`
	Phases      LearningPhases `json:"phases"`
	Projects    []Project      `json:"projects"`
	CareerPaths []CareerPath   `json:"careerPaths"`
	Resources   []Resource     `json:"resources"`
	Source      string         `json:"source,omitempty"`
}

// SkillDetail is one skill inside a skill-roadmap phase.
type SkillDetail struct {
	Name           string   `json:"name"`
	Icon           string   `json:"icon"`
	Details        string   `json:"details"`
	CriticalSteps  []string `json:"criticalSteps"`
	MasteryContent []string `json:"masteryContent"`
}

// SkillPhase is one period of a skill roadmap.
type SkillPhase struct {
	Title       string        `json:"title"`
	Period      string        `json:"period"`
	Description string        `json:"description"`
	Skills      []SkillDetail `json:"skills"`
}

// SkillRoadmap is the personalized skill learning path.
type SkillRoadmap struct {
	Title       string       `json:"title"`
	Subtitle    string       `json:"subtitle"`
	Description string       `json:"description"`
	KeyTopics   []string     `json:"keyTopics"`
	Phases      []SkillPhase `json:"phases"`
	Source      string       `json:"source,omitempty"`
}
