package synth

import (
	"fmt"
	"strings"

	"careerpulse/internal/types"
)

// techProfile carries the keyword-specific material for a recognized
// technology. Queries that match no profile fall through to templated
// generic content built from the query string itself.
type techProfile struct {
	topics   []string
	projects []string
}

var techProfiles = map[string]techProfile{
	"react": {
		topics:   []string{"Hooks & Context API", "Performance Profiling with DevTools", "Next.js 14 Server Components"},
		projects: []string{"Personalized E-commerce Dashboard", "Real-time Analytics Component Library"},
	},
	"python": {
		topics:   []string{"AsyncIO & Concurrency", "Data Science Pipelines (Pandas/NumPy)", "FastAPI Microservices"},
		projects: []string{"AI-Driven Sentiment Engine", "Automated Distributed Task Queue"},
	},
	"rust": {
		topics:   []string{"Memory Safety & Borrow Checker", "WASM Integration", "Systems Level Optimization"},
		projects: []string{"Custom Network Protocol Parser", "High-Performance Search Engine Core"},
	},
	"java": {
		topics:   []string{"JVM Internals & GC Tuning", "Spring Boot Microservices", "Reactive Programming"},
		projects: []string{"Cloud-Native Banking API", "Distributed Cache Implementation"},
	},
	"javascript": {
		topics:   []string{"Modern ESNext & TypeScript", "Node.js Event Loop Mastery", "Complex State Machines"},
		projects: []string{"Fullstack real-time collaboration app", "Custom Framework Middleware"},
	},
}

// techKeys fixes the match order: overlapping keywords ("javascript"
// contains "java") must resolve the same way on every call.
var techKeys = []string{"react", "python", "rust", "java", "javascript"}

func lookupTechProfile(tech string) (techProfile, bool) {
	t := strings.ToLower(tech)
	for _, key := range techKeys {
		if strings.Contains(t, key) {
			return techProfiles[key], true
		}
	}
	return techProfile{}, false
}

// LearningRoadmap synthesizes a three-phase learning plan for tech. All
// required fields of the roadmap schema are populated.
func (s *Synthesizer) LearningRoadmap(tech string) *types.LearningRoadmap {
	topics := []string{tech + " Core Architecture", "Performance Tuning", "Security Best Practices"}
	projects := []string{
		fmt.Sprintf("Enterprise %s Management Solution", tech),
		fmt.Sprintf("%s Performance Diagnostic Tool", tech),
	}
	if profile, ok := lookupTechProfile(tech); ok {
		topics = profile.topics
		projects = profile.projects
	}

	return &types.LearningRoadmap{
		TechName:  tech,
		Objective: fmt.Sprintf("Master %s to reach expert-level proficiency and architectural mastery.", tech),
		Phases: types.LearningPhases{
			Foundations: types.LearningStep{
				Title:         tech + " Architecture Foundations",
				Description:   fmt.Sprintf("Establish a rock-solid understanding of %s core mechanics and environment setup.", tech),
				KeyTopics:     []string{topics[0], tech + " Ecosystem Overview", "Syntax Best Practices"},
				EstimatedTime: "2-4 Weeks",
			},
			Intermediate: types.LearningStep{
				Title:         tech + " Systems Engineering",
				Description:   fmt.Sprintf("Move from basic syntax to building robust real-world systems with %s.", tech),
				KeyTopics:     []string{topics[1], "Advanced Design Patterns", "Automated Testing"},
				EstimatedTime: "4-8 Weeks",
			},
			Advanced: types.LearningStep{
				Title:         tech + " Expert Mastery",
				Description:   "Specialized knowledge in high-scale performance, security, and distribution.",
				KeyTopics:     []string{topics[2], "Distributed Systems Scaling", "Security Hardening"},
				EstimatedTime: "8-12 Weeks",
			},
		},
		Projects: []types.Project{
			{Title: projects[0], Description: "A comprehensive project covering core engineering principles.", Difficulty: "Intermediate"},
			{Title: projects[1], Description: "High-level implementation challenging expert architectural skills.", Difficulty: "Advanced"},
		},
		CareerPaths: []types.CareerPath{
			{Role: fmt.Sprintf("Senior %s Engineer", tech), SalaryRange: "$140k - $210k", RequiredSkills: []string{tech, "System Design", "Mentoring"}},
			{Role: "Technical Architect", SalaryRange: "$180k - $250k", RequiredSkills: []string{tech, "Cloud Infrastructure", "Strategic Planning"}},
		},
		Resources: []types.Resource{
			{Name: fmt.Sprintf("Official %s Documentation", tech), Type: "Docs", URL: "#"},
			{Name: fmt.Sprintf("Mastering %s Advanced Patterns", tech), Type: "Course", URL: "#"},
		},
	}
}

// SkillRoadmap synthesizes the personalized skill path used by the roadmap
// generator page.
func (s *Synthesizer) SkillRoadmap(skill string) *types.SkillRoadmap {
	return &types.SkillRoadmap{
		Title:       fmt.Sprintf("Learning Path for %s", skill),
		Subtitle:    "Structured Roadmap",
		Description: fmt.Sprintf("A structured approach to mastering %s.", skill),
		KeyTopics:   []string{"Fundamentals", "Intermediate", "Advanced", "Specialization", "Real-world", "Optimization", "Mastery"},
		Phases: []types.SkillPhase{
			{
				Title:       "Phase 1: Foundations",
				Period:      "Weeks 1-4",
				Description: fmt.Sprintf("Core concepts and tooling for %s.", skill),
				Skills: []types.SkillDetail{
					{
						Name:           skill + " Basics",
						Icon:           "fa-book",
						Details:        "Syntax, environment setup, and first working programs.",
						CriticalSteps:  []string{"1. Install the toolchain", "2. Complete an end-to-end starter project"},
						MasteryContent: []string{"Explain the core execution model"},
					},
				},
			},
			{
				Title:       "Phase 2: Applied Practice",
				Period:      "Weeks 5-10",
				Description: "Build increasingly realistic projects and learn the ecosystem.",
				Skills: []types.SkillDetail{
					{
						Name:           "Ecosystem & Patterns",
						Icon:           "fa-diagram-project",
						Details:        "Libraries, design patterns, and testing discipline.",
						CriticalSteps:  []string{"1. Ship a small production-style service", "2. Add an automated test suite"},
						MasteryContent: []string{"Review another project and identify design flaws"},
					},
				},
			},
		},
	}
}
