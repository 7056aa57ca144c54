package advisor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"careerpulse/internal/types"
)

func roadmapPrompt(techName, goal string) string {
	return fmt.Sprintf(`Act as a senior technology mentor and career expert. Create a hyper-specific, deep-dive learning roadmap for mastering %q.
Goal: %s

IMPORTANT REQUIREMENTS:
1. Respond ONLY with a VALID JSON object matching the provided schema.
2. BE SPECIFIC: Instead of generic topics like "Fundamentals", mention actual libraries, frameworks, syntax (e.g., "React Hooks & Context API", "Rust Ownership & Borrowing").
3. PHASES: Include specialized deep-dives. Phase 3 should focus on high-scale architecture, performance optimization, and industry-standard security patterns.
4. PROJECTS: Suggest specific, non-trivial projects (e.g., "Build a distributed key-value store" instead of "Build a web app").
5. CAREER: Provide realistic salary ranges based on current high-tier global tech markets (SF/London/Remote).`,
		techName, goal)
}

// LearningRoadmap returns a deep-dive learning plan for the technology.
func (s *Service) LearningRoadmap(ctx context.Context, techName, goal string) *types.LearningRoadmap {
	data, err := s.client.Generate(ctx, roadmapPrompt(techName, goal), learningRoadmapSchema())
	if err == nil {
		var roadmap types.LearningRoadmap
		if err = decode(data, &roadmap); err == nil {
			roadmap.Source = types.SourceLive
			return &roadmap
		}
	}

	s.log.Debug("learning roadmap using fallback",
		zap.String("tech", techName),
		zap.Error(err))

	roadmap := s.synth.LearningRoadmap(techName)
	roadmap.Source = types.SourceFallback
	return roadmap
}

// SkillRoadmap returns the personalized skill learning path used by the
// roadmap generator.
func (s *Service) SkillRoadmap(ctx context.Context, skillName string) *types.SkillRoadmap {
	prompt := fmt.Sprintf("Create a highly personalized learning roadmap for mastering %q. Respond ONLY with JSON.", skillName)

	data, err := s.client.Generate(ctx, prompt, skillRoadmapSchema())
	if err == nil {
		var roadmap types.SkillRoadmap
		if err = decode(data, &roadmap); err == nil {
			roadmap.Source = types.SourceLive
			return &roadmap
		}
	}

	s.log.Debug("skill roadmap using fallback",
		zap.String("skill", skillName),
		zap.Error(err))

	roadmap := s.synth.SkillRoadmap(skillName)
	roadmap.Source = types.SourceFallback
	return roadmap
}
