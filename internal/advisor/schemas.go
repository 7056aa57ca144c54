package advisor

import (
	"careerpulse/internal/schema"
	"careerpulse/internal/types"
)

// Response schemas, one per feature. These drive both the structured-output
// request and local validation of whatever comes back.

func learningStepSchema() *schema.Descriptor {
	return schema.Object(schema.Fields{
		"title":         schema.String(),
		"description":   schema.String(),
		"keyTopics":     schema.Array(schema.String()),
		"estimatedTime": schema.String(),
	}, "title", "description", "keyTopics", "estimatedTime")
}

func learningRoadmapSchema() *schema.Descriptor {
	return schema.Object(schema.Fields{
		"techName":  schema.String(),
		"objective": schema.String(),
		"phases": schema.Object(schema.Fields{
			"foundations":  learningStepSchema(),
			"intermediate": learningStepSchema(),
			"advanced":     learningStepSchema(),
		}, "foundations", "intermediate", "advanced"),
		"projects": schema.Array(schema.Object(schema.Fields{
			"title":       schema.String(),
			"description": schema.String(),
			"difficulty":  schema.String(),
		}, "title", "description", "difficulty")),
		"careerPaths": schema.Array(schema.Object(schema.Fields{
			"role":           schema.String(),
			"salaryRange":    schema.String(),
			"requiredSkills": schema.Array(schema.String()),
		}, "role", "salaryRange", "requiredSkills")),
		"resources": schema.Array(schema.Object(schema.Fields{
			"name": schema.String(),
			"type": schema.String(),
			"url":  schema.String(),
		}, "name", "type", "url")),
	}, "techName", "objective", "phases", "projects", "careerPaths", "resources")
}

func roadmapPhaseSchema() *schema.Descriptor {
	return schema.Object(schema.Fields{
		"title":    schema.String(),
		"timeline": schema.String(),
		"focus":    schema.Array(schema.String()),
		"details":  schema.String(),
	}, "title", "timeline", "focus", "details")
}

func productStrategySchema() *schema.Descriptor {
	return schema.Object(schema.Fields{
		"productName": schema.String(),
		"currentState": schema.Object(schema.Fields{
			"analysis":   schema.String(),
			"strengths":  schema.Array(schema.String()),
			"weaknesses": schema.Array(schema.String()),
		}, "analysis", "strengths", "weaknesses"),
		"marketAnalysis": schema.Object(schema.Fields{
			"competitors":     schema.Array(schema.String()),
			"trends":          schema.Array(schema.String()),
			"differentiation": schema.String(),
		}, "competitors", "trends", "differentiation"),
		"roadmap": schema.Object(schema.Fields{
			"shortTerm": roadmapPhaseSchema(),
			"midTerm":   roadmapPhaseSchema(),
			"longTerm":  roadmapPhaseSchema(),
		}, "shortTerm", "midTerm", "longTerm"),
		"technicalUpgrades": schema.Array(schema.String()),
		"uxStrategy":        schema.String(),
		"monetization":      schema.String(),
		"risks": schema.Array(schema.Object(schema.Fields{
			"risk":       schema.String(),
			"mitigation": schema.String(),
		}, "risk", "mitigation")),
		"kpis": schema.Array(schema.Object(schema.Fields{
			"metric": schema.String(),
			"target": schema.String(),
		}, "metric", "target")),
	}, "productName", "currentState", "marketAnalysis", "roadmap",
		"technicalUpgrades", "uxStrategy", "monetization", "risks", "kpis")
}

func marketPulseSchema() *schema.Descriptor {
	return schema.Object(schema.Fields{
		"timestamp": schema.String(),
		"stats": schema.Object(schema.Fields{
			"marketCap":       schema.String(),
			"marketCapGrowth": schema.String(),
			"activeTools":     schema.String(),
			"weeklyNewTools":  schema.String(),
			"avgFunding":      schema.String(),
			"fundingLabel":    schema.String(),
		}),
		"chartData": schema.Array(schema.Object(schema.Fields{
			"month":       schema.String(),
			"growth":      schema.Number(),
			"label":       schema.String(),
			"demandTrend": schema.String(),
			"timeRate":    schema.Number(),
		})),
		"insights": schema.Array(schema.Object(schema.Fields{
			"tag":     schema.String(),
			"time":    schema.String(),
			"title":   schema.String(),
			"content": schema.String(),
		})),
		"bestOverallTool": schema.String(),
		"toolSpotlight": schema.Object(schema.Fields{
			"name":         schema.String(),
			"category":     schema.String(),
			"rating":       schema.String(),
			"description":  schema.String(),
			"pros":         schema.Array(schema.String()),
			"cons":         schema.Array(schema.String()),
			"industryNeed": schema.String(),
			"competitors":  schema.Array(schema.String()),
			"useCase":      schema.String(),
			"pricing":      schema.String(),
			"website":      schema.String(),
		}),
		"categories": schema.Array(schema.Object(schema.Fields{
			"name":       schema.String(),
			"growth":     schema.String(),
			"percentage": schema.Number(),
		})),
		"growingTools": schema.Array(schema.Object(schema.Fields{
			"name":   schema.String(),
			"growth": schema.String(),
			"reason": schema.String(),
		}, "name", "growth", "reason")),
		"cagr": schema.String(),
	}, "timestamp", "stats", "chartData", "insights", "bestOverallTool",
		"categories", "growingTools", "cagr")
}

func toolListSchema() *schema.Descriptor {
	return schema.Object(schema.Fields{
		"tools": schema.Array(schema.Object(schema.Fields{
			"id":          schema.String(),
			"name":        schema.String(),
			"category":    schema.String(),
			"description": schema.String(),
			"rating":      schema.Number(),
			"pricing":     schema.Enum(types.PricingFree, types.PricingFreemium, types.PricingPaid),
			"tags":        schema.Array(schema.String()),
			"icon":        schema.String(),
			"url":         schema.String(),
		}, "id", "name", "category", "description", "rating", "pricing", "tags", "icon", "url")),
	}, "tools")
}

func jobListSchema() *schema.Descriptor {
	return schema.Object(schema.Fields{
		"jobs": schema.Array(schema.Object(schema.Fields{
			"id":          schema.String(),
			"title":       schema.String(),
			"company":     schema.String(),
			"location":    schema.String(),
			"salary":      schema.String(),
			"type":        schema.Enum(types.JobTypeFullTime, types.JobTypeInternship, types.JobTypeContract),
			"tags":        schema.Array(schema.String()),
			"description": schema.String(),
			"stack":       schema.Array(schema.String()),
			"postedAt":    schema.String(),
			"logo":        schema.String(),
			"applyUrl":    schema.String(),
		}, "id", "title", "company", "location", "salary", "type", "tags",
			"description", "stack", "postedAt", "logo")),
	}, "jobs")
}

func skillRoadmapSchema() *schema.Descriptor {
	return schema.Object(schema.Fields{
		"title":       schema.String(),
		"subtitle":    schema.String(),
		"description": schema.String(),
		"keyTopics":   schema.Array(schema.String()),
		"phases": schema.Array(schema.Object(schema.Fields{
			"title":       schema.String(),
			"period":      schema.String(),
			"description": schema.String(),
			"skills": schema.Array(schema.Object(schema.Fields{
				"name":           schema.String(),
				"icon":           schema.String(),
				"details":        schema.String(),
				"criticalSteps":  schema.Array(schema.String()),
				"masteryContent": schema.Array(schema.String()),
			}, "name", "icon", "details", "criticalSteps", "masteryContent")),
		}, "title", "period", "description", "skills")),
	}, "title", "subtitle", "description", "keyTopics", "phases")
}
