// Package prompt composes generation requests for the two task modes and
// shapes their language-specific fragments. Pure data construction, no
// network and no parsing.
package prompt

import (
	"fmt"
	"strings"

	"github.com/skillscan/scanworker/internal/career"
)

const systemInstruction = "You are SkillScan AI. Provide accurate, professional career advice. Only output raw JSON."

const analysisTemplate = `
YOU ARE: SkillScan AI - An expert career mentor.
USER QUERY: "%s"

TASK: Career analysis for the 2025-2030 job market.
%s

JSON STRUCTURE REQUIREMENTS (required unless marked optional):
{
  "summary": "overall assessment of the user's situation (required)",
  "scopeAnalysis": "market scope narrative for the suggested direction",
  "careerPaths": [{"title": "...", "description": "...", "relevance": "...", "requiredSkills": [], "jobRoles": []}],
  "salaryInsights": [{"role": "...", "indiaSalary": "...", "foreignSalaries": [{"country": "...", "salary": "..."}], "highestPayingCountry": "..."}],
  "roadmap": [{"month": "Month 1-2", "focus": "...", "tasks": [], "resources": [{"name": "...", "url": "..."}]}],
  "motivation": "one closing motivational line",
  "dailyMissions": ["optional small daily actions"],
  "badges": [{"name": "...", "description": "..."}],
  "growthScore": 0,
  "dayByDay": [{"day": "Day 1", "focus": "...", "tasks": []}],
  "governmentJobs": "optional guidance on government job routes",
  "microInternships": ["optional short internship ideas"],
  "minIncomeSkills": ["optional skills for a minimum income quickly"],
  "institutions": [{"name": "...", "url": "..."}],
  "timetable": [{"part": "Morning", "activity": "..."}],
  "learningResources": [{"name": "...", "url": "..."}]
}

"growthScore" is an integer from 0 to 100. Include salary comparison and a
phased roadmap. Return only valid JSON, no markdown and no commentary.
`

const attachmentNote = "\nATTACHMENT: The user's document is attached. Ground the analysis in its actual content.\n"

const jobSearchTemplate = `
Find 5-10 active tech or corporate job openings in India for 2025 using live search.
%s

Return as JSON: { "jobs": [...] } where every entry has the keys
title, organization, type, location, deadline, description, sourceUrl.
"type" is "Public" for government/sarkari openings, otherwise "Private".
Only include openings you found through search, never invented ones.
`

// Analysis builds the career-analysis request. The only failure mode is
// missing user content: empty text with no attachment.
func Analysis(userText string, att *career.Attachment, lang string) (career.GenerationRequest, error) {
	userText = strings.TrimSpace(userText)
	if userText == "" && att == nil {
		return career.GenerationRequest{}, fmt.Errorf("analysis prompt: user text is required")
	}

	bundle := Localize(lang)
	text := fmt.Sprintf(analysisTemplate, userText, bundle.Directive)
	if att != nil {
		text += attachmentNote
	}

	return career.GenerationRequest{
		Mode:        career.ModeAnalysis,
		Prompt:      text,
		System:      systemInstruction,
		Attachment:  att,
		Language:    lang,
		Temperature: 0.7,
		WantJSON:    true,
	}, nil
}

// JobSearch builds the live-search job listing request.
func JobSearch(lang string) career.GenerationRequest {
	bundle := Localize(lang)
	return career.GenerationRequest{
		Mode:        career.ModeJobSearch,
		Prompt:      fmt.Sprintf(jobSearchTemplate, bundle.Directive),
		System:      systemInstruction,
		Language:    lang,
		Temperature: 0.7,
		UseSearch:   true,
	}
}
