// Package sanitize turns a loosely-typed JSON value extracted from model
// output into a typed, fully-defaulted domain payload. Fundamental shape
// is checked against a JSON schema first; field-level normalization then
// coerces heterogeneous value shapes into plain text and substitutes
// type-correct empty defaults for everything optional.
package sanitize

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/skillscan/scanworker/internal/career"
)

const analysisSchema = `{
	"type": "object",
	"required": ["summary"]
}`

const jobsSchema = `{
	"type": "object",
	"required": ["jobs"],
	"properties": {
		"jobs": {"type": "array"}
	}
}`

// validateShape rejects values whose fundamental shape is wrong before any
// field normalization runs.
func validateShape(schema string, raw any) error {
	res, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewGoLoader(raw),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", career.ErrValidation, err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", career.ErrValidation, strings.Join(msgs, "; "))
}

// Analysis validates and normalizes a raw JSON value into an AnalysisResult.
func Analysis(raw any) (career.AnalysisResult, error) {
	if err := validateShape(analysisSchema, raw); err != nil {
		return career.AnalysisResult{}, err
	}
	obj := raw.(map[string]any)

	out := career.AnalysisResult{
		Summary:           asText(obj["summary"]),
		ScopeAnalysis:     asText(obj["scopeAnalysis"]),
		CareerPaths:       asCareerPaths(obj["careerPaths"]),
		SalaryInsights:    asSalaryInsights(obj["salaryInsights"]),
		Roadmap:           asRoadmap(obj["roadmap"]),
		Motivation:        asText(obj["motivation"]),
		DailyMissions:     asStrings(obj["dailyMissions"]),
		Badges:            asBadges(obj["badges"]),
		GrowthScore:       clamp(asInt(obj["growthScore"]), 0, 100),
		DayByDay:          asDayPlans(obj["dayByDay"]),
		GovernmentJobs:    asText(obj["governmentJobs"]),
		MicroInternships:  asStrings(obj["microInternships"]),
		MinIncomeSkills:   asStrings(obj["minIncomeSkills"]),
		Institutions:      asLinks(obj["institutions"]),
		Timetable:         asTimetable(obj["timetable"]),
		LearningResources: asLinks(obj["learningResources"]),
	}
	if strings.TrimSpace(out.Summary) == "" {
		return career.AnalysisResult{}, fmt.Errorf("%w: summary is empty", career.ErrValidation)
	}
	return out, nil
}

// Jobs validates and normalizes a raw JSON value into job listings. The
// root may be the conventional {"jobs": [...]} object or a bare array.
func Jobs(raw any) ([]career.JobListing, error) {
	entries, ok := raw.([]any)
	if !ok {
		if err := validateShape(jobsSchema, raw); err != nil {
			return nil, err
		}
		entries = raw.(map[string]any)["jobs"].([]any)
	}

	out := make([]career.JobListing, 0, len(entries))
	for _, e := range entries {
		obj, ok := e.(map[string]any)
		if !ok {
			continue
		}
		job := career.JobListing{
			Title:        asText(obj["title"]),
			Organization: asText(obj["organization"]),
			Type:         ClassifySector(asText(obj["type"])),
			Location:     asText(obj["location"]),
			Deadline:     asText(obj["deadline"]),
			Description:  asText(obj["description"]),
			SourceURL:    asText(obj["sourceUrl"]),
		}
		if job.SourceURL == "" {
			job.SourceURL = searchURL(job.Title)
		}
		out = append(out, job)
	}
	return out, nil
}

// publicVocabulary marks a listing as government-sector when its raw type
// contains any of these, case-insensitively.
var publicVocabulary = []string{"public", "govt", "government", "sarkari", "psu"}

// ClassifySector normalizes a raw sector string to Public or Private.
// Deterministic and idempotent: classifying an already-normalized value
// yields the same value.
func ClassifySector(raw string) career.Sector {
	lower := strings.ToLower(raw)
	for _, word := range publicVocabulary {
		if strings.Contains(lower, word) {
			return career.SectorPublic
		}
	}
	return career.SectorPrivate
}

// searchURL builds the synthetic fallback source link so every listing
// stays actionable even when the model omitted the URL.
func searchURL(title string) string {
	return "https://www.google.com/search?q=" + url.QueryEscape(title+" job opening")
}
