package sanitize

import (
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillscan/scanworker/internal/career"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestAnalysis_MinimalPayloadGetsDefaults(t *testing.T) {
	res, err := Analysis(decode(t, `{"summary":"ok"}`))
	require.NoError(t, err)

	assert.Equal(t, "ok", res.Summary)
	assert.Equal(t, "", res.ScopeAnalysis)
	assert.Equal(t, "", res.Motivation)
	assert.Equal(t, "", res.GovernmentJobs)
	assert.Equal(t, 0, res.GrowthScore)

	// Optional collections are empty, never nil.
	assert.NotNil(t, res.CareerPaths)
	assert.NotNil(t, res.SalaryInsights)
	assert.NotNil(t, res.Roadmap)
	assert.NotNil(t, res.DailyMissions)
	assert.NotNil(t, res.Badges)
	assert.NotNil(t, res.DayByDay)
	assert.NotNil(t, res.MicroInternships)
	assert.NotNil(t, res.MinIncomeSkills)
	assert.NotNil(t, res.Institutions)
	assert.NotNil(t, res.Timetable)
	assert.NotNil(t, res.LearningResources)
	assert.Len(t, res.CareerPaths, 0)
	assert.Len(t, res.Roadmap, 0)
}

func TestAnalysis_MandatorySummary(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing summary", `{"scopeAnalysis":"wide"}`},
		{"null summary", `{"summary":null}`},
		{"blank summary", `{"summary":"   "}`},
		{"root is array", `[{"summary":"ok"}]`},
		{"root is scalar", `"just a string"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Analysis(decode(t, tt.raw))
			require.Error(t, err)
			assert.True(t, errors.Is(err, career.ErrValidation))
		})
	}
}

func TestAnalysis_CoercesObjectWrappedText(t *testing.T) {
	raw := decode(t, `{
		"summary": {"text": "from text key"},
		"scopeAnalysis": {"description": "from description key"},
		"motivation": {"quote": "unconventional"}
	}`)
	res, err := Analysis(raw)
	require.NoError(t, err)

	assert.Equal(t, "from text key", res.Summary)
	assert.Equal(t, "from description key", res.ScopeAnalysis)
	// Neither conventional key present: literal serialization, never an
	// unrendered object.
	assert.Equal(t, `{"quote":"unconventional"}`, res.Motivation)
}

func TestAnalysis_GrowthScoreClamped(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"in range", `{"summary":"s","growthScore":55}`, 55},
		{"above range", `{"summary":"s","growthScore":150}`, 100},
		{"below range", `{"summary":"s","growthScore":-5}`, 0},
		{"numeric string", `{"summary":"s","growthScore":"42"}`, 42},
		{"missing", `{"summary":"s"}`, 0},
		{"garbage", `{"summary":"s","growthScore":"lots"}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Analysis(decode(t, tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.GrowthScore)
		})
	}
}

func TestAnalysis_NestedStructures(t *testing.T) {
	raw := decode(t, `{
		"summary": "ok",
		"careerPaths": [{"title":"Data Engineer","description":"d","relevance":"high","requiredSkills":["sql","python"],"jobRoles":["ETL Dev"]}],
		"salaryInsights": [{"role":"Data Engineer","indiaSalary":"12 LPA","foreignSalaries":[{"country":"USA","salary":"$120k"}],"highestPayingCountry":"USA"}],
		"roadmap": [{"month":"Month 1-2","focus":"SQL","tasks":["course"],"resources":[{"name":"SQLBolt","url":"https://sqlbolt.com"}]}],
		"timetable": [{"part":"Morning","activity":"revision"}],
		"dayByDay": [{"day":"Day 1","focus":"setup","tasks":["install"]}],
		"badges": [{"name":"Starter","description":"first mission done"}]
	}`)
	res, err := Analysis(raw)
	require.NoError(t, err)

	require.Len(t, res.CareerPaths, 1)
	assert.Equal(t, []string{"sql", "python"}, res.CareerPaths[0].RequiredSkills)
	require.Len(t, res.SalaryInsights, 1)
	assert.Equal(t, "USA", res.SalaryInsights[0].HighestPayingCountry)
	require.Len(t, res.SalaryInsights[0].ForeignSalaries, 1)
	require.Len(t, res.Roadmap, 1)
	assert.Equal(t, "SQLBolt", res.Roadmap[0].Resources[0].Name)
	assert.Equal(t, "Morning", res.Timetable[0].Part)
	assert.Equal(t, "Day 1", res.DayByDay[0].Day)
	assert.Equal(t, "Starter", res.Badges[0].Name)
}

// Sanitizing an already-normalized result must be a fixed point.
func TestAnalysis_RoundTrip(t *testing.T) {
	full := career.AnalysisResult{
		Summary:       "strong profile",
		ScopeAnalysis: "growing market",
		CareerPaths: []career.CareerPath{{
			Title: "Backend Dev", Description: "d", Relevance: "high",
			RequiredSkills: []string{"go"}, JobRoles: []string{"API Dev"},
		}},
		SalaryInsights: []career.SalaryInsight{{
			Role: "Backend Dev", IndiaSalary: "15 LPA",
			ForeignSalaries:      []career.ForeignSalary{{Country: "Germany", Salary: "70k EUR"}},
			HighestPayingCountry: "USA",
		}},
		Roadmap: []career.RoadmapStep{{
			Month: "Month 1-2", Focus: "fundamentals", Tasks: []string{"read"},
			Resources: []career.ResourceLink{{Name: "Go Tour", URL: "https://go.dev/tour"}},
		}},
		Motivation:        "keep going",
		DailyMissions:     []string{"one kata"},
		Badges:            []career.Badge{{Name: "Starter", Description: "began"}},
		GrowthScore:       72,
		DayByDay:          []career.DayPlan{{Day: "Day 1", Focus: "setup", Tasks: []string{"install go"}}},
		GovernmentJobs:    "consider state IT cells",
		MicroInternships:  []string{"open source triage"},
		MinIncomeSkills:   []string{"spreadsheets"},
		Institutions:      []career.ResourceLink{{Name: "IIT-M online", URL: "https://example.edu"}},
		Timetable:         []career.TimetableSlot{{Part: "Evening", Activity: "project work"}},
		LearningResources: []career.ResourceLink{{Name: "Gophercises", URL: "https://gophercises.com"}},
	}

	encoded, err := json.Marshal(full)
	require.NoError(t, err)
	again, err := Analysis(decode(t, string(encoded)))
	require.NoError(t, err)
	assert.Equal(t, full, again)
}

func TestJobs_Normalization(t *testing.T) {
	raw := decode(t, `{"jobs":[
		{"title":"Clerk","type":"Sarkari Naukri","organization":"X","location":"Y","description":"Z"},
		{"title":"SDE","type":"corporate","organization":"Acme","location":"Remote","deadline":"2025-10-01","description":"build","sourceUrl":"https://acme.example/jobs/1"}
	]}`)
	jobs, err := Jobs(raw)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, career.SectorPublic, jobs[0].Type)
	assert.Equal(t, career.SectorPrivate, jobs[1].Type)
	assert.Equal(t, "https://acme.example/jobs/1", jobs[1].SourceURL)
}

func TestJobs_SyntheticSourceURL(t *testing.T) {
	raw := decode(t, `{"jobs":[{"title":"Data Analyst","organization":"X"}]}`)
	jobs, err := Jobs(raw)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	assert.NotEmpty(t, jobs[0].SourceURL)
	assert.Contains(t, jobs[0].SourceURL, url.QueryEscape("Data Analyst"))
}

func TestJobs_BareArrayRoot(t *testing.T) {
	jobs, err := Jobs(decode(t, `[{"title":"Clerk","type":"Public"}]`))
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, career.SectorPublic, jobs[0].Type)
}

func TestJobs_WrongShape(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing jobs", `{"listings":[]}`},
		{"jobs not an array", `{"jobs":"none"}`},
		{"scalar root", `42`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Jobs(decode(t, tt.raw))
			require.Error(t, err)
			assert.True(t, errors.Is(err, career.ErrValidation))
		})
	}
}

func TestJobs_NonObjectEntriesSkipped(t *testing.T) {
	jobs, err := Jobs(decode(t, `{"jobs":[{"title":"Clerk"},"stray",42]}`))
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestClassifySector(t *testing.T) {
	tests := []struct {
		raw  string
		want career.Sector
	}{
		{"Sarkari Naukri", career.SectorPublic},
		{"GOVT", career.SectorPublic},
		{"Government of India", career.SectorPublic},
		{"Public Sector Undertaking", career.SectorPublic},
		{"psu bank", career.SectorPublic},
		{"Private", career.SectorPrivate},
		{"startup", career.SectorPrivate},
		{"", career.SectorPrivate},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySector(tt.raw))
		})
	}
}

// Classification returns only Public or Private and re-classifying its own
// output never changes it.
func TestClassifySector_Idempotent(t *testing.T) {
	inputs := []string{"Sarkari", "Govt.", "public", "Private", "corporate", "", "Data Entry"}
	for _, in := range inputs {
		once := ClassifySector(in)
		assert.Contains(t, []career.Sector{career.SectorPublic, career.SectorPrivate}, once)
		assert.Equal(t, once, ClassifySector(string(once)))
	}
}
