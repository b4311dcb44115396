// Package career holds the domain types shared by the generation pipeline:
// requests, responses, analysis results, job listings and the failure taxonomy.
package career

// Mode selects which generation task a request targets.
type Mode string

const (
	ModeAnalysis  Mode = "analysis"
	ModeJobSearch Mode = "jobs"
)

// Attachment is a user-supplied document as raw bytes plus the media type
// declared by whoever produced it. The core never parses document content.
type Attachment struct {
	Data     []byte
	MIMEType string
}

// GenerationRequest is one fully-built request for the generative service.
// It is immutable once built and discarded after a single orchestration cycle.
type GenerationRequest struct {
	Mode        Mode
	Prompt      string
	System      string
	Attachment  *Attachment
	Language    string
	Temperature float32
	// WantJSON asks the service for a raw JSON response body.
	WantJSON bool
	// UseSearch asks the service to augment generation with live search
	// and attach grounding citations. Only set in job-search mode.
	UseSearch bool
}

// Citation is one grounding entry attached by the service when live search
// augmentation was requested.
type Citation struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// RawGenerationResponse is the untouched service reply: candidate text that
// may wrap a JSON value in prose, plus optional grounding citations.
type RawGenerationResponse struct {
	Text      string
	Grounding []Citation
}

// CareerPath is one suggested direction with its supporting detail.
type CareerPath struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Relevance      string   `json:"relevance"`
	RequiredSkills []string `json:"requiredSkills"`
	JobRoles       []string `json:"jobRoles"`
}

// ForeignSalary is a single country/figure pair inside a salary insight.
type ForeignSalary struct {
	Country string `json:"country"`
	Salary  string `json:"salary"`
}

// SalaryInsight compares domestic pay for a role against foreign markets.
type SalaryInsight struct {
	Role                 string          `json:"role"`
	IndiaSalary          string          `json:"indiaSalary"`
	ForeignSalaries      []ForeignSalary `json:"foreignSalaries"`
	HighestPayingCountry string          `json:"highestPayingCountry"`
}

// ResourceLink is a named link to a learning resource or institution.
type ResourceLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// RoadmapStep is one phase of the career roadmap.
type RoadmapStep struct {
	Month     string         `json:"month"`
	Focus     string         `json:"focus"`
	Tasks     []string       `json:"tasks"`
	Resources []ResourceLink `json:"resources"`
}

// Badge is a gamification reward the model may propose.
type Badge struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DayPlan is one entry of the optional day-by-day program.
type DayPlan struct {
	Day   string   `json:"day"`
	Focus string   `json:"focus"`
	Tasks []string `json:"tasks"`
}

// TimetableSlot is one partition of the optional study timetable.
type TimetableSlot struct {
	Part     string `json:"part"`
	Activity string `json:"activity"`
}

// AnalysisResult is the structured career analysis. Only Summary is
// mandatory; every other field defaults to its empty value after sanitizing.
type AnalysisResult struct {
	Summary        string          `json:"summary"`
	ScopeAnalysis  string          `json:"scopeAnalysis"`
	CareerPaths    []CareerPath    `json:"careerPaths"`
	SalaryInsights []SalaryInsight `json:"salaryInsights"`
	Roadmap        []RoadmapStep   `json:"roadmap"`
	Motivation     string          `json:"motivation"`

	// Optional extension fields. All default to empty, never null.
	DailyMissions     []string        `json:"dailyMissions"`
	Badges            []Badge         `json:"badges"`
	GrowthScore       int             `json:"growthScore"`
	DayByDay          []DayPlan       `json:"dayByDay"`
	GovernmentJobs    string          `json:"governmentJobs"`
	MicroInternships  []string        `json:"microInternships"`
	MinIncomeSkills   []string        `json:"minIncomeSkills"`
	Institutions      []ResourceLink  `json:"institutions"`
	Timetable         []TimetableSlot `json:"timetable"`
	LearningResources []ResourceLink  `json:"learningResources"`
}

// Sector is the normalized origin of a job listing.
type Sector string

const (
	SectorPublic  Sector = "Public"
	SectorPrivate Sector = "Private"
)

// JobListing is one normalized job opening.
type JobListing struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Type         Sector `json:"type"`
	Location     string `json:"location"`
	Deadline     string `json:"deadline"`
	Description  string `json:"description"`
	SourceURL    string `json:"sourceUrl"`
}
