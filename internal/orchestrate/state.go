// Package orchestrate drives the UI-visible state machine around the
// generate → extract → sanitize pipeline.
//
// Valid phase graph:
//
//	IDLE ──► LOADING ──► RESULTS
//	  ▲         │    ──► JOBS
//	  │         │    ──► ERROR
//	  └─────────┴── (RESULTS | JOBS | ERROR resubmit back to LOADING,
//	                 reset from anywhere back to IDLE)
package orchestrate

import (
	"github.com/skillscan/scanworker/internal/career"
)

// Phase names the active arm of the state union.
type Phase string

const (
	PhaseIdle    Phase = "IDLE"
	PhaseLoading Phase = "LOADING"
	PhaseResults Phase = "RESULTS"
	PhaseJobs    Phase = "JOBS"
	PhaseError   Phase = "ERROR"
)

// State is the tagged union of everything the rendering layer can observe.
// Exactly one concrete state is active at a time; payloads live on the
// state itself so invalid combinations are unrepresentable.
type State interface {
	Phase() Phase
}

// Idle is the initial state and the target of every reset.
type Idle struct{}

// Loading carries the cosmetic progress phrase currently on display.
type Loading struct {
	Phrase string
}

// Results carries a validated career analysis.
type Results struct {
	Result career.AnalysisResult
}

// Jobs carries normalized listings plus grounding citations. Notice is
// non-empty when the search failed and the view should show the error
// in place of listings without losing navigational context.
type Jobs struct {
	Listings  []career.JobListing
	Grounding []career.Citation
	Notice    string
}

// Failed carries the classified failure and its user-facing message with
// recovery guidance. Never a raw service error or stack trace.
type Failed struct {
	Kind    career.FailureKind
	Message string
}

func (Idle) Phase() Phase    { return PhaseIdle }
func (Loading) Phase() Phase { return PhaseLoading }
func (Results) Phase() Phase { return PhaseResults }
func (Jobs) Phase() Phase    { return PhaseJobs }
func (Failed) Phase() Phase  { return PhaseError }

// validTransitions lists every allowed (from → to) pair. LOADING → LOADING
// covers both phrase updates and a superseding resubmission.
var validTransitions = map[Phase][]Phase{
	PhaseIdle:    {PhaseLoading, PhaseIdle},
	PhaseLoading: {PhaseLoading, PhaseResults, PhaseJobs, PhaseError, PhaseIdle},
	PhaseResults: {PhaseLoading, PhaseIdle},
	PhaseJobs:    {PhaseLoading, PhaseIdle},
	PhaseError:   {PhaseLoading, PhaseIdle},
}

// IsTransitionAllowed reports whether moving from → to is permitted.
func IsTransitionAllowed(from, to Phase) bool {
	for _, p := range validTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}
