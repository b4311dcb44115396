package orchestrate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/skillscan/scanworker/internal/career"
	"github.com/skillscan/scanworker/internal/extract"
	"github.com/skillscan/scanworker/internal/prompt"
	"github.com/skillscan/scanworker/internal/sanitize"
)

// Generator is the transport boundary the orchestrator calls through.
// Implemented by genclient.Client; replaced by fakes in tests.
type Generator interface {
	Generate(ctx context.Context, req career.GenerationRequest) (career.RawGenerationResponse, error)
}

// Listener observes every state transition. Called from the goroutine
// performing the transition; must not block.
type Listener func(State)

// Options tune the orchestrator. Zero values get sensible defaults.
type Options struct {
	Logger *slog.Logger
	// Listener receives every transition, including phrase updates.
	Listener Listener
	// PhraseInterval is the cadence of the loading phrase carousel.
	PhraseInterval time.Duration
}

// Orchestrator owns the single AppState and is the only component that
// mutates it. At most one request outcome is acknowledged per logical
// user action: each submission takes a fresh monotonic token and a
// completion whose token is no longer current is dropped, so a stale
// response can never overwrite the outcome of a newer request.
type Orchestrator struct {
	gen            Generator
	log            *slog.Logger
	listener       Listener
	phraseInterval time.Duration

	mu    sync.Mutex
	token uint64
	state State
}

func New(gen Generator, opts Options) *Orchestrator {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.PhraseInterval <= 0 {
		opts.PhraseInterval = 2500 * time.Millisecond
	}
	return &Orchestrator{
		gen:            gen,
		log:            opts.Logger,
		listener:       opts.Listener,
		phraseInterval: opts.PhraseInterval,
		state:          Idle{},
	}
}

// State returns the current state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Reset returns to Idle, clearing all payload and error state and
// invalidating any in-flight request so its completion is a no-op.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	o.token++
	o.state = Idle{}
	o.mu.Unlock()
	o.notify(Idle{})
}

// Analyze runs one career-analysis action to completion and returns the
// final state. Submitting while a previous action is still loading is
// safe: the newer submission supersedes the older one.
func (o *Orchestrator) Analyze(ctx context.Context, userText string, att *career.Attachment, lang string) State {
	bundle := prompt.Localize(lang)
	tok := o.begin(bundle)

	result, err := o.runAnalysis(ctx, userText, att, lang)
	if err != nil {
		kind := career.Classify(err)
		o.log.Error("analysis failed", "kind", kind, "error", err)
		return o.commit(tok, Failed{Kind: kind, Message: failureMessage(bundle, kind)})
	}
	return o.commit(tok, Results{Result: result})
}

// FetchJobs runs one job-search action to completion and returns the
// final state. Failures after submission keep the jobs view: the state
// becomes Jobs with no listings and a localized notice. Only a missing
// credential escalates to Error.
func (o *Orchestrator) FetchJobs(ctx context.Context, lang string) State {
	bundle := prompt.Localize(lang)
	tok := o.begin(bundle)

	listings, grounding, err := o.runJobSearch(ctx, lang)
	if err != nil {
		kind := career.Classify(err)
		o.log.Error("job search failed", "kind", kind, "error", err)
		if kind == career.FailConfiguration {
			return o.commit(tok, Failed{Kind: kind, Message: failureMessage(bundle, kind)})
		}
		return o.commit(tok, Jobs{Listings: []career.JobListing{}, Notice: failureMessage(bundle, kind)})
	}
	return o.commit(tok, Jobs{Listings: listings, Grounding: grounding})
}

func (o *Orchestrator) runAnalysis(ctx context.Context, userText string, att *career.Attachment, lang string) (career.AnalysisResult, error) {
	req, err := prompt.Analysis(userText, att, lang)
	if err != nil {
		return career.AnalysisResult{}, fmt.Errorf("%w: %v", career.ErrValidation, err)
	}
	resp, err := o.gen.Generate(ctx, req)
	if err != nil {
		return career.AnalysisResult{}, err
	}
	raw, err := extract.JSON(resp.Text)
	if err != nil {
		return career.AnalysisResult{}, err
	}
	return sanitize.Analysis(raw)
}

func (o *Orchestrator) runJobSearch(ctx context.Context, lang string) ([]career.JobListing, []career.Citation, error) {
	resp, err := o.gen.Generate(ctx, prompt.JobSearch(lang))
	if err != nil {
		return nil, nil, err
	}
	raw, err := extract.JSON(resp.Text)
	if err != nil {
		return nil, nil, err
	}
	listings, err := sanitize.Jobs(raw)
	if err != nil {
		return nil, nil, err
	}
	return listings, resp.Grounding, nil
}

// begin takes a fresh token, enters Loading and starts the phrase
// carousel for that token.
func (o *Orchestrator) begin(bundle prompt.Bundle) uint64 {
	o.mu.Lock()
	o.token++
	tok := o.token
	s := Loading{Phrase: bundle.LoadingPhrases[0]}
	o.state = s
	o.mu.Unlock()
	o.notify(s)

	go o.cyclePhrases(tok, bundle.LoadingPhrases)
	return tok
}

// cyclePhrases advances the cosmetic progress phrase on a timer until the
// request completes or is superseded.
func (o *Orchestrator) cyclePhrases(tok uint64, phrases []string) {
	ticker := time.NewTicker(o.phraseInterval)
	defer ticker.Stop()
	for i := 1; ; i++ {
		<-ticker.C
		o.mu.Lock()
		if o.token != tok || o.state.Phase() != PhaseLoading {
			o.mu.Unlock()
			return
		}
		s := Loading{Phrase: phrases[i%len(phrases)]}
		o.state = s
		o.mu.Unlock()
		o.notify(s)
	}
}

// commit installs the outcome of the request identified by tok, unless a
// newer request or a reset has made it stale.
func (o *Orchestrator) commit(tok uint64, next State) State {
	o.mu.Lock()
	if o.token != tok {
		cur := o.state
		o.mu.Unlock()
		o.log.Debug("dropping stale request outcome", "token", tok, "phase", next.Phase())
		return cur
	}
	if !IsTransitionAllowed(o.state.Phase(), next.Phase()) {
		cur := o.state
		o.mu.Unlock()
		o.log.Warn("transition rejected", "from", cur.Phase(), "to", next.Phase())
		return cur
	}
	o.state = next
	o.mu.Unlock()
	o.notify(next)
	return next
}

func (o *Orchestrator) notify(s State) {
	if o.listener != nil {
		o.listener(s)
	}
}

// failureMessage picks the localized user-facing message with recovery
// guidance for a failure kind.
func failureMessage(bundle prompt.Bundle, kind career.FailureKind) string {
	switch kind {
	case career.FailConfiguration:
		return bundle.MsgNoCredential
	case career.FailQuota:
		return bundle.MsgQuota
	default:
		return bundle.MsgRetry
	}
}
