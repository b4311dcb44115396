// Package genclient is the thin transport boundary to the Gemini API.
// It owns no parsing: it maps a career.GenerationRequest onto the wire
// call and hands back raw candidate text plus grounding citations.
package genclient

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/skillscan/scanworker/internal/career"
)

const (
	// Flash instead of Pro to stay inside free-tier quota.
	defaultModel   = "gemini-2.5-flash"
	defaultTimeout = 90 * time.Second
)

// Config configures the transport. APIKey may be blank at construction
// time; its absence surfaces as career.ErrNoCredential on first use,
// before any network call is attempted.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client is the Gemini transport. Safe for concurrent use.
type Client struct {
	cfg Config

	mu  sync.Mutex
	api *genai.Client
}

func New(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{cfg: cfg}
}

// connect creates the underlying SDK client on first use, after the
// credential check has passed.
func (c *Client) connect(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.api != nil {
		return c.api, nil
	}
	api, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	c.api = api
	return api, nil
}

// Generate executes one generation request and returns the best candidate
// text plus any grounding citations the service attached.
func (c *Client) Generate(ctx context.Context, req career.GenerationRequest) (career.RawGenerationResponse, error) {
	if c.cfg.APIKey == "" {
		return career.RawGenerationResponse{}, career.ErrNoCredential
	}

	api, err := c.connect(ctx)
	if err != nil {
		return career.RawGenerationResponse{}, classify(err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	parts := []*genai.Part{{Text: req.Prompt}}
	if req.Attachment != nil {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: req.Attachment.MIMEType,
				Data:     req.Attachment.Data,
			},
		})
	}
	contents := []*genai.Content{{Role: "user", Parts: parts}}

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.System != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}
	// The API rejects a JSON response MIME type combined with the
	// search tool, so the two are mutually exclusive here.
	if req.UseSearch {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	} else if req.WantJSON {
		cfg.ResponseMIMEType = "application/json"
	}

	resp, err := api.Models.GenerateContent(ctx, c.cfg.Model, contents, cfg)
	if err != nil {
		return career.RawGenerationResponse{}, classify(err)
	}

	return career.RawGenerationResponse{
		Text:      resp.Text(),
		Grounding: citations(resp),
	}, nil
}

// citations flattens the first candidate's grounding metadata into the
// ordered {uri, title} list the domain works with.
func citations(resp *genai.GenerateContentResponse) []career.Citation {
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	var out []career.Citation
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		out = append(out, career.Citation{URI: chunk.Web.URI, Title: chunk.Web.Title})
	}
	return out
}

// classify maps SDK and transport failures onto the domain taxonomy.
func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 429:
			return fmt.Errorf("%w: %s", career.ErrQuotaExceeded, apiErr.Status)
		case 401, 403:
			return fmt.Errorf("%w: %s", career.ErrNoCredential, apiErr.Status)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: request timed out", career.ErrNetwork)
	}
	return fmt.Errorf("%w: %v", career.ErrNetwork, err)
}
