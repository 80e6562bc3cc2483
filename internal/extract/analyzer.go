package extract

import (
	"context"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/routeworks/docscan/internal/htmltable"
	"github.com/routeworks/docscan/internal/model"
	"github.com/routeworks/docscan/pkg/anthropic"
)

// Config carries the analyzer's tunables.
type Config struct {
	// Model is the Anthropic model ID used for remote extraction.
	Model string
	// MaxTokens caps the remote response size.
	MaxTokens int64
	// Timeout bounds a single remote call.
	Timeout time.Duration
	// RequestsPerMinute throttles remote calls. Zero disables throttling.
	RequestsPerMinute int
}

// Analyzer turns raw delivery documents into structured records. Remote
// extraction is tried first when a client is configured; the heuristic
// cascade covers every failure mode, so Analyze only errors on empty input.
type Analyzer struct {
	client    anthropic.Client
	gaz       *Gazetteer
	ids       IDSource
	now       func() time.Time
	limiter   *rate.Limiter
	model     string
	maxTokens int64
	timeout   time.Duration
}

// Option customizes an Analyzer.
type Option func(*Analyzer)

// WithIDSource replaces the identifier generator.
func WithIDSource(ids IDSource) Option {
	return func(a *Analyzer) { a.ids = ids }
}

// WithClock replaces the time source used for date defaults.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// NewAnalyzer builds an Analyzer. A nil client disables remote extraction
// entirely; every document then goes through the heuristic cascade.
func NewAnalyzer(client anthropic.Client, gaz *Gazetteer, cfg Config, opts ...Option) *Analyzer {
	a := &Analyzer{
		client:    client,
		gaz:       gaz,
		ids:       NewUUIDSource(),
		now:       time.Now,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
	}
	if a.maxTokens <= 0 {
		a.maxTokens = 4096
	}
	if a.timeout <= 0 {
		a.timeout = 30 * time.Second
	}
	if cfg.RequestsPerMinute > 0 {
		a.limiter = rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), cfg.RequestsPerMinute)
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze extracts delivery records from the document. HTML content, when
// present, is flattened to table markers and prepended to the plain text so
// both extraction tiers see it.
func (a *Analyzer) Analyze(ctx context.Context, doc model.RawDocument) (*model.ExtractionResult, error) {
	text := strings.TrimSpace(doc.Text)
	if doc.HTMLContent != "" {
		if flat := htmltable.Flatten(doc.HTMLContent); flat != "" {
			text = strings.TrimSpace(flat + "\n\n" + text)
		}
	}
	if text == "" {
		return nil, eris.New("no text provided")
	}
	text = renderPipeTables(text)

	if a.client != nil {
		records, err := a.extractRemote(ctx, text)
		if err == nil && len(records) > 0 {
			zap.S().Infow("remote extraction succeeded", "deliveries", len(records))
			result := model.NewExtractionResult(text, records, true, model.MethodRemote)
			return &result, nil
		}
		zap.S().Warnw("remote extraction failed, falling back to patterns", "error", err)
	}

	records := a.extractWithPatterns(text)
	result := model.NewExtractionResult(text, records, false, model.MethodHeuristic)
	return &result, nil
}
