// Package generator orchestrates prompt generation: it runs the deterministic
// extractor, asks the AI enhancer for a prompt when one is configured, falls
// back to the deterministic formatter on any enhancer failure, and records the
// outcome in the store and on the event bus.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sword9322/vexgen/internal/events"
	"github.com/sword9322/vexgen/internal/extractor"
	"github.com/sword9322/vexgen/internal/formatter"
	"github.com/sword9322/vexgen/internal/store"
	"github.com/sword9322/vexgen/internal/template"
)

const (
	minTranscriptLen = 10
	maxTranscriptLen = 10_000
)

// Request is one prompt generation request, as received on the API.
type Request struct {
	Transcript  string `json:"transcript"`
	Template    string `json:"template"`
	ModelTarget string `json:"modelTarget"`
	Verbosity   string `json:"verbosity"`
	Language    string `json:"language"`
}

// Validate checks the request against the accepted enums and transcript
// bounds. The transcript is compared after trimming surrounding whitespace.
func (r Request) Validate() error {
	transcript := strings.TrimSpace(r.Transcript)
	if len(transcript) < minTranscriptLen {
		return fmt.Errorf("transcript: Transcript must be at least %d characters", minTranscriptLen)
	}
	if len(transcript) > maxTranscriptLen {
		return fmt.Errorf("transcript: Transcript must not exceed 10,000 characters")
	}
	if _, ok := template.Lookup(r.Template); !ok {
		return fmt.Errorf("template: template must be one of: %s", strings.Join(template.IDs, ", "))
	}
	if !slices.Contains(formatter.ModelTargets, r.ModelTarget) {
		return fmt.Errorf("modelTarget: modelTarget must be one of: %s", strings.Join(formatter.ModelTargets, ", "))
	}
	if !slices.Contains(formatter.Verbosities, r.Verbosity) {
		return fmt.Errorf("verbosity: verbosity must be one of: %s", strings.Join(formatter.Verbosities, ", "))
	}
	if !slices.Contains(formatter.Languages, r.Language) {
		return fmt.Errorf("language: language must be one of: %s", strings.Join(formatter.Languages, ", "))
	}
	return nil
}

// Metadata describes how a prompt was produced. It never carries the
// transcript text itself.
type Metadata struct {
	Template    string `json:"template"`
	ModelTarget string `json:"modelTarget"`
	Verbosity   string `json:"verbosity"`
	Language    string `json:"language"`
	Timestamp   string `json:"timestamp"`
	UsedAI      bool   `json:"usedAI"`
}

// Result is a finished generation.
type Result struct {
	ID       uuid.UUID `json:"id"`
	Prompt   string    `json:"prompt"`
	Metadata Metadata  `json:"metadata"`
}

// Enhancer produces an AI-written prompt from a transcript. Implementations
// return an error to signal that the deterministic path should be used.
type Enhancer interface {
	Enhance(ctx context.Context, transcript string, opts formatter.Options) (string, error)
}

// Generator ties the pipeline together. Store, events, and enhancer are all
// optional; with none of them set it degrades to the pure deterministic
// pipeline.
type Generator struct {
	enhancer Enhancer
	store    *store.Store
	events   *events.Publisher
	logger   *slog.Logger
}

func New(enh Enhancer, s *store.Store, ev *events.Publisher, logger *slog.Logger) *Generator {
	return &Generator{
		enhancer: enh,
		store:    s,
		events:   ev,
		logger:   logger,
	}
}

// Generate runs one request through the pipeline. The request must already
// have passed Validate; unknown enum values make the formatter panic.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, error) {
	started := time.Now()

	// The deterministic extraction always runs: the fallback needs it, and
	// the usage record is built from it even on the AI path.
	extracted := extractor.Extract(req.Transcript)
	opts := formatter.Options{
		Template:    req.Template,
		ModelTarget: req.ModelTarget,
		Verbosity:   req.Verbosity,
		Language:    req.Language,
	}

	var prompt string
	usedAI := false
	if g.enhancer != nil {
		out, err := g.enhancer.Enhance(ctx, req.Transcript, opts)
		if err != nil {
			g.logger.Warn("ai generation failed, using deterministic builder", "error", err)
		} else {
			prompt = out
			usedAI = true
		}
	}
	if !usedAI {
		prompt = formatter.Build(req.Transcript, extracted, opts)
	}

	result := Result{
		ID:     uuid.New(),
		Prompt: prompt,
		Metadata: Metadata{
			Template:    req.Template,
			ModelTarget: req.ModelTarget,
			Verbosity:   req.Verbosity,
			Language:    req.Language,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
			UsedAI:      usedAI,
		},
	}

	g.record(ctx, result, extracted, time.Since(started))
	return result, nil
}

// record persists the generation and announces it on the bus. Both are best
// effort: a storage or publish failure never fails the request.
func (g *Generator) record(ctx context.Context, res Result, extracted extractor.ExtractedData, took time.Duration) {
	if g.store != nil {
		rec := store.GenerationRecord{
			ID:             res.ID,
			Template:       res.Metadata.Template,
			ModelTarget:    res.Metadata.ModelTarget,
			Verbosity:      res.Metadata.Verbosity,
			Language:       res.Metadata.Language,
			PrimaryIntent:  extracted.PrimaryIntent,
			OutputType:     extracted.OutputType,
			AmbiguityScore: extracted.AmbiguityScore,
			WordCount:      extracted.WordCount,
			UsedAI:         res.Metadata.UsedAI,
			DurationMS:     took.Milliseconds(),
		}
		if err := g.store.RecordGeneration(ctx, rec); err != nil {
			g.logger.Error("failed to record generation", "id", res.ID, "error", err)
		}
	}

	if g.events != nil {
		evt := struct {
			ID       uuid.UUID `json:"id"`
			Metadata Metadata  `json:"metadata"`
		}{ID: res.ID, Metadata: res.Metadata}
		if err := g.events.Publish(events.SubjectPromptGenerated, evt); err != nil {
			g.logger.Error("failed to publish generation event", "id", res.ID, "error", err)
		}
	}
}
