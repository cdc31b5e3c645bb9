package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Generator 负责一次完整的生成：构造指令、调用模型、规整输出。
// 无状态，每次调用互不影响。
type Generator struct {
	llm      LLMClient
	sampling Sampling
	log      zerolog.Logger
}

// Option customizes a Generator.
type Option func(*Generator)

// WithSampling overrides max_tokens / temperature.
func WithSampling(s Sampling) Option {
	return func(g *Generator) { g.sampling = s }
}

func WithLogger(l zerolog.Logger) Option {
	return func(g *Generator) { g.log = l }
}

func NewGenerator(llm LLMClient, opts ...Option) (*Generator, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	g := &Generator{llm: llm, sampling: DefaultSampling, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate 根据 prompt 和菜单中的模型名（或模型 ID）生成页面。
// modelKey 为空时使用默认模型。
func (g *Generator) Generate(ctx context.Context, prompt, modelKey string) (Result, error) {
	if strings.TrimSpace(prompt) == "" {
		return Result{}, ErrEmptyPrompt
	}
	model := DefaultModel()
	if modelKey != "" {
		m, ok := LookupModel(modelKey)
		if !ok {
			return Result{}, fmt.Errorf("%w: %s", ErrUnknownModel, modelKey)
		}
		model = m
	}

	log := g.log
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		log = *l
	}

	req := BuildRequest(model, prompt, g.sampling)
	start := time.Now()
	raw, err := g.llm.Complete(ctx, req)
	if err != nil {
		log.Warn().Err(err).Str("model", model.ID).Msg("generation failed")
		return Result{}, &RemoteError{Model: model, Err: err}
	}

	html, shape := normalize(raw)
	log.Debug().
		Str("model", model.ID).
		Str("shape", shape.String()).
		Int("raw_len", len(raw)).
		Int("html_len", len(html)).
		Dur("took", time.Since(start)).
		Msg("generation done")

	return Result{
		Model:     model,
		Prompt:    prompt,
		Raw:       raw,
		HTML:      html,
		Shape:     shape,
		Filename:  DefaultFilename,
		CreatedAt: time.Now(),
	}, nil
}
