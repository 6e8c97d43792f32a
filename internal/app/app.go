// Package app wires the application dependencies. Both binaries (the MCP
// stdio server and the HTTP API) assemble the same stack through it.
package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dshills/stemtutor/internal/config"
	"github.com/dshills/stemtutor/internal/corpus"
	"github.com/dshills/stemtutor/internal/embedder"
	"github.com/dshills/stemtutor/internal/knowledge"
	"github.com/dshills/stemtutor/internal/tutor"
)

// ProviderNone disables semantic search entirely. The tutor still answers
// lexically matched questions (Newton's laws) and serves suggestions.
const ProviderNone = "none"

// Dependencies holds all application dependencies. It is the central
// wiring point for both binaries.
type Dependencies struct {
	Config   *config.Config
	Logger   *zap.Logger
	Embedder embedder.Embedder
	KB       *knowledge.Base
	Store    *corpus.Store
	Tutor    *tutor.Tutor
}

// NewDependencies creates and wires up all application dependencies.
// Knowledge-base embedding warmup runs in the background; callers observe
// progress through Tutor.Ready.
func NewDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	if err := deps.initEmbedder(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize embedder: %w", err)
	}

	if err := deps.initCorpus(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize corpus store: %w", err)
	}

	deps.KB = knowledge.NewDefault(deps.Embedder)

	adapters := []corpus.Adapter{
		corpus.NewScienceQAAdapter(deps.Store, deps.Embedder),
		corpus.NewMMLUAdapter(deps.Store, deps.Embedder),
		corpus.NewSciQAdapter(deps.Store, deps.Embedder),
	}

	deps.Tutor = tutor.New(deps.KB, adapters,
		tutor.WithStrategyTimeout(cfg.Tutor.StrategyTimeout),
		tutor.WithLogger(logger))

	go deps.warmup(ctx)

	logger.Info("all dependencies initialized",
		zap.Bool("semantic_enabled", deps.KB.SemanticEnabled()))
	return deps, nil
}

// initEmbedder selects the embedding provider. Provider "none" leaves the
// embedder nil, which puts the tutor in degraded lexical-only mode.
func (d *Dependencies) initEmbedder(cfg *config.Config) error {
	if strings.EqualFold(cfg.Embedding.Provider, ProviderNone) {
		d.Logger.Warn("embedding provider disabled, semantic search unavailable")
		return nil
	}

	var (
		emb embedder.Embedder
		err error
	)
	if cfg.Embedding.Provider != "" {
		emb, err = embedder.New(embedder.Config{
			Provider:  cfg.Embedding.Provider,
			APIKey:    cfg.Embedding.APIKey,
			BaseURL:   cfg.Embedding.BaseURL,
			CacheSize: cfg.Embedding.CacheSize,
		})
	} else {
		emb, err = embedder.NewFromEnv()
	}
	if err != nil {
		return err
	}

	d.Embedder = emb
	d.Logger.Info("embedder initialized",
		zap.String("provider", emb.Provider()),
		zap.String("model", emb.Model()))
	return nil
}

// initCorpus opens the corpus database and bootstraps it from any
// configured JSONL dumps. Bootstrap failures for one corpus do not block
// the others.
func (d *Dependencies) initCorpus(ctx context.Context, cfg *config.Config) error {
	store, err := corpus.NewStore(cfg.Corpus.DBPath)
	if err != nil {
		return err
	}
	d.Store = store

	paths := corpus.BootstrapPaths{
		ScienceQA: cfg.Corpus.ScienceQAPath,
		MMLU:      cfg.Corpus.MMLUPath,
		SciQ:      cfg.Corpus.SciQPath,
	}
	counts, failures := corpus.Bootstrap(ctx, store, paths)
	for name, n := range counts {
		d.Logger.Info("corpus loaded", zap.String("corpus", name), zap.Int("records", n))
	}
	for name, ferr := range failures {
		d.Logger.Warn("corpus bootstrap failed",
			zap.String("corpus", name),
			zap.Error(ferr))
	}
	return nil
}

// warmup precomputes knowledge-base embeddings.
func (d *Dependencies) warmup(ctx context.Context) {
	if !d.KB.SemanticEnabled() {
		return
	}
	if err := d.KB.Warmup(ctx); err != nil {
		d.Logger.Error("knowledge base warmup failed", zap.Error(err))
		return
	}
	d.Logger.Info("knowledge base embeddings ready",
		zap.Int("topics", len(d.KB.Entries())))
}

// Close releases held resources.
func (d *Dependencies) Close() error {
	var firstErr error
	if d.Store != nil {
		if err := d.Store.Close(); err != nil {
			firstErr = err
		}
	}
	if d.Embedder != nil {
		if err := d.Embedder.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
