package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/routeworks/docscan/internal/export"
	"github.com/routeworks/docscan/internal/extract"
	"github.com/routeworks/docscan/internal/history"
	"github.com/routeworks/docscan/pkg/anthropic"
)

// env bundles the wired components shared by the commands.
type env struct {
	Analyzer *extract.Analyzer
	Exporter *export.Exporter
	History  *history.Store
}

func initEnv(ctx context.Context) (*env, error) {
	gaz, err := extract.LoadGazetteer(cfg.Gazetteer.Path)
	if err != nil {
		return nil, err
	}

	var client anthropic.Client
	if cfg.Anthropic.Key != "" {
		client = anthropic.NewClient(cfg.Anthropic.Key)
	} else {
		zap.S().Warn("no Anthropic key configured, using pattern extraction only")
	}

	analyzer := extract.NewAnalyzer(client, gaz, extract.Config{
		Model:             cfg.Anthropic.Model,
		MaxTokens:         cfg.Anthropic.MaxTokens,
		Timeout:           time.Duration(cfg.Anthropic.TimeoutSecs) * time.Second,
		RequestsPerMinute: cfg.Anthropic.RequestsPerMinute,
	})

	store, err := history.Open(cfg.History.Path, cfg.History.Limit)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, err
	}

	return &env{
		Analyzer: analyzer,
		Exporter: export.New(export.LogSink{}),
		History:  store,
	}, nil
}

func (e *env) Close() {
	if err := e.History.Close(); err != nil {
		zap.S().Warnw("closing history store", "error", err)
	}
}
