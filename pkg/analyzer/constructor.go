// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd001-analyzer-interface R4;
//
//	docs/ARCHITECTURE § Analyzer Interface.
package analyzer

import (
	"context"
	"fmt"

	internalanalyzer "github.com/petar-djukic/testscout/internal/analyzer"
	"github.com/petar-djukic/testscout/internal/framework"
	"github.com/petar-djukic/testscout/internal/lang"
	"github.com/petar-djukic/testscout/pkg/types"
)

// New validates the config and returns a ready-to-use Analyzer. It
// performs no filesystem access; reads happen per call.
//
// Implements: prd001-analyzer-interface R4.1-R4.2.
func New(cfg Config) (Analyzer, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	applyDefaults(&cfg)

	return &analyzerAdapter{
		inner: internalanalyzer.New(cfg.MaxParentDirs),
	}, nil
}

// analyzerAdapter adapts internal/analyzer.Analyzer to the public
// Analyzer interface.
type analyzerAdapter struct {
	inner *internalanalyzer.Analyzer
}

func (a *analyzerAdapter) Analyze(ctx context.Context, path string) (*types.FileAnalysis, error) {
	return a.inner.Analyze(ctx, path)
}

func (a *analyzerAdapter) Classify(path string) types.SourceLanguage {
	return lang.Classify(path)
}

func (a *analyzerAdapter) Locate(ctx context.Context, path string) types.TestFramework {
	return a.inner.Locate(ctx, path)
}

// validateConfig checks that the walk bound is usable.
func validateConfig(cfg Config) error {
	if cfg.MaxParentDirs < 0 {
		return fmt.Errorf("MaxParentDirs must not be negative, got %d", cfg.MaxParentDirs)
	}
	return nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.MaxParentDirs == 0 {
		cfg.MaxParentDirs = framework.DefaultMaxParentDirs
	}
}
