// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package analyzer defines the public interface for testscout, a static
// source analyzer that inventories a file's exported surface for
// test-generation consumers.
// Implements: prd001-analyzer-interface R1, R3, R6;
//
//	docs/ARCHITECTURE § Analyzer Interface.
package analyzer

import (
	"context"
	"errors"

	"github.com/petar-djukic/testscout/pkg/types"
)

// ErrInvalidConfig is returned by New when the config is unusable.
var ErrInvalidConfig = errors.New("invalid config")

// Config configures an Analyzer instance.
//
// Implements: prd001-analyzer-interface R1.1-R1.3.
type Config struct {
	// MaxParentDirs bounds how many ancestor directories the framework
	// locator inspects beyond the file's own directory. Zero means the
	// default (4); negative values are rejected.
	MaxParentDirs int
}

// Analyzer is the external interface of the analysis core. All methods
// are side-effect-free except for the filesystem reads they perform, and
// analyzing the same unmodified file twice yields identical results.
//
// Implements: prd001-analyzer-interface R3.1-R3.4.
type Analyzer interface {
	// Analyze inspects the source file at path: classifies the language,
	// reads the file, locates the test framework, and extracts exported
	// symbols and import references. Fails with an
	// UnsupportedFileTypeError for unrecognized extensions and a
	// SourceUnreadableError when the file cannot be read.
	Analyze(ctx context.Context, path string) (*types.FileAnalysis, error)

	// Classify returns the source language for a path based solely on
	// its lower-cased extension. Pure; performs no I/O.
	Classify(path string) types.SourceLanguage

	// Locate returns the test framework in use for the project
	// containing path, or FrameworkUnknown. Callers may override the
	// result with their own framework choice.
	Locate(ctx context.Context, path string) types.TestFramework
}
