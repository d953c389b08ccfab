// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package analyzer sequences a single-file analysis: classify the
// language, read the source, locate the test framework, run the
// extractors, and assemble the FileAnalysis record.
// Implements: prd001-analyzer-interface R2;
//
//	docs/ARCHITECTURE § Analysis Orchestrator.
package analyzer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/petar-djukic/testscout/internal/extract"
	"github.com/petar-djukic/testscout/internal/framework"
	"github.com/petar-djukic/testscout/internal/lang"
	"github.com/petar-djukic/testscout/pkg/types"
)

// UnsupportedFileTypeError is returned when the target path's extension
// is not in the recognized set. Analysis aborts before any source read.
type UnsupportedFileTypeError struct {
	Ext string // The offending extension, e.g. ".rb"
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("unsupported file type %q", e.Ext)
}

// SourceUnreadableError is returned when the target file cannot be read
// or is not valid UTF-8.
type SourceUnreadableError struct {
	Path string
	Err  error
}

func (e *SourceUnreadableError) Error() string {
	return fmt.Sprintf("cannot read source %s: %v", e.Path, e.Err)
}

func (e *SourceUnreadableError) Unwrap() error { return e.Err }

// Analyzer runs single-file analyses. Each Analyze call is independent;
// nothing is cached across calls.
type Analyzer struct {
	locator *framework.Locator
}

// New creates an Analyzer whose framework search walks at most
// maxParentDirs ancestor directories (non-positive means the default).
func New(maxParentDirs int) *Analyzer {
	return &Analyzer{locator: framework.NewLocator(maxParentDirs)}
}

// Analyze inspects the source file at path and returns its exported
// surface. The only caller-visible failures are UnsupportedFileTypeError
// and SourceUnreadableError; everything below degrades to empty or
// default results.
//
// Implements: prd001-analyzer-interface R2.1-R2.5.
func (a *Analyzer) Analyze(ctx context.Context, path string) (*types.FileAnalysis, error) {
	// Step 1: Classify the language. Unrecognized extensions fail before
	// any filesystem read.
	language := lang.Classify(path)
	if language == types.LangNone {
		return nil, &UnsupportedFileTypeError{Ext: filepath.Ext(path)}
	}

	// Step 2: Read the source.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &SourceUnreadableError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return nil, &SourceUnreadableError{Path: path, Err: fmt.Errorf("not valid UTF-8")}
	}
	src := string(data)

	// Step 3: Locate the test framework; fall back to the language default.
	fw := a.locator.Locate(ctx, path)
	if fw == types.FrameworkUnknown {
		fw = defaultFramework(language)
	}

	// Step 4: Extract exports and imports for the language.
	var exports []types.ExportedSymbol
	var imports []string
	if language == types.LangPython {
		exports = extract.PythonExports(src)
		imports = extract.PythonImports(src)
	} else {
		exports = extract.ScriptExports(src)
		imports = extract.ScriptImports(src)
	}

	analysis := &types.FileAnalysis{
		Path:      path,
		Language:  language,
		Framework: fw,
		Source:    src,
		Exports:   exports,
		Imports:   imports,
		LineCount: len(strings.Split(src, "\n")),
	}
	for _, sym := range exports {
		switch sym.Kind {
		case types.Function:
			analysis.FunctionCount++
		case types.Class:
			analysis.ClassCount++
		}
	}
	return analysis, nil
}

// Locate exposes the framework search without a full analysis.
func (a *Analyzer) Locate(ctx context.Context, path string) types.TestFramework {
	return a.locator.Locate(ctx, path)
}

// defaultFramework is the fallback when no directory yields a signal:
// pytest for Python, jest for JS/TS. A policy, not an error.
func defaultFramework(language types.SourceLanguage) types.TestFramework {
	if language == types.LangPython {
		return types.FrameworkPytest
	}
	return types.FrameworkJest
}
