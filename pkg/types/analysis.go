// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd001-analyzer-interface R5.1, R5.4;
//
//	docs/ARCHITECTURE § Analysis Result.
package types

// SourceLanguage identifies the language of a source file, determined
// solely from its extension.
type SourceLanguage int

const (
	LangNone       SourceLanguage = iota // Unrecognized extension
	LangJavaScript                       // .js .jsx .mjs .cjs
	LangTypeScript                       // .ts .tsx .mts
	LangPython                           // .py
)

// String returns the lower-case language tag used in CLI output.
func (l SourceLanguage) String() string {
	switch l {
	case LangJavaScript:
		return "javascript"
	case LangTypeScript:
		return "typescript"
	case LangPython:
		return "python"
	default:
		return "none"
	}
}

// TestFramework identifies the test runner a project uses.
type TestFramework int

const (
	FrameworkUnknown TestFramework = iota
	FrameworkJest
	FrameworkVitest
	FrameworkMocha
	FrameworkPytest
)

// String returns the lower-case framework tag used in CLI output.
func (f TestFramework) String() string {
	switch f {
	case FrameworkJest:
		return "jest"
	case FrameworkVitest:
		return "vitest"
	case FrameworkMocha:
		return "mocha"
	case FrameworkPytest:
		return "pytest"
	default:
		return "unknown"
	}
}

// FileAnalysis aggregates everything extracted from one source file.
// It is a transient value handed to the consumer; analyzing the same
// unmodified file twice yields identical content.
//
// Implements: prd001-analyzer-interface R3.1-R3.5.
type FileAnalysis struct {
	Path          string           // Path as given to Analyze
	Language      SourceLanguage   // From the extension
	Framework     TestFramework    // Located, or the language default
	Source        string           // Raw file contents
	Exports       []ExportedSymbol // Ordered as matched; no deduplication
	Imports       []string         // Module specifiers, first-seen order
	LineCount     int              // Total lines in Source
	FunctionCount int              // Function-kind symbols in Exports
	ClassCount    int              // Class-kind symbols in Exports
}
