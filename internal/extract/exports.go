// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package extract recovers a source file's exported surface (functions,
// arrow-function exports, classes and their methods, import references)
// using lexical pattern matching. There is no parser here: patterns can
// misfire on unusual formatting or string and comment contexts, and that
// bounded inaccuracy is accepted.
// Implements: prd004-source-extraction R1, R2, R4;
//
//	docs/ARCHITECTURE § Export Extractors.
package extract

import (
	"regexp"
	"strings"

	"github.com/petar-djukic/testscout/pkg/types"
)

// DefaultExportName is the sentinel assigned to an anonymous default
// function export.
const DefaultExportName = "default"

// Async marker lookahead windows, in characters from the match start.
// The arrow form carries "const name = " before the marker, so its
// window is wider.
const (
	asyncWindowFunc  = 20
	asyncWindowArrow = 40
)

var (
	// export [async] function name(params)
	namedFuncPattern = regexp.MustCompile(`export\s+(?:async\s+)?function\s+([A-Za-z_$][\w$]*)\s*\(([^)]*)\)`)

	// export const name = [async] (params) =>
	arrowFuncPattern = regexp.MustCompile(`export\s+const\s+([A-Za-z_$][\w$]*)\s*=\s*(?:async\s+)?\(([^)]*)\)\s*=>`)

	// export [default] class Name [extends Base]
	classPattern = regexp.MustCompile(`export\s+(?:default\s+)?class\s+([A-Za-z_$][\w$]*)(?:\s+extends\s+([A-Za-z_$][\w$.]*))?`)

	// export default [async] function [name](params)
	defaultFuncPattern = regexp.MustCompile(`export\s+default\s+(?:async\s+)?function\s*([A-Za-z_$][\w$]*)?\s*\(([^)]*)\)`)
)

// ScriptExports extracts exported symbols from JavaScript or TypeScript
// source. Four independent pattern passes run in a fixed order and their
// results are concatenated; a declaration that textually matches more
// than one pattern appears once per pattern (no deduplication).
//
// Implements: prd004-source-extraction R1.1-R1.5.
func ScriptExports(src string) []types.ExportedSymbol {
	var symbols []types.ExportedSymbol

	// Pass 1: named function exports.
	for _, m := range namedFuncPattern.FindAllStringSubmatchIndex(src, -1) {
		name := submatch(src, m, 1)
		params := submatch(src, m, 2)
		symbols = append(symbols, types.ExportedSymbol{
			Name:      name,
			Kind:      types.Function,
			Signature: name + "(" + params + ")",
			IsAsync:   asyncWithin(src, m[0], asyncWindowFunc),
		})
	}

	// Pass 2: named arrow-function exports.
	for _, m := range arrowFuncPattern.FindAllStringSubmatchIndex(src, -1) {
		name := submatch(src, m, 1)
		params := submatch(src, m, 2)
		symbols = append(symbols, types.ExportedSymbol{
			Name:      name,
			Kind:      types.Function,
			Signature: name + "(" + params + ")",
			IsAsync:   asyncWithin(src, m[0], asyncWindowArrow),
		})
	}

	// Pass 3: class exports, with methods from the brace-scoped scanner.
	for _, m := range classPattern.FindAllStringSubmatchIndex(src, -1) {
		name := submatch(src, m, 1)
		base := submatch(src, m, 2)
		sig := name
		if base != "" {
			sig += " extends " + base
		}
		symbols = append(symbols, types.ExportedSymbol{
			Name:      name,
			Kind:      types.Class,
			Signature: sig,
			BaseName:  base,
			Methods:   scanMethods(src, m[0]),
		})
	}

	// Pass 4: default function exports.
	for _, m := range defaultFuncPattern.FindAllStringSubmatchIndex(src, -1) {
		name := submatch(src, m, 1)
		if name == "" {
			name = DefaultExportName
		}
		params := submatch(src, m, 2)
		symbols = append(symbols, types.ExportedSymbol{
			Name:      name,
			Kind:      types.Function,
			Signature: name + "(" + params + ")",
			IsAsync:   asyncWithin(src, m[0], asyncWindowFunc),
			IsDefault: true,
		})
	}

	return symbols
}

// submatch returns capture group n from a FindAllStringSubmatchIndex
// match, or "" when the group did not participate.
func submatch(src string, m []int, n int) string {
	if m[2*n] < 0 {
		return ""
	}
	return src[m[2*n]:m[2*n+1]]
}

// asyncWithin reports whether the async marker appears within window
// characters of the match start. A heuristic, not a parse.
func asyncWithin(src string, start, window int) bool {
	end := start + window
	if end > len(src) {
		end = len(src)
	}
	return strings.Contains(src[start:end], "async")
}
