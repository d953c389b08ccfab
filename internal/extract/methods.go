// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd004-source-extraction R3;
//
//	docs/ARCHITECTURE § Method Scanner.
package extract

import (
	"regexp"
	"strings"

	"github.com/petar-djukic/testscout/pkg/types"
)

// methodPattern matches a method declaration inside a class body: optional
// modifier keywords, an identifier, a parameter list, an optional return
// type annotation, and the opening brace of the body.
var methodPattern = regexp.MustCompile(`(?m)^\s*((?:(?:async|static|get|set|public|private|protected)\s+)*)([A-Za-z_$][\w$]*)\s*\(([^)]*)\)\s*(?::\s*[^{\n]+)?\s*\{`)

// controlKeywords are identifiers the method pattern can match but that
// are control statements, not methods.
var controlKeywords = map[string]bool{
	"if":     true,
	"for":    true,
	"while":  true,
	"switch": true,
	"catch":  true,
}

// scanMethods extracts method signatures from the class body that starts
// at or after classOffset. It finds the first opening brace, then counts
// brace depth to find the body's end; a missing closing brace yields the
// rest of the source as the body. This is a lexical approximation: it does
// not understand string, comment, or regex-literal contexts.
func scanMethods(src string, classOffset int) []types.Method {
	if classOffset < 0 || classOffset >= len(src) {
		return nil
	}

	open := strings.IndexByte(src[classOffset:], '{')
	if open < 0 {
		return nil
	}
	open += classOffset

	body := src[open+1 : classBodyEnd(src, open)]

	var methods []types.Method
	for _, m := range methodPattern.FindAllStringSubmatch(body, -1) {
		name, params := m[2], m[3]
		if controlKeywords[name] {
			continue
		}
		methods = append(methods, types.Method{
			Name:      name,
			Signature: name + "(" + params + ")",
		})
	}
	return methods
}

// classBodyEnd returns the index of the brace that closes the class body
// opened at open, or len(src) when the source is malformed.
func classBodyEnd(src string, open int) int {
	depth := 0
	for i := open; i < len(src); i++ {
		switch src[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(src)
}
