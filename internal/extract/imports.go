// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd004-source-extraction R4;
//
//	docs/ARCHITECTURE § Import Extractors.
package extract

import "regexp"

var (
	// import <bindings> from '<module>' and bare import '<module>'.
	// Bindings are ignored; only the quoted specifier is captured.
	scriptImportPattern = regexp.MustCompile(`import\s+(?:[^'"\n]*?\s+from\s+)?['"]([^'"]+)['"]`)

	// Line-anchored "from mod import ..." and "import mod". One pattern
	// keeps first-seen source order across both forms.
	pythonImportPattern = regexp.MustCompile(`(?m)^(?:from\s+([\w.]+)\s+import\b|import\s+([\w.]+))`)
)

// ScriptImports returns the module specifiers referenced by JS/TS import
// statements, in first-seen order. Duplicates and relative-vs-absolute
// distinctions are preserved verbatim; no resolution is attempted.
func ScriptImports(src string) []string {
	var refs []string
	for _, m := range scriptImportPattern.FindAllStringSubmatch(src, -1) {
		refs = append(refs, m[1])
	}
	return refs
}

// PythonImports returns the module names referenced by Python import
// statements, in first-seen order.
func PythonImports(src string) []string {
	var refs []string
	for _, m := range pythonImportPattern.FindAllStringSubmatch(src, -1) {
		if m[1] != "" {
			refs = append(refs, m[1])
		} else {
			refs = append(refs, m[2])
		}
	}
	return refs
}
