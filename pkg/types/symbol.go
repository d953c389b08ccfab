// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared types used across testscout packages.
// Implements: prd001-analyzer-interface R5 (shared types).
package types

// SymbolKind identifies the category of an exported symbol.
type SymbolKind int

const (
	Function SymbolKind = iota // Function or arrow-function export
	Class                      // Class declaration
)

// String returns the human-readable name of the symbol kind.
func (k SymbolKind) String() string {
	switch k {
	case Function:
		return "Function"
	case Class:
		return "Class"
	default:
		return "Unknown"
	}
}

// Method represents one method declaration found inside a class body.
type Method struct {
	Name      string // Method name
	Signature string // Name plus raw parameter text, e.g. "save(opts)"
}

// ExportedSymbol represents one exported function or class found in a
// source file. Name is never empty; an anonymous default export gets
// the sentinel name "default".
//
// Implements: prd001-analyzer-interface R5.2; prd004-source-extraction R1.
type ExportedSymbol struct {
	Name      string     // Identifier as matched in the source
	Kind      SymbolKind // Function or Class
	Signature string     // Name plus raw, untyped parameter text
	IsAsync   bool       // Function kind only; async marker heuristic
	IsDefault bool       // Function kind only; matched via default-export pattern
	BaseName  string     // Class kind only; declared superclass, if any
	Methods   []Method   // Class kind only; empty for Python classes
}
