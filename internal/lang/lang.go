// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package lang maps file extensions to source languages.
// Implements: prd002-language-detection R1;
//
//	docs/ARCHITECTURE § Language Classifier.
package lang

import (
	"path/filepath"
	"strings"

	"github.com/petar-djukic/testscout/pkg/types"
)

// extToLang maps lower-cased file extensions to their language.
var extToLang = map[string]types.SourceLanguage{
	".js":  types.LangJavaScript,
	".jsx": types.LangJavaScript,
	".mjs": types.LangJavaScript,
	".cjs": types.LangJavaScript,
	".ts":  types.LangTypeScript,
	".tsx": types.LangTypeScript,
	".mts": types.LangTypeScript,
	".py":  types.LangPython,
}

// Classify returns the language for a file path based on its extension.
// Unrecognized extensions return LangNone. Pure; performs no I/O.
func Classify(path string) types.SourceLanguage {
	ext := strings.ToLower(filepath.Ext(path))
	return extToLang[ext]
}
