// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd004-source-extraction R2;
//
//	docs/ARCHITECTURE § Export Extractors.
package extract

import (
	"regexp"
	"strings"

	"github.com/petar-djukic/testscout/pkg/types"
)

var (
	// Top-level def, anchored at line start.
	pyFuncPattern = regexp.MustCompile(`(?m)^(async\s+)?def\s+([A-Za-z_]\w*)\s*\(([^)]*)\)`)

	// Top-level class, anchored at line start.
	pyClassPattern = regexp.MustCompile(`(?m)^class\s+([A-Za-z_]\w*)\s*(?:\(([^)]*)\))?`)
)

// PythonExports extracts top-level function and class definitions from
// Python source. Functions whose name starts with an underscore are
// treated as private and excluded. Python classes carry no methods;
// method extraction is a JS/TS-only concern.
//
// Implements: prd004-source-extraction R2.1-R2.3.
func PythonExports(src string) []types.ExportedSymbol {
	var symbols []types.ExportedSymbol

	for _, m := range pyFuncPattern.FindAllStringSubmatch(src, -1) {
		name := m[2]
		if strings.HasPrefix(name, "_") {
			continue
		}
		symbols = append(symbols, types.ExportedSymbol{
			Name:      name,
			Kind:      types.Function,
			Signature: name + "(" + m[3] + ")",
			IsAsync:   m[1] != "",
		})
	}

	for _, m := range pyClassPattern.FindAllStringSubmatch(src, -1) {
		name := m[1]
		base := strings.TrimSpace(m[2])
		sig := name
		if base != "" {
			sig += "(" + base + ")"
		}
		symbols = append(symbols, types.ExportedSymbol{
			Name:      name,
			Kind:      types.Class,
			Signature: sig,
			BaseName:  base,
		})
	}

	return symbols
}
