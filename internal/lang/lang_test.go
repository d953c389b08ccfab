// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petar-djukic/testscout/pkg/types"
)

func TestClassify_JavaScriptExtensions(t *testing.T) {
	for _, path := range []string{"app.js", "component.jsx", "mod.mjs", "legacy.cjs"} {
		assert.Equal(t, types.LangJavaScript, Classify(path), path)
	}
}

func TestClassify_TypeScriptExtensions(t *testing.T) {
	for _, path := range []string{"app.ts", "component.tsx", "mod.mts"} {
		assert.Equal(t, types.LangTypeScript, Classify(path), path)
	}
}

func TestClassify_Python(t *testing.T) {
	assert.Equal(t, types.LangPython, Classify("script.py"))
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, types.LangTypeScript, Classify("App.TSX"))
	assert.Equal(t, types.LangPython, Classify("SCRIPT.PY"))
}

func TestClassify_Unrecognized(t *testing.T) {
	assert.Equal(t, types.LangNone, Classify("style.css"))
	assert.Equal(t, types.LangNone, Classify("script.rb"))
	assert.Equal(t, types.LangNone, Classify("noextension"))
}

func TestClassify_FullPaths(t *testing.T) {
	assert.Equal(t, types.LangJavaScript, Classify("/home/user/proj/src/index.js"))
	assert.Equal(t, types.LangPython, Classify("pkg/module/util.py"))
}
