// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package analyzer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/testscout/pkg/types"
)

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestAnalyze_UnsupportedExtension(t *testing.T) {
	root := t.TempDir()
	// Deliberately no file on disk: classification must fail before any read.
	path := filepath.Join(root, "script.rb")

	analysis, err := New(0).Analyze(context.Background(), path)
	assert.Nil(t, analysis)

	var unsupported *UnsupportedFileTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, ".rb", unsupported.Ext)
}

func TestAnalyze_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ghost.js")

	analysis, err := New(0).Analyze(context.Background(), path)
	assert.Nil(t, analysis)

	var unreadable *SourceUnreadableError
	require.ErrorAs(t, err, &unreadable)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestAnalyze_InvalidUTF8(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "bin.js")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00}, 0o644))

	_, err := New(0).Analyze(context.Background(), path)
	var unreadable *SourceUnreadableError
	require.ErrorAs(t, err, &unreadable)
}

func TestAnalyze_JavaScriptFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "proj/package.json", `{"devDependencies":{"mocha":"^10"}}`)
	src := `import { db } from './db.js';

export function listUsers(filter) {
  return db.query(filter);
}

export class UserCache {
  lookup(id) {
    return this.entries[id];
  }
}
`
	path := writeFile(t, root, "proj/src/app.js", src)

	analysis, err := New(0).Analyze(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, types.LangJavaScript, analysis.Language)
	assert.Equal(t, types.FrameworkMocha, analysis.Framework)
	assert.Equal(t, src, analysis.Source)
	assert.Equal(t, []string{"./db.js"}, analysis.Imports)
	assert.Equal(t, 1, analysis.FunctionCount)
	assert.Equal(t, 1, analysis.ClassCount)
	assert.Equal(t, 12, analysis.LineCount)

	require.Len(t, analysis.Exports, 2)
	assert.Equal(t, "listUsers", analysis.Exports[0].Name)
	assert.Equal(t, "UserCache", analysis.Exports[1].Name)
	require.Len(t, analysis.Exports[1].Methods, 1)
	assert.Equal(t, "lookup(id)", analysis.Exports[1].Methods[0].Signature)
}

func TestAnalyze_DefaultFrameworkJS(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "app.ts", "export function f() {}\n")

	analysis, err := New(0).Analyze(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, types.LangTypeScript, analysis.Language)
	assert.Equal(t, types.FrameworkJest, analysis.Framework)
}

func TestAnalyze_DefaultFrameworkPython(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "mod.py", "def run():\n    pass\n")

	analysis, err := New(0).Analyze(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, types.FrameworkPytest, analysis.Framework)
	require.Len(t, analysis.Exports, 1)
	assert.Equal(t, "run", analysis.Exports[0].Name)
}

func TestAnalyze_Deterministic(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"devDependencies":{"vitest":"^1"}}`)
	path := writeFile(t, root, "app.js", `import 'polyfill';
export async function load(url) {}
export default function (props) {}
`)

	first, err := New(0).Analyze(context.Background(), path)
	require.NoError(t, err)
	second, err := New(0).Analyze(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyze_PythonFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "pyproject.toml", "[tool.pytest.ini_options]\n")
	src := `import os
from app.models import User

def _internal():
    pass

def list_users(filter):
    return User.filter(filter)

class UserCache(dict):
    pass
`
	path := writeFile(t, root, "app/views.py", src)

	analysis, err := New(0).Analyze(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, types.LangPython, analysis.Language)
	assert.Equal(t, types.FrameworkPytest, analysis.Framework)
	assert.Equal(t, []string{"os", "app.models"}, analysis.Imports)
	assert.Equal(t, 1, analysis.FunctionCount)
	assert.Equal(t, 1, analysis.ClassCount)
	require.Len(t, analysis.Exports, 2)
	assert.Empty(t, analysis.Exports[1].Methods)
}
