// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package framework infers which test runner a project uses by inspecting
// package manifests and known config filenames in the source file's
// directory and a bounded number of ancestors.
// Implements: prd003-framework-locator R1, R2, R3;
//
//	docs/ARCHITECTURE § Framework Locator.
package framework

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/petar-djukic/testscout/pkg/types"
)

// DefaultMaxParentDirs is how many ancestor directories Locate inspects
// beyond the file's own directory.
const DefaultMaxParentDirs = 4

// dependencyOrder is the fixed tie-break for manifests that declare more
// than one runner. Many dev setups list vitest alongside jest; vitest wins.
var dependencyOrder = []struct {
	token     string
	framework types.TestFramework
}{
	{"vitest", types.FrameworkVitest},
	{"jest", types.FrameworkJest},
	{"mocha", types.FrameworkMocha},
}

// configFiles lists each framework's canonical config filenames, probed in
// this order when manifests give no signal.
var configFiles = []struct {
	framework types.TestFramework
	names     []string
}{
	{types.FrameworkJest, []string{"jest.config.js", "jest.config.ts", "jest.config.mjs", "jest.config.cjs"}},
	{types.FrameworkVitest, []string{"vitest.config.js", "vitest.config.ts", "vitest.config.mts"}},
	{types.FrameworkMocha, []string{".mocharc.js", ".mocharc.cjs", ".mocharc.yaml", ".mocharc.yml", ".mocharc.json"}},
	{types.FrameworkPytest, []string{"pytest.ini", "conftest.py"}},
}

// packageManifest is the subset of package.json the locator inspects.
type packageManifest struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Scripts         map[string]string `json:"scripts"`
}

// pyProject is the subset of pyproject.toml the locator inspects.
type pyProject struct {
	Tool map[string]any `toml:"tool"`
}

// Locator walks a file's ancestor directories looking for test framework
// signals. The zero value is not usable; construct with NewLocator.
type Locator struct {
	maxParentDirs int
}

// NewLocator creates a Locator. A non-positive bound falls back to
// DefaultMaxParentDirs.
func NewLocator(maxParentDirs int) *Locator {
	if maxParentDirs <= 0 {
		maxParentDirs = DefaultMaxParentDirs
	}
	return &Locator{maxParentDirs: maxParentDirs}
}

// Locate returns the test framework in use for the project containing
// path, or FrameworkUnknown when no directory in the search bound yields
// a signal. Missing or unparseable files are treated as "no signal here",
// never as errors.
//
// Implements: prd003-framework-locator R1.1-R1.6, R2.1-R2.4.
func (l *Locator) Locate(ctx context.Context, path string) types.TestFramework {
	for _, dir := range l.searchDirs(path) {
		if ctx.Err() != nil {
			return types.FrameworkUnknown
		}
		if fw := probeManifest(dir); fw != types.FrameworkUnknown {
			return fw
		}
		if fw := probePyProject(dir); fw != types.FrameworkUnknown {
			return fw
		}
		if fw := probeConfigFiles(dir); fw != types.FrameworkUnknown {
			return fw
		}
	}
	return types.FrameworkUnknown
}

// searchDirs returns the file's directory followed by up to maxParentDirs
// ancestors, stopping early at the filesystem root (where a directory's
// parent equals itself).
func (l *Locator) searchDirs(path string) []string {
	dir := filepath.Dir(path)
	dirs := []string{dir}
	for i := 0; i < l.maxParentDirs; i++ {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dirs = append(dirs, parent)
		dir = parent
	}
	return dirs
}

// probeManifest reads package.json in dir and tests its dependency and
// script strings for runner names, honoring the vitest > jest > mocha
// tie-break.
func probeManifest(dir string) types.TestFramework {
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return types.FrameworkUnknown
	}
	var manifest packageManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return types.FrameworkUnknown
	}

	var blob strings.Builder
	for name, version := range manifest.Dependencies {
		blob.WriteString(name)
		blob.WriteString(version)
	}
	for name, version := range manifest.DevDependencies {
		blob.WriteString(name)
		blob.WriteString(version)
	}
	for _, command := range manifest.Scripts {
		blob.WriteString(command)
	}

	haystack := strings.ToLower(blob.String())
	for _, dep := range dependencyOrder {
		if strings.Contains(haystack, dep.token) {
			return dep.framework
		}
	}
	return types.FrameworkUnknown
}

// probePyProject reads pyproject.toml in dir and returns pytest when the
// file carries a [tool.pytest] table or mentions pytest anywhere.
func probePyProject(dir string) types.TestFramework {
	data, err := os.ReadFile(filepath.Join(dir, "pyproject.toml"))
	if err != nil {
		return types.FrameworkUnknown
	}

	var project pyProject
	if err := toml.Unmarshal(data, &project); err == nil {
		if _, ok := project.Tool["pytest"]; ok {
			return types.FrameworkPytest
		}
	}
	if strings.Contains(strings.ToLower(string(data)), "pytest") {
		return types.FrameworkPytest
	}
	return types.FrameworkUnknown
}

// probeConfigFiles checks each framework's canonical config filenames for
// existence in dir and returns the first hit.
func probeConfigFiles(dir string) types.TestFramework {
	for _, cfg := range configFiles {
		for _, name := range cfg.names {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return cfg.framework
			}
		}
	}
	return types.FrameworkUnknown
}
