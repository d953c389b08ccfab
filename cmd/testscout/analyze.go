// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd005-technology-stack R4.3-R4.6.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/testscout/pkg/analyzer"
	"github.com/petar-djukic/testscout/pkg/types"
)

// newAnalyzeCmd creates the "analyze" command.
func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Inventory a source file's exported surface",
		Long:  "Analyze classifies the file's language, locates the project's test framework, and prints the extracted exports and imports as JSON.",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}

	cmd.Flags().StringP("framework", "f", "", "Override the located test framework (jest, vitest, mocha, pytest)")

	return cmd
}

// runAnalyze executes the analysis and prints the result.
func runAnalyze(cmd *cobra.Command, args []string) error {
	override, _ := cmd.Flags().GetString("framework")

	a, err := analyzer.New(analyzer.Config{
		MaxParentDirs: viper.GetInt("max-parent-dirs"),
	})
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	analysis, err := a.Analyze(ctx, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	// The override is applied here, after Locate: it is a consumer-side
	// choice, not part of the analysis core.
	if override != "" {
		fw, err := parseFramework(override)
		if err != nil {
			return err
		}
		analysis.Framework = fw
	}

	printAnalysis(analysis)
	return nil
}

// parseFramework maps a user-supplied framework name to its tag.
func parseFramework(name string) (types.TestFramework, error) {
	for _, fw := range []types.TestFramework{
		types.FrameworkJest,
		types.FrameworkVitest,
		types.FrameworkMocha,
		types.FrameworkPytest,
	} {
		if name == fw.String() {
			return fw, nil
		}
	}
	return types.FrameworkUnknown, fmt.Errorf("unknown framework %q", name)
}

// analysisView is the JSON shape printed to stdout. The raw source text
// is elided; consumers that need it use the library directly.
type analysisView struct {
	Path          string       `json:"path"`
	Language      string       `json:"language"`
	Framework     string       `json:"framework"`
	LineCount     int          `json:"lineCount"`
	FunctionCount int          `json:"functionCount"`
	ClassCount    int          `json:"classCount"`
	Exports       []exportView `json:"exports"`
	Imports       []string     `json:"imports"`
}

type exportView struct {
	Name      string       `json:"name"`
	Kind      string       `json:"kind"`
	Signature string       `json:"signature"`
	IsAsync   bool         `json:"isAsync,omitempty"`
	IsDefault bool         `json:"isDefault,omitempty"`
	BaseName  string       `json:"baseName,omitempty"`
	Methods   []methodView `json:"methods,omitempty"`
}

type methodView struct {
	Name      string `json:"name"`
	Signature string `json:"signature"`
}

// printAnalysis outputs the analysis as JSON to stdout.
func printAnalysis(analysis *types.FileAnalysis) {
	view := analysisView{
		Path:          analysis.Path,
		Language:      analysis.Language.String(),
		Framework:     analysis.Framework.String(),
		LineCount:     analysis.LineCount,
		FunctionCount: analysis.FunctionCount,
		ClassCount:    analysis.ClassCount,
		Imports:       analysis.Imports,
	}
	for _, sym := range analysis.Exports {
		ev := exportView{
			Name:      sym.Name,
			Kind:      sym.Kind.String(),
			Signature: sym.Signature,
			IsAsync:   sym.IsAsync,
			IsDefault: sym.IsDefault,
			BaseName:  sym.BaseName,
		}
		for _, m := range sym.Methods {
			ev.Methods = append(ev.Methods, methodView{Name: m.Name, Signature: m.Signature})
		}
		view.Exports = append(view.Exports, ev)
	}

	out, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling result: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
