// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command testscout is a CLI for the testscout analysis library.
// Implements: prd005-technology-stack R4.1-R4.8;
//
//	docs/ARCHITECTURE § Project Structure.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "testscout",
		Short: "Static source analyzer for test generation",
		Long:  "testscout inventories a JavaScript, TypeScript, or Python file's exported surface and infers the project's test framework.",
	}

	// Global flags.
	rootCmd.PersistentFlags().Int("max-parent-dirs", 4, "Ancestor directories searched for framework signals")

	// Bind flags to viper.
	viper.BindPFlag("max-parent-dirs", rootCmd.PersistentFlags().Lookup("max-parent-dirs"))

	// Env vars: TESTSCOUT_MAX_PARENT_DIRS, etc.
	viper.SetEnvPrefix("TESTSCOUT")
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".testscout")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	// Add commands.
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print testscout version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("testscout %s\n", version)
		},
	}
}
