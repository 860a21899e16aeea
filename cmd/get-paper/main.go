// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the get-paper CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd fetches a single paper; update, clean, library, and version
// are subcommands.
var rootCmd = &cobra.Command{
	Use:   "get-paper [flags] directory",
	Short: "Fetch papers and BibTeX citations from INSPIRE-HEP",
	Long: `get-paper downloads a paper's PDF and BibTeX citation from the INSPIRE-HEP
bibliographic database, given an arXiv identifier, a DOI, or an INSPIRE
literature ID.

The PDF is saved into the destination directory under a name derived from
the paper's texkey and title. The directory's citation file (its name in
lower snake case plus ".bib", by default) is cleaned, reformatted, and
updated in place, replacing any previous entry for the same paper.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./get-paper.yaml or ~/.config/get-paper/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("get-paper")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "get-paper"))
		}
	}

	viper.SetEnvPrefix("GET_PAPER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
