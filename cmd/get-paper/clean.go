package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwbub/get-paper/internal/bib"
	"github.com/mwbub/get-paper/internal/naming"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [flags] directory",
	Short: "Normalize the citation file without fetching anything",
	Long: `Clean rewrites the directory's citation file in canonical form: one field
per line with a four-space indent, entries separated by a single blank
line. With --delete, the entry with the given texkey is removed as well.`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().String("bib", "", "citation file name (default: directory name in snake case plus .bib)")
	cleanCmd.Flags().StringP("delete", "k", "", "texkey of an entry to remove while cleaning")

	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	key, _ := cmd.Flags().GetString("delete")

	dir, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving %s: %w", args[0], err)
	}

	bibFile, _ := cmd.Flags().GetString("bib")
	if bibFile == "" {
		bibFile = viper.GetString("bib_file")
	}
	if bibFile == "" {
		bibFile = naming.BibName(dir)
	}
	bibPath := filepath.Join(dir, bibFile)

	if err := bib.CleanFile(bibPath, key); err != nil {
		return err
	}
	fmt.Printf("Cleaned %s\n", bibPath)
	return nil
}
