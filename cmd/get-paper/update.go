package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwbub/get-paper/internal/fetch"
	"github.com/mwbub/get-paper/internal/inspire"
)

var updateCmd = &cobra.Command{
	Use:   "update [flags] directory",
	Short: "Re-fetch every paper listed in the citation file",
	Long: `Update re-fetches the PDF and BibTeX citation for every entry in the
directory's citation file that carries an eprint field, in file order.
Individual failures are reported and skipped; the remaining entries still
update.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().String("bib", "", "citation file name (default: directory name in snake case plus .bib)")
	updateCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	updateCmd.Flags().Duration("delay", 0, "delay between consecutive fetches (default 1s)")

	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	cfg := fetchConfig(cmd, args[0])
	client := inspire.NewClient(cfg.HTTPConfig)

	result, err := fetch.UpdateAll(context.Background(), client, cfg, os.Stdout)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d paper(s) failed to update", result.Failed)
	}
	return nil
}
