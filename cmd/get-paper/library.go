// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwbub/get-paper/internal/library"
	"github.com/mwbub/get-paper/pkg/types"
)

var libraryCmd = &cobra.Command{
	Use:   "library [flags] directory",
	Short: "List or export the directory's fetched-paper index",
	Long: `Library prints the papers recorded in the directory's index
(.get-paper/library.db), one row per texkey. Use --format to export the
index as YAML or JSON instead of a table.`,
	Args: cobra.ExactArgs(1),
	RunE: runLibrary,
}

func init() {
	libraryCmd.Flags().String("format", "", "output format: table (default), yaml, or json")

	rootCmd.AddCommand(libraryCmd)
}

func runLibrary(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := library.Open(args[0])
	if err != nil {
		return err
	}
	defer store.Close()

	switch format {
	case "", "table":
		papers, err := store.List(context.Background())
		if err != nil {
			return err
		}
		return formatLibraryTable(papers)
	case "yaml":
		return store.ExportYAML(context.Background(), os.Stdout)
	case "json":
		return store.ExportJSON(context.Background(), os.Stdout)
	default:
		return fmt.Errorf("unsupported format %q: use table, yaml, or json", format)
	}
}

func formatLibraryTable(papers []types.Paper) error {
	if len(papers) == 0 {
		fmt.Println("No papers in the library index.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-50s  %-18s  %s\n", "Texkey", "Title", "Eprint", "Fetched")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 102))
	for _, p := range papers {
		title := p.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-20s  %-50s  %-18s  %s\n",
			p.Texkey, title, p.Eprint, p.FetchedAt.Format("2006-01-02"))
	}

	fmt.Fprintf(os.Stdout, "\n%d papers\n", len(papers))
	return nil
}
