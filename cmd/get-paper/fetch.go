package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwbub/get-paper/internal/fetch"
	"github.com/mwbub/get-paper/internal/inspire"
	"github.com/mwbub/get-paper/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultDelay     = 1 * time.Second
	defaultUserAgent = "get-paper/0.2"
)

func init() {
	rootCmd.Flags().StringP("arxiv", "a", "", "arXiv identifier (e.g. 2301.01234 or hep-th/9901001)")
	rootCmd.Flags().StringP("doi", "d", "", "DOI (e.g. 10.1103/PhysRevD.101.012345)")
	rootCmd.Flags().StringP("inspire", "i", "", "INSPIRE literature ID")
	rootCmd.Flags().String("bib", "", "citation file name (default: directory name in snake case plus .bib)")
	rootCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	arxiv, _ := cmd.Flags().GetString("arxiv")
	doi, _ := cmd.Flags().GetString("doi")
	literature, _ := cmd.Flags().GetString("inspire")

	typ, id := inspire.IDArxiv, arxiv
	switch {
	case arxiv != "":
	case doi != "":
		typ, id = inspire.IDDOI, doi
	case literature != "":
		typ, id = inspire.IDLiterature, literature
	default:
		return fmt.Errorf("provide a paper identifier: --arxiv, --doi, or --inspire")
	}

	cfg := fetchConfig(cmd, args[0])
	client := inspire.NewClient(cfg.HTTPConfig)

	_, err := fetch.FetchPaper(context.Background(), client, typ, id, cfg, os.Stdout)
	return err
}

// fetchConfig resolves fetch settings: flags win over config file keys,
// which win over the defaults.
func fetchConfig(cmd *cobra.Command, dir string) types.FetchConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}

	delay, _ := cmd.Flags().GetDuration("delay")
	if delay == 0 {
		delay = viper.GetDuration("delay")
	}
	if delay == 0 {
		delay = defaultDelay
	}

	bibFile, _ := cmd.Flags().GetString("bib")
	if bibFile == "" {
		bibFile = viper.GetString("bib_file")
	}

	userAgent := viper.GetString("user_agent")
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: userAgent,
		},
		Dir:     dir,
		BibFile: bibFile,
		Delay:   delay,
	}
}
