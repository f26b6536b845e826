package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobtracker/internal/importer"
)

var importCommand = &cobra.Command{
	Use:   "import",
	Short: "Parse saved Glassdoor pages into structured records",
}

var importCompanyCommand = &cobra.Command{
	Use:   "company [urls...]",
	Short: "Import company profiles from a saved HTML file or Glassdoor URLs",
	Long: `Parses Glassdoor company overview pages into structured company records.

With --file a saved HTML document is parsed locally. Without it, each URL
argument is fetched and parsed; multiple URLs are fetched concurrently.
Results print as JSON on stdout.`,
	RunE: runImportCompanyCmd,
}

var importJobCommand = &cobra.Command{
	Use:   "job",
	Short: "Import a job posting from a saved HTML file",
	RunE:  runImportJobCmd,
}

var (
	importCompanyFile string
	importJobFile     string
	importTimeout     int
)

func init() {
	importCompanyCommand.Flags().StringVarP(&importCompanyFile, "file", "f", "", "Path to a saved company page (HTML)")
	importCompanyCommand.Flags().IntVar(&importTimeout, "timeout", 30, "Fetch timeout in seconds per URL")
	importJobCommand.Flags().StringVarP(&importJobFile, "file", "f", "", "Path to a saved job posting (HTML)")
	_ = importJobCommand.MarkFlagRequired("file")

	importCommand.AddCommand(importCompanyCommand)
	importCommand.AddCommand(importJobCommand)
	rootCmd.AddCommand(importCommand)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func runImportCompanyCmd(cmd *cobra.Command, urls []string) error {
	if importCompanyFile != "" {
		html, err := os.ReadFile(importCompanyFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", importCompanyFile, err)
		}
		return printJSON(importer.ParseCompanyProfile(string(html), ""))
	}

	if len(urls) == 0 {
		return fmt.Errorf("either --file or at least one URL is required")
	}

	base := cmd.Context()
	if base == nil {
		base = context.Background()
	}
	ctx, cancel := context.WithTimeout(base, time.Duration(importTimeout)*time.Second*time.Duration(len(urls)))
	defer cancel()

	profiles := make([]*importer.CompanyProfile, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	for i, url := range urls {
		g.Go(func() error {
			profile, err := importer.FetchAndParseCompanyProfile(gctx, url)
			if err != nil {
				return err
			}
			profiles[i] = profile
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if len(profiles) == 1 {
		return printJSON(profiles[0])
	}
	return printJSON(profiles)
}

func runImportJobCmd(_ *cobra.Command, _ []string) error {
	html, err := os.ReadFile(importJobFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", importJobFile, err)
	}
	return printJSON(importer.ParseJobPosting(string(html)))
}
