package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"raidchampions/lib/reports"
	"raidchampions/services/scraper"
	"time"

	"github.com/spf13/cobra"
)

var (
	scrapeSinks       []string
	scrapeNamesFrom   string
	scrapeDelay       time.Duration
	scrapeDir         string
	scrapeSavePages   string
	scrapeFactionWars bool
)

func init() {
	scrapeCmd.Flags().StringSliceVar(&scrapeSinks, "sink", []string{"db"}, "Where to write champions: db, excel, sheets (repeatable).")
	scrapeCmd.Flags().StringVar(&scrapeNamesFrom, "names-from", "", "Scrape every champion already known to db, excel or sheets.")
	scrapeCmd.Flags().DurationVar(&scrapeDelay, "delay", -1, "Pause between two pages, overrides scrape.delay_seconds.")
	scrapeCmd.Flags().StringVar(&scrapeDir, "dir", "", "Read pre-rendered <slug>.html pages from a directory instead of fetching.")
	scrapeCmd.Flags().StringVar(&scrapeSavePages, "save-pages", "", "Save every fetched page to a directory that --dir can read later.")
	scrapeCmd.Flags().BoolVar(&scrapeFactionWars, "faction-wars", false, "Also extract faction wars ratings.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [champion names...]",
	Short: "Scrapes champion pages and writes them to the configured sinks.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		names := args
		if scrapeNamesFrom != "" {
			source, closer, err := openSource(ctx, scrapeNamesFrom)
			if err != nil {
				return err
			}
			known, err := source.Names(ctx)
			closer()
			if err != nil {
				return fmt.Errorf("read champion names: %w", err)
			}
			names = append(names, known...)
		}
		if len(names) == 0 {
			return errors.New("no champions to scrape, pass names or --names-from")
		}

		var sinks []scraper.Sink
		for _, name := range scrapeSinks {
			source, closer, err := openSource(ctx, name)
			if err != nil {
				return err
			}
			defer closer()
			sink, ok := source.(scraper.Sink)
			if !ok {
				return fmt.Errorf("'%s' cannot be written to", name)
			}
			sinks = append(sinks, sink)
		}

		if scrapeDir != "" {
			config.Scrape.PagesDir = scrapeDir
		}
		if scrapeSavePages != "" {
			config.Scrape.ArchiveDir = scrapeSavePages
		}
		pages, closer, err := openPageSource(ctx)
		if err != nil {
			return err
		}
		defer closer()

		delay := time.Duration(config.Scrape.DelaySeconds * float64(time.Second))
		if scrapeDelay >= 0 {
			delay = scrapeDelay
		}
		service := scraper.NewService(pages, sinks, scraper.Options{
			Delay:       delay,
			FactionWars: scrapeFactionWars || config.Scrape.FactionWars,
		})

		summary, err := service.Run(ctx, names)
		renderErr := reports.Render(os.Stdout, summary.Table(), reports.FormatText)
		if renderErr != nil {
			slog.Warn("failed to render summary", "err", renderErr)
		}
		if err != nil {
			return err
		}
		if len(summary.Succeeded) == 0 && len(summary.Failed) > 0 {
			return errors.New("no champion could be scraped")
		}
		return nil
	},
}
