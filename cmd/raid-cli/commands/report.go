package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"raidchampions/lib/champion"
	"raidchampions/lib/reports"
	"strings"

	"github.com/spf13/cobra"
)

var (
	reportFormat string
	reportSource string
	reportLimit  int
	reportOut    string
	reportMailTo []string
)

func init() {
	reportCmd.PersistentFlags().StringVarP(&reportFormat, "format", "f", "text", "Output format: text, csv, markdown or html.")
	reportCmd.PersistentFlags().StringVar(&reportSource, "source", "db", "Read champions from db, excel or sheets.")
	reportCmd.PersistentFlags().StringVarP(&reportOut, "out", "o", "", "Write the report to a file instead of stdout.")
	reportCmd.PersistentFlags().StringSliceVar(&reportMailTo, "mail-to", nil, "Email the report to these addresses.")
	reportTopCmd.Flags().IntVarP(&reportLimit, "limit", "n", 20, "Number of champions to rank.")

	reportCmd.AddCommand(reportChampionsCmd, reportChampionCmd, reportSummaryCmd, reportMissingCmd, reportTopCmd)
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generates reports over the stored champions.",
}

// runReport loads every champion from the selected source and outputs the
// table built from them.
func runReport(cmd *cobra.Command, build func(records []champion.Record) (reports.Table, error)) error {
	ctx := cmd.Context()

	format, err := reports.ParseFormat(reportFormat)
	if err != nil {
		return err
	}

	source, closer, err := openSource(ctx, reportSource)
	if err != nil {
		return err
	}
	defer closer()
	records, err := source.Records(ctx)
	if err != nil {
		return fmt.Errorf("read champions: %w", err)
	}

	table, err := build(records)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if reportOut != "" {
		f, err := os.Create(reportOut)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	err = reports.Render(out, table, format)
	if err != nil {
		return err
	}

	if len(reportMailTo) > 0 {
		if config.Smtp.Server == "" {
			return errors.New("cannot mail report, smtp.server is not configured")
		}
		mailer := reports.NewMailer(config.Smtp)
		err = mailer.Send(ctx, reportMailTo, table.Title, []reports.Table{table}, format)
		if err != nil {
			return fmt.Errorf("mail report: %w", err)
		}
	}
	return nil
}

var reportChampionsCmd = &cobra.Command{
	Use:   "champions",
	Short: "One row per champion with every rating as a column.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, func(records []champion.Record) (reports.Table, error) {
			return reports.ChampionReport(records), nil
		})
	},
}

var reportChampionCmd = &cobra.Command{
	Use:   "champion <name>",
	Short: "Details of a single champion, matched by part of its name.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, func(records []champion.Record) (reports.Table, error) {
			return reports.ChampionDetail(records, strings.Join(args, " "))
		})
	},
}

var reportSummaryCmd = &cobra.Command{
	Use:   "summary [category]",
	Short: "Every rating, optionally restricted to a category.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category := ""
		if len(args) == 1 {
			category = args[0]
		}
		return runReport(cmd, func(records []champion.Record) (reports.Table, error) {
			return reports.RatingSummary(records, category), nil
		})
	},
}

var reportMissingCmd = &cobra.Command{
	Use:   "missing",
	Short: "Champions without a faction, affinity or rarity.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, func(records []champion.Record) (reports.Table, error) {
			return reports.MissingData(records), nil
		})
	},
}

var reportTopCmd = &cobra.Command{
	Use:   "top <category> <subcategory>",
	Short: "Best rated champions for a category and subcategory (ex. top \"Core Areas\" Hydra).",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, func(records []champion.Record) (reports.Table, error) {
			return reports.Leaderboard(records, args[0], args[1], reportLimit), nil
		})
	},
}
