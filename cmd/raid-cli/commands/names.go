package commands

import (
	"os"
	"raidchampions/lib/reports"
	"strconv"

	"github.com/spf13/cobra"
)

var namesSource string

func init() {
	namesCmd.Flags().StringVar(&namesSource, "source", "db", "Read names from db, excel or sheets.")
	rootCmd.AddCommand(namesCmd)
}

var namesCmd = &cobra.Command{
	Use:   "names",
	Short: "Lists the champions known to a source.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		source, closer, err := openSource(ctx, namesSource)
		if err != nil {
			return err
		}
		defer closer()

		names, err := source.Names(ctx)
		if err != nil {
			return err
		}

		table := reports.Table{
			Title:  namesSource,
			Header: []string{"#", "Name"},
		}
		for i, name := range names {
			table.Rows = append(table.Rows, []string{strconv.Itoa(i + 1), name})
		}
		return reports.Render(os.Stdout, table, reports.FormatText)
	},
}
