package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"raidchampions/lib/scrapers/hellhades"

	"github.com/spf13/cobra"
)

var extractFactionWars bool

func init() {
	extractCmd.Flags().BoolVar(&extractFactionWars, "faction-wars", false, "Also extract faction wars ratings.")
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract <page.html>",
	Short: "Extracts a saved champion page and prints the record as json.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		c, err := hellhades.Load(cmd.Context(), string(page), hellhades.WithFactionWars(extractFactionWars))
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(c.Record(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}
