package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"raidchampions/lib/configutil"
	"raidchampions/lib/telemetry"
	"time"

	"dario.cat/mergo"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	config     Config
	tel        telemetry.Telemetry
)

var rootCmd = &cobra.Command{
	Use:   "raid-cli",
	Short: "raid-cli scrapes champion ratings and reports on them.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(verbose)

		loaded, err := configutil.Load[Config](configPath, configutil.LoadOptions{
			EnvPrefix: "RAID_",
			Optional:  true,
		})
		if err != nil {
			return err
		}
		config = defaultConfig()
		err = mergo.Merge(&config, loaded, mergo.WithOverride)
		if err != nil {
			return err
		}

		tel, err = telemetry.SetupFromEnv(cmd.Context(), "raid-cli")
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("failed to setup telemetry", "err", err)
		}
		if err == nil {
			telemetry.InstrumentPerfStats(cmd.Context(), time.Second*30)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		err := tel.Shutdown(ctx)
		if err != nil {
			slog.Warn("failed to shutdown telemetry", "err", err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.json5", "The json5 config file.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
