package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/podium/internal/app"
)

func newRootCmd() *cobra.Command {
	opts := &app.Options{}

	cmd := &cobra.Command{
		Use:           "podium",
		Short:         "Manage About Us, sponsors and nominees for the awards site",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  podium --api https://awards.example.com

  # Scriptable commands
  podium sponsors list --level gold
  podium nominees delete 64f1c2a9e4b0a1d2c3e4f5a6

  # Recent failures from the TUI log
  podium logs --failures

  # Local backend for trying things out
  podium fakeapi --addr 127.0.0.1:8080 --seed
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), *opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "override config path (default ~/.config/podium/config.toml)")
	cmd.PersistentFlags().StringVar(&opts.APIBaseURL, "api", "", "backend base URL (overrides PODIUM_API_BASE_URL and the config file)")
	cmd.PersistentFlags().StringVar(&opts.LogPath, "log", "", "log file used while the TUI runs")
	cmd.PersistentFlags().StringVar(&opts.PrefsPath, "prefs", "", "override preferences path (default ~/.config/podium/prefs.toml)")

	cmd.AddCommand(newAboutUsCmd(opts))
	cmd.AddCommand(newSponsorsCmd(opts))
	cmd.AddCommand(newNomineesCmd(opts))
	cmd.AddCommand(newLogsCmd(opts))
	cmd.AddCommand(newFakeAPICmd())

	return cmd
}
