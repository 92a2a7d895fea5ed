package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "toll",
		Short:         "Toll back-office emulator: owners, fares, discounts and transits",
		Long:          "toll loads a TOML seed describing stations, owners, vehicles and discount assignments, then runs back-office operations against the in-memory engine: register transits, change owner states, assign discounts and inspect dashboards. Nothing persists between runs.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app := newApp()
	rootCmd.PersistentFlags().StringVar(&app.seedPath, "seed", "", "path to the seed TOML file (default from config seed.path)")
	rootCmd.PersistentFlags().StringVar(&app.logLevel, "log-level", "", "zap log level (default from config log.level, else warn)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newStationsCmd(app),
		newOwnerCmd(app),
		newVehicleCmd(app),
		newTransitCmd(app),
		newBonusCmd(app),
		newNotificationsCmd(app),
		newSimulateCmd(app),
	)

	return rootCmd
}
