package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStationsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stations",
		Short: "List toll stations and their fare tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, _, err := app.wireEngine()
			if err != nil {
				return err
			}

			for _, station := range engine.Transits.Stations() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", station.Name, station.Address)
				for _, fare := range engine.Transits.Fares(station) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s\t$ %s\n", fare.Category.Name, fare.Amount.StringFixed(2))
				}
			}

			return nil
		},
	}
}
