package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVehicleCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicle",
		Short: "Inspect registered vehicles",
	}

	cmd.AddCommand(newVehicleListCmd(app))
	return cmd
}

func newVehicleListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List vehicles with their owners",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, _, err := app.wireEngine()
			if err != nil {
				return err
			}

			for _, vehicle := range engine.Vehicles.Vehicles() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n",
					vehicle.Plate, vehicle.Model, vehicle.Color, vehicle.Category.Name, vehicle.OwnerID)
			}

			return nil
		},
	}
}
