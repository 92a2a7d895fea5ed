package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// simulate replays the seed's scripted crossings in order. Business errors
// (forbidden state, missing fare, insufficient balance) are reported per
// entry and do not stop the run.
func newSimulateCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "simulate",
		Short: "Replay the scripted transits from the seed file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, seed, err := app.wireEngine()
			if err != nil {
				return err
			}

			for i, entry := range seed.Transits {
				station, err := engine.Transits.FindStation(entry.Station)
				if err != nil {
					return fmt.Errorf("transit %d: %w", i+1, err)
				}

				vehicle, err := engine.Vehicles.FindByPlate(entry.Plate)
				if err != nil {
					return fmt.Errorf("transit %d: %w", i+1, err)
				}

				owner, err := engine.Owners.Find(vehicle.OwnerID)
				if err != nil {
					return fmt.Errorf("transit %d: %w", i+1, err)
				}

				timestamp := app.now()
				if entry.At != "" {
					timestamp, err = time.Parse(time.RFC3339, entry.At)
					if err != nil {
						return fmt.Errorf("transit %d: parse timestamp %q: %w", i+1, entry.At, err)
					}
				}

				transit, err := engine.Transits.Register(station, vehicle, owner, timestamp)
				if err != nil {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d. %s @ %s: RECHAZADO: %v\n",
						i+1, entry.Plate, entry.Station, err)
					continue
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d. %s @ %s: pagado $ %s (%s), saldo $ %s\n",
					i+1, entry.Plate, entry.Station,
					transit.AmountPaid.StringFixed(2), transit.DiscountLabel(),
					owner.Balance().StringFixed(2))
			}

			return nil
		},
	}
}
