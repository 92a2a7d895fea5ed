package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/toll-backoffice/internal/domain"
)

func newTransitCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transit",
		Short: "Register and inspect toll crossings",
	}

	cmd.AddCommand(
		newTransitRegisterCmd(app),
		newTransitHistoryCmd(app),
	)

	return cmd
}

func newTransitRegisterCmd(app *app) *cobra.Command {
	var (
		stationName string
		plate       string
		at          string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a crossing for a vehicle at a station",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, _, err := app.wireEngine()
			if err != nil {
				return err
			}

			station, err := engine.Transits.FindStation(stationName)
			if err != nil {
				return err
			}

			vehicle, err := engine.Vehicles.FindByPlate(plate)
			if err != nil {
				return err
			}

			owner, err := engine.Owners.Find(vehicle.OwnerID)
			if err != nil {
				return err
			}

			timestamp := app.now()
			if at != "" {
				timestamp, err = time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("parse --at %q: %w", at, err)
				}
			}

			// A live session would hold this subscription for push delivery;
			// here the per-owner channel is surfaced on stdout.
			observer := domain.NewObserverFunc(func(event domain.Event) {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "evento: %s\n", event)
			})
			owner.Subscribe(observer)
			defer owner.Unsubscribe(observer)

			transit, err := engine.Transits.Register(station, vehicle, owner, timestamp)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Tránsito registrado en %s: pagado $ %s (%s). Saldo: $ %s\n",
				station.Name, transit.AmountPaid.StringFixed(2), transit.DiscountLabel(), owner.Balance().StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&stationName, "station", "", "station name")
	cmd.Flags().StringVar(&plate, "plate", "", "vehicle plate")
	cmd.Flags().StringVar(&at, "at", "", "crossing timestamp (RFC3339, default now)")
	_ = cmd.MarkFlagRequired("station")
	_ = cmd.MarkFlagRequired("plate")

	return cmd
}

func newTransitHistoryCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history <owner-id>",
		Short: "List an owner's crossings, newest first, with per-vehicle totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := app.wireEngine()
			if err != nil {
				return err
			}

			owner, err := engine.Owners.Find(args[0])
			if err != nil {
				return err
			}

			for _, transit := range engine.Transits.TransitsForOwner(owner) {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t$ %s\t%s\n",
					transit.At.Format("02/01/2006 15:04:05"),
					transit.Station.Name,
					transit.Vehicle.Plate,
					transit.AmountPaid.StringFixed(2),
					transit.DiscountLabel())
			}

			for _, vehicle := range owner.Vehicles() {
				count := engine.Transits.CountForVehicle(owner, vehicle)
				total := engine.Transits.TotalSpentForVehicle(owner, vehicle)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d tránsitos, $ %s\n",
					vehicle.Plate, count, total.StringFixed(2))
			}

			return nil
		},
	}
}
