package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/toll-backoffice/internal/domain"
)

func newBonusCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bonus",
		Short: "Manage discount assignments",
	}

	cmd.AddCommand(
		newBonusListCmd(app),
		newBonusAssignCmd(app),
	)

	return cmd
}

func newBonusListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available discount strategies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, _, err := app.wireEngine()
			if err != nil {
				return err
			}

			for _, strategy := range engine.Bonifications.Strategies() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", strategy.Name(), strategy.Percentage())
			}

			return nil
		},
	}
}

func newBonusAssignCmd(app *app) *cobra.Command {
	var (
		ownerID      string
		stationName  string
		strategyName string
	)

	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Assign a discount strategy to an owner for a station",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, _, err := app.wireEngine()
			if err != nil {
				return err
			}

			owner, err := engine.Owners.Find(ownerID)
			if err != nil {
				return err
			}

			station, err := engine.Transits.FindStation(stationName)
			if err != nil {
				return err
			}

			strategy, err := domain.ParseStrategy(strategyName)
			if err != nil {
				return err
			}

			if err := engine.Bonifications.AssignWithValidation(owner, strategy, station); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Bonificación %s asignada a %s en %s\n",
				strategy.Name(), owner.Name, station.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&ownerID, "owner", "", "owner id (cédula)")
	cmd.Flags().StringVar(&stationName, "station", "", "station name")
	cmd.Flags().StringVar(&strategyName, "strategy", "", "strategy name (Exonerado, Frecuente, Trabajador)")
	_ = cmd.MarkFlagRequired("owner")
	_ = cmd.MarkFlagRequired("station")
	_ = cmd.MarkFlagRequired("strategy")

	return cmd
}
