package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	dashboardadapter "github.com/bnema/toll-backoffice/internal/adapters/render/dashboard"
	"github.com/bnema/toll-backoffice/internal/domain"
)

func newOwnerCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owner",
		Short: "Manage owner accounts",
	}

	cmd.AddCommand(
		newOwnerListCmd(app),
		newOwnerStatusCmd(app),
		newOwnerSetStateCmd(app),
		newOwnerCreditCmd(app),
	)

	return cmd
}

func newOwnerListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered owners",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, _, err := app.wireEngine()
			if err != nil {
				return err
			}

			for _, owner := range engine.Owners.Owners() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t$ %s\n",
					owner.ID, owner.Name, owner.State().DisplayName(), owner.Balance().StringFixed(2))
			}

			return nil
		},
	}
}

func newOwnerStatusCmd(app *app) *cobra.Command {
	var maxTransits int

	cmd := &cobra.Command{
		Use:   "status <owner-id>",
		Short: "Render an owner dashboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := app.wireEngine()
			if err != nil {
				return err
			}

			board, err := engine.OwnerDashboard(args[0])
			if err != nil {
				return err
			}

			rendered, err := app.dashboardRenderer(board, dashboardadapter.RenderOptions{
				Now:         app.now(),
				MaxTransits: maxTransits,
			})
			if err != nil {
				return fmt.Errorf("render dashboard: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().IntVar(&maxTransits, "max-transits", 0, "limit the transit history section (0 = all)")
	return cmd
}

func newOwnerSetStateCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-state <owner-id> <state>",
		Short: "Change an owner's state (Habilitado, Deshabilitado, Suspendido, Penalizado)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := app.wireEngine()
			if err != nil {
				return err
			}

			owner, err := engine.Owners.Find(args[0])
			if err != nil {
				return err
			}

			state, err := domain.ParseState(args[1])
			if err != nil {
				return err
			}

			if err := engine.Owners.ChangeState(owner, state); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s ahora está %s\n", owner.Name, state.DisplayName())
			return nil
		},
	}
}

func newOwnerCreditCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "credit <owner-id> <amount>",
		Short: "Add funds to an owner's balance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := app.wireEngine()
			if err != nil {
				return err
			}

			owner, err := engine.Owners.Find(args[0])
			if err != nil {
				return err
			}

			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("parse amount %q: %w", args[1], err)
			}

			if err := engine.Owners.Credit(owner, amount); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saldo de %s: $ %s\n", owner.Name, owner.Balance().StringFixed(2))
			return nil
		},
	}
}
