package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNotificationsCmd(app *app) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "notifications <owner-id>",
		Short: "List or clear an owner's notifications",
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

			if clear {
				if engine.Notifications.Clear(owner) {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Notificaciones borradas")
				} else {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No hay notificaciones para borrar")
				}
				return nil
			}

			for _, notification := range engine.Notifications.For(owner) {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n",
					notification.At.Format("02/01/2006 15:04:05"), notification.Message)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "delete every notification for the owner")
	return cmd
}
