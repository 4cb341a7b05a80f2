package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/SIDDHI-1105/canteen-connect-now-09/models"
)

// requireRole loads the session and checks the caller's role locally.
// The server enforces the same rule; this just gives a friendlier error.
func requireRole(app *App, role models.Role) (*models.Session, error) {
	current, err := app.Sessions.Current()
	if err != nil {
		return nil, err
	}
	if current.Role != role {
		return nil, fmt.Errorf("this command needs a %s session, you are logged in as %s", role, current.Role)
	}
	return current, nil
}

func newAdminCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Kitchen and catalog management",
	}

	cmd.AddCommand(
		newAdvanceCmd(app),
		newVerifyCmd(app),
		newAvailabilityCmd(app),
	)

	return cmd
}

func newAdvanceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "advance <orderID>",
		Short: "Move an order to its next status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := requireRole(app, models.RoleAdmin)
			if err != nil {
				return err
			}

			order, err := app.Client.AdvanceOrder(cmd.Context(), current.Role, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Order %s is now %s.\n", shortID(order.ID), renderStatus(order.Status))
			return nil
		},
	}
}

func newVerifyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <orderID>",
		Short: "Mark an order's payment as verified",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := requireRole(app, models.RoleAdmin)
			if err != nil {
				return err
			}

			order, err := app.Client.VerifyPayment(cmd.Context(), current.Role, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Payment for order %s verified.\n", shortID(order.ID))
			return nil
		},
	}
}

func newAvailabilityCmd(app *App) *cobra.Command {
	var available bool

	cmd := &cobra.Command{
		Use:   "availability <itemID>",
		Short: "Put an item on or off the menu",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := requireRole(app, models.RoleAdmin)
			if err != nil {
				return err
			}

			itemID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid item ID %q", args[0])
			}

			item, err := app.Client.SetItemAvailability(cmd.Context(), current.Role, itemID, available)
			if err != nil {
				return err
			}

			state := "off the menu"
			if item.IsAvailable {
				state = "available"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s.\n", item.Name, state)
			return nil
		},
	}

	cmd.Flags().BoolVar(&available, "available", true, "whether the item is orderable")

	return cmd
}
