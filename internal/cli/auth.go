package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SIDDHI-1105/canteen-connect-now-09/models"
)

func parseRole(raw string) (models.Role, error) {
	role := models.Role(raw)
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q, expected student, staff or admin", raw)
	}
	return role, nil
}

func newRegisterCmd(app *App) *cobra.Command {
	var (
		id       string
		name     string
		roleName string
		pin      string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and set its PIN",
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := parseRole(roleName)
			if err != nil {
				return err
			}

			pending, err := app.Client.Register(cmd.Context(), id, name, role)
			if err != nil {
				return err
			}

			newSession, err := app.Client.SetPin(cmd.Context(), pending, pin)
			if err != nil {
				return err
			}

			if err := app.Sessions.Save(newSession); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s! You are registered as %s (%s).\n",
				newSession.Name, newSession.ID, newSession.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "account ID, e.g. STU001")
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&roleName, "role", "student", "student, staff or admin")
	cmd.Flags().StringVar(&pin, "pin", "", "4-digit PIN")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("pin")

	return cmd
}

func newLoginCmd(app *App) *cobra.Command {
	var (
		id       string
		roleName string
		pin      string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with your ID and PIN",
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := parseRole(roleName)
			if err != nil {
				return err
			}

			newSession, err := app.Client.Login(cmd.Context(), id, role, pin)
			if err != nil {
				return err
			}

			if err := app.Sessions.Save(newSession); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s).\n", newSession.Name, newSession.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "account ID")
	cmd.Flags().StringVar(&roleName, "role", "student", "student, staff or admin")
	cmd.Flags().StringVar(&pin, "pin", "", "4-digit PIN")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("pin")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := app.Sessions.Current()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %s)\n", current.Name, current.ID, current.Role)
			return nil
		},
	}
}
