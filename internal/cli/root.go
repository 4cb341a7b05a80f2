// Package cli implements the canteen command line client.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/client"
	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/session"
)

const defaultServerURL = "http://localhost:8080"

// App carries the shared dependencies every command uses.
type App struct {
	Client   *client.Client
	Sessions *session.Store
}

// NewRootCmd builds the canteen command tree. Configuration resolves in
// the usual order: flag, CANTEEN_* environment variable, config file,
// default.
func NewRootCmd() *cobra.Command {
	app := &App{}

	rootCmd := &cobra.Command{
		Use:   "canteen",
		Short: "Order from the campus canteen",
		Long: `Browse the campus canteen menu, build a cart, place orders and
track their status. Staff and admin accounts can manage availability
and move orders through the kitchen.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(cmd); err != nil {
				return err
			}

			app.Client = client.New(viper.GetString("server"))

			store, err := session.NewStore(viper.GetString("session_dir"))
			if err != nil {
				return fmt.Errorf("open session store: %w", err)
			}
			app.Sessions = store
			return nil
		},
	}

	rootCmd.PersistentFlags().String("server", defaultServerURL, "canteen server base URL")
	viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server"))

	rootCmd.AddCommand(
		newRegisterCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newMenuCmd(app),
		newOrderCmd(app),
		newOrdersCmd(app),
		newAdminCmd(app),
	)

	return rootCmd
}

func initConfig(cmd *cobra.Command) error {
	viper.SetEnvPrefix("canteen")
	viper.AutomaticEnv()

	configDir, err := os.UserConfigDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(configDir, "canteen"))
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

// Execute runs the root command and reports failure on stderr.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		return 1
	}
	return 0
}
