package main

import (
	"io"

	"tigerrentals-client/internal/config"
	"tigerrentals-client/internal/logger"

	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. The returned func releases what the
// invoked command opened and must run after Execute, whatever its outcome.
func newRootCmd(in io.Reader, out, errOut io.Writer) (*cobra.Command, func()) {
	var (
		configPath string
		noStore    bool
		a          *app
	)

	root := &cobra.Command{
		Use:           "rentctl",
		Short:         "Rent and lend things around campus",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if noStore {
				cfg.Store.Type = "memory"
			}
			logger.InitializeWithWriter(cfg.Log.Level, cfg.Log.Format, errOut)
			logger.WithView(cmd.CommandPath()).Debug("Configuration loaded", "api", cfg.API.BaseURL, "store", cfg.Store.Type)

			a, err = newApp(cmd.Context(), cfg, in, out, errOut)
			return err
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "path to configuration file")
	root.PersistentFlags().BoolVar(&noStore, "no-store", false, "keep the session in memory only")

	get := func() *app { return a }
	root.AddCommand(
		newLoginCmd(get),
		newRegisterCmd(get),
		newLogoutCmd(get),
		newWhoamiCmd(get),
		newCategoriesCmd(get),
		newItemsCmd(get),
		newRentalsCmd(get),
		newMessagesCmd(get),
		newReviewCmd(get),
		newDashboardCmd(get),
		newEarningsCmd(get),
	)
	return root, func() {
		if a != nil {
			a.Close()
		}
	}
}
