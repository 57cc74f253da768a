package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cipherkit/internal/app"
)

var (
	verbose bool
	jsonOut bool
	noColor bool

	appCtx *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "cipherkit",
		Short: "Classical substitution ciphers and the attacks that break them",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Load()
			if verbose {
				cfg.Log.Level = "debug"
			}
			app.SetupLogging(cfg)

			if noColor || !cfg.Output.Color {
				color.NoColor = true
			}
			appCtx = app.New(cfg)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&jsonOut, "json", false, "print results as JSON")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	root.AddCommand(encodeCmd(), decodeCmd(), crackCmd(), keygenCmd(), variantsCmd())
	return root.Execute()
}
