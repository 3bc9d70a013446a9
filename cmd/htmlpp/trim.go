package main

import (
	"os"

	"github.com/aretw0/htmlpp/internal/cli"
	"github.com/aretw0/htmlpp/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var trimCmd = &cobra.Command{
	Use:   "trim",
	Short: "Render the decorative trim catalog",
	Long: `Prints every pattern of the catalog as a top/bottom border pair, each preceded
by a blank line. Use --pattern to render a single pattern and --list to see the catalog.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv(cmd)
		if err != nil {
			return err
		}

		opts := cli.TrimOptions{
			Catalog: env.Config.Trim.Catalog,
			Length:  env.Config.Trim.Length,
			Color:   tui.IsTerminal(os.Stdout),
		}
		if cmd.Flags().Changed("catalog") {
			opts.Catalog, _ = cmd.Flags().GetString("catalog")
		}
		if cmd.Flags().Changed("length") {
			opts.Length, _ = cmd.Flags().GetInt("length")
		}
		if cmd.Flags().Changed("color") {
			opts.Color, _ = cmd.Flags().GetBool("color")
		}
		opts.Pattern, _ = cmd.Flags().GetString("pattern")
		opts.List, _ = cmd.Flags().GetBool("list")

		return env.Trim(opts)
	},
}

func init() {
	rootCmd.AddCommand(trimCmd)

	trimCmd.Flags().IntP("length", "l", 64, "Minimum trim length")
	trimCmd.Flags().StringP("catalog", "c", "active", "Catalog to render: 'active' or 'basic'")
	trimCmd.Flags().StringP("pattern", "p", "", "Render a single pattern, e.g. 1,2,1")
	trimCmd.Flags().Bool("list", false, "List the catalog instead of rendering it")
	trimCmd.Flags().Bool("color", false, "Color asterisk runs (default: only on a terminal)")
}
