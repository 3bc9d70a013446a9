package main

import (
	"os"

	"github.com/aretw0/htmlpp/internal/cli"
	"github.com/aretw0/htmlpp/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Exposes the stripper, the trim renderer and the tail calculator as a small HTTP API.
Prometheus metrics are served on /metrics.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv(cmd)
		if err != nil {
			return err
		}

		port := env.Config.Serve.Port
		if cmd.Flags().Changed("port") {
			port, _ = cmd.Flags().GetString("port")
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()
		return env.Serve(ctx, port, tui.IsTerminal(os.Stderr))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
