package main

import (
	"github.com/aretw0/htmlpp/internal/cli"
	"github.com/spf13/cobra"
)

// stripCmd represents the strip command
var stripCmd = &cobra.Command{
	Use:   "strip [file]",
	Short: "Remove @@DEBUG ... @@END blocks",
	Long: `Copies the input (Stdin, or the given file) to Stdout line by line.
Lines between a line containing @@DEBUG and the next line containing @@END are
dropped together with the marker lines. Any other line containing @@ aborts the run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv(cmd)
		if err != nil {
			return err
		}

		var path string
		if len(args) > 0 {
			path = args[0]
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()
		return env.Strip(ctx, path)
	},
}

func init() {
	rootCmd.AddCommand(stripCmd)

	// Stripping is what htmlpp does when no command is given.
	rootCmd.Args = stripCmd.Args
	rootCmd.RunE = stripCmd.RunE
}
