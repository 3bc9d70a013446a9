package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/htmlpp/internal/cli"
	"github.com/aretw0/htmlpp/internal/config"
	"github.com/aretw0/htmlpp/pkg/strip"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "htmlpp",
	Short: "htmlpp strips debug blocks from text and renders decorative trims",
	Long: `htmlpp is a small preprocessor: by default it copies Stdin to Stdout,
dropping every @@DEBUG ... @@END region. It also renders the border trims
used by the web pages and computes common bit tails.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var me *strip.MarkerError
		if errors.As(err, &me) {
			fmt.Fprintf(os.Stderr, "htmlpp: %v\n", me)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the htmlpp.yaml config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to Stderr")
}

// newEnv builds the command environment from the persistent flags.
func newEnv(cmd *cobra.Command) (*cli.Env, error) {
	path, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.NewEnv(path, debug)
}
