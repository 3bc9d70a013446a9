package main

import (
	"github.com/spf13/cobra"
)

var tailCmd = &cobra.Command{
	Use:   "tail [w h]",
	Short: "Compute common bit tails",
	Long: `Without operands, prints the built-in test pairs with their common tail.
With two operands, prints "w h tail" for that pair. Operands accept 0x, 0o and 0b prefixes.`,
	Args: cobra.MatchAll(cobra.MaximumNArgs(2), func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return cobra.ExactArgs(2)(cmd, args)
		}
		return nil
	}),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv(cmd)
		if err != nil {
			return err
		}
		return env.Tail(args)
	},
}

func init() {
	rootCmd.AddCommand(tailCmd)
}
