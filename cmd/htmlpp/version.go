package main

import (
	"fmt"

	"github.com/aretw0/htmlpp"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of htmlpp",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("htmlpp version %s\n", htmlpp.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
