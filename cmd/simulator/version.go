package main

import (
	"fmt"

	"github.com/spf13/cobra"

	simulator "github.com/frhnkemal/camunda-automation-testing"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of simulator",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("simulator version %s\n", simulator.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
