package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the built-in validation scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		engine, _, _, err := newEngine(cmd)
		if err != nil {
			fmt.Printf("Error initializing simulator: %v\n", err)
			os.Exit(1)
		}

		for _, s := range engine.Scenarios() {
			fmt.Printf("%-40s %s\n", s.Slug(), s.Description)
		}
	},
}

var scenariosRunCmd = &cobra.Command{
	Use:   "run <slug>",
	Short: "Replay one scenario by its slug",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine, _, _, err := newEngine(cmd)
		if err != nil {
			fmt.Printf("Error initializing simulator: %v\n", err)
			os.Exit(1)
		}

		result, err := engine.RunScenario(cmd.Context(), args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Printf("Error encoding result: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))

		if !result.Passed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
	scenariosCmd.AddCommand(scenariosRunCmd)
}
