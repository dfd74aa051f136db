package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frhnkemal/camunda-automation-testing/internal/presentation/report"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Replay the scenario catalogue against the current definitions",
	Long: `Runs every built-in execution scenario and rejection case against the current
process definition and prints the validation report. Exits non-zero when the
process fails any scenario.`,
	Run: func(cmd *cobra.Command, args []string) {
		engine, _, _, err := newEngine(cmd)
		if err != nil {
			fmt.Printf("Error initializing simulator: %v\n", err)
			os.Exit(1)
		}

		result := engine.Validate(cmd.Context())

		if jsonMode, _ := cmd.Flags().GetBool("json"); jsonMode {
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				fmt.Printf("Error encoding report: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(out))
		} else {
			fmt.Println(report.Render(result))
			fmt.Println(report.Verdict(result))
		}

		if !result.AllPassed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("json", false, "Print the raw report as JSON")
}
