package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/frhnkemal/camunda-automation-testing/internal/validation"
	"github.com/frhnkemal/camunda-automation-testing/pkg/domain"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run one simulation against the current definitions",
	Long: `Executes the current process definition once with the supplied quote inputs
and prints the simulation result as JSON. Inputs come from flags, or from a
JSON object on stdin when --stdin is set.`,
	Run: func(cmd *cobra.Command, args []string) {
		engine, _, _, err := newEngine(cmd)
		if err != nil {
			fmt.Printf("Error initializing simulator: %v\n", err)
			os.Exit(1)
		}

		input, err := simulationInput(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		result, err := engine.Simulate(cmd.Context(), input)
		if err != nil {
			fmt.Printf("Simulation failed: %v\n", err)
			os.Exit(1)
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Printf("Error encoding result: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().Bool("manual-price-cost", false, "Whether the quote uses a manually priced cost")
	simulateCmd.Flags().Float64("deal-margin-percent", 25, "Deal margin as a percentage")
	simulateCmd.Flags().Bool("stdin", false, "Read a JSON input object from stdin instead of flags")
}

// simulationInput resolves the quote inputs from --stdin or from the flags.
// Stdin payloads go through the same validation as the HTTP boundary.
func simulationInput(cmd *cobra.Command) (domain.SimulationInput, error) {
	if useStdin, _ := cmd.Flags().GetBool("stdin"); useStdin {
		payload, err := io.ReadAll(os.Stdin)
		if err != nil {
			return domain.SimulationInput{}, fmt.Errorf("read stdin: %w", err)
		}
		if errs := validation.Validate(payload); len(errs) > 0 {
			return domain.SimulationInput{}, fmt.Errorf("invalid input: %s", strings.Join(errs, "; "))
		}
		return validation.DecodeInput(payload)
	}

	manual, _ := cmd.Flags().GetBool("manual-price-cost")
	margin, _ := cmd.Flags().GetFloat64("deal-margin-percent")
	return domain.SimulationInput{ManualPriceCost: manual, DealMarginPercent: margin}, nil
}
