// Package validation holds the input validator and the scenario validation
// harness: the fixed catalogue of executions and malformed payloads that
// decide whether the loaded definitions are valid.
package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/mitchellh/mapstructure"

	"github.com/frhnkemal/camunda-automation-testing/pkg/domain"
)

// Validate checks the shape of a raw simulate payload: it must parse as a
// JSON object with a boolean manualPriceCost and a finite numeric
// dealMarginPercent. All field checks run independently (no short-circuit);
// the returned messages are ordered by priority. An empty slice means valid.
func Validate(payload []byte) []string {
	if len(bytes.TrimSpace(payload)) == 0 {
		return []string{"request body is required"}
	}

	var root any
	if err := json.Unmarshal(payload, &root); err != nil {
		return []string{"invalid JSON: " + err.Error()}
	}

	obj, ok := root.(map[string]any)
	if !ok {
		return []string{"request body must be a JSON object"}
	}

	var errs []string

	if v, present := obj["manualPriceCost"]; !present || v == nil {
		errs = append(errs, "manualPriceCost is required")
	} else if _, isBool := v.(bool); !isBool {
		errs = append(errs, "manualPriceCost must be a boolean (true or false)")
	}

	if v, present := obj["dealMarginPercent"]; !present || v == nil {
		errs = append(errs, "dealMarginPercent is required")
	} else if f, isNum := v.(float64); !isNum {
		errs = append(errs, "dealMarginPercent must be a number")
	} else if math.IsNaN(f) || math.IsInf(f, 0) {
		errs = append(errs, "dealMarginPercent must be a finite number")
	}

	return errs
}

// FirstError returns the highest-priority validation error, or "" if valid.
func FirstError(payload []byte) string {
	errs := Validate(payload)
	if len(errs) == 0 {
		return ""
	}
	return errs[0]
}

// DecodeInput decodes an already-validated payload into a SimulationInput.
func DecodeInput(payload []byte) (domain.SimulationInput, error) {
	var raw map[string]any
	if err := json.Unmarshal(payload, &raw); err != nil {
		return domain.SimulationInput{}, fmt.Errorf("decode payload: %w", err)
	}

	var in domain.SimulationInput
	if err := mapstructure.Decode(raw, &in); err != nil {
		return domain.SimulationInput{}, fmt.Errorf("decode payload: %w", err)
	}
	return in, nil
}
