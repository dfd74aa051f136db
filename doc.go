// Package simulator is a design-time simulator for the quote-validation
// process: it executes BPMN process graphs against DMN decision tables
// without a full workflow engine, and validates uploaded definitions by
// replaying a fixed scenario catalogue.
//
// The Engine facade wires the definition store, the XML parsers, the decision
// evaluator, and the graph interpreter. It ships with built-in default
// definitions so it is usable before anything is uploaded; uploading a BPMN
// or DMN document replaces the defaults for all subsequent executions.
package simulator
