/*
Package domain contains the core domain models for the process simulator.

It defines the process-flow graph (FlowNode, FlowEdge, ProcessGraph), the
decision-table model (DecisionTable, Rule), and the artifacts of a simulation
run (SimulationResult, execution path, process variables). This package is kept
pure and free of external dependencies like I/O or persistence, following
Hexagonal Architecture principles.

# Key Entities

  - FlowNode / FlowEdge: the directed flow graph produced by a definition parser.
  - DecisionTable: ordered rules with first-match-wins hit policy.
  - SimulationResult: inputs, decision output, execution path, final status and
    the final variable snapshot of one interpreter run.
  - Scenario / RejectionCase: the immutable fixtures the validation harness replays.
*/
package domain
