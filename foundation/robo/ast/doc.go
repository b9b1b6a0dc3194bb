// File: doc.go
// Title: RoboScript Abstract Syntax Tree Package Documentation
// Description: Documents the executable behavior tree produced by the
//              parser and interpreted against a robot.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial AST implementation
// - 2026-10-14 v0.2.0: RoboScript behavior tree with folded interpreter

/*
Package ast defines the behavior tree of a parsed RoboScript program.

The tree is built from two small capability sets:

  - Statement nodes (Program, Block, Loop, If, While, Action) execute
    against a robot.Robot.
  - Condition nodes (Comparison) evaluate to a bool by reading one robot
    sensor.

Actions and sensors are closed enumerations (ActionKind, Sensor) dispatched
by exhaustive switch, so there is no path where an unknown name silently
becomes a no-op.

Nodes are created once by the parser and never modified afterwards. A tree
may be executed any number of times, but not concurrently against the same
robot.

Every node renders as valid RoboScript source through String(); parsing a
rendering yields a structurally identical tree.

Execution semantics:

  - Program and Block run their statements in order and stop at the first
    error.
  - Loop repeats its body until an actuator fails or the context is done.
  - While re-evaluates its condition before each iteration.
  - If evaluates its condition once and runs at most one branch.

Walk, Inspect and Measure traverse a tree for analysis.
*/
package ast
