// File: visitor_test.go
// Title: AST Traversal Tests
// Description: Tests for Walk ordering, Inspect pruning and Measure.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial visitor tests
// - 2026-10-14 v0.2.0: Walk, Inspect and Measure

package ast

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleTree() *Program {
	return &Program{Statements: []Statement{
		act(ActionMove),
		&If{
			Cond: cond(OpGt, SensorFuelLeft, 5),
			Then: block(act(ActionMove), &Loop{Body: block(act(ActionWait))}),
			Else: block(act(ActionTurnLeft)),
		},
		&While{Cond: cond(OpLt, SensorWallDist, 2), Body: block(act(ActionTurnRight))},
	}}
}

func TestInspectOrder(t *testing.T) {
	var got []string
	Inspect(sampleTree(), func(n Node) bool {
		if n != nil {
			got = append(got, fmt.Sprintf("%T", n))
		}
		return true
	})

	want := []string{
		"*ast.Program",
		"*ast.Action",
		"*ast.If", "*ast.Comparison",
		"*ast.Block", "*ast.Action", "*ast.Loop", "*ast.Block", "*ast.Action",
		"*ast.Block", "*ast.Action",
		"*ast.While", "*ast.Comparison", "*ast.Block", "*ast.Action",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("visit order mismatch (-want +got):\n%s", diff)
	}
}

func TestInspectPrunes(t *testing.T) {
	count := 0
	Inspect(sampleTree(), func(n Node) bool {
		if n == nil {
			return false
		}
		count++
		_, isIf := n.(*If)
		return !isIf
	})
	// Program, move, If, While, its condition, block and action
	if count != 7 {
		t.Errorf("visited %d nodes, want 7", count)
	}
}

func TestMeasure(t *testing.T) {
	got := Measure(sampleTree())
	want := Stats{
		Actions:    5,
		Loops:      1,
		Ifs:        1,
		Whiles:     1,
		Blocks:     4,
		Conditions: 2,
		MaxDepth:   2,
		ActionsByKind: map[ActionKind]int{
			ActionMove:      2,
			ActionWait:      1,
			ActionTurnLeft:  1,
			ActionTurnRight: 1,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Measure() mismatch (-want +got):\n%s", diff)
	}
	if got.Statements() != 8 {
		t.Errorf("Statements() = %d, want 8", got.Statements())
	}
}

func TestMeasureFlatProgram(t *testing.T) {
	got := Measure(&Program{Statements: []Statement{act(ActionMove), act(ActionMove)}})
	if got.MaxDepth != 0 || got.Blocks != 0 || got.Actions != 2 {
		t.Errorf("Measure() = %+v", got)
	}
	want := "statements=2 actions=2 loops=0 ifs=0 whiles=0 blocks=0 conditions=0 depth=0"
	if got.String() != want {
		t.Errorf("String() = %q, want %q", got.String(), want)
	}
}
