// File: performance_test.go
// Title: RoboScript Performance Tests
// Description: Benchmarks for parsing, cached loading and running programs
//              in the scripted world.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of performance tests
// - 2026-10-14 v0.2.0: Parser, cache and run benchmarks

package integration

import (
	"context"
	"strings"
	"testing"
	"time"

	robolog "github.com/msto63/roboscript/foundation/core/log"
	"github.com/msto63/roboscript/foundation/robo"
	"github.com/msto63/roboscript/foundation/robo/parser"
	"github.com/msto63/roboscript/foundation/robo/robot"
)

// largeProgram builds n nested if/while statements
func largeProgram(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString("if (gt(fuelLeft,5)) { move; turnL; } else { while (lt(wallDist,2)) { turnR; } }\n")
	}
	return sb.String()
}

func BenchmarkParseGatherer(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := parser.Parse(gatherer); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseLarge(b *testing.B) {
	src := largeProgram(200)
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := parser.Parse(src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEngineLoadCached(b *testing.B) {
	eng := newEngine(b)
	src := largeProgram(200)
	if _, err := eng.Load(src); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.Load(src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRunGatherer(b *testing.B) {
	eng := newEngine(b)
	prog, err := eng.Load(gatherer)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		world := newWorld(b)
		if _, err := eng.Run(context.Background(), prog, world, robo.RunOptions{RunID: "bench"}); err != nil {
			b.Fatal(err)
		}
	}
}

// TestLargeProgramPerformance keeps parsing a big program well below a
// second.
func TestLargeProgramPerformance(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping performance test in short mode")
	}

	src := largeProgram(2000)
	p, err := parser.New(parser.Options{Logger: robolog.NewNop(), MaxInputLength: len(src)})
	if err != nil {
		t.Fatalf("parser: %v", err)
	}

	start := time.Now()
	prog, err := p.Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("parsing %d bytes took %v", len(src), elapsed)
	}
	if len(prog.Statements) != 2000 {
		t.Errorf("statements = %d, want 2000", len(prog.Statements))
	}
}

// TestStepBudgetBoundsInfiniteLoop runs an infinite loop under a budget
func TestStepBudgetBoundsInfiniteLoop(t *testing.T) {
	eng, err := robo.New(robo.Options{Logger: robolog.NewNop(), MaxSteps: 10000})
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	prog, err := eng.Load("loop { turnL; turnR; }")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	rec := robot.NewRecorder()
	result, _ := eng.Run(context.Background(), prog, rec, robo.RunOptions{})
	if result.Steps != 10000 || rec.Steps() != 10000 {
		t.Errorf("steps = %d (recorder %d), want 10000", result.Steps, rec.Steps())
	}
}
