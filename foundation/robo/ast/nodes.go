// File: nodes.go
// Title: RoboScript AST Node Definitions
// Description: Defines the statement and condition nodes of a RoboScript
//              behavior tree, their source rendering and their execution
//              against a robot.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial AST node definitions
// - 2026-10-14 v0.2.0: Statement/Condition capability sets, folded interpreter

package ast

import (
	"context"
	"fmt"
	"strings"

	"github.com/msto63/roboscript/foundation/robo/robot"
)

// indent is the per-level indentation used when rendering blocks
const indent = "  "

// Node represents the base interface for all AST nodes
type Node interface {
	// String renders the node as RoboScript source
	String() string

	// Position returns the source position of the node
	Position() Position
}

// Statement is a node that can be executed against a robot
type Statement interface {
	Node
	Execute(ctx context.Context, r robot.Robot) error
}

// Condition is a node that evaluates to true or false from sensor readings
type Condition interface {
	Node
	Evaluate(r robot.Robot) bool
}

// Position represents a position in the source code
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

// String returns line:column
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Program is the root of a parsed source file. An empty program is valid.
type Program struct {
	Statements []Statement
}

// Block is a braced, non-empty sequence of statements
type Block struct {
	Statements []Statement
	Pos        Position // position of the opening brace
}

// Loop repeats its body unconditionally
type Loop struct {
	Body *Block
	Pos  Position
}

// If runs Then when Cond holds, otherwise Else if present
type If struct {
	Cond Condition
	Then *Block
	Else *Block // nil without an else branch
	Pos  Position
}

// While runs Body for as long as Cond holds
type While struct {
	Cond Condition
	Body *Block
	Pos  Position
}

// Action performs a single robot action
type Action struct {
	Kind ActionKind
	Pos  Position
}

// Comparison compares one sensor reading against a literal threshold
type Comparison struct {
	Op        Op
	Sensor    Sensor
	Threshold int
	Pos       Position
}

func (p *Program) Position() Position {
	if len(p.Statements) == 0 {
		return Position{Line: 1, Column: 1}
	}
	return p.Statements[0].Position()
}

func (b *Block) Position() Position      { return b.Pos }
func (l *Loop) Position() Position       { return l.Pos }
func (i *If) Position() Position         { return i.Pos }
func (w *While) Position() Position      { return w.Pos }
func (a *Action) Position() Position     { return a.Pos }
func (c *Comparison) Position() Position { return c.Pos }

// String renders one statement per line
func (p *Program) String() string {
	lines := make([]string, len(p.Statements))
	for i, s := range p.Statements {
		lines[i] = s.String()
	}
	return strings.Join(lines, "\n")
}

// String renders the block braced, with each statement indented
func (b *Block) String() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, s := range b.Statements {
		for _, line := range strings.Split(s.String(), "\n") {
			sb.WriteString(indent)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	sb.WriteString("}")
	return sb.String()
}

func (l *Loop) String() string {
	return "loop " + l.Body.String()
}

func (i *If) String() string {
	s := fmt.Sprintf("if (%s) %s", i.Cond, i.Then)
	if i.Else != nil {
		s += " else " + i.Else.String()
	}
	return s
}

func (w *While) String() string {
	return fmt.Sprintf("while (%s) %s", w.Cond, w.Body)
}

func (a *Action) String() string {
	return a.Kind.String() + ";"
}

func (c *Comparison) String() string {
	return fmt.Sprintf("%s(%s,%d)", c.Op, c.Sensor, c.Threshold)
}

// Execute runs the top-level statements in order
func (p *Program) Execute(ctx context.Context, r robot.Robot) error {
	return executeAll(ctx, r, p.Statements)
}

// Execute runs the block's statements in order
func (b *Block) Execute(ctx context.Context, r robot.Robot) error {
	return executeAll(ctx, r, b.Statements)
}

// Execute repeats the body until a statement fails or ctx is done.
// It never returns nil.
func (l *Loop) Execute(ctx context.Context, r robot.Robot) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := l.Body.Execute(ctx, r); err != nil {
			return err
		}
	}
}

func (i *If) Execute(ctx context.Context, r robot.Robot) error {
	if i.Cond.Evaluate(r) {
		return i.Then.Execute(ctx, r)
	}
	if i.Else != nil {
		return i.Else.Execute(ctx, r)
	}
	return nil
}

// Execute evaluates Cond before every iteration, including the first
func (w *While) Execute(ctx context.Context, r robot.Robot) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !w.Cond.Evaluate(r) {
			return nil
		}
		if err := w.Body.Execute(ctx, r); err != nil {
			return err
		}
	}
}

func (a *Action) Execute(_ context.Context, r robot.Robot) error {
	return a.Kind.Perform(r)
}

// Evaluate reads the sensor once and compares it with the threshold
func (c *Comparison) Evaluate(r robot.Robot) bool {
	return c.Op.Compare(c.Sensor.Read(r), c.Threshold)
}

func executeAll(ctx context.Context, r robot.Robot, stmts []Statement) error {
	for _, s := range stmts {
		if err := s.Execute(ctx, r); err != nil {
			return err
		}
	}
	return nil
}
