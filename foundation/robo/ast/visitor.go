// File: visitor.go
// Title: RoboScript AST Traversal
// Description: Depth-first traversal of behavior trees plus a statistics
//              pass counting statements, blocks and nesting depth.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial visitor pattern implementation
// - 2026-10-14 v0.2.0: Walk/Inspect traversal and Measure statistics

package ast

import (
	"fmt"
	"strings"
)

// Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each of the children of
// node with w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses a tree in depth-first order. Children are visited in
// source order; an If visits its condition before its branches.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Statements {
			Walk(v, s)
		}
	case *Block:
		for _, s := range n.Statements {
			Walk(v, s)
		}
	case *Loop:
		Walk(v, n.Body)
	case *If:
		Walk(v, n.Cond)
		Walk(v, n.Then)
		if n.Else != nil {
			Walk(v, n.Else)
		}
	case *While:
		Walk(v, n.Cond)
		Walk(v, n.Body)
	case *Action, *Comparison:
		// leaves
	default:
		panic(fmt.Sprintf("ast.Walk: unexpected node type %T", n))
	}

	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses a tree in depth-first order, calling f for each node.
// If f returns true, Inspect continues into the node's children, then calls
// f(nil).
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

// Stats summarises the shape of a tree
type Stats struct {
	Actions    int
	Loops      int
	Ifs        int
	Whiles     int
	Blocks     int
	Conditions int
	MaxDepth   int // deepest block nesting, 0 for a flat program

	ActionsByKind map[ActionKind]int
}

// Statements returns the number of statement nodes, excluding blocks
func (s Stats) Statements() int {
	return s.Actions + s.Loops + s.Ifs + s.Whiles
}

// String renders the counters on one line
func (s Stats) String() string {
	parts := []string{
		fmt.Sprintf("statements=%d", s.Statements()),
		fmt.Sprintf("actions=%d", s.Actions),
		fmt.Sprintf("loops=%d", s.Loops),
		fmt.Sprintf("ifs=%d", s.Ifs),
		fmt.Sprintf("whiles=%d", s.Whiles),
		fmt.Sprintf("blocks=%d", s.Blocks),
		fmt.Sprintf("conditions=%d", s.Conditions),
		fmt.Sprintf("depth=%d", s.MaxDepth),
	}
	return strings.Join(parts, " ")
}

type measurer struct {
	stats Stats
	stack []Node
	depth int
}

func (m *measurer) Visit(node Node) Visitor {
	if node == nil {
		top := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
		if _, ok := top.(*Block); ok {
			m.depth--
		}
		return nil
	}

	switch n := node.(type) {
	case *Block:
		m.stats.Blocks++
		m.depth++
		if m.depth > m.stats.MaxDepth {
			m.stats.MaxDepth = m.depth
		}
	case *Action:
		m.stats.Actions++
		m.stats.ActionsByKind[n.Kind]++
	case *Loop:
		m.stats.Loops++
	case *If:
		m.stats.Ifs++
	case *While:
		m.stats.Whiles++
	case *Comparison:
		m.stats.Conditions++
	}
	m.stack = append(m.stack, node)
	return m
}

// Measure counts the nodes of a tree by kind
func Measure(node Node) Stats {
	m := &measurer{stats: Stats{ActionsByKind: make(map[ActionKind]int)}}
	Walk(m, node)
	return m.stats
}
