// File: doc.go
// Title: RoboScript Parser Package Documentation
// Description: Documents the tokenizer and recursive-descent parser that
//              turn RoboScript source into behavior trees.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2026-10-14 v0.2.0: RoboScript grammar

/*
Package parser turns RoboScript source text into an ast.Program.

Grammar:

	program    ::= statement*
	statement  ::= action ';' | loop | if | while
	action     ::= 'move' | 'turnL' | 'turnR' | 'takeFuel' | 'wait'
	             | 'shieldOn' | 'shieldOff' | 'turnAround'
	loop       ::= 'loop' block
	if         ::= 'if' '(' cond ')' block [ 'else' block ]
	while      ::= 'while' '(' cond ')' block
	block      ::= '{' statement+ '}'
	cond       ::= ('gt'|'lt'|'eq') '(' sensor ',' integer ')'
	sensor     ::= 'fuelLeft' | 'oppLR' | 'oppFB' | 'numBarrels'
	             | 'barrelLR' | 'barrelFB' | 'wallDist'

Tokens are separated by whitespace. The characters { } ( ) , ; are always
tokens of their own, so "move;" and "move ;" are the same input.

The parser is LL(1): a statement is chosen by peeking at its first token,
trying actions, loop, if and while in that order. Parsing stops at the
first problem and returns a *ParseError with the position of the offending
token and up to five tokens of context. No partial tree is ever returned.

Usage:

	prog, err := parser.Parse("while (gt(fuelLeft,0)) { move; }")
	if err != nil {
	    var pe *parser.ParseError
	    if errors.As(err, &pe) {
	        fmt.Println(pe.Line, pe.Column, pe.Context)
	    }
	}
*/
package parser
