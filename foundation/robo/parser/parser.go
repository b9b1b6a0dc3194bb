// File: parser.go
// Title: RoboScript Recursive Descent Parser
// Description: Converts token streams into RoboScript behavior trees using
//              LL(1) recursive descent. Fails fast on the first malformed
//              construct with position and token context.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2026-10-14 v0.2.0: RoboScript grammar, single ParseError kind

package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	robolog "github.com/msto63/roboscript/foundation/core/log"
	"github.com/msto63/roboscript/foundation/robo/ast"
)

// DefaultMaxInputLength is the input limit used when Options leaves it unset
const DefaultMaxInputLength = 64 * 1024

// ContextTokens is the number of upcoming tokens a ParseError reports
const ContextTokens = 5

// ErrInputTooLarge is wrapped by the ParseError returned for oversized input
var ErrInputTooLarge = errors.New("input exceeds maximum length")

// Parser implements recursive descent parsing for RoboScript. A Parser
// holds no per-parse state and may be shared between goroutines.
type Parser struct {
	logger  *robolog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger         *robolog.Logger
	MaxInputLength int // bytes; 0 selects DefaultMaxInputLength
}

// ParseError represents a parsing error with position information
type ParseError struct {
	Message string
	Line    int
	Column  int
	Offset  int
	Token   string   // offending token, empty at end of input
	Context []string // up to ContextTokens tokens starting at the offending one

	err error
}

func (pe *ParseError) Error() string {
	near := "end of input"
	if len(pe.Context) > 0 {
		near = "... " + strings.Join(pe.Context, " ") + " ..."
	}
	return fmt.Sprintf("parse error at line %d, column %d: %s @ %s",
		pe.Line, pe.Column, pe.Message, near)
}

// Unwrap returns the sentinel behind the failure, if any
func (pe *ParseError) Unwrap() error {
	return pe.err
}

// New creates a new RoboScript parser with the given options
func New(opts Options) (*Parser, error) {
	if opts.MaxInputLength < 0 {
		return nil, fmt.Errorf("parser: negative MaxInputLength %d", opts.MaxInputLength)
	}
	if opts.Logger == nil {
		opts.Logger = robolog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "robo-parser"),
		options: opts,
	}, nil
}

// Parse parses src with default options and no logging
func Parse(src string) (*ast.Program, error) {
	p, _ := New(Options{Logger: robolog.NewNop()})
	return p.Parse(src)
}

// Parse parses RoboScript source and returns its program tree
func (p *Parser) Parse(src string) (*ast.Program, error) {
	if len(src) > p.options.MaxInputLength {
		err := &ParseError{
			Message: fmt.Sprintf("%s: %d > %d", ErrInputTooLarge, len(src), p.options.MaxInputLength),
			Line:    1,
			Column:  1,
			err:     ErrInputTooLarge,
		}
		p.logger.Warn("RoboScript parsing rejected", robolog.Fields{
			"length": len(src),
			"limit":  p.options.MaxInputLength,
		})
		return nil, err
	}

	p.logger.Debug("Starting RoboScript parsing", robolog.Fields{
		"length": len(src),
	})

	s := &session{lex: NewLexer(src)}
	prog, err := s.parseProgram()
	if err != nil {
		fields := robolog.Fields{"error": err.Error()}
		var pe *ParseError
		if errors.As(err, &pe) {
			fields["line"] = pe.Line
			fields["column"] = pe.Column
		}
		p.logger.Warn("RoboScript parsing failed", fields)
		return nil, err
	}

	p.logger.Debug("RoboScript parsing completed successfully", robolog.Fields{
		"statements": len(prog.Statements),
		"tokens":     s.lex.index,
	})
	return prog, nil
}

// session holds the state of one parse
type session struct {
	lex *Lexer
}

func (s *session) parseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for s.lex.HasNext() {
		stmt, err := s.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

// parseStatement dispatches on the first token: action, loop, if, while
func (s *session) parseStatement() (ast.Statement, error) {
	tok, _ := s.lex.Peek()

	if kind, ok := ast.LookupAction(tok.Text); ok {
		return s.parseAction(kind)
	}
	switch tok.Text {
	case "loop":
		return s.parseLoop()
	case "if":
		return s.parseIf()
	case "while":
		return s.parseWhile()
	}
	return nil, s.fail("statement not recognized")
}

func (s *session) parseAction(kind ast.ActionKind) (ast.Statement, error) {
	tok, _ := s.lex.Next()
	if _, err := s.require(TokenSemicolon, "action does not have a ';'"); err != nil {
		return nil, err
	}
	return &ast.Action{Kind: kind, Pos: position(tok)}, nil
}

func (s *session) parseLoop() (ast.Statement, error) {
	tok, _ := s.lex.Next()
	body, err := s.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.Loop{Body: body, Pos: position(tok)}, nil
}

func (s *session) parseIf() (ast.Statement, error) {
	tok, _ := s.lex.Next()
	cond, err := s.parseParenCondition()
	if err != nil {
		return nil, err
	}
	then, err := s.parseBlock()
	if err != nil {
		return nil, err
	}

	node := &ast.If{Cond: cond, Then: then, Pos: position(tok)}
	if next, ok := s.lex.Peek(); ok && next.Text == "else" {
		s.lex.Next()
		if node.Else, err = s.parseBlock(); err != nil {
			return nil, err
		}
	}
	return node, nil
}

func (s *session) parseWhile() (ast.Statement, error) {
	tok, _ := s.lex.Next()
	cond, err := s.parseParenCondition()
	if err != nil {
		return nil, err
	}
	body, err := s.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body, Pos: position(tok)}, nil
}

func (s *session) parseBlock() (*ast.Block, error) {
	open, err := s.require(TokenLeftBrace, "missing opening brace")
	if err != nil {
		return nil, err
	}
	if s.peekIs(TokenRightBrace) {
		return nil, s.fail("block is empty")
	}

	block := &ast.Block{Pos: position(open)}
	for !s.peekIs(TokenRightBrace) {
		if !s.lex.HasNext() {
			return nil, s.fail("missing closing brace")
		}
		stmt, err := s.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	s.lex.Next()
	return block, nil
}

// parseParenCondition parses '(' cond ')'
func (s *session) parseParenCondition() (ast.Condition, error) {
	if _, err := s.require(TokenLeftParen, "missing opening parenthesis"); err != nil {
		return nil, err
	}
	cond, err := s.parseCondition()
	if err != nil {
		return nil, err
	}
	if _, err := s.require(TokenRightParen, "missing closing parenthesis"); err != nil {
		return nil, err
	}
	return cond, nil
}

func (s *session) parseCondition() (ast.Condition, error) {
	tok, _ := s.lex.Peek()
	op, ok := ast.LookupOp(tok.Text)
	if !ok {
		return nil, s.fail("condition not recognized")
	}
	s.lex.Next()

	if _, err := s.require(TokenLeftParen, "missing opening parenthesis"); err != nil {
		return nil, err
	}

	sensorTok, _ := s.lex.Peek()
	sensor, ok := ast.LookupSensor(sensorTok.Text)
	if !ok {
		return nil, s.fail("missing sensor")
	}
	s.lex.Next()

	if _, err := s.require(TokenComma, "missing ','"); err != nil {
		return nil, err
	}

	numTok, _ := s.lex.Peek()
	if numTok.Type != TokenNumber {
		return nil, s.fail("missing a number")
	}
	threshold, err := strconv.Atoi(numTok.Text)
	if err != nil {
		return nil, s.fail("missing a number")
	}
	s.lex.Next()

	if _, err := s.require(TokenRightParen, "missing closing parenthesis"); err != nil {
		return nil, err
	}

	return &ast.Comparison{Op: op, Sensor: sensor, Threshold: threshold, Pos: position(tok)}, nil
}

// require consumes the next token if it has the wanted type
func (s *session) require(want TokenType, message string) (Token, error) {
	if !s.peekIs(want) {
		return Token{}, s.fail(message)
	}
	tok, _ := s.lex.Next()
	return tok, nil
}

func (s *session) peekIs(want TokenType) bool {
	tok, ok := s.lex.Peek()
	return ok && tok.Type == want
}

// fail builds a ParseError at the next token without consuming anything
func (s *session) fail(message string) error {
	tok, ok := s.lex.Peek()
	pe := &ParseError{
		Message: message,
		Line:    tok.Line,
		Column:  tok.Column,
		Offset:  tok.Offset,
		Context: s.lex.Remaining(ContextTokens),
	}
	if ok {
		pe.Token = tok.Text
	}
	return pe
}

func position(tok Token) ast.Position {
	return ast.Position{Line: tok.Line, Column: tok.Column, Offset: tok.Offset}
}
