// File: engine.go
// Title: RoboScript Engine
// Description: Loads, caches, validates and runs RoboScript programs. Wraps
//              parser and runtime failures in coded errors and logs each
//              run under its own run ID.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial high-level engine implementation
// - 2026-10-14 v0.2.0: Program cache, governed runs, coded errors

package robo

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"

	roboerr "github.com/msto63/roboscript/foundation/core/error"
	robolog "github.com/msto63/roboscript/foundation/core/log"
	"github.com/msto63/roboscript/foundation/robo/ast"
	"github.com/msto63/roboscript/foundation/robo/parser"
	"github.com/msto63/roboscript/foundation/robo/robot"
)

// DefaultCacheSize is the number of parsed programs kept when Options
// leaves CacheSize at zero.
const DefaultCacheSize = 128

// Engine provides loading and running of RoboScript programs
type Engine struct {
	parser  *parser.Parser
	cache   *lru.Cache // nil when caching is disabled
	logger  *robolog.Logger
	options Options
}

// Options configures the engine
type Options struct {
	Logger         *robolog.Logger
	MaxInputLength int           // passed to the parser
	CacheSize      int           // 0 selects DefaultCacheSize, negative disables the cache
	MaxSteps       int           // default action budget per run, 0 for unlimited
	Timeout        time.Duration // default run timeout, 0 for none
	EnableAuditLog bool
}

// RunOptions configures a single run. Zero values fall back to the
// engine's Options.
type RunOptions struct {
	RunID    string // generated when empty
	Program  string // name used in logs, typically the file name
	MaxSteps int
	Timeout  time.Duration
}

// RunResult describes a finished run
type RunResult struct {
	RunID    string        `json:"run_id"`
	Program  string        `json:"program,omitempty"`
	Steps    int           `json:"steps"`
	Duration time.Duration `json:"duration"`
	Halted   bool          `json:"halted"`
	Err      error         `json:"-"`
}

// New creates a new RoboScript engine
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = robolog.GetDefault()
	}
	if opts.CacheSize == 0 {
		opts.CacheSize = DefaultCacheSize
	}
	if opts.MaxSteps < 0 {
		return nil, roboerr.Newf("max steps must not be negative: %d", opts.MaxSteps).
			WithCode(roboerr.CodeInvalidInput).
			WithOperation("engine_new")
	}

	logger := opts.Logger.WithField("component", "robo-engine")

	p, err := parser.New(parser.Options{
		Logger:         opts.Logger,
		MaxInputLength: opts.MaxInputLength,
	})
	if err != nil {
		return nil, roboerr.Wrap(err, "failed to initialize RoboScript parser").
			WithCode(roboerr.CodeInvalidInput).
			WithOperation("engine_new")
	}

	engine := &Engine{
		parser:  p,
		logger:  logger,
		options: opts,
	}

	if opts.CacheSize > 0 {
		cache, err := lru.New(opts.CacheSize)
		if err != nil {
			return nil, roboerr.Wrap(err, "failed to initialize program cache").
				WithCode(roboerr.CodeInternal).
				WithOperation("engine_new")
		}
		engine.cache = cache
	}

	logger.Info("RoboScript engine initialized", robolog.Fields{
		"cacheSize":      opts.CacheSize,
		"maxSteps":       opts.MaxSteps,
		"timeout":        opts.Timeout.String(),
		"enableAuditLog": opts.EnableAuditLog,
	})

	return engine, nil
}

// Load parses src, returning the cached tree when the same source was
// loaded before.
func (e *Engine) Load(src string) (*ast.Program, error) {
	if e.cache != nil {
		if cached, ok := e.cache.Get(src); ok {
			e.logger.Trace("Program cache hit", robolog.Fields{"length": len(src)})
			return cached.(*ast.Program), nil
		}
	}

	prog, err := e.parser.Parse(src)
	if err != nil {
		return nil, wrapParseError(err)
	}

	if e.cache != nil {
		e.cache.Add(src, prog)
	}
	return prog, nil
}

// LoadFile reads and loads the program stored at path
func (e *Engine) LoadFile(path string) (*ast.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		code := roboerr.CodeInvalidInput
		if errors.Is(err, os.ErrNotExist) {
			code = roboerr.CodeNotFound
		}
		return nil, roboerr.Wrap(err, "failed to read program").
			WithCode(code).
			WithOperation("load_file").
			WithDetail("file", path)
	}

	prog, err := e.Load(string(data))
	if err != nil {
		var coded *roboerr.Error
		if errors.As(err, &coded) {
			coded.WithDetail("file", path)
		}
		return nil, err
	}

	e.logger.WithProgram(path).Debug("Program loaded", robolog.Fields{
		"statements": len(prog.Statements),
	})
	return prog, nil
}

// Validate reports whether src is a syntactically valid program
func (e *Engine) Validate(src string) error {
	_, err := e.Load(src)
	return err
}

// CacheLen returns the number of cached programs
func (e *Engine) CacheLen() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.Len()
}

// PurgeCache drops every cached program
func (e *Engine) PurgeCache() {
	if e.cache != nil {
		e.cache.Purge()
	}
}

// Run executes prog against r. The robot is wrapped in a robot.Governor
// enforcing the step budget and the run context. A run that halts returns
// both a result with Halted set and the coded error.
func (e *Engine) Run(ctx context.Context, prog *ast.Program, r robot.Robot, opts RunOptions) (*RunResult, error) {
	if prog == nil {
		return nil, roboerr.New("program cannot be nil").
			WithCode(roboerr.CodeInvalidInput).
			WithOperation("run")
	}
	if r == nil {
		return nil, roboerr.New("robot cannot be nil").
			WithCode(roboerr.CodeInvalidInput).
			WithOperation("run")
	}

	if opts.RunID == "" {
		opts.RunID = uuid.NewString()
	}
	if opts.MaxSteps == 0 {
		opts.MaxSteps = e.options.MaxSteps
	}
	if opts.Timeout == 0 {
		opts.Timeout = e.options.Timeout
	}

	runCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	logger := e.logger.WithRunID(opts.RunID)
	if opts.Program != "" {
		logger = logger.WithProgram(opts.Program)
	}

	logger.Debug("Program run started", robolog.Fields{
		"maxSteps":   opts.MaxSteps,
		"timeout":    opts.Timeout.String(),
		"statements": len(prog.Statements),
	})
	if e.options.EnableAuditLog {
		logger.Audit("RoboScript program run", robolog.Fields{"status": "STARTED"})
	}

	timer := logger.StartTimer("program run").WithLevel(robolog.LevelInfo)
	gov := robot.NewGovernor(runCtx, r, opts.MaxSteps)
	execErr := prog.Execute(runCtx, gov)

	result := &RunResult{
		RunID:   opts.RunID,
		Program: opts.Program,
		Steps:   gov.Steps(),
	}

	if execErr != nil {
		result.Halted = true
		result.Err = wrapRunError(execErr, opts)
	}
	result.Duration = timer.WithField("steps", result.Steps).StopWithError(result.Err)

	if e.options.EnableAuditLog {
		status := "COMPLETED"
		if result.Halted {
			status = "HALTED"
		}
		logger.Audit("RoboScript program run", robolog.Fields{
			"status": status,
			"steps":  result.Steps,
		})
	}

	return result, result.Err
}

func wrapParseError(err error) error {
	code := roboerr.CodeSyntax
	if errors.Is(err, parser.ErrInputTooLarge) {
		code = roboerr.CodeInputTooLarge
	}

	wrapped := roboerr.Wrap(err, "failed to load program").
		WithCode(code).
		WithOperation("load")

	var pe *parser.ParseError
	if errors.As(err, &pe) {
		wrapped.WithDetail("line", pe.Line).WithDetail("column", pe.Column)
		if pe.Token != "" {
			wrapped.WithDetail("token", pe.Token)
		}
	}
	return wrapped
}

func wrapRunError(err error, opts RunOptions) error {
	var code roboerr.Code
	switch {
	case errors.Is(err, robot.ErrStepLimit):
		code = roboerr.CodeStepLimit
	case errors.Is(err, context.DeadlineExceeded):
		code = roboerr.CodeTimeout
	case errors.Is(err, context.Canceled):
		code = roboerr.CodeCancelled
	case roboerr.GetCode(err) != roboerr.CodeUnknown:
		code = roboerr.GetCode(err)
	default:
		code = roboerr.CodeExecution
	}

	wrapped := roboerr.Wrap(err, "program run halted").
		WithCode(code).
		WithOperation("run").
		WithRunID(opts.RunID)
	if code == roboerr.CodeStepLimit {
		wrapped.WithDetail("max_steps", opts.MaxSteps)
	}
	if code == roboerr.CodeTimeout {
		wrapped.WithDetail("timeout", opts.Timeout.String())
	}
	return wrapped
}
