// File: governor.go
// Title: Step-Limiting Robot Decorator
// Description: Wraps a Robot and refuses actions once a step budget is spent
//              or the governing context is done.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Initial governor

package robot

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrStepLimit is returned by a Governor once its step budget is spent.
var ErrStepLimit = errors.New("robot: step limit reached")

// Governor bounds the number of actions a program may perform. Sensors are
// passed through untouched.
type Governor struct {
	robot    Robot
	ctx      context.Context
	maxSteps int64
	steps    atomic.Int64
}

// NewGovernor wraps r. A maxSteps of zero or less means no step limit; ctx
// may be nil, in which case only the step limit applies.
func NewGovernor(ctx context.Context, r Robot, maxSteps int) *Governor {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Governor{robot: r, ctx: ctx, maxSteps: int64(maxSteps)}
}

// Steps returns the number of actions let through so far.
func (g *Governor) Steps() int {
	return int(g.steps.Load())
}

// Unwrap returns the governed robot.
func (g *Governor) Unwrap() Robot {
	return g.robot
}

func (g *Governor) admit() error {
	if err := g.ctx.Err(); err != nil {
		return err
	}
	if g.maxSteps > 0 && g.steps.Load() >= g.maxSteps {
		return ErrStepLimit
	}
	g.steps.Add(1)
	return nil
}

func (g *Governor) Move() error {
	if err := g.admit(); err != nil {
		return err
	}
	return g.robot.Move()
}

func (g *Governor) TurnLeft() error {
	if err := g.admit(); err != nil {
		return err
	}
	return g.robot.TurnLeft()
}

func (g *Governor) TurnRight() error {
	if err := g.admit(); err != nil {
		return err
	}
	return g.robot.TurnRight()
}

func (g *Governor) TurnAround() error {
	if err := g.admit(); err != nil {
		return err
	}
	return g.robot.TurnAround()
}

func (g *Governor) TakeFuel() error {
	if err := g.admit(); err != nil {
		return err
	}
	return g.robot.TakeFuel()
}

func (g *Governor) IdleWait() error {
	if err := g.admit(); err != nil {
		return err
	}
	return g.robot.IdleWait()
}

func (g *Governor) SetShield(on bool) error {
	if err := g.admit(); err != nil {
		return err
	}
	return g.robot.SetShield(on)
}

func (g *Governor) FuelLeft() int        { return g.robot.FuelLeft() }
func (g *Governor) OpponentLR() int      { return g.robot.OpponentLR() }
func (g *Governor) OpponentFB() int      { return g.robot.OpponentFB() }
func (g *Governor) NumBarrels() int      { return g.robot.NumBarrels() }
func (g *Governor) ClosestBarrelLR() int { return g.robot.ClosestBarrelLR() }
func (g *Governor) ClosestBarrelFB() int { return g.robot.ClosestBarrelFB() }
func (g *Governor) DistanceToWall() int  { return g.robot.DistanceToWall() }
