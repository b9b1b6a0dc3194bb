// File: doc.go
// Title: RoboScript Package Documentation
// Description: Documents the RoboScript engine that loads, caches, validates
//              and runs robot-control programs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial engine implementation
// - 2026-10-14 v0.2.0: RoboScript engine

/*
Package robo implements the RoboScript engine.

RoboScript is a small robot-control language. A program is a sequence of
actions (move, turnL, turnR, takeFuel, wait, shieldOn, shieldOff,
turnAround), loops, conditionals and while loops over integer sensor
readings:

	shieldOn;
	while (gt(fuelLeft,2)) {
	    if (lt(wallDist,1)) { turnR; } else { move; }
	}
	loop { wait; }

The engine ties the pieces together:

  - parser turns source into an immutable ast.Program
  - ast executes the program against a robot.Robot
  - robot provides the Recorder and Governor helpers

Loading:

	engine, err := robo.New(robo.Options{MaxSteps: 10000})
	prog, err := engine.LoadFile("wander.robo")

Parsed programs are cached by source text, so loading the same program
twice returns the same tree.

Running:

	result, err := engine.Run(ctx, prog, myRobot, robo.RunOptions{
	    Timeout: 5 * time.Second,
	})

Every run gets a UUID run ID that is attached to its log entries and to the
coded error returned when the run halts. A run halts when an actuator
fails, the step budget is spent or the context is done; errors carry the
codes STEP_LIMIT, TIMEOUT, CANCELLED, OUT_OF_FUEL or EXECUTION.

Loading failures carry SYNTAX (with the *parser.ParseError reachable through
errors.As), INPUT_TOO_LARGE or NOT_FOUND.
*/
package robo
