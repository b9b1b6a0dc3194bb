// File: doc.go
// Title: Robot Capability Package Documentation
// Description: Documents the sensor/actuator surface a RoboScript program
//              drives, plus the recording and step-limiting robots.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Initial robot capability package

/*
Package robot defines the capability interface a RoboScript program executes
against.

A Robot exposes seven actuators and seven integer sensors. Actuators return
an error so a host can stop a running program, for example when the robot
runs out of fuel or a step budget is exhausted; a nil error means the action
was carried out. Sensors never fail.

Two implementations live here:

  - Recorder records every actuator call and sensor read, serves scripted
    sensor values and can be told to fail after a number of actions. It is
    the robot used by tests and by dry runs.
  - Governor wraps another Robot and refuses further actions once a step
    budget is spent or its context is done.

Usage:

	rec := robot.NewRecorder().SetReading(robot.ReadFuelLeft, 10, 5, 0)
	gov := robot.NewGovernor(ctx, rec, 1000)
	err := prog.Execute(ctx, gov)
*/
package robot
