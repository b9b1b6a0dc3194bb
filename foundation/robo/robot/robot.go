// File: robot.go
// Title: Robot Capability Interface
// Description: Declares the actuator and sensor methods a program may invoke
//              and the method names used when recording calls.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Initial robot capability interface

package robot

// Actuators are the actions a robot performs. A non-nil error halts the
// running program and is returned from it unchanged.
type Actuators interface {
	Move() error
	TurnLeft() error
	TurnRight() error
	TurnAround() error
	TakeFuel() error
	IdleWait() error
	SetShield(on bool) error
}

// Sensors are the integer readings a condition may compare against.
type Sensors interface {
	FuelLeft() int
	OpponentLR() int
	OpponentFB() int
	NumBarrels() int
	ClosestBarrelLR() int
	ClosestBarrelFB() int
	DistanceToWall() int
}

// Robot is the full capability surface a program executes against.
type Robot interface {
	Actuators
	Sensors
}

// Method names of the actuators, as recorded by Recorder.
const (
	CallMove       = "Move"
	CallTurnLeft   = "TurnLeft"
	CallTurnRight  = "TurnRight"
	CallTurnAround = "TurnAround"
	CallTakeFuel   = "TakeFuel"
	CallIdleWait   = "IdleWait"
	CallShieldOn   = "SetShield(true)"
	CallShieldOff  = "SetShield(false)"
)

// Method names of the sensors, used to script Recorder readings.
const (
	ReadFuelLeft        = "FuelLeft"
	ReadOpponentLR      = "OpponentLR"
	ReadOpponentFB      = "OpponentFB"
	ReadNumBarrels      = "NumBarrels"
	ReadClosestBarrelLR = "ClosestBarrelLR"
	ReadClosestBarrelFB = "ClosestBarrelFB"
	ReadDistanceToWall  = "DistanceToWall"
)
