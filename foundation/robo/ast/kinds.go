// File: kinds.go
// Title: Action, Sensor and Operator Enumerations
// Description: Closed enumerations for the language keywords. Each kind maps
//              to its keyword and dispatches to the robot by exhaustive switch.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Initial enumerations

package ast

import (
	"fmt"

	"github.com/msto63/roboscript/foundation/robo/robot"
)

// ActionKind identifies one of the robot actions.
type ActionKind int

const (
	ActionMove ActionKind = iota
	ActionTurnLeft
	ActionTurnRight
	ActionTakeFuel
	ActionWait
	ActionShieldOn
	ActionShieldOff
	ActionTurnAround
)

// Actions lists every action kind in keyword order.
var Actions = []ActionKind{
	ActionMove, ActionTurnLeft, ActionTurnRight, ActionTakeFuel,
	ActionWait, ActionShieldOn, ActionShieldOff, ActionTurnAround,
}

// String returns the source keyword of the action
func (k ActionKind) String() string {
	switch k {
	case ActionMove:
		return "move"
	case ActionTurnLeft:
		return "turnL"
	case ActionTurnRight:
		return "turnR"
	case ActionTakeFuel:
		return "takeFuel"
	case ActionWait:
		return "wait"
	case ActionShieldOn:
		return "shieldOn"
	case ActionShieldOff:
		return "shieldOff"
	case ActionTurnAround:
		return "turnAround"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Perform issues the actuator call for the action.
func (k ActionKind) Perform(r robot.Robot) error {
	switch k {
	case ActionMove:
		return r.Move()
	case ActionTurnLeft:
		return r.TurnLeft()
	case ActionTurnRight:
		return r.TurnRight()
	case ActionTakeFuel:
		return r.TakeFuel()
	case ActionWait:
		return r.IdleWait()
	case ActionShieldOn:
		return r.SetShield(true)
	case ActionShieldOff:
		return r.SetShield(false)
	case ActionTurnAround:
		return r.TurnAround()
	default:
		return fmt.Errorf("ast: unknown action kind %d", int(k))
	}
}

// LookupAction maps a keyword to its action kind.
func LookupAction(word string) (ActionKind, bool) {
	for _, k := range Actions {
		if k.String() == word {
			return k, true
		}
	}
	return 0, false
}

// Sensor identifies one of the robot sensors.
type Sensor int

const (
	SensorFuelLeft Sensor = iota
	SensorOpponentLR
	SensorOpponentFB
	SensorNumBarrels
	SensorBarrelLR
	SensorBarrelFB
	SensorWallDist
)

// Sensors lists every sensor in keyword order.
var Sensors = []Sensor{
	SensorFuelLeft, SensorOpponentLR, SensorOpponentFB, SensorNumBarrels,
	SensorBarrelLR, SensorBarrelFB, SensorWallDist,
}

// String returns the source keyword of the sensor
func (s Sensor) String() string {
	switch s {
	case SensorFuelLeft:
		return "fuelLeft"
	case SensorOpponentLR:
		return "oppLR"
	case SensorOpponentFB:
		return "oppFB"
	case SensorNumBarrels:
		return "numBarrels"
	case SensorBarrelLR:
		return "barrelLR"
	case SensorBarrelFB:
		return "barrelFB"
	case SensorWallDist:
		return "wallDist"
	default:
		return fmt.Sprintf("Sensor(%d)", int(s))
	}
}

// Read returns the current reading of the sensor.
func (s Sensor) Read(r robot.Robot) int {
	switch s {
	case SensorFuelLeft:
		return r.FuelLeft()
	case SensorOpponentLR:
		return r.OpponentLR()
	case SensorOpponentFB:
		return r.OpponentFB()
	case SensorNumBarrels:
		return r.NumBarrels()
	case SensorBarrelLR:
		return r.ClosestBarrelLR()
	case SensorBarrelFB:
		return r.ClosestBarrelFB()
	case SensorWallDist:
		return r.DistanceToWall()
	default:
		panic(fmt.Sprintf("ast: unknown sensor %d", int(s)))
	}
}

// LookupSensor maps a keyword to its sensor.
func LookupSensor(word string) (Sensor, bool) {
	for _, s := range Sensors {
		if s.String() == word {
			return s, true
		}
	}
	return 0, false
}

// Op is a comparison operator.
type Op int

const (
	OpGt Op = iota
	OpLt
	OpEq
)

// String returns the source keyword of the operator
func (o Op) String() string {
	switch o {
	case OpGt:
		return "gt"
	case OpLt:
		return "lt"
	case OpEq:
		return "eq"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Compare applies the operator to a reading and a threshold.
func (o Op) Compare(reading, threshold int) bool {
	switch o {
	case OpGt:
		return reading > threshold
	case OpLt:
		return reading < threshold
	case OpEq:
		return reading == threshold
	default:
		panic(fmt.Sprintf("ast: unknown operator %d", int(o)))
	}
}

// LookupOp maps a keyword to its operator.
func LookupOp(word string) (Op, bool) {
	switch word {
	case "gt":
		return OpGt, true
	case "lt":
		return OpLt, true
	case "eq":
		return OpEq, true
	}
	return 0, false
}
