// File: recorder.go
// Title: Recording Robot
// Description: A Robot that records every call, serves scripted sensor
//              readings and optionally fails after a number of actions.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Initial recorder

package robot

import (
	"errors"
	"sync"
)

// ErrRecorderHalted is returned by a Recorder once its action budget is used
// up and no other failure error was configured.
var ErrRecorderHalted = errors.New("robot: recorder halted")

// Recorder is a Robot that remembers what was asked of it.
//
// Sensor readings are scripted per sensor with SetReading. Each read of a
// sensor consumes the next value; the last value repeats once the sequence
// is exhausted. Unscripted sensors read 0.
type Recorder struct {
	mu sync.Mutex

	calls []string
	reads []string

	readings map[string][]int
	cursor   map[string]int

	failAfter int
	failErr   error
}

// NewRecorder returns a Recorder that never fails and reads 0 everywhere.
func NewRecorder() *Recorder {
	return &Recorder{
		readings: make(map[string][]int),
		cursor:   make(map[string]int),
	}
}

// SetReading scripts the values returned by a sensor, in order. The sensor
// name is one of the Read* constants.
func (r *Recorder) SetReading(sensor string, values ...int) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.readings[sensor] = append([]int(nil), values...)
	r.cursor[sensor] = 0
	return r
}

// FailAfter makes every actuator call after the first n return err. A nil
// err selects ErrRecorderHalted. Failed calls are not recorded.
func (r *Recorder) FailAfter(n int, err error) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err == nil {
		err = ErrRecorderHalted
	}
	r.failAfter = n
	r.failErr = err
	return r
}

// Calls returns the recorded actuator calls in order.
func (r *Recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// Reads returns the recorded sensor reads in order.
func (r *Recorder) Reads() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.reads...)
}

// Steps returns the number of successful actuator calls.
func (r *Recorder) Steps() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Reset forgets recorded calls and rewinds every reading sequence.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
	r.reads = nil
	for k := range r.cursor {
		r.cursor[k] = 0
	}
}

func (r *Recorder) act(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil && len(r.calls) >= r.failAfter {
		return r.failErr
	}
	r.calls = append(r.calls, name)
	return nil
}

func (r *Recorder) read(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads = append(r.reads, name)

	values := r.readings[name]
	if len(values) == 0 {
		return 0
	}
	i := r.cursor[name]
	if i >= len(values) {
		return values[len(values)-1]
	}
	r.cursor[name] = i + 1
	return values[i]
}

func (r *Recorder) Move() error       { return r.act(CallMove) }
func (r *Recorder) TurnLeft() error   { return r.act(CallTurnLeft) }
func (r *Recorder) TurnRight() error  { return r.act(CallTurnRight) }
func (r *Recorder) TurnAround() error { return r.act(CallTurnAround) }
func (r *Recorder) TakeFuel() error   { return r.act(CallTakeFuel) }
func (r *Recorder) IdleWait() error   { return r.act(CallIdleWait) }

func (r *Recorder) SetShield(on bool) error {
	if on {
		return r.act(CallShieldOn)
	}
	return r.act(CallShieldOff)
}

func (r *Recorder) FuelLeft() int        { return r.read(ReadFuelLeft) }
func (r *Recorder) OpponentLR() int      { return r.read(ReadOpponentLR) }
func (r *Recorder) OpponentFB() int      { return r.read(ReadOpponentFB) }
func (r *Recorder) NumBarrels() int      { return r.read(ReadNumBarrels) }
func (r *Recorder) ClosestBarrelLR() int { return r.read(ReadClosestBarrelLR) }
func (r *Recorder) ClosestBarrelFB() int { return r.read(ReadClosestBarrelFB) }
func (r *Recorder) DistanceToWall() int  { return r.read(ReadDistanceToWall) }
