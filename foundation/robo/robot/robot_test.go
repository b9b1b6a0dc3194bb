// File: robot_test.go
// Title: Robot Implementation Tests
// Description: Tests for the recording robot and the step-limiting governor.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Initial tests

package robot

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	_ Robot = (*Recorder)(nil)
	_ Robot = (*Governor)(nil)
)

func TestRecorderCalls(t *testing.T) {
	rec := NewRecorder()
	_ = rec.Move()
	_ = rec.TurnLeft()
	_ = rec.SetShield(true)
	_ = rec.SetShield(false)
	_ = rec.TurnAround()

	want := []string{CallMove, CallTurnLeft, CallShieldOn, CallShieldOff, CallTurnAround}
	if diff := cmp.Diff(want, rec.Calls()); diff != "" {
		t.Errorf("Calls() mismatch (-want +got):\n%s", diff)
	}
	if rec.Steps() != 5 {
		t.Errorf("Steps() = %d, want 5", rec.Steps())
	}
}

func TestRecorderReadings(t *testing.T) {
	tests := []struct {
		name   string
		script []int
		reads  int
		want   []int
	}{
		{"unscripted reads zero", nil, 3, []int{0, 0, 0}},
		{"fixed value", []int{7}, 3, []int{7, 7, 7}},
		{"sequence then last repeats", []int{3, 2, 1}, 5, []int{3, 2, 1, 1, 1}},
		{"negative values", []int{-4, 4}, 2, []int{-4, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecorder()
			if tt.script != nil {
				rec.SetReading(ReadOpponentLR, tt.script...)
			}
			var got []int
			for i := 0; i < tt.reads; i++ {
				got = append(got, rec.OpponentLR())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("readings mismatch (-want +got):\n%s", diff)
			}
			if len(rec.Reads()) != tt.reads {
				t.Errorf("Reads() has %d entries, want %d", len(rec.Reads()), tt.reads)
			}
		})
	}
}

func TestRecorderFailAfter(t *testing.T) {
	boom := errors.New("boom")
	rec := NewRecorder().FailAfter(2, boom)

	if err := rec.Move(); err != nil {
		t.Fatalf("first Move() error = %v", err)
	}
	if err := rec.TakeFuel(); err != nil {
		t.Fatalf("second call error = %v", err)
	}
	if err := rec.IdleWait(); !errors.Is(err, boom) {
		t.Fatalf("third call error = %v, want boom", err)
	}
	if rec.Steps() != 2 {
		t.Errorf("failed call was recorded: %v", rec.Calls())
	}
}

func TestRecorderFailAfterDefaultError(t *testing.T) {
	rec := NewRecorder().FailAfter(0, nil)
	if err := rec.Move(); !errors.Is(err, ErrRecorderHalted) {
		t.Errorf("Move() error = %v, want ErrRecorderHalted", err)
	}
}

func TestRecorderReset(t *testing.T) {
	rec := NewRecorder().SetReading(ReadFuelLeft, 9, 8)
	_ = rec.Move()
	_ = rec.FuelLeft()
	rec.Reset()

	if len(rec.Calls()) != 0 || len(rec.Reads()) != 0 {
		t.Error("Reset() kept recorded calls")
	}
	if got := rec.FuelLeft(); got != 9 {
		t.Errorf("FuelLeft() after Reset = %d, want 9", got)
	}
}

func TestGovernorStepLimit(t *testing.T) {
	rec := NewRecorder()
	gov := NewGovernor(context.Background(), rec, 3)

	var err error
	n := 0
	for err == nil && n < 10 {
		err = gov.Move()
		n++
	}

	if !errors.Is(err, ErrStepLimit) {
		t.Fatalf("error = %v, want ErrStepLimit", err)
	}
	if rec.Steps() != 3 || gov.Steps() != 3 {
		t.Errorf("steps: recorder %d governor %d, want 3", rec.Steps(), gov.Steps())
	}
}

func TestGovernorUnlimited(t *testing.T) {
	gov := NewGovernor(context.Background(), NewRecorder(), 0)
	for i := 0; i < 100; i++ {
		if err := gov.TurnRight(); err != nil {
			t.Fatalf("TurnRight() #%d error = %v", i, err)
		}
	}
}

func TestGovernorContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	rec := NewRecorder()
	gov := NewGovernor(ctx, rec, 0)

	if err := gov.SetShield(true); err != nil {
		t.Fatal(err)
	}
	cancel()
	if err := gov.Move(); !errors.Is(err, context.Canceled) {
		t.Errorf("Move() after cancel = %v, want context.Canceled", err)
	}
	if rec.Steps() != 1 {
		t.Errorf("recorder saw %d actions, want 1", rec.Steps())
	}
}

func TestGovernorPassesSensors(t *testing.T) {
	rec := NewRecorder().SetReading(ReadDistanceToWall, 4)
	gov := NewGovernor(context.Background(), rec, 1)
	_ = gov.Move()

	if got := gov.DistanceToWall(); got != 4 {
		t.Errorf("DistanceToWall() = %d, want 4", got)
	}
	if gov.Unwrap() != Robot(rec) {
		t.Error("Unwrap() should return the governed robot")
	}
}
