package sim

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/roboscript/foundation/robo/parser"
)

func corridor(t *testing.T) *World {
	t.Helper()
	sc, err := LoadScenario("testdata/corridor.yaml")
	require.NoError(t, err)
	w, err := NewWorld(sc, nil)
	require.NoError(t, err)
	return w
}

func TestWorldMoveAndWalls(t *testing.T) {
	w := corridor(t)

	assert.Equal(t, 4, w.DistanceToWall())
	for i := 0; i < 5; i++ {
		require.NoError(t, w.Move())
	}

	st := w.State()
	assert.Equal(t, Point{X: 4, Y: 1}, st.Position)
	assert.Equal(t, 4, st.Moves)
	assert.Equal(t, 1, st.Bumps)
	assert.Equal(t, 1, st.Fuel)
	assert.Equal(t, 0, w.DistanceToWall())
}

func TestWorldTurns(t *testing.T) {
	w := corridor(t)

	require.NoError(t, w.TurnLeft())
	assert.Equal(t, North, w.State().Heading)
	assert.Equal(t, 1, w.DistanceToWall())

	require.NoError(t, w.TurnAround())
	assert.Equal(t, South, w.State().Heading)
	assert.Equal(t, 1, w.DistanceToWall())

	require.NoError(t, w.TurnRight())
	assert.Equal(t, West, w.State().Heading)
	assert.Equal(t, 0, w.DistanceToWall())

	assert.Equal(t, 6, w.FuelLeft(), "turns are free without shield")
}

func TestWorldRelativeSensors(t *testing.T) {
	w := corridor(t)

	// facing east from (0,1): opponent at (4,0) is 4 ahead, 1 to the right
	assert.Equal(t, 4, w.OpponentFB())
	assert.Equal(t, 1, w.OpponentLR())
	// closest barrel at (2,1): straight ahead
	assert.Equal(t, 2, w.ClosestBarrelFB())
	assert.Equal(t, 0, w.ClosestBarrelLR())

	require.NoError(t, w.TurnLeft())
	// facing north: opponent is behind and to the right
	assert.Equal(t, -1, w.OpponentFB())
	assert.Equal(t, 4, w.OpponentLR())
	assert.Equal(t, 2, w.ClosestBarrelLR())
}

func TestWorldTakeFuel(t *testing.T) {
	w := corridor(t)
	assert.Equal(t, 2, w.NumBarrels())

	require.NoError(t, w.TakeFuel())
	assert.Equal(t, 6, w.FuelLeft(), "no barrel on the start cell")

	require.NoError(t, w.Move())
	require.NoError(t, w.Move())
	require.NoError(t, w.TakeFuel())

	assert.Equal(t, 8, w.FuelLeft())
	assert.Equal(t, 1, w.NumBarrels())
	assert.Equal(t, 1, w.State().Gathered)

	// the remaining barrel at (4,2) is 2 ahead, 1 to the left
	assert.Equal(t, 2, w.ClosestBarrelFB())
	assert.Equal(t, -1, w.ClosestBarrelLR())
}

func TestWorldShieldCostsFuel(t *testing.T) {
	w := corridor(t)

	require.NoError(t, w.SetShield(true))
	assert.Equal(t, 6, w.FuelLeft(), "raising the shield is free")
	require.NoError(t, w.Move())
	assert.Equal(t, 4, w.FuelLeft())
	require.NoError(t, w.TurnRight())
	assert.Equal(t, 3, w.FuelLeft())
	require.NoError(t, w.SetShield(false))
	require.NoError(t, w.IdleWait())
	assert.Equal(t, 1, w.FuelLeft())
}

func TestWorldOutOfFuel(t *testing.T) {
	sc := DefaultScenario()
	sc.Robot.Fuel = 2
	w, err := NewWorld(sc, nil)
	require.NoError(t, err)

	require.NoError(t, w.Move())
	require.NoError(t, w.Move())
	err = w.Move()
	assert.True(t, errors.Is(err, ErrOutOfFuel))
	assert.Equal(t, Point{X: 0, Y: 2}, w.State().Position)
	assert.Equal(t, 0, w.FuelLeft())
}

func TestWorldNoOpponent(t *testing.T) {
	sc := DefaultScenario()
	sc.Opponent = nil
	sc.Barrels = nil
	w, err := NewWorld(sc, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, w.OpponentLR())
	assert.Equal(t, 0, w.OpponentFB())
	assert.Equal(t, 0, w.ClosestBarrelFB())
	assert.Equal(t, 0, w.NumBarrels())
}

func TestNewWorldRejectsInvalidScenario(t *testing.T) {
	sc := DefaultScenario()
	sc.Arena.Height = 0
	_, err := NewWorld(sc, nil)
	assert.Error(t, err)
}

func TestProgramDrivesWorld(t *testing.T) {
	prog, err := parser.Parse(`
		while (gt(barrelFB,0)) { move; }
		takeFuel;
		loop { move; }
	`)
	require.NoError(t, err)

	w := corridor(t)
	err = prog.Execute(context.Background(), w)
	require.ErrorIs(t, err, ErrOutOfFuel)

	st := w.State()
	assert.Equal(t, 1, st.Gathered)
	assert.Equal(t, Point{X: 4, Y: 1}, st.Position)
	assert.Equal(t, 0, st.Fuel)
}
