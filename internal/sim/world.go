package sim

import (
	"sort"
	"sync"

	roboerr "github.com/msto63/roboscript/foundation/core/error"
	robolog "github.com/msto63/roboscript/foundation/core/log"
	"github.com/msto63/roboscript/foundation/robo/robot"
)

// ErrOutOfFuel is returned by an actuator the robot can no longer afford
var ErrOutOfFuel = roboerr.New("robot is out of fuel").WithCode(roboerr.CodeOutOfFuel)

// World is a grid arena implementing robot.Robot. Sensors report positions
// relative to the robot: LR readings are positive to the robot's right,
// FB readings positive ahead of it.
type World struct {
	mu sync.Mutex

	scenario *Scenario
	logger   *robolog.Logger

	pos     Point
	heading Heading
	fuel    int
	shield  bool
	barrels []BarrelSpec

	actions  int
	moves    int
	bumps    int
	gathered int
}

// State is a snapshot of the world
type State struct {
	Position Point   `json:"position" yaml:"position"`
	Heading  Heading `json:"-" yaml:"heading"`
	Fuel     int     `json:"fuel" yaml:"fuel"`
	Shield   bool    `json:"shield" yaml:"shield"`
	Barrels  int     `json:"barrels" yaml:"barrels"`
	Actions  int     `json:"actions" yaml:"actions"`
	Moves    int     `json:"moves" yaml:"moves"`
	Bumps    int     `json:"bumps" yaml:"bumps"`
	Gathered int     `json:"gathered" yaml:"gathered"`
}

// NewWorld builds a world from a validated scenario. A nil logger disables
// logging.
func NewWorld(sc *Scenario, logger *robolog.Logger) (*World, error) {
	if sc == nil {
		sc = DefaultScenario()
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = robolog.NewNop()
	}

	return &World{
		scenario: sc,
		logger:   logger.WithField("component", "sim").WithField("scenario", sc.Name),
		pos:      sc.Robot.Start,
		heading:  sc.Robot.Heading,
		fuel:     sc.Robot.Fuel,
		shield:   sc.Robot.Shield,
		barrels:  append([]BarrelSpec(nil), sc.Barrels...),
	}, nil
}

// State returns a snapshot of the world
func (w *World) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return State{
		Position: w.pos,
		Heading:  w.heading,
		Fuel:     w.fuel,
		Shield:   w.shield,
		Barrels:  len(w.barrels),
		Actions:  w.actions,
		Moves:    w.moves,
		Bumps:    w.bumps,
		Gathered: w.gathered,
	}
}

// spend charges the fuel for one action, including the shield surcharge
func (w *World) spend(base int, action string) error {
	cost := base
	if w.shield {
		cost += w.scenario.Costs.Shield
	}
	if cost > w.fuel {
		w.logger.Debug("Action refused, out of fuel", robolog.Fields{
			"action": action,
			"cost":   cost,
			"fuel":   w.fuel,
		})
		return ErrOutOfFuel
	}
	w.fuel -= cost
	w.actions++
	return nil
}

func (w *World) Move() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.spend(w.scenario.Costs.Move, "move"); err != nil {
		return err
	}

	dx, dy := w.heading.delta()
	next := Point{w.pos.X + dx, w.pos.Y + dy}
	if !w.scenario.inside(next) {
		w.bumps++
		w.logger.Trace("Robot bumped into wall", robolog.Fields{"x": w.pos.X, "y": w.pos.Y})
		return nil
	}
	w.pos = next
	w.moves++
	return nil
}

func (w *World) turn(action string, to func(Heading) Heading) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.spend(0, action); err != nil {
		return err
	}
	w.heading = to(w.heading)
	return nil
}

func (w *World) TurnLeft() error {
	return w.turn("turnL", Heading.left)
}

func (w *World) TurnRight() error {
	return w.turn("turnR", Heading.right)
}

func (w *World) TurnAround() error {
	return w.turn("turnAround", func(h Heading) Heading { return h.right().right() })
}

// TakeFuel collects the barrel on the robot's cell, if any
func (w *World) TakeFuel() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.spend(0, "takeFuel"); err != nil {
		return err
	}

	for i, b := range w.barrels {
		if b.Point == w.pos {
			w.fuel += b.Fuel
			w.gathered++
			w.barrels = append(w.barrels[:i], w.barrels[i+1:]...)
			w.logger.Debug("Barrel collected", robolog.Fields{"fuel": b.Fuel, "remaining": len(w.barrels)})
			return nil
		}
	}
	return nil
}

func (w *World) IdleWait() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.spend(w.scenario.Costs.Wait, "wait")
}

func (w *World) SetShield(on bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	action := "shieldOff"
	if on {
		action = "shieldOn"
	}
	if err := w.spend(0, action); err != nil {
		return err
	}
	w.shield = on
	return nil
}

func (w *World) FuelLeft() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.fuel
}

func (w *World) OpponentLR() int {
	lr, _ := w.opponent()
	return lr
}

func (w *World) OpponentFB() int {
	_, fb := w.opponent()
	return fb
}

func (w *World) NumBarrels() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.barrels)
}

func (w *World) ClosestBarrelLR() int {
	lr, _ := w.closestBarrel()
	return lr
}

func (w *World) ClosestBarrelFB() int {
	_, fb := w.closestBarrel()
	return fb
}

// DistanceToWall is the number of cells the robot can move before the wall
func (w *World) DistanceToWall() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.heading {
	case North:
		return w.scenario.Arena.Height - 1 - w.pos.Y
	case East:
		return w.scenario.Arena.Width - 1 - w.pos.X
	case South:
		return w.pos.Y
	default:
		return w.pos.X
	}
}

func (w *World) opponent() (lr, fb int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.scenario.Opponent == nil {
		return 0, 0
	}
	return w.relative(*w.scenario.Opponent)
}

// closestBarrel returns the relative position of the nearest barrel by grid
// distance, ties broken by barrel order. With no barrels left it is 0, 0.
func (w *World) closestBarrel() (lr, fb int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.barrels) == 0 {
		return 0, 0
	}

	idx := make([]int, len(w.barrels))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return w.distance(w.barrels[idx[a]].Point) < w.distance(w.barrels[idx[b]].Point)
	})
	return w.relative(w.barrels[idx[0]].Point)
}

func (w *World) distance(p Point) int {
	return abs(p.X-w.pos.X) + abs(p.Y-w.pos.Y)
}

// relative converts an arena point into the robot's frame
func (w *World) relative(p Point) (lr, fb int) {
	dx, dy := p.X-w.pos.X, p.Y-w.pos.Y
	switch w.heading {
	case North:
		return dx, dy
	case East:
		return -dy, dx
	case South:
		return -dx, -dy
	default:
		return dy, -dx
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

var _ robot.Robot = (*World)(nil)
