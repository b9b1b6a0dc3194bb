// ============================================================================
// RoboScript - robot-control language toolkit
// ============================================================================
//
// Package:     sim
// Description: Scenario description of a grid arena, loaded from YAML
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package sim

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	roboerr "github.com/msto63/roboscript/foundation/core/error"
)

// Heading is the direction the robot faces
type Heading int

const (
	North Heading = iota
	East
	South
	West
)

func (h Heading) String() string {
	switch h {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// delta returns the grid step for one move in this heading
func (h Heading) delta() (dx, dy int) {
	switch h {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	default:
		return -1, 0
	}
}

func (h Heading) right() Heading { return (h + 1) % 4 }
func (h Heading) left() Heading  { return (h + 3) % 4 }

// UnmarshalYAML accepts the heading names and their first letter
func (h *Heading) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHeading(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// MarshalYAML writes the heading name
func (h Heading) MarshalYAML() (interface{}, error) {
	return h.String(), nil
}

// ParseHeading parses north/east/south/west, or n/e/s/w
func ParseHeading(s string) (Heading, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, nil
	case "east", "e":
		return East, nil
	case "south", "s":
		return South, nil
	case "west", "w":
		return West, nil
	}
	return North, roboerr.Newf("unknown heading %q", s).WithCode(roboerr.CodeInvalidScenario)
}

// Point is a grid cell. X grows east, Y grows north.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Scenario describes the arena a program runs in
type Scenario struct {
	Name     string       `yaml:"name"`
	Arena    ArenaSpec    `yaml:"arena"`
	Robot    RobotSpec    `yaml:"robot"`
	Costs    CostSpec     `yaml:"costs"`
	Barrels  []BarrelSpec `yaml:"barrels"`
	Opponent *Point       `yaml:"opponent,omitempty"`
}

// ArenaSpec is the size of the arena in cells
type ArenaSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RobotSpec is the robot's starting state
type RobotSpec struct {
	Start   Point   `yaml:"start"`
	Heading Heading `yaml:"heading"`
	Fuel    int     `yaml:"fuel"`
	Shield  bool    `yaml:"shield"`
}

// CostSpec is the fuel charged per action
type CostSpec struct {
	Move   int `yaml:"move"`
	Wait   int `yaml:"wait"`
	Shield int `yaml:"shield"` // extra per action while the shield is on
}

// BarrelSpec is a fuel barrel lying in the arena
type BarrelSpec struct {
	Point `yaml:",inline"`
	Fuel  int `yaml:"fuel"`
}

// DefaultScenario returns a 10x10 arena with the robot in the south-west
// corner facing north, two barrels and an opponent.
func DefaultScenario() *Scenario {
	return &Scenario{
		Name:  "default",
		Arena: ArenaSpec{Width: 10, Height: 10},
		Robot: RobotSpec{Start: Point{0, 0}, Heading: North, Fuel: 50},
		Costs: CostSpec{Move: 1, Wait: 0, Shield: 1},
		Barrels: []BarrelSpec{
			{Point: Point{0, 5}, Fuel: 20},
			{Point: Point{7, 3}, Fuel: 20},
		},
		Opponent: &Point{9, 9},
	}
}

// LoadScenario reads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		code := roboerr.CodeInvalidScenario
		if errors.Is(err, os.ErrNotExist) {
			code = roboerr.CodeNotFound
		}
		return nil, roboerr.Wrap(err, "failed to read scenario").
			WithCode(code).
			WithOperation("load_scenario").
			WithDetail("file", path)
	}

	sc, err := ParseScenario(data)
	if err != nil {
		var coded *roboerr.Error
		if errors.As(err, &coded) {
			coded.WithDetail("file", path)
		}
		return nil, err
	}
	return sc, nil
}

// ParseScenario decodes and validates a YAML scenario. Unknown keys are
// rejected.
func ParseScenario(data []byte) (*Scenario, error) {
	sc := &Scenario{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(sc); err != nil && !errors.Is(err, io.EOF) {
		return nil, roboerr.Wrap(err, "failed to parse scenario").
			WithCode(roboerr.CodeInvalidScenario).
			WithOperation("parse_scenario")
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// Validate checks that every position lies inside the arena and that no
// quantity is negative.
func (s *Scenario) Validate() error {
	invalid := func(msg string, args ...interface{}) error {
		return roboerr.Newf(msg, args...).
			WithCode(roboerr.CodeInvalidScenario).
			WithOperation("validate_scenario")
	}

	if s.Arena.Width <= 0 || s.Arena.Height <= 0 {
		return invalid("arena must be at least 1x1, got %dx%d", s.Arena.Width, s.Arena.Height)
	}
	if !s.inside(s.Robot.Start) {
		return invalid("robot start %v is outside the arena", s.Robot.Start)
	}
	if s.Robot.Fuel < 0 {
		return invalid("robot fuel must not be negative: %d", s.Robot.Fuel)
	}
	if s.Costs.Move < 0 || s.Costs.Wait < 0 || s.Costs.Shield < 0 {
		return invalid("action costs must not be negative")
	}
	for i, b := range s.Barrels {
		if !s.inside(b.Point) {
			return invalid("barrel %d at %v is outside the arena", i, b.Point)
		}
		if b.Fuel < 0 {
			return invalid("barrel %d fuel must not be negative: %d", i, b.Fuel)
		}
	}
	if s.Opponent != nil && !s.inside(*s.Opponent) {
		return invalid("opponent %v is outside the arena", *s.Opponent)
	}
	return nil
}

func (s *Scenario) inside(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.Arena.Width && p.Y < s.Arena.Height
}
