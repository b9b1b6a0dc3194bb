package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/msto63/roboscript/foundation/robo"
	"github.com/msto63/roboscript/foundation/robo/robot"
	"github.com/msto63/roboscript/internal/sim"
)

var (
	runScenario string
	runMaxSteps int
	runTimeout  time.Duration
	runDryRun   bool
	runState    bool
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a program in a scripted arena",
	Long: `Runs a program against a grid world loaded from a YAML scenario, or
against the built-in default arena when no scenario is given.

With --dry-run the program runs against a recording robot whose sensors
all read 0, and the actuator calls are printed instead.

The run stops when the program finishes, the robot runs out of fuel, the
step budget is used up or the timeout expires.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runScenario, "scenario", "s", "", "scenario YAML file (default: built-in arena)")
	runCmd.Flags().IntVar(&runMaxSteps, "max-steps", 0, "maximum number of actions (default from config)")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 0, "run timeout (default from config)")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "record actuator calls instead of simulating")
	runCmd.Flags().BoolVar(&runState, "state", false, "print the final world state as YAML")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	eng, err := s.newEngine()
	if err != nil {
		return err
	}

	file := args[0]
	prog, err := eng.LoadFile(file)
	if err != nil {
		printFileError(cmd.ErrOrStderr(), file, err)
		return filesFailed(1, 1)
	}

	var (
		target   robot.Robot
		recorder *robot.Recorder
		world    *sim.World
	)
	if runDryRun {
		recorder = robot.NewRecorder()
		target = recorder
	} else {
		world, err = newWorld(s)
		if err != nil {
			return err
		}
		target = world
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, runErr := eng.Run(ctx, prog, target, robo.RunOptions{
		Program:  file,
		MaxSteps: runMaxSteps,
		Timeout:  runTimeout,
	})
	if result == nil {
		return runErr
	}

	out := cmd.OutOrStdout()
	printResult(out, result)
	if recorder != nil {
		printCalls(out, recorder.Calls())
	}
	if world != nil {
		if err := printWorld(out, world.State()); err != nil {
			return err
		}
	}
	return runErr
}

func newWorld(s *settings) (*sim.World, error) {
	path := runScenario
	if path == "" {
		path = s.cfg.Runner.Scenario
	}

	sc := sim.DefaultScenario()
	if path != "" {
		loaded, err := sim.LoadScenario(path)
		if err != nil {
			return nil, err
		}
		sc = loaded
	}
	return sim.NewWorld(sc, s.logger)
}

func printResult(w io.Writer, r *robo.RunResult) {
	status := okStyle.Render("completed")
	if r.Halted {
		status = warnStyle.Render("halted")
	}

	fmt.Fprintln(w, titleStyle.Render("run "+r.RunID))
	fmt.Fprintf(w, "  %s %s\n", keyStyle.Render("program:"), r.Program)
	fmt.Fprintf(w, "  %s %s\n", keyStyle.Render("status:"), status)
	fmt.Fprintf(w, "  %s %d\n", keyStyle.Render("steps:"), r.Steps)
	fmt.Fprintf(w, "  %s %s\n", keyStyle.Render("duration:"), r.Duration.Round(time.Microsecond))
}

func printCalls(w io.Writer, calls []string) {
	fmt.Fprintf(w, "  %s %s\n", keyStyle.Render("calls:"), strings.Join(calls, " "))
}

func printWorld(w io.Writer, st sim.State) error {
	if runState {
		data, err := yaml.Marshal(st)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	fmt.Fprintf(w, "  %s (%d,%d) facing %s\n", keyStyle.Render("robot:"), st.Position.X, st.Position.Y, st.Heading)
	fmt.Fprintf(w, "  %s %d (shield %s)\n", keyStyle.Render("fuel:"), st.Fuel, onOff(st.Shield))
	fmt.Fprintf(w, "  %s %d left, %d gathered\n", keyStyle.Render("barrels:"), st.Barrels, st.Gathered)
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
