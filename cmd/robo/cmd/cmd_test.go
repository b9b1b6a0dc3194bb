package cmd

import (
	"bytes"
	"strings"
	"testing"

	roboerr "github.com/msto63/roboscript/foundation/core/error"
)

// execute runs the root command with fresh flag values and captures output
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("ROBO_CONFIG", "")
	t.Setenv("HOME", t.TempDir())

	cfgFile, verbose, logFormat = "", false, ""
	parseStats, checkQuiet = false, false
	runScenario, runMaxSteps, runTimeout, runDryRun, runState = "", 0, 0, false, false

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "RoboScript v") {
		t.Errorf("version output missing title: %q", out)
	}
	if !strings.Contains(out, "parser:") {
		t.Errorf("version output missing components: %q", out)
	}
}

func TestParseCommand(t *testing.T) {
	out, _, err := execute(t, "parse", "--stats", "testdata/spin.robo")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	want := "loop {\n  move;\n  turnL;\n}\n"
	if !strings.HasPrefix(out, want) {
		t.Errorf("rendering = %q, want prefix %q", out, want)
	}
	if !strings.Contains(out, "loops=1") {
		t.Errorf("stats missing: %q", out)
	}
}

func TestCheckCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		out, _, err := execute(t, "check", "testdata/square.robo", "testdata/spin.robo")
		if err != nil {
			t.Fatalf("check failed: %v", err)
		}
		if strings.Count(out, "ok ") != 2 {
			t.Errorf("expected two ok lines, got %q", out)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		_, errOut, err := execute(t, "check", "testdata/square.robo", "testdata/bad.robo")
		if err == nil {
			t.Fatal("expected an error for bad.robo")
		}
		if !strings.Contains(errOut, "testdata/bad.robo:1:6: action does not have a ';'") {
			t.Errorf("stderr = %q", errOut)
		}
		if !strings.Contains(err.Error(), "1 of 2 file(s) failed") {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := execute(t, "check", "testdata/nope.robo")
		if err == nil {
			t.Fatal("expected an error for a missing file")
		}
	})
}

func TestTokensCommand(t *testing.T) {
	out, _, err := execute(t, "tokens", "testdata/bad.robo")
	if err != nil {
		t.Fatalf("tokens failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], "WORD(move)") {
		t.Errorf("first token = %q", lines[0])
	}
}

func TestRunCommand(t *testing.T) {
	out, _, err := execute(t, "run", "--scenario", "testdata/tiny.yaml", "testdata/square.robo")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for _, want := range []string{"completed", "(1,1) facing east", "3 (shield off)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunCommand_StepLimit(t *testing.T) {
	out, _, err := execute(t, "run", "--scenario", "testdata/tiny.yaml", "--max-steps", "2", "testdata/square.robo")
	if !roboerr.HasCode(err, roboerr.CodeStepLimit) {
		t.Fatalf("expected STEP_LIMIT, got %v", err)
	}
	if !strings.Contains(out, "halted") {
		t.Errorf("output missing halted status:\n%s", out)
	}
}

func TestRunCommand_DryRun(t *testing.T) {
	out, _, err := execute(t, "run", "--dry-run", "--max-steps", "4", "testdata/spin.robo")
	if !roboerr.HasCode(err, roboerr.CodeStepLimit) {
		t.Fatalf("expected STEP_LIMIT, got %v", err)
	}
	if !strings.Contains(out, "Move TurnLeft Move TurnLeft") {
		t.Errorf("calls missing:\n%s", out)
	}
}

func TestRunCommand_State(t *testing.T) {
	out, _, err := execute(t, "run", "--scenario", "testdata/tiny.yaml", "--state", "testdata/square.robo")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out, "heading: east") || !strings.Contains(out, "fuel: 3") {
		t.Errorf("state YAML missing fields:\n%s", out)
	}
}

func TestRunCommand_ParseError(t *testing.T) {
	_, errOut, err := execute(t, "run", "testdata/bad.robo")
	if !roboerr.HasCode(err, roboerr.CodeSyntax) {
		t.Fatalf("expected SYNTAX, got %v", err)
	}
	if !strings.Contains(errOut, "near turnL ;") {
		t.Errorf("context missing: %q", errOut)
	}
}

func TestInvalidLogFormat(t *testing.T) {
	_, _, err := execute(t, "--log-format", "xml", "check", "testdata/square.robo")
	if err == nil {
		t.Fatal("expected an error for an unknown log format")
	}
}
