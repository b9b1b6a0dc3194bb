package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	roboerr "github.com/msto63/roboscript/foundation/core/error"
	robolog "github.com/msto63/roboscript/foundation/core/log"
	"github.com/msto63/roboscript/foundation/robo"
	"github.com/msto63/roboscript/foundation/robo/parser"
	"github.com/msto63/roboscript/pkg/core/config"
	"github.com/msto63/roboscript/pkg/core/logging"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "robo",
	Short: "RoboScript - robot-control language toolkit",
	Long: `robo parses, checks and runs RoboScript programs.

A program is a sequence of actions (move; turnL; takeFuel; ...) and control
structures (loop, if, while) over the robot's sensors.

Commands:
  parse   - print the canonical rendering of programs
  check   - validate programs
  tokens  - dump the token stream of a program
  run     - run a program in a scripted arena
  version - show version information`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and prints a styled error on failure
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./robo.toml, ~/.config/roboscript/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: console, text, json or logfmt")
}

// settings bundles what every subcommand needs
type settings struct {
	cfg    *config.Config
	logger *robolog.Logger
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logCfg := logging.DefaultLoggerConfig(cfg.General.Name)
	logCfg.Level = cfg.General.LogLevel
	logCfg.Format = cfg.General.LogFormat
	logCfg.Output = cmd.ErrOrStderr()
	if logFormat != "" {
		if _, err := robolog.ParseFormat(logFormat); err != nil {
			return nil, roboerr.Wrap(err, "invalid --log-format").WithCode(roboerr.CodeInvalidInput)
		}
		logCfg.Format = logFormat
	}
	if verbose {
		logCfg.Level = "debug"
		logCfg.EnableCaller = true
	}

	return &settings{cfg: cfg, logger: logging.NewLogger(logCfg)}, nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}

	cfg, err := config.LoadFromEnv()
	if err == nil {
		return cfg, nil
	}
	if !roboerr.HasCode(err, roboerr.CodeNotFound) || os.Getenv(config.EnvPrefix+"CONFIG") != "" {
		return nil, err
	}

	cfg = config.Default()
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func (s *settings) newEngine() (*robo.Engine, error) {
	return robo.New(robo.Options{
		Logger:         s.logger,
		MaxInputLength: s.cfg.Parser.MaxInputLength,
		CacheSize:      s.cfg.Cache.Size,
		MaxSteps:       s.cfg.Runner.MaxSteps,
		Timeout:        s.cfg.Runner.Timeout.Duration,
		EnableAuditLog: s.cfg.Runner.Audit,
	})
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorStyle.Render("error:"), err)
}

// printFileError reports parse errors as file:line:column with the upcoming
// tokens, anything else as a styled one-liner.
func printFileError(w io.Writer, file string, err error) {
	var pe *parser.ParseError
	if !errors.As(err, &pe) {
		fmt.Fprintf(w, "%s %s: %v\n", errorStyle.Render("error:"), file, err)
		return
	}

	fmt.Fprintf(w, "%s %s:%d:%d: %s\n",
		errorStyle.Render("error:"), file, pe.Line, pe.Column, pe.Message)
	if len(pe.Context) > 0 {
		fmt.Fprintf(w, "       %s %s\n",
			mutedStyle.Render("near"), contextStyle.Render(strings.Join(pe.Context, " ")))
	} else {
		fmt.Fprintf(w, "       %s\n", mutedStyle.Render("at end of input"))
	}
}

// filesFailed is returned when some of several input files failed
func filesFailed(failed, total int) error {
	return roboerr.Newf("%d of %d file(s) failed", failed, total).
		WithCode(roboerr.CodeSyntax)
}
