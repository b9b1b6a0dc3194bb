package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/roboscript/foundation/robo/ast"
)

var parseStats bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>...",
	Short: "Print the canonical rendering of programs",
	Long: `Parses each file and prints the program in canonical form.

The rendering is itself valid RoboScript and parses to the same tree.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseStats, "stats", false, "print statement statistics after each program")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	eng, err := s.newEngine()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for i, file := range args {
		prog, err := eng.LoadFile(file)
		if err != nil {
			printFileError(cmd.ErrOrStderr(), file, err)
			failed++
			continue
		}

		if len(args) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, titleStyle.Render("# "+file))
		}
		if rendered := prog.String(); rendered != "" {
			fmt.Fprintln(out, rendered)
		}
		if parseStats {
			fmt.Fprintln(out, mutedStyle.Render("# "+ast.Measure(prog).String()))
		}
	}

	if failed > 0 {
		return filesFailed(failed, len(args))
	}
	return nil
}
