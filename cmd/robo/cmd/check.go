package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/roboscript/foundation/robo/ast"
)

var checkQuiet bool

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate programs",
	Long: `Checks that each file is a valid RoboScript program.

Exits with a non-zero status if any file fails to parse.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "only report failures")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	eng, err := s.newEngine()
	if err != nil {
		return err
	}

	failed := 0
	for _, file := range args {
		data, err := os.ReadFile(file)
		if err != nil {
			printFileError(cmd.ErrOrStderr(), file, err)
			failed++
			continue
		}
		prog, err := eng.Load(string(data))
		if err != nil {
			printFileError(cmd.ErrOrStderr(), file, err)
			failed++
			continue
		}
		if !checkQuiet {
			stats := ast.Measure(prog)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				okStyle.Render("ok"), file,
				mutedStyle.Render(fmt.Sprintf("(%d statements, depth %d)", stats.Statements(), stats.MaxDepth)))
		}
	}

	if failed > 0 {
		return filesFailed(failed, len(args))
	}
	return nil
}
