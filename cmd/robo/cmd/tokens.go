package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	roboerr "github.com/msto63/roboscript/foundation/core/error"
	"github.com/msto63/roboscript/foundation/robo/parser"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Dump the token stream of a program",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return roboerr.Wrap(err, "failed to read program").
			WithCode(roboerr.CodeNotFound).
			WithDetail("file", args[0])
	}

	out := cmd.OutOrStdout()
	for _, tok := range parser.Tokenize(string(data)) {
		fmt.Fprintf(out, "%s %s\n",
			keyStyle.Render(fmt.Sprintf("%d:%d", tok.Line, tok.Column)), tok)
	}
	return nil
}
