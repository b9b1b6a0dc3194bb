package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/roboscript/pkg/core/version"
)

var (
	GitCommit = "development"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n", titleStyle.Render("RoboScript v"+version.Toolkit))
		for _, c := range version.Components() {
			fmt.Fprintf(out, "  %s %s\n", keyStyle.Render(c+":"), version.ComponentVersion(c))
		}
		fmt.Fprintf(out, "  %s %s\n", keyStyle.Render("commit:"), GitCommit)
		fmt.Fprintf(out, "  %s %s\n", keyStyle.Render("built:"), BuildDate)
		fmt.Fprintf(out, "  %s %s %s/%s\n", keyStyle.Render("go:"), runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
