package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/lumina-app/lumina/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show version information",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n", styled(out, styleBrand, "Lumina"), styled(out, styleVersion, buildinfo.Version))
		fmt.Fprintf(out, "  %s %s (%s)\n", styled(out, styleLabel, "Commit: "), buildinfo.CommitHash, buildinfo.BuildDate)
		fmt.Fprintf(out, "  %s %s/%s\n", styled(out, styleLabel, "OS/Arch:"), runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(out, "  %s %s\n", styled(out, styleLabel, "Go:     "), runtime.Version())
	},
}
