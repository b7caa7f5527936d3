package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cndemo/loopview"
)

// Version is set at build time via ldflags.
var Version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "loopview",
	Short: "Render and preview the loop indicator widget",
	Long: `loopview draws a circular loop indicator: an optional filled inner
circle and an arc stroked with a sweep gradient.

Render it to PNG, dump its drawing commands, or preview it live in a
gogpu or ebiten window.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if !verbose {
			return
		}
		loopview.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("loopview version {{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
