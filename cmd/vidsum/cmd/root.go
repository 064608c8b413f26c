package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"vidsum/cmd/vidsum/cmd/process"
	"vidsum/cmd/vidsum/cmd/serve"
	"vidsum/cmd/vidsum/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vidsum",
	Short: "Transcribe and summarize video files with external speech and language services",
	Long: `Transcribe and summarize video files with external speech and language services.

- serve starts the web UI and HTTP API for per-session uploads
- process runs the pipeline for a single file or a directory from the CLI
- inputs that are not already MP4 are normalized with ffmpeg first`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(process.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
