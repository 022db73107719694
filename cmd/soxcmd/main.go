package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sakurazen/soxgui/internal/wizard"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, wizard.RenderError(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	global := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "soxcmd",
		Short: "Build and run SoX command lines",
		Long: `soxcmd builds SoX command lines from output format selections,
extended options and an effect chain, shows them, and runs them.
Jobs can be saved as YAML and shared with the desktop application.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&global.soxPath, "sox", "", "Path to the sox binary (default $"+envSoxPath+" or PATH)")
	rootCmd.PersistentFlags().DurationVar(&global.timeout, "timeout", defaultTimeout, "Time limit for one sox run")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newShowCmd(global))
	rootCmd.AddCommand(newRunCmd(global))
	rootCmd.AddCommand(newInfoCmd(global))
	rootCmd.AddCommand(newHelpSoxCmd(global))
	rootCmd.AddCommand(newFormatsCmd())
	rootCmd.AddCommand(newEffectsCmd())
	rootCmd.AddCommand(newWizardCmd(global))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "soxcmd %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
