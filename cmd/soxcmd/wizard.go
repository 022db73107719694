package main

import (
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/sakurazen/soxgui/internal/wizard"
)

func newWizardCmd(global *globalFlags) *cobra.Command {
	flags := &jobFlags{}
	var execute bool

	cmd := &cobra.Command{
		Use:     "wizard",
		Short:   "Build a job interactively",
		Example: `  soxcmd wizard --save master.yaml --run`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := wizard.Run()
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			if err != nil {
				return err
			}
			soxArgs, err := finishJob(cmd, flags, global, job)
			if err != nil || !execute {
				return err
			}
			_, err = global.execute(cmd.Context(), cmd.OutOrStdout(), soxArgs)
			return err
		},
	}

	cmd.Flags().StringVar(&flags.saveFile, "save", "", "Save the resulting job to a YAML file")
	cmd.Flags().BoolVar(&flags.copy, "copy", false, "Copy the command line to the clipboard")
	cmd.Flags().BoolVar(&execute, "run", false, "Run the command after building it")
	return cmd
}
