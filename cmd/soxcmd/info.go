package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sakurazen/soxgui/internal/soxargs"
	"github.com/sakurazen/soxgui/internal/soxparam"
	"github.com/sakurazen/soxgui/internal/wizard"
)

func newInfoCmd(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "info FILE",
		Short:   "Show the header information of an audio file",
		Example: `  soxcmd info take1.wav`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := global.execute(cmd.Context(), cmd.OutOrStdout(), soxargs.InformationOption(args[0]))
			return err
		},
	}
}

func newHelpSoxCmd(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "help-sox [format|effect NAME]",
		Short: "Show sox's built-in help",
		Example: `  soxcmd help-sox
  soxcmd help-sox format flac
  soxcmd help-sox effect reverb`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			help, err := parseHelpArgs(args)
			if err != nil {
				return err
			}
			soxArgs, err := help.Args()
			if err != nil {
				return err
			}
			_, err = global.execute(cmd.Context(), cmd.OutOrStdout(), soxArgs)
			return err
		},
	}
}

func parseHelpArgs(args []string) (soxargs.HelpCommand, error) {
	if len(args) == 0 {
		return soxargs.HelpCommand{Kind: soxargs.HelpGlobal}, nil
	}

	topic := ""
	if len(args) > 1 {
		topic = args[1]
	}
	switch args[0] {
	case "format":
		if topic != "" && !soxparam.IsFormatName(topic) {
			return soxargs.HelpCommand{}, fmt.Errorf("unknown format: %s", topic)
		}
		return soxargs.HelpCommand{Kind: soxargs.HelpFormat, Topic: topic}, nil
	case "effect":
		if topic != "" && !soxparam.IsEffectName(topic) {
			return soxargs.HelpCommand{}, fmt.Errorf("unknown effect: %s", topic)
		}
		return soxargs.HelpCommand{Kind: soxargs.HelpEffect, Topic: topic}, nil
	}
	return soxargs.HelpCommand{}, fmt.Errorf("help kind must be format or effect, got %q", args[0])
}

func newFormatsCmd() *cobra.Command {
	var tablesOnly bool

	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List the file formats known to sox",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if tablesOnly {
				for _, ext := range soxparam.SupportedExtensions() {
					params, ok := soxparam.LookupFormat(ext)
					if !ok {
						continue
					}
					fmt.Fprintln(cmd.OutOrStdout(), renderFormatTable(ext, params))
				}
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), wizard.RenderList("Formats", soxparam.FormatNames, 8))
		},
	}

	cmd.Flags().BoolVar(&tablesOnly, "tables", false, "Print the output option tables of each supported extension")
	return cmd
}

// renderFormatTable prints the choices offered for one output extension. Bit
// depths depend on the sample format; identical rate tables are shown once.
func renderFormatTable(ext string, params soxparam.FormatParams) string {
	samples := params.SampleFormats()
	sections := []string{wizard.RenderList(ext+": sample formats (-e)", samples, 4)}

	seenRates := make(map[string]bool)
	for i, sample := range samples {
		if i == 0 {
			continue
		}
		sections = append(sections, wizard.RenderList(fmt.Sprintf("%s %s: bit depths (-b)", ext, sample), params.BitDepths(i), 6))

		rates := params.SampleRates(i)
		key := strings.Join(rates, ",")
		if seenRates[key] {
			continue
		}
		seenRates[key] = true
		sections = append(sections, wizard.RenderList(fmt.Sprintf("%s %s: sample rates (-r)", ext, sample), rates, 9))
	}

	sections = append(sections, wizard.RenderList(ext+": channels (-c)", params.Channels(), 4))
	return strings.Join(sections, "\n") + "\n"
}

func newEffectsCmd() *cobra.Command {
	var editableOnly bool

	cmd := &cobra.Command{
		Use:   "effects",
		Short: "List the effects known to sox",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if editableOnly {
				fmt.Fprintln(cmd.OutOrStdout(), wizard.RenderList("Effects with parameter tables", soxparam.EditableEffects(), 6))
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), wizard.RenderList("Effects", soxparam.EffectNames, 6))
		},
	}

	cmd.Flags().BoolVar(&editableOnly, "editable", false, "Only list effects with parameter tables")
	return cmd
}
