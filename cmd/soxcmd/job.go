package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/sakurazen/soxgui/internal/model"
	"github.com/sakurazen/soxgui/internal/preset"
	"github.com/sakurazen/soxgui/internal/soxargs"
	"github.com/sakurazen/soxgui/internal/soxparam"
	"github.com/sakurazen/soxgui/internal/wizard"
)

type jobFlags struct {
	jobFile  string
	saveFile string
	copy     bool

	input    string
	output   string
	sample   string
	bits     string
	rate     string
	channels string

	verbosity     int
	buffer        int
	inputBuffer   int
	multiThreaded bool
	inputEndian   string
	volume        string
	ignoreLength  bool
	comment       string
	outputEndian  string
	effects       []string
}

func addJobFlags(cmd *cobra.Command, flags *jobFlags) {
	cmd.Flags().StringVar(&flags.jobFile, "job", "", "Load selections from a YAML job file")
	cmd.Flags().StringVar(&flags.saveFile, "save", "", "Save the resulting job to a YAML file")
	cmd.Flags().BoolVar(&flags.copy, "copy", false, "Copy the command line to the clipboard")

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "Input file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file")
	cmd.Flags().StringVarP(&flags.sample, "encoding", "e", "", "Output sample encoding (e.g. signed-integer)")
	cmd.Flags().StringVarP(&flags.bits, "bits", "b", "", "Output bit depth (e.g. 16-bit)")
	cmd.Flags().StringVarP(&flags.rate, "rate", "r", "", "Output sample rate (e.g. 48000)")
	cmd.Flags().StringVarP(&flags.channels, "channels", "c", "", "Output channels: mono, stereo, 5.1 or a number")

	cmd.Flags().IntVarP(&flags.verbosity, "verbosity", "V", 0, "Verbosity level 0-5 (sox default when unset)")
	cmd.Flags().IntVar(&flags.buffer, "buffer", 0, "Buffer size in bytes")
	cmd.Flags().IntVar(&flags.inputBuffer, "input-buffer", 0, "Input buffer size in bytes")
	cmd.Flags().BoolVar(&flags.multiThreaded, "multi-threaded", false, "Enable multi-threaded processing")
	cmd.Flags().StringVar(&flags.inputEndian, "input-endian", "", "Input byte order: little, big or swap")
	cmd.Flags().StringVarP(&flags.volume, "volume", "v", "", "Input volume factor")
	cmd.Flags().BoolVar(&flags.ignoreLength, "ignore-length", false, "Ignore the length stored in the input header")
	cmd.Flags().StringVar(&flags.comment, "comment", "", "Comment added to the output file")
	cmd.Flags().StringVar(&flags.outputEndian, "endian", "", "Output byte order: little, big or swap")
	cmd.Flags().StringArrayVarP(&flags.effects, "effect", "x", nil, `Effect with arguments, repeatable; replaces the effects of --job (e.g. -x "highpass 80")`)
}

// buildJob starts from --job when given and applies every flag that was set
func buildJob(cmd *cobra.Command, flags *jobFlags) (*preset.Job, error) {
	job := &preset.Job{}
	if flags.jobFile != "" {
		loaded, err := preset.Load(flags.jobFile)
		if err != nil {
			return nil, err
		}
		job = loaded
	}

	changed := cmd.Flags().Changed
	if changed("input") {
		job.Input = flags.input
	}
	if changed("output") {
		job.Output = flags.output
	}
	if changed("encoding") {
		job.Format.SampleFormat = flags.sample
	}
	if changed("bits") {
		job.Format.BitDepth = normalizeBits(flags.bits)
	}
	if changed("rate") {
		job.Format.SampleRate = flags.rate
	}
	if changed("channels") {
		job.Format.Channels = flags.channels
	}

	if changed("verbosity") {
		// Selector index 0 is "default"; -V0 is index 1
		job.Global.Verbosity = flags.verbosity + 1
	}
	if changed("buffer") {
		job.Global.UseBuffer = true
		job.Global.BufferSize = fmt.Sprint(flags.buffer)
	}
	if changed("input-buffer") {
		job.Global.UseInputBuffer = true
		job.Global.InputBufferSize = fmt.Sprint(flags.inputBuffer)
	}
	if changed("multi-threaded") {
		job.Global.MultiThreaded = flags.multiThreaded
	}
	if changed("input-endian") {
		e, err := soxargs.ParseEndian(flags.inputEndian)
		if err != nil {
			return nil, err
		}
		job.Global.InputEndian = e
	}
	if changed("volume") {
		job.InputOpts.Volume = flags.volume
	}
	if changed("ignore-length") {
		job.InputOpts.IgnoreLength = flags.ignoreLength
	}
	if changed("comment") {
		job.OutputOpts.AddComment = true
		job.OutputOpts.Comment = flags.comment
	}
	if changed("endian") {
		e, err := soxargs.ParseEndian(flags.outputEndian)
		if err != nil {
			return nil, err
		}
		job.OutputOpts.Endian = e
	}

	if changed("effect") {
		effects := make([]model.EffectCommand, 0, len(flags.effects))
		for _, spec := range flags.effects {
			effect, err := parseEffect(spec)
			if err != nil {
				return nil, err
			}
			effects = append(effects, effect)
		}
		job.Effects = effects
	}

	if err := job.Validate(); err != nil {
		return nil, err
	}
	return job, nil
}

// normalizeBits accepts "16" as well as the selector spelling "16-bit"
func normalizeBits(bits string) string {
	bits = strings.TrimSpace(bits)
	if bits == "" || bits == soxparam.SameAsInput || strings.HasSuffix(bits, "-bit") {
		return bits
	}
	return bits + "-bit"
}

func parseEffect(spec string) (model.EffectCommand, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return model.EffectCommand{}, preset.ErrEmptyEffect
	}
	if !soxparam.IsEffectName(fields[0]) {
		return model.EffectCommand{}, fmt.Errorf("%w: %s", preset.ErrUnknownEffect, fields[0])
	}
	return model.NewEffectCommand(fields[0], fields[1:]...), nil
}

// finishJob saves, renders and optionally copies the command line
func finishJob(cmd *cobra.Command, flags *jobFlags, global *globalFlags, job *preset.Job) (soxargs.Option, error) {
	args, err := job.Command().Args()
	if err != nil {
		return nil, err
	}

	if flags.saveFile != "" {
		if err := preset.Save(flags.saveFile, job); err != nil {
			return nil, err
		}
	}

	line := soxargs.CommandLine(global.resolveSoxPath(), args)
	fmt.Fprintln(cmd.OutOrStdout(), wizard.RenderCommand(line))

	if flags.copy {
		if err := clipboard.WriteAll(line); err != nil {
			return nil, fmt.Errorf("failed to copy to clipboard: %w", err)
		}
	}
	return args, nil
}

func newShowCmd(global *globalFlags) *cobra.Command {
	flags := &jobFlags{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the sox command line without running it",
		Example: `  soxcmd show -i in.wav -o out.flac -b 24 -r 48000 -x "norm -1"
  soxcmd show --job master.yaml --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := buildJob(cmd, flags)
			if err != nil {
				return err
			}
			_, err = finishJob(cmd, flags, global, job)
			return err
		},
	}

	addJobFlags(cmd, flags)
	return cmd
}

func newRunCmd(global *globalFlags) *cobra.Command {
	flags := &jobFlags{}

	cmd := &cobra.Command{
		Use:     "run",
		Short:   "Build the sox command line and run it",
		Example: `  soxcmd run -i in.wav -o out.wav -c mono -x reverse`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := buildJob(cmd, flags)
			if err != nil {
				return err
			}
			soxArgs, err := finishJob(cmd, flags, global, job)
			if err != nil {
				return err
			}
			_, err = global.execute(cmd.Context(), cmd.OutOrStdout(), soxArgs)
			return err
		},
	}

	addJobFlags(cmd, flags)
	return cmd
}
