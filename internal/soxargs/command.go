package soxargs

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sakurazen/soxgui/internal/model"
)

var (
	ErrMissingFile  = errors.New("input and output files are required")
	ErrMissingTopic = errors.New("help topic is required")
)

// DefaultBinaryName is shown in place of the binary when no path is configured
const DefaultBinaryName = "sox"

// OutputFormat holds the four selector values of the main tab
type OutputFormat struct {
	SampleFormat string `yaml:"sample_format,omitempty"`
	BitDepth     string `yaml:"bit_depth,omitempty"`
	SampleRate   string `yaml:"sample_rate,omitempty"`
	Channels     string `yaml:"channels,omitempty"`
}

// Option builds -e -b -r -c in that order, skipping "same as input" entries
func (f OutputFormat) Option() Option {
	opt := Option{}
	opt = append(opt, SampleOption(f.SampleFormat)...)
	opt = append(opt, BitDepthOption(f.BitDepth)...)
	opt = append(opt, FsOption(f.SampleRate)...)
	opt = append(opt, ChannelOption(f.Channels)...)
	return opt
}

// Command is a complete processing request:
//
//	sox [global] [input opts] infile [output format] [output opts] outfile [effect [args]]...
type Command struct {
	Global     GlobalOptions
	Input      InputOptions
	InputFile  string
	Format     OutputFormat
	Output     OutputOptions
	OutputFile string
	Effects    []model.EffectCommand
}

// Args assembles the argument list. Blank file paths return ErrMissingFile so
// that nothing is executed.
func (c Command) Args() (Option, error) {
	if strings.TrimSpace(c.InputFile) == "" || strings.TrimSpace(c.OutputFile) == "" {
		return nil, ErrMissingFile
	}
	if err := c.Global.Validate(); err != nil {
		return nil, err
	}

	opt := Option{}
	opt = append(opt, c.Global.Option()...)
	opt = append(opt, c.Input.Option()...)
	opt = append(opt, c.InputFile)
	opt = append(opt, c.Format.Option()...)
	opt = append(opt, c.Output.Option()...)
	opt = append(opt, c.OutputFile)
	opt = append(opt, model.NewEffectChain(c.Effects...).Args()...)
	return opt, nil
}

// HelpKind selects which help SoX prints
type HelpKind int

const (
	HelpGlobal HelpKind = iota
	HelpFormat
	HelpEffect
)

// HelpCommand is a request for SoX's built-in help
type HelpCommand struct {
	Kind  HelpKind
	Topic string
}

// Args assembles the help arguments. Format and effect help need a topic.
func (h HelpCommand) Args() (Option, error) {
	switch h.Kind {
	case HelpFormat, HelpEffect:
		topic := strings.TrimSpace(h.Topic)
		if topic == "" {
			return nil, ErrMissingTopic
		}
		if h.Kind == HelpFormat {
			return FormatHelpOption(topic), nil
		}
		return EffectHelpOption(topic), nil
	}
	return GlobalHelpOption(), nil
}

// CommandLine renders the command as shown by "show command"
func CommandLine(binary string, args Option) string {
	name := DefaultBinaryName
	if strings.TrimSpace(binary) != "" {
		name = filepath.Base(binary)
	}
	return strings.TrimRight(fmt.Sprintf("%s %s", name, args.String()), " ")
}
