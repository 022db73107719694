package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/sakurazen/soxgui/internal/model"
	"github.com/sakurazen/soxgui/internal/platform"
	"github.com/sakurazen/soxgui/internal/preset"
	"github.com/sakurazen/soxgui/internal/soxargs"
	"github.com/sakurazen/soxgui/internal/soxparam"
)

// doneChoice ends the effect loop
const doneChoice = ""

var ErrRequired = errors.New("value is required")

// Answers collects the wizard selections
type Answers struct {
	Input       string
	Output      string
	SampleIndex int
	BitDepth    string
	SampleRate  string
	Channels    string
	Effects     []model.EffectCommand
}

// Job converts the answers into a processing job
func (a Answers) Job() *preset.Job {
	format := soxargs.OutputFormat{
		SampleFormat: soxparam.SameAsInput,
		BitDepth:     a.BitDepth,
		SampleRate:   a.SampleRate,
		Channels:     a.Channels,
	}
	if table, ok := soxparam.LookupFormat(platform.LowerExtension(a.Output)); ok {
		format.SampleFormat = soxparam.ItemAt(table.SampleFormats(), a.SampleIndex)
	}
	return &preset.Job{
		Input:   strings.TrimSpace(a.Input),
		Output:  strings.TrimSpace(a.Output),
		Format:  format,
		Effects: append([]model.EffectCommand(nil), a.Effects...),
	}
}

// Run asks for files, output format and effects and returns the resulting job
func Run() (*preset.Job, error) {
	var a Answers

	if err := filesForm(&a).Run(); err != nil {
		return nil, err
	}

	table, ok := soxparam.LookupFormat(platform.LowerExtension(a.Output))
	if ok {
		if err := sampleFormatForm(table, &a).Run(); err != nil {
			return nil, err
		}
		if err := formatDetailsForm(table, &a).Run(); err != nil {
			return nil, err
		}
	}

	for {
		name := doneChoice
		if err := effectSelectForm(&name, len(a.Effects)).Run(); err != nil {
			return nil, err
		}
		if name == doneChoice {
			break
		}
		cmd, err := askEffect(name)
		if err != nil {
			return nil, err
		}
		a.Effects = append(a.Effects, cmd)
	}

	return a.Job(), nil
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrRequired
	}
	return nil
}

func filesForm(a *Answers) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Input file").
			Description("Audio file read by SoX.").
			Validate(required).
			Value(&a.Input),
		huh.NewInput().
			Title("Output file").
			Description("The extension selects the output format tables.").
			Validate(required).
			Value(&a.Output),
	))
}

func sampleFormatForm(table soxparam.FormatParams, a *Answers) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title("Sample format").
			Options(indexOptions(table.SampleFormats())...).
			Value(&a.SampleIndex),
	))
}

func formatDetailsForm(table soxparam.FormatParams, a *Answers) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Bit depth").
			Options(huh.NewOptions(table.BitDepths(a.SampleIndex)...)...).
			Value(&a.BitDepth),
		huh.NewSelect[string]().
			Title("Sample rate").
			Options(huh.NewOptions(table.SampleRates(a.SampleIndex)...)...).
			Value(&a.SampleRate),
		huh.NewSelect[string]().
			Title("Channels").
			Options(huh.NewOptions(table.Channels()...)...).
			Value(&a.Channels),
	))
}

func effectSelectForm(name *string, count int) *huh.Form {
	options := []huh.Option[string]{huh.NewOption("(done)", doneChoice)}
	options = append(options, huh.NewOptions(soxparam.EditableEffects()...)...)

	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(fmt.Sprintf("Add effect #%d", count+1)).
			Description("Effects run in the order they are added.").
			Options(options...).
			Value(name),
	))
}

// askEffect prompts for the parameters of one effect
func askEffect(name string) (model.EffectCommand, error) {
	params, ok := soxparam.LookupEffect(name)
	if !ok {
		return model.EffectCommand{}, fmt.Errorf("effect %s has no parameter table", name)
	}

	specs := params.Params()
	values := make([]string, len(specs))
	if len(specs) > 0 {
		fields := make([]huh.Field, 0, len(specs))
		for i, spec := range specs {
			fields = append(fields, paramField(spec, &values[i]))
		}
		if err := huh.NewForm(huh.NewGroup(fields...).Title(name)).Run(); err != nil {
			return model.EffectCommand{}, err
		}
	}
	return BuildEffect(name, values)
}

func paramField(spec soxparam.ParamSpec, value *string) huh.Field {
	title := spec.Name
	if spec.Unit != "" && !spec.IsSelectable() {
		title = fmt.Sprintf("%s (%s)", spec.Name, spec.Unit)
	}

	if spec.IsSelectable() {
		return huh.NewSelect[string]().
			Title(title).
			Options(huh.NewOptions(spec.Values...)...).
			Value(value)
	}

	input := huh.NewInput().Title(title).Value(value)
	if !spec.Optional {
		input = input.Validate(required)
	}
	return input
}

// BuildEffect validates parameter values and creates the chain entry
func BuildEffect(name string, values []string) (model.EffectCommand, error) {
	params, ok := soxparam.LookupEffect(name)
	if !ok {
		return model.EffectCommand{}, fmt.Errorf("effect %s has no parameter table", name)
	}
	args, err := params.OptionArgs(values)
	if err != nil {
		return model.EffectCommand{}, fmt.Errorf("%s: %w", name, err)
	}
	return model.NewEffectCommand(name, args...), nil
}

func indexOptions(items []string) []huh.Option[int] {
	options := make([]huh.Option[int], 0, len(items))
	for i, item := range items {
		options = append(options, huh.NewOption(item, i))
	}
	return options
}
