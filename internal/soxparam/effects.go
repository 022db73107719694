package soxparam

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrMissingParams = errors.New("not enough effect parameters")
	ErrBlankParam    = errors.New("effect parameter is blank")
	ErrInvalidChoice = errors.New("effect parameter is not one of the allowed values")
)

// Width units accepted by the SoX filter effects
const (
	UnitHz      = "Hz"
	UnitKHz     = "kHz"
	UnitOctaves = "Octaves"
	UnitQ       = "Q値"
)

// ParamSpec describes one parameter of an effect as shown in the effects tab.
type ParamSpec struct {
	Name     string
	Unit     string
	Values   []string // allowed values; nil for free text
	Optional bool
}

// IsSelectable reports whether the parameter is picked from a list
func (p ParamSpec) IsSelectable() bool {
	return p.Values != nil
}

// EffectParams formats user input into the positional arguments of one SoX effect.
type EffectParams interface {
	Params() []ParamSpec
	OptionArgs(values []string) ([]string, error)
}

// NoneParamEffect is an effect that takes no parameters
type NoneParamEffect struct{}

func (NoneParamEffect) Params() []ParamSpec { return []ParamSpec{} }

func (NoneParamEffect) OptionArgs(values []string) ([]string, error) {
	return []string{}, nil
}

// OneParamEffect takes a single free-text value such as a gain or a factor.
type OneParamEffect struct {
	spec ParamSpec
}

// NewOneParamEffect creates a single parameter effect
func NewOneParamEffect(name, unit string) *OneParamEffect {
	return &OneParamEffect{spec: ParamSpec{Name: name, Unit: unit}}
}

func (e *OneParamEffect) Params() []ParamSpec {
	return []ParamSpec{e.spec}
}

func (e *OneParamEffect) OptionArgs(values []string) ([]string, error) {
	if err := validate(e.Params(), values); err != nil {
		return nil, err
	}
	return []string{strings.TrimSpace(values[0])}, nil
}

// FilterParamEffect covers the biquad filters that take a frequency and a width:
// allpass, bandpass, bandreject, highpass and lowpass.
type FilterParamEffect struct {
	specs []ParamSpec
}

// NewFilterParamEffect creates a filter whose width is required
func NewFilterParamEffect() *FilterParamEffect {
	return newFilter(false)
}

// NewOptionalWidthFilterEffect creates a filter whose width may be left blank
func NewOptionalWidthFilterEffect() *FilterParamEffect {
	return newFilter(true)
}

func newFilter(optionalWidth bool) *FilterParamEffect {
	return &FilterParamEffect{specs: []ParamSpec{
		{Name: "周波数（カットオフ）", Unit: UnitHz},
		{Name: "幅", Optional: optionalWidth},
		{Name: "幅の単位", Values: widthUnits(), Optional: optionalWidth},
	}}
}

func (e *FilterParamEffect) Params() []ParamSpec {
	return cloneSpecs(e.specs)
}

func (e *FilterParamEffect) OptionArgs(values []string) ([]string, error) {
	if err := validate(e.specs, values); err != nil {
		return nil, err
	}
	args := []string{strings.TrimSpace(values[0])}
	if width := strings.TrimSpace(values[1]); width != "" {
		args = append(args, width+UnitSuffix(values[2]))
	}
	return args, nil
}

// EqualizerParamEffect is the peaking equalizer: frequency, width and gain.
type EqualizerParamEffect struct {
	specs []ParamSpec
}

// NewEqualizerParamEffect creates the equalizer schema
func NewEqualizerParamEffect() *EqualizerParamEffect {
	return &EqualizerParamEffect{specs: []ParamSpec{
		{Name: "周波数（中心）", Unit: UnitHz},
		{Name: "幅"},
		{Name: "幅の単位", Values: widthUnits()},
		{Name: "ゲイン", Unit: "dB"},
	}}
}

func (e *EqualizerParamEffect) Params() []ParamSpec {
	return cloneSpecs(e.specs)
}

func (e *EqualizerParamEffect) OptionArgs(values []string) ([]string, error) {
	if err := validate(e.specs, values); err != nil {
		return nil, err
	}
	return []string{
		strings.TrimSpace(values[0]),
		strings.TrimSpace(values[1]) + UnitSuffix(values[2]),
		strings.TrimSpace(values[3]),
	}, nil
}

// UnitSuffix maps a width unit label to the suffix SoX expects after the width.
// Unknown labels map to "" which SoX reads as Hz.
func UnitSuffix(unit string) string {
	switch unit {
	case UnitHz:
		return "h"
	case UnitKHz:
		return "k"
	case UnitOctaves:
		return "o"
	case UnitQ:
		return "q"
	}
	return ""
}

func widthUnits() []string {
	return []string{UnitHz, UnitKHz, UnitOctaves, UnitQ}
}

// validate checks values against specs: enough entries, no blank required
// field and selectable fields holding one of their allowed values.
func validate(specs []ParamSpec, values []string) error {
	if len(values) < len(specs) {
		return fmt.Errorf("%w: want %d, got %d", ErrMissingParams, len(specs), len(values))
	}
	for i, spec := range specs {
		v := strings.TrimSpace(values[i])
		if v == "" {
			if spec.Optional {
				continue
			}
			return fmt.Errorf("%w: %s", ErrBlankParam, spec.Name)
		}
		if spec.IsSelectable() && !contains(spec.Values, v) {
			return fmt.Errorf("%w: %s=%q", ErrInvalidChoice, spec.Name, v)
		}
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func cloneSpecs(specs []ParamSpec) []ParamSpec {
	out := make([]ParamSpec, len(specs))
	copy(out, specs)
	return out
}

// effectTable holds the effects that can be added from the effects tab
var effectTable = map[string]EffectParams{
	"allpass":    NewFilterParamEffect(),
	"bandpass":   NewFilterParamEffect(),
	"bandreject": NewFilterParamEffect(),
	"highpass":   NewOptionalWidthFilterEffect(),
	"lowpass":    NewOptionalWidthFilterEffect(),
	"equalizer":  NewEqualizerParamEffect(),
	"deemph":     NoneParamEffect{},
	"earwax":     NoneParamEffect{},
	"oops":       NoneParamEffect{},
	"reverse":    NoneParamEffect{},
	"riaa":       NoneParamEffect{},
	"swap":       NoneParamEffect{},
	"gain":       NewOneParamEffect("ゲイン", "dB"),
	"norm":       NewOneParamEffect("ゲイン", "dB(～0dB)"),
	"pitch":      NewOneParamEffect("ピッチ", "cent"),
	"speed":      NewOneParamEffect("速度", "倍率(0～1.0～)"),
	"tempo":      NewOneParamEffect("テンポ", "倍率"),
	"vol":        NewOneParamEffect("音量", "倍率"),
}

// LookupEffect returns the parameter schema of an effect that can be added
func LookupEffect(name string) (EffectParams, bool) {
	e, ok := effectTable[name]
	return e, ok
}

// EditableEffects returns the names accepted by LookupEffect in sorted order
func EditableEffects() []string {
	names := make([]string, 0, len(effectTable))
	for name := range effectTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
