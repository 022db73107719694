package soxparam

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWavBitDepths(t *testing.T) {
	wav := NewWavParams()

	tests := []struct {
		index    int
		expected []string
	}{
		{0, []string{SameAsInput}},
		{1, []string{SameAsInput, "16-bit", "24-bit", "32-bit"}},
		{2, []string{"8-bit"}},
		{3, []string{SameAsInput, "32-bit", "64-bit"}},
		{4, []string{"8-bit"}},
		{5, []string{"8-bit"}},
		{6, []string{"4-bit"}},
		{7, []string{"4-bit"}},
		{8, []string{"16-bit"}},
		{9, []string{SameAsInput}},
		{-1, []string{SameAsInput}},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, wav.BitDepths(test.index), "index %d", test.index)
	}
}

func TestWavTables(t *testing.T) {
	wav := NewWavParams()

	formats := wav.SampleFormats()
	require.Len(t, formats, 9)
	assert.Equal(t, SameAsInput, formats[0])
	assert.Equal(t, EncodingGSMFullRate, formats[8])

	rates := wav.SampleRates(1)
	assert.Equal(t, SameAsInput, rates[0])
	assert.Contains(t, rates, "44100")
	assert.Equal(t, "384000", rates[len(rates)-1])

	assert.Equal(t, []string{SameAsInput, "mono", "stereo", "5.1"}, wav.Channels())
}

func TestTablesAreCopies(t *testing.T) {
	wav := NewWavParams()
	formats := wav.SampleFormats()
	formats[0] = "mutated"

	assert.Equal(t, SameAsInput, wav.SampleFormats()[0])
}

func TestLookupFormat(t *testing.T) {
	for _, ext := range []string{"wav", "WAV", ".wav", "flac", "aiff", "aif"} {
		_, ok := LookupFormat(ext)
		assert.True(t, ok, "expected table for %q", ext)
	}

	_, ok := LookupFormat("mp3")
	assert.False(t, ok)

	for _, ext := range SupportedExtensions() {
		_, ok := LookupFormat(ext)
		assert.True(t, ok, "SupportedExtensions lists %q without a table", ext)
	}
}

func TestItemAt(t *testing.T) {
	items := []string{"a", "b"}
	assert.Equal(t, "b", ItemAt(items, 1))
	assert.Equal(t, "a", ItemAt(items, 5))
	assert.Equal(t, "a", ItemAt(items, -1))
	assert.Equal(t, "", ItemAt(nil, 0))
}

func TestNoneParamEffect(t *testing.T) {
	e := NoneParamEffect{}
	assert.Empty(t, e.Params())

	args, err := e.OptionArgs(nil)
	require.NoError(t, err)
	assert.Empty(t, args)
}

func TestOneParamEffect(t *testing.T) {
	e := NewOneParamEffect("ゲイン", "dB")
	require.Len(t, e.Params(), 1)
	assert.False(t, e.Params()[0].IsSelectable())

	args, err := e.OptionArgs([]string{" -3 "})
	require.NoError(t, err)
	assert.Equal(t, []string{"-3"}, args)

	_, err = e.OptionArgs(nil)
	assert.ErrorIs(t, err, ErrMissingParams)

	_, err = e.OptionArgs([]string{"  "})
	assert.ErrorIs(t, err, ErrBlankParam)
}

func TestFilterParamEffect(t *testing.T) {
	e := NewFilterParamEffect()
	specs := e.Params()
	require.Len(t, specs, 3)
	assert.True(t, specs[2].IsSelectable())

	tests := []struct {
		unit     string
		expected []string
	}{
		{UnitHz, []string{"1000", "100h"}},
		{UnitKHz, []string{"1000", "100k"}},
		{UnitOctaves, []string{"1000", "100o"}},
		{UnitQ, []string{"1000", "100q"}},
	}
	for _, test := range tests {
		args, err := e.OptionArgs([]string{"1000", "100", test.unit})
		require.NoError(t, err)
		assert.Equal(t, test.expected, args)
	}

	_, err := e.OptionArgs([]string{"1000", "", UnitHz})
	assert.ErrorIs(t, err, ErrBlankParam)

	_, err = e.OptionArgs([]string{"", "100", UnitHz})
	assert.ErrorIs(t, err, ErrBlankParam)

	_, err = e.OptionArgs([]string{"1000", "100", "parsec"})
	assert.ErrorIs(t, err, ErrInvalidChoice)

	_, err = e.OptionArgs([]string{"1000", "100"})
	assert.ErrorIs(t, err, ErrMissingParams)
}

func TestOptionalWidthFilterEffect(t *testing.T) {
	e := NewOptionalWidthFilterEffect()

	args, err := e.OptionArgs([]string{"200", "", ""})
	require.NoError(t, err)
	assert.Equal(t, []string{"200"}, args)

	args, err = e.OptionArgs([]string{"200", "0.7", UnitQ})
	require.NoError(t, err)
	assert.Equal(t, []string{"200", "0.7q"}, args)

	_, err = e.OptionArgs([]string{"", "", ""})
	assert.ErrorIs(t, err, ErrBlankParam)
}

func TestEqualizerParamEffect(t *testing.T) {
	e := NewEqualizerParamEffect()

	args, err := e.OptionArgs([]string{"3000", "1", UnitOctaves, "-6"})
	require.NoError(t, err)
	assert.Equal(t, []string{"3000", "1o", "-6"}, args)

	_, err = e.OptionArgs([]string{"3000", "1", UnitOctaves, ""})
	assert.ErrorIs(t, err, ErrBlankParam)
}

func TestUnitSuffix(t *testing.T) {
	assert.Equal(t, "", UnitSuffix("furlong"))
	assert.Equal(t, "q", UnitSuffix(UnitQ))
}

func TestEffectTable(t *testing.T) {
	for _, name := range []string{"allpass", "bandreject", "earwax", "norm", "reverse", "speed"} {
		_, ok := LookupEffect(name)
		assert.True(t, ok, "effect %q should be addable", name)
	}

	for name := range effectTable {
		assert.True(t, IsEffectName(name), "table effect %q missing from EffectNames", name)
	}

	_, ok := LookupEffect("chorus")
	assert.False(t, ok)
}

func TestEditableEffects(t *testing.T) {
	names := EditableEffects()
	assert.Len(t, names, len(effectTable))
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "equalizer")
}

func TestNames(t *testing.T) {
	assert.True(t, IsFormatName("wav"))
	assert.False(t, IsFormatName("docx"))
	assert.True(t, IsEffectName("reverb"))
	assert.False(t, IsEffectName("autotune"))
}
