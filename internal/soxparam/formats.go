package soxparam

import "strings"

// SameAsInput is the first entry of every format table. Selecting it emits no flag
// so SoX keeps the corresponding property of the input file.
const SameAsInput = "入力と同じ"

// Sample encodings understood by SoX's -e flag
const (
	EncodingSignedInteger   = "signed-integer"
	EncodingUnsignedInteger = "unsigned-integer"
	EncodingFloatingPoint   = "floating-point"
	EncodingULaw            = "u-law"
	EncodingALaw            = "a-law"
	EncodingIMAADPCM        = "ima-adpcm"
	EncodingMSADPCM         = "ms-adpcm"
	EncodingGSMFullRate     = "gsm-full-rate"
)

// Channel layouts shown in the channel table
const (
	ChannelMono     = "mono"
	ChannelStereo   = "stereo"
	ChannelSurround = "5.1"
)

// FormatParams exposes the output choices SoX accepts for one file format.
// Indexes refer to the position of the selected entry in SampleFormats.
type FormatParams interface {
	SampleFormats() []string
	BitDepths(index int) []string
	SampleRates(index int) []string
	Channels() []string
}

var defaultSampleRates = []string{
	SameAsInput, "4000", "8000", "11025", "12000", "16000", "22050", "24000", "32000",
	"44100", "48000", "64000", "88200", "96000", "176400", "192000", "352800", "384000",
}

var defaultChannels = []string{SameAsInput, ChannelMono, ChannelStereo, ChannelSurround}

// baseFormat carries the rate and channel tables shared by every format.
type baseFormat struct {
	sampleFormats []string
}

func (b baseFormat) SampleFormats() []string {
	return clone(b.sampleFormats)
}

func (b baseFormat) SampleRates(index int) []string {
	return clone(defaultSampleRates)
}

func (b baseFormat) Channels() []string {
	return clone(defaultChannels)
}

// WavParams describes the encodings a RIFF WAVE file can carry.
type WavParams struct {
	baseFormat
}

// NewWavParams creates the WAV option table
func NewWavParams() *WavParams {
	return &WavParams{baseFormat{sampleFormats: []string{
		SameAsInput,
		EncodingSignedInteger,
		EncodingUnsignedInteger,
		EncodingFloatingPoint,
		EncodingULaw,
		EncodingALaw,
		EncodingIMAADPCM,
		EncodingMSADPCM,
		EncodingGSMFullRate,
	}}}
}

// BitDepths returns the sizes valid for the encoding at index.
func (w *WavParams) BitDepths(index int) []string {
	switch index {
	case 1:
		return []string{SameAsInput, "16-bit", "24-bit", "32-bit"}
	case 2:
		return []string{"8-bit"}
	case 3:
		return []string{SameAsInput, "32-bit", "64-bit"}
	case 4, 5:
		return []string{"8-bit"}
	case 6, 7:
		return []string{"4-bit"}
	case 8:
		return []string{"16-bit"}
	}
	return []string{SameAsInput}
}

// FlacParams describes FLAC output, which is always signed integer PCM.
type FlacParams struct {
	baseFormat
}

// NewFlacParams creates the FLAC option table
func NewFlacParams() *FlacParams {
	return &FlacParams{baseFormat{sampleFormats: []string{SameAsInput, EncodingSignedInteger}}}
}

// BitDepths returns the sizes FLAC can encode
func (f *FlacParams) BitDepths(index int) []string {
	if index == 1 {
		return []string{SameAsInput, "16-bit", "24-bit"}
	}
	return []string{SameAsInput}
}

// AiffParams describes AIFF output (big endian signed PCM).
type AiffParams struct {
	baseFormat
}

// NewAiffParams creates the AIFF option table
func NewAiffParams() *AiffParams {
	return &AiffParams{baseFormat{sampleFormats: []string{SameAsInput, EncodingSignedInteger}}}
}

// BitDepths returns the sizes AIFF can encode
func (a *AiffParams) BitDepths(index int) []string {
	if index == 1 {
		return []string{SameAsInput, "8-bit", "16-bit", "24-bit", "32-bit"}
	}
	return []string{SameAsInput}
}

// formatTable maps lower-case file extensions to their option tables
var formatTable = map[string]FormatParams{
	"wav":  NewWavParams(),
	"flac": NewFlacParams(),
	"aif":  NewAiffParams(),
	"aiff": NewAiffParams(),
}

// LookupFormat returns the option table for a file extension (without the dot).
func LookupFormat(ext string) (FormatParams, bool) {
	p, ok := formatTable[strings.ToLower(strings.TrimPrefix(ext, "."))]
	return p, ok
}

// SupportedExtensions returns the extensions that have an option table
func SupportedExtensions() []string {
	return []string{"aif", "aiff", "flac", "wav"}
}

// ItemAt returns items[index], or the first entry when index is out of range.
// Empty tables yield "".
func ItemAt(items []string, index int) string {
	if len(items) == 0 {
		return ""
	}
	if index < 0 || index >= len(items) {
		return items[0]
	}
	return items[index]
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
