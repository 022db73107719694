package soxargs

import (
	"strings"

	"github.com/sakurazen/soxgui/internal/soxparam"
)

// Option is a fragment of a SoX command line. The args are passed to the
// process unchanged; String renders them for display.
type Option []string

// String renders the fragment the way it is shown in the console: every arg
// followed by a space, args that contain blanks wrapped in double quotes.
func (o Option) String() string {
	if len(o) == 0 {
		return ""
	}
	var b strings.Builder
	for _, arg := range o {
		b.WriteString(quote(arg))
		b.WriteByte(' ')
	}
	return b.String()
}

func quote(arg string) string {
	if arg == "" || strings.ContainsAny(arg, " \t\r\n\"") {
		return `"` + arg + `"`
	}
	return arg
}

func isSameAsInput(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || v == soxparam.SameAsInput
}

// InformationOption asks SoX to describe a file instead of processing it
func InformationOption(file string) Option {
	return Option{"--i", file}
}

// GlobalHelpOption shows SoX's general usage
func GlobalHelpOption() Option {
	return Option{"-h"}
}

// FormatHelpOption shows the help of one file format
func FormatHelpOption(format string) Option {
	return Option{"--help-format", format}
}

// EffectHelpOption shows the help of one effect
func EffectHelpOption(effect string) Option {
	return Option{"--help-effect", effect}
}

// SampleOption selects the output encoding
func SampleOption(sampleType string) Option {
	if isSameAsInput(sampleType) {
		return nil
	}
	return Option{"-e", strings.TrimSpace(sampleType)}
}

// BitDepthOption converts a table entry such as "16-bit" into -b 16
func BitDepthOption(bitDepth string) Option {
	if isSameAsInput(bitDepth) {
		return nil
	}
	return Option{"-b", strings.TrimSuffix(strings.TrimSpace(bitDepth), "-bit")}
}

// FsOption selects the output sample rate
func FsOption(fs string) Option {
	if isSameAsInput(fs) {
		return nil
	}
	return Option{"-r", strings.TrimSpace(fs)}
}

// ChannelOption converts a channel layout into a channel count
func ChannelOption(channel string) Option {
	switch channel = strings.TrimSpace(channel); channel {
	case "", soxparam.SameAsInput:
		return nil
	case soxparam.ChannelMono:
		return Option{"-c", "1"}
	case soxparam.ChannelStereo:
		return Option{"-c", "2"}
	case soxparam.ChannelSurround:
		return Option{"-c", "6"}
	}
	return Option{"-c", channel}
}

// VolumeOption scales the input by a linear factor. Blank leaves the volume unchanged.
func VolumeOption(vol string) Option {
	if vol = strings.TrimSpace(vol); vol == "" {
		return nil
	}
	return Option{"-v", vol}
}
