package soxargs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidBuffer  = errors.New("buffer size must be a positive integer")
	ErrInvalidEndian  = errors.New("endian must be little, big or swap")
	ErrInvalidVerbose = errors.New("verbosity must be between 0 and 6")
)

// MaxVerbosity is the highest selectable verbosity index (-V5)
const MaxVerbosity = 6

// Endian is the byte order selection of the extended tab. The zero value
// leaves the byte order to SoX.
type Endian int

const (
	EndianDefault Endian = iota
	EndianLittle
	EndianBig
	EndianSwap
)

// EndianNames lists the selector entries in index order
var EndianNames = []string{"", "little", "big", "swap"}

// String returns the SoX spelling of the byte order
func (e Endian) String() string {
	if e < EndianDefault || int(e) >= len(EndianNames) {
		return ""
	}
	return EndianNames[e]
}

// ParseEndian converts "little", "big", "swap" or "" into an Endian
func ParseEndian(s string) (Endian, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range EndianNames {
		if s == name {
			return Endian(i), nil
		}
	}
	return EndianDefault, fmt.Errorf("%w: %q", ErrInvalidEndian, s)
}

// MarshalText implements encoding.TextMarshaler so job files store the name
func (e Endian) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (e *Endian) UnmarshalText(text []byte) error {
	v, err := ParseEndian(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// Option returns --endian NAME, or nothing for the default
func (e Endian) Option() Option {
	if e == EndianDefault || e.String() == "" {
		return nil
	}
	return Option{"--endian", e.String()}
}

// GlobalOptions are the switches placed before the input file
type GlobalOptions struct {
	// Verbosity is the selector index: 0 leaves SoX's default, 1..6 map to -V0..-V5.
	Verbosity       int    `yaml:"verbosity,omitempty"`
	UseBuffer       bool   `yaml:"use_buffer,omitempty"`
	BufferSize      string `yaml:"buffer_size,omitempty"`
	UseInputBuffer  bool   `yaml:"use_input_buffer,omitempty"`
	InputBufferSize string `yaml:"input_buffer_size,omitempty"`
	MultiThreaded   bool   `yaml:"multi_threaded,omitempty"`
	InputEndian     Endian `yaml:"input_endian,omitempty"`
}

// Option builds the global fragment
func (g GlobalOptions) Option() Option {
	opt := Option{}
	if g.Verbosity > 0 && g.Verbosity <= MaxVerbosity {
		opt = append(opt, "-V"+strconv.Itoa(g.Verbosity-1))
	}
	if g.UseBuffer {
		opt = append(opt, "--buffer", strings.TrimSpace(g.BufferSize))
	}
	if g.UseInputBuffer {
		opt = append(opt, "--input-buffer", strings.TrimSpace(g.InputBufferSize))
	}
	if g.MultiThreaded {
		opt = append(opt, "--multi-threaded")
	}
	opt = append(opt, g.InputEndian.Option()...)
	return opt
}

// Validate rejects enabled buffers without a usable size
func (g GlobalOptions) Validate() error {
	if g.Verbosity < 0 || g.Verbosity > MaxVerbosity {
		return fmt.Errorf("%w: %d", ErrInvalidVerbose, g.Verbosity)
	}
	if g.UseBuffer {
		if err := validateBuffer("--buffer", g.BufferSize); err != nil {
			return err
		}
	}
	if g.UseInputBuffer {
		if err := validateBuffer("--input-buffer", g.InputBufferSize); err != nil {
			return err
		}
	}
	return nil
}

func validateBuffer(flag, size string) error {
	n, err := strconv.Atoi(strings.TrimSpace(size))
	if err != nil || n <= 0 {
		return fmt.Errorf("%w: %s %q", ErrInvalidBuffer, flag, size)
	}
	return nil
}

// InputOptions are the format options placed right before the input file
type InputOptions struct {
	Volume       string `yaml:"volume,omitempty"`
	IgnoreLength bool   `yaml:"ignore_length,omitempty"`
}

// Option builds the input fragment
func (i InputOptions) Option() Option {
	opt := Option{}
	opt = append(opt, VolumeOption(i.Volume)...)
	if i.IgnoreLength {
		opt = append(opt, "--ignore-length")
	}
	return opt
}

// OutputOptions are the format options placed right before the output file
type OutputOptions struct {
	AddComment bool   `yaml:"add_comment,omitempty"`
	Comment    string `yaml:"comment,omitempty"`
	Endian     Endian `yaml:"endian,omitempty"`
}

// Option builds the output fragment
func (o OutputOptions) Option() Option {
	opt := Option{}
	if o.AddComment {
		opt = append(opt, "--add-comment", o.Comment)
	}
	opt = append(opt, o.Endian.Option()...)
	return opt
}
