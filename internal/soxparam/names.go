package soxparam

// FormatNames lists the file types SoX knows about, used by --help-format.
var FormatNames = []string{
	"8svx", "aif", "aifc", "aiff", "aiffc", "al", "amb", "amr-nb", "amr-wb", "anb", "au", "avr", "awb",
	"cdda", "cdr", "cvs", "cvsd", "cvu", "dat", "dvms", "f32", "f4", "f64", "f8", "flac", "fssd", "gsm",
	"gsrt", "hcom", "htk", "ima", "ircam", "la", "lpc", "lpc10", "lu", "maud", "mp2", "mp3", "nist", "ogg",
	"prc", "raw", "s1", "s16", "s2", "s24", "s3", "s32", "s4", "s8", "sb", "sf", "sl", "sln", "smp", "snd",
	"sndr", "sndt", "sou", "sox", "sph", "sw", "txw", "u1", "u16", "u2", "u24", "u3", "u32", "u4", "u8",
	"ub", "ul", "uw", "vms", "voc", "vorbis", "vox", "wav", "wavpcm", "wv", "wve", "xa",
}

// EffectNames lists every SoX effect, used by --help-effect and the effect selector.
var EffectNames = []string{
	"allpass", "band", "bandpass", "bandreject", "bass", "bend", "biquad", "chorus", "channels", "compand",
	"contrast", "dcshift", "deemph", "delay", "dither", "divide", "downsample", "earwax", "echo", "echos",
	"equalizer", "fade", "fir", "firfit", "flanger", "gain", "highpass", "hilbert", "input", "ladspa",
	"loudness", "lowpass", "mcompand", "noiseprof", "noisered", "norm", "oops", "output", "overdrive", "pad",
	"phaser", "pitch", "rate", "remix", "repeat", "reverb", "reverse", "riaa", "silence", "sinc",
	"spectrogram", "speed", "splice", "stat", "stats", "stretch", "swap", "synth", "tempo", "treble",
	"tremolo", "trim", "upsample", "vad", "vol",
}

// IsFormatName reports whether name is a known SoX file type
func IsFormatName(name string) bool {
	return contains(FormatNames, name)
}

// IsEffectName reports whether name is a known SoX effect
func IsEffectName(name string) bool {
	return contains(EffectNames, name)
}
