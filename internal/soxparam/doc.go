// Package soxparam holds the static tables behind the option selectors: the
// encodings, bit depths, sample rates and channel layouts offered per output
// file type, and the parameter schemas of the effects that can be added to a
// chain. Every table starts with SameAsInput where SoX can keep the input's value.
package soxparam
