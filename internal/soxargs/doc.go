package soxargs

// Package soxargs turns selector values into SoX command line fragments and
// assembles complete processing and help commands from them.
