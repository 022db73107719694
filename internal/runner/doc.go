package runner

// Package runner executes the SoX binary synchronously with a wall-clock
// limit, captures stdout and stderr line by line and selects the text to show
// from the exit code.
