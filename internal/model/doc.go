package model

// Package model defines the data structures shared by the UI, the CLI and the
// runner: SoX run records with their status, the effect chain and the memory of
// the last output selection used to avoid reloading option tables needlessly.
