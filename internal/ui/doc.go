package ui

// Package ui contains the Fyne-based desktop user interface. It turns the
// selections of the main, help, extended and effects tabs into SoX argument
// lists, runs them through the runner service and shows the output in the
// console area. All UI strings are localized via Localization.
