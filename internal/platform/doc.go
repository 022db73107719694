package platform

// Package platform contains OS integration: locating the SoX binary, hiding
// the console window of child processes on Windows, file extension helpers and
// revealing or opening output files with the system file manager.
