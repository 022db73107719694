// Package wizard provides the interactive terminal wizard that builds a
// processing job step by step, and the lipgloss styles used by the command
// line tool to print commands, tables and run results.
package wizard
