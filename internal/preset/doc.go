// Package preset stores complete processing jobs as YAML files so that a set
// of selections and an effect chain can be reused from the GUI or the CLI.
package preset
