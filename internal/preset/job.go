package preset

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sakurazen/soxgui/internal/model"
	"github.com/sakurazen/soxgui/internal/platform"
	"github.com/sakurazen/soxgui/internal/soxargs"
	"github.com/sakurazen/soxgui/internal/soxparam"
)

// FileExtension is the extension used by the save dialogs
const FileExtension = ".yaml"

// File permissions
const (
	DefaultFilePermissions = 0644
)

var (
	ErrUnknownEffect = errors.New("unknown effect")
	ErrEmptyEffect   = errors.New("effect name is empty")
)

// Job is everything needed to build one SoX command
type Job struct {
	Input      string                `yaml:"input,omitempty"`
	Output     string                `yaml:"output,omitempty"`
	Format     soxargs.OutputFormat  `yaml:",inline"`
	Global     soxargs.GlobalOptions `yaml:"global,omitempty"`
	InputOpts  soxargs.InputOptions  `yaml:"input_options,omitempty"`
	OutputOpts soxargs.OutputOptions `yaml:"output_options,omitempty"`
	Effects    []model.EffectCommand `yaml:"effects,omitempty"`
}

// FromCommand captures a command as a job
func FromCommand(cmd soxargs.Command) *Job {
	return &Job{
		Input:      cmd.InputFile,
		Output:     cmd.OutputFile,
		Format:     cmd.Format,
		Global:     cmd.Global,
		InputOpts:  cmd.Input,
		OutputOpts: cmd.Output,
		Effects:    append([]model.EffectCommand(nil), cmd.Effects...),
	}
}

// Command converts the job into a buildable command
func (j *Job) Command() soxargs.Command {
	return soxargs.Command{
		Global:     j.Global,
		Input:      j.InputOpts,
		InputFile:  j.Input,
		Format:     j.Format,
		Output:     j.OutputOpts,
		OutputFile: j.Output,
		Effects:    append([]model.EffectCommand(nil), j.Effects...),
	}
}

// Validate checks the effect names and the global options. File paths are
// not required so that a job can serve as a template.
func (j *Job) Validate() error {
	for i, e := range j.Effects {
		name := strings.TrimSpace(e.Effect)
		if name == "" {
			return fmt.Errorf("effect %d: %w", i+1, ErrEmptyEffect)
		}
		if !soxparam.IsEffectName(name) {
			return fmt.Errorf("effect %d: %w: %s", i+1, ErrUnknownEffect, name)
		}
	}
	return j.Global.Validate()
}

// Marshal encodes the job as YAML
func (j *Job) Marshal() ([]byte, error) {
	return yaml.Marshal(j)
}

// Parse decodes and validates a YAML job
func Parse(data []byte) (*Job, error) {
	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job: %w", err)
	}
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job: %w", err)
	}
	return &job, nil
}

// Save writes the job to path, creating the parent directory
func Save(path string, job *Job) error {
	if err := job.Validate(); err != nil {
		return fmt.Errorf("invalid job: %w", err)
	}
	data, err := job.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode job: %w", err)
	}
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write job: %w", err)
	}
	log.Printf("Saved job to %s (%d effects)", path, len(job.Effects))
	return nil
}

// Load reads and validates a job file
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job: %w", err)
	}
	job, err := Parse(data)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded job from %s (%d effects)", path, len(job.Effects))
	return job, nil
}
