package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sakurazen/soxgui/internal/model"
	"github.com/sakurazen/soxgui/internal/platform"
	"github.com/sakurazen/soxgui/internal/runner"
	"github.com/sakurazen/soxgui/internal/soxargs"
	"github.com/sakurazen/soxgui/internal/wizard"
)

const (
	envSoxPath     = "SOX_PATH"
	defaultTimeout = runner.DefaultTimeout
)

var errRunFailed = errors.New("sox reported an error")

type globalFlags struct {
	soxPath string
	timeout time.Duration
}

// resolveSoxPath picks --sox, then $SOX_PATH, then a PATH lookup
func (g *globalFlags) resolveSoxPath() string {
	if p := strings.TrimSpace(g.soxPath); p != "" {
		return p
	}
	if p := strings.TrimSpace(os.Getenv(envSoxPath)); p != "" {
		return p
	}
	return platform.FindSox()
}

// execute runs sox with args and prints the styled result
func (g *globalFlags) execute(ctx context.Context, out io.Writer, args soxargs.Option) (*model.SoxRun, error) {
	service := runner.NewService(g.resolveSoxPath())
	service.SetTimeout(g.timeout)

	run, err := service.Run(ctx, args)
	if run != nil {
		fmt.Fprintln(out, wizard.RenderRun(run))
	}
	if err != nil {
		if errors.Is(err, runner.ErrSoxPathNotSet) {
			return run, fmt.Errorf("%w: use --sox or set %s", err, envSoxPath)
		}
		return run, err
	}
	if run.Status != model.RunStatusCompleted {
		return run, fmt.Errorf("%w (exit status %d)", errRunFailed, run.ExitCode)
	}
	return run, nil
}
