package runner

import (
	"context"
	"time"

	"github.com/sakurazen/soxgui/internal/model"
)

// Runner defines the interface for invoking the SoX binary.
type Runner interface {
	SetUpdateCallback(func(*model.SoxRun))
	SetSoxPath(path string)
	SetTimeout(timeout time.Duration)
	Run(ctx context.Context, args []string) (*model.SoxRun, error)
	LastRun() (*model.SoxRun, bool)
}

var _ Runner = (*Service)(nil)
