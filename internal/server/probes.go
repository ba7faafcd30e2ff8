package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/heptiolabs/healthcheck"
)

// Probes serves /live and /ready for orchestrators.
type Probes struct {
	healthcheck.Handler
	shuttingDown atomic.Bool
}

// NewProbes registers a goroutine liveness check and readiness checks for the
// given directories and the shutdown flag.
func NewProbes(dirs ...string) *Probes {
	p := &Probes{Handler: healthcheck.NewHandler()}
	p.AddLivenessCheck("goroutine-threshold", healthcheck.GoroutineCountCheck(1000))
	p.AddReadinessCheck("shutdown", func() error {
		if p.shuttingDown.Load() {
			return errors.New("shutting down")
		}
		return nil
	})
	for _, dir := range dirs {
		p.AddReadinessCheck("dir:"+dir, dirReadable(dir))
	}
	return p
}

// MarkShuttingDown makes the readiness probe fail from now on.
func (p *Probes) MarkShuttingDown() {
	p.shuttingDown.Store(true)
}

func dirReadable(dir string) healthcheck.Check {
	return func() error {
		f, err := os.Open(dir)
		if err != nil {
			return fmt.Errorf("open %s: %w", dir, err)
		}
		defer f.Close()
		if _, err := f.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read %s: %w", dir, err)
		}
		return nil
	}
}
