// Package desktop provides desktop environment integration for Linux (XDG).
package desktop

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/bnema/riblet/internal/application/port"
	"github.com/bnema/riblet/internal/logging"
)

const logURLMaxLen = 60

// ErrNoOpener is returned when no system URL opener is installed.
var ErrNoOpener = errors.New("xdg-open not found (install xdg-utils)")

// startFunc launches a detached process.
type startFunc func(ctx context.Context, name string, args ...string) (pid int, err error)

// Opener implements port.ExternalOpener with xdg-open.
type Opener struct {
	xdgOpenPath string
	start       startFunc
}

// Compile-time interface check.
var _ port.ExternalOpener = (*Opener)(nil)

// NewOpener detects xdg-open on PATH.
func NewOpener() *Opener {
	o := &Opener{start: startDetached}
	if path, err := exec.LookPath("xdg-open"); err == nil {
		o.xdgOpenPath = path
	}
	return o
}

// Available reports whether a system opener was found.
func (o *Opener) Available() bool {
	return o.xdgOpenPath != ""
}

// OpenExternally hands uri to the system's default handler. It returns once
// the handler process has started, without waiting for it.
func (o *Opener) OpenExternally(ctx context.Context, uri string) error {
	log := logging.FromContext(ctx)

	if o.xdgOpenPath == "" {
		return ErrNoOpener
	}

	pid, err := o.start(ctx, o.xdgOpenPath, uri)
	if err != nil {
		return fmt.Errorf("open %s externally: %w", logging.TruncateURL(uri, logURLMaxLen), err)
	}

	log.Debug().
		Str("url", logging.TruncateURL(uri, logURLMaxLen)).
		Int("pid", pid).
		Msg("spawned system opener")
	return nil
}

func startDetached(ctx context.Context, name string, args ...string) (int, error) {
	// Not CommandContext: the opener must outlive a cancelled dispatch.
	cmd := exec.Command(name, args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return 0, err
	}
	pid := cmd.Process.Pid

	// Release the process so it continues running after we exit
	if err := cmd.Process.Release(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to release opener process (non-fatal)")
	}
	return pid, nil
}
