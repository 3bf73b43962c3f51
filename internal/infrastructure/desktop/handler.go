package desktop

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bnema/riblet/internal/application/port"
	"github.com/bnema/riblet/internal/logging"
)

const (
	appName         = "riblet"
	desktopFileName = "riblet.desktop"
	filePerm        = 0o644
	dirPerm         = 0o755
)

// desktopFileTemplate is the freedesktop.org desktop entry format.
// Placeholders: executable path, MimeType list.
const desktopFileTemplate = `[Desktop Entry]
Version=1.1
Type=Application
Name=Riblet
Comment=Deep-link dispatcher
Exec=%s dispatch %%u
Terminal=false
NoDisplay=true
MimeType=%s
`

// SchemeHandler registers riblet as the x-scheme-handler for internal schemes.
type SchemeHandler struct {
	xdgMimePath     string
	updateDesktopDB string
}

// Compile-time interface check.
var _ port.SchemeRegistrar = (*SchemeHandler)(nil)

// NewSchemeHandler detects the optional XDG tools.
func NewSchemeHandler() *SchemeHandler {
	h := &SchemeHandler{}
	if path, err := exec.LookPath("xdg-mime"); err == nil {
		h.xdgMimePath = path
	}
	if path, err := exec.LookPath("update-desktop-database"); err == nil {
		h.updateDesktopDB = path
	}
	return h
}

// getApplicationsDir returns the XDG applications directory.
func getApplicationsDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "applications"), nil
}

// DesktopFilePath returns the full path to the desktop file.
func DesktopFilePath() (string, error) {
	appDir, err := getApplicationsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, desktopFileName), nil
}

// getExecutablePath returns the path to the riblet executable.
func getExecutablePath() (string, error) {
	execPath, err := os.Executable()
	if err == nil {
		if resolved, symlinkErr := filepath.EvalSymlinks(execPath); symlinkErr == nil {
			execPath = resolved
		}
		return execPath, nil
	}

	path, err := exec.LookPath(appName)
	if err != nil {
		return "", fmt.Errorf("cannot find %s executable: %w", appName, err)
	}
	return path, nil
}

func mimeTypes(schemes []string) string {
	var b strings.Builder
	for _, s := range schemes {
		b.WriteString("x-scheme-handler/")
		b.WriteString(s)
		b.WriteByte(';')
	}
	return b.String()
}

// GetStatus reports whether the desktop file exists and, when xdg-mime is
// available, which of schemes already open with riblet.
func (h *SchemeHandler) GetStatus(ctx context.Context, schemes []string) (*port.SchemeHandlerStatus, error) {
	desktopPath, err := DesktopFilePath()
	if err != nil {
		return nil, err
	}

	status := &port.SchemeHandlerStatus{DesktopFilePath: desktopPath}
	if _, err := os.Stat(desktopPath); err == nil {
		status.DesktopFileInstalled = true
	}

	if h.xdgMimePath == "" {
		return status, nil
	}
	for _, s := range schemes {
		out, err := exec.CommandContext(ctx, h.xdgMimePath, "query", "default", "x-scheme-handler/"+s).Output()
		if err != nil {
			continue
		}
		if strings.TrimSpace(string(out)) == desktopFileName {
			status.DefaultFor = append(status.DefaultFor, s)
		}
	}
	return status, nil
}

// Install writes the desktop file for schemes and, when xdg-mime is
// available, makes it the default handler for each of them.
func (h *SchemeHandler) Install(ctx context.Context, schemes []string) (string, error) {
	log := logging.FromContext(ctx)

	if len(schemes) == 0 {
		return "", fmt.Errorf("no schemes to register")
	}

	execPath, err := getExecutablePath()
	if err != nil {
		return "", err
	}

	desktopPath, err := DesktopFilePath()
	if err != nil {
		return "", err
	}

	appDir := filepath.Dir(desktopPath)
	if err := os.MkdirAll(appDir, dirPerm); err != nil {
		return "", fmt.Errorf("create applications dir: %w", err)
	}

	content := fmt.Sprintf(desktopFileTemplate, execPath, mimeTypes(schemes))
	if err := os.WriteFile(desktopPath, []byte(content), filePerm); err != nil {
		return "", fmt.Errorf("write desktop file: %w", err)
	}
	log.Info().Str("path", desktopPath).Strs("schemes", schemes).Msg("desktop file installed")

	if h.xdgMimePath != "" {
		for _, s := range schemes {
			cmd := exec.CommandContext(ctx, h.xdgMimePath, "default", desktopFileName, "x-scheme-handler/"+s)
			if out, err := cmd.CombinedOutput(); err != nil {
				return desktopPath, fmt.Errorf("xdg-mime failed for %s: %s", s, strings.TrimSpace(string(out)))
			}
		}
	}

	h.updateDatabase(ctx, appDir)
	return desktopPath, nil
}

// Remove deletes the desktop file. A missing file is not an error.
func (h *SchemeHandler) Remove(ctx context.Context) error {
	log := logging.FromContext(ctx)

	desktopPath, err := DesktopFilePath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(desktopPath); os.IsNotExist(err) {
		log.Debug().Str("path", desktopPath).Msg("desktop file not found (already removed)")
		return nil
	}

	if err := os.Remove(desktopPath); err != nil {
		return fmt.Errorf("remove desktop file: %w", err)
	}
	log.Info().Str("path", desktopPath).Msg("desktop file removed")

	h.updateDatabase(ctx, filepath.Dir(desktopPath))
	return nil
}

// updateDatabase refreshes the desktop database (optional, helps with some DEs).
func (h *SchemeHandler) updateDatabase(ctx context.Context, appDir string) {
	if h.updateDesktopDB == "" {
		return
	}
	if err := exec.CommandContext(ctx, h.updateDesktopDB, appDir).Run(); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("update-desktop-database failed (non-fatal)")
	}
}
