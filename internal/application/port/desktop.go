package port

import "context"

//go:generate mockgen -source=desktop.go -destination=mocks/mock_desktop.go -package=mocks

// SchemeHandlerStatus represents the current state of scheme registration.
type SchemeHandlerStatus struct {
	DesktopFileInstalled bool
	DesktopFilePath      string
	// DefaultFor lists the schemes riblet is already the default handler for.
	DefaultFor []string
}

// SchemeRegistrar registers riblet with the desktop environment as the
// handler of its internal schemes.
type SchemeRegistrar interface {
	// GetStatus checks the current registration state for schemes.
	GetStatus(ctx context.Context, schemes []string) (*SchemeHandlerStatus, error)

	// Install writes the desktop file and claims every scheme.
	// Returns the path where the file was installed.
	// Idempotent: safe to call multiple times.
	Install(ctx context.Context, schemes []string) (string, error)

	// Remove deletes the desktop file.
	// Idempotent: returns nil if file doesn't exist.
	Remove(ctx context.Context) error
}
