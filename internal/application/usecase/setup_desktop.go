package usecase

import (
	"context"
	"errors"
	"slices"

	"github.com/bnema/riblet/internal/application/port"
	"github.com/bnema/riblet/internal/logging"
)

// ErrNoSchemes is returned when there is no internal scheme to register.
var ErrNoSchemes = errors.New("no internal schemes configured")

// InstallSchemeHandlerInput contains the input for the install operation.
type InstallSchemeHandlerInput struct {
	Schemes []string
}

// InstallSchemeHandlerOutput contains the result of the install operation.
type InstallSchemeHandlerOutput struct {
	DesktopPath        string
	WasDesktopExisting bool
	// Claimed lists the schemes that had another default handler before.
	Claimed []string
}

// InstallSchemeHandlerUseCase registers riblet as the deep-link handler.
type InstallSchemeHandlerUseCase struct {
	registrar port.SchemeRegistrar
}

// NewInstallSchemeHandlerUseCase creates a new InstallSchemeHandlerUseCase.
func NewInstallSchemeHandlerUseCase(registrar port.SchemeRegistrar) *InstallSchemeHandlerUseCase {
	return &InstallSchemeHandlerUseCase{registrar: registrar}
}

// Execute installs the desktop file and claims the schemes.
func (uc *InstallSchemeHandlerUseCase) Execute(
	ctx context.Context,
	input InstallSchemeHandlerInput,
) (*InstallSchemeHandlerOutput, error) {
	log := logging.FromContext(ctx)

	if len(input.Schemes) == 0 {
		return nil, ErrNoSchemes
	}

	// Check current status first
	status, err := uc.registrar.GetStatus(ctx, input.Schemes)
	if err != nil {
		return nil, err
	}

	output := &InstallSchemeHandlerOutput{WasDesktopExisting: status.DesktopFileInstalled}
	for _, s := range input.Schemes {
		if !slices.Contains(status.DefaultFor, s) {
			output.Claimed = append(output.Claimed, s)
		}
	}

	desktopPath, err := uc.registrar.Install(ctx, input.Schemes)
	if err != nil {
		return nil, err
	}
	output.DesktopPath = desktopPath

	log.Info().
		Str("desktop_path", output.DesktopPath).
		Strs("claimed", output.Claimed).
		Bool("was_desktop_existing", output.WasDesktopExisting).
		Msg("scheme handler install complete")

	return output, nil
}

// RemoveSchemeHandlerOutput contains the result of the remove operation.
type RemoveSchemeHandlerOutput struct {
	WasDesktopInstalled bool
	RemovedDesktopPath  string
}

// RemoveSchemeHandlerUseCase removes the scheme registration.
type RemoveSchemeHandlerUseCase struct {
	registrar port.SchemeRegistrar
}

// NewRemoveSchemeHandlerUseCase creates a new RemoveSchemeHandlerUseCase.
func NewRemoveSchemeHandlerUseCase(registrar port.SchemeRegistrar) *RemoveSchemeHandlerUseCase {
	return &RemoveSchemeHandlerUseCase{registrar: registrar}
}

// Execute removes the desktop file if present.
func (uc *RemoveSchemeHandlerUseCase) Execute(ctx context.Context) (*RemoveSchemeHandlerOutput, error) {
	log := logging.FromContext(ctx)

	status, err := uc.registrar.GetStatus(ctx, nil)
	if err != nil {
		return nil, err
	}

	output := &RemoveSchemeHandlerOutput{
		WasDesktopInstalled: status.DesktopFileInstalled,
		RemovedDesktopPath:  status.DesktopFilePath,
	}
	if !status.DesktopFileInstalled {
		log.Debug().Msg("scheme handler not installed")
		return output, nil
	}

	if err := uc.registrar.Remove(ctx); err != nil {
		return nil, err
	}
	log.Info().Str("path", output.RemovedDesktopPath).Msg("scheme handler removed")
	return output, nil
}
