package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/riblet/internal/application/port"
	"github.com/bnema/riblet/internal/application/port/mocks"
)

func TestInstallSchemeHandler_ClaimsMissingSchemes(t *testing.T) {
	ctrl := gomock.NewController(t)
	registrar := mocks.NewMockSchemeRegistrar(ctrl)
	schemes := []string{"fave", "astro"}

	registrar.EXPECT().GetStatus(gomock.Any(), schemes).Return(&port.SchemeHandlerStatus{
		DesktopFileInstalled: true,
		DefaultFor:           []string{"fave"},
	}, nil)
	registrar.EXPECT().Install(gomock.Any(), schemes).Return("/apps/riblet.desktop", nil)

	out, err := NewInstallSchemeHandlerUseCase(registrar).Execute(context.Background(), InstallSchemeHandlerInput{Schemes: schemes})
	require.NoError(t, err)
	assert.Equal(t, "/apps/riblet.desktop", out.DesktopPath)
	assert.True(t, out.WasDesktopExisting)
	assert.Equal(t, []string{"astro"}, out.Claimed)
}

func TestInstallSchemeHandler_NoSchemes(t *testing.T) {
	ctrl := gomock.NewController(t)
	registrar := mocks.NewMockSchemeRegistrar(ctrl)

	_, err := NewInstallSchemeHandlerUseCase(registrar).Execute(context.Background(), InstallSchemeHandlerInput{})
	assert.ErrorIs(t, err, ErrNoSchemes)
}

func TestInstallSchemeHandler_InstallFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	registrar := mocks.NewMockSchemeRegistrar(ctrl)

	registrar.EXPECT().GetStatus(gomock.Any(), gomock.Any()).Return(&port.SchemeHandlerStatus{}, nil)
	registrar.EXPECT().Install(gomock.Any(), gomock.Any()).Return("", errors.New("read-only file system"))

	_, err := NewInstallSchemeHandlerUseCase(registrar).Execute(context.Background(), InstallSchemeHandlerInput{Schemes: []string{"fave"}})
	require.Error(t, err)
}

func TestRemoveSchemeHandler(t *testing.T) {
	tests := []struct {
		name      string
		installed bool
	}{
		{name: "installed", installed: true},
		{name: "not installed", installed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			registrar := mocks.NewMockSchemeRegistrar(ctrl)

			registrar.EXPECT().GetStatus(gomock.Any(), gomock.Nil()).Return(&port.SchemeHandlerStatus{
				DesktopFileInstalled: tt.installed,
				DesktopFilePath:      "/apps/riblet.desktop",
			}, nil)
			if tt.installed {
				registrar.EXPECT().Remove(gomock.Any()).Return(nil)
			}

			out, err := NewRemoveSchemeHandlerUseCase(registrar).Execute(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.installed, out.WasDesktopInstalled)
		})
	}
}
