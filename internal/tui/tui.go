package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/jncep-web/internal/logger"
	"github.com/MKhiriev/jncep-web/internal/service"
	"github.com/MKhiriev/jncep-web/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

var errNoDownloadService = errors.New("download service is not provided")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	if services == nil || services.DownloadService == nil {
		return nil, errNoDownloadService
	}
	return &TUI{services: services, buildInfo: buildInfo}, nil
}

// Run drives the download loop: form, progress, result, back to the form.
// Returns ErrUserQuit when the user leaves with ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	download := t.services.DownloadService

	pages := map[string]tea.Model{
		"form":     NewFormModel(ctx, download),
		"progress": NewProgressModel(ctx, download),
		"result":   NewResultModel(),
	}

	root := NewRootModel(pages, "form", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
