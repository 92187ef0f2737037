package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/jncep-web/internal/logger"
	"github.com/MKhiriev/jncep-web/internal/service"
	"github.com/MKhiriev/jncep-web/internal/tui"
)

var errIncompleteApp = errors.New("client app requires services and a terminal UI")

// App is the client application: the download services plus the terminal UI
// that drives them.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errIncompleteApp
	}

	return &App{services: services, tui: ui, logger: logger}, nil
}

// Run starts the terminal UI and blocks until exit. Leaving with ctrl+c is a
// normal way to close the program, so it is not reported as an error.
func (a *App) Run() error {
	ctx := context.Background()

	err := a.tui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Debug().Msg("user left the client")
		return nil
	}

	return err
}
