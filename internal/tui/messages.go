package tui

import (
	"time"

	"github.com/MKhiriev/jncep-web/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page. An optional Payload is delivered to
// the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// DownloadResult reports one finished download attempt.
type DownloadResult struct {
	Path    string
	Elapsed time.Duration
	Err     error
}

type startDownloadMsg struct {
	req models.EpubRequest
}

type serverStatusMsg struct {
	version models.VersionResponse
	err     error
}

type clearStatusMsg struct{}
