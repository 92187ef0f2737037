package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/jncep-web/internal/service"
	"github.com/MKhiriev/jncep-web/models"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// ProgressModel occupies the screen while the server generates the EPUB. The
// download command runs in the background; when it finishes the result is
// forwarded to the result page.
type ProgressModel struct {
	ctx      context.Context
	download service.ClientDownloadService

	spinner   spinner.Model
	running   bool
	startedAt time.Time
	url       string
}

func NewProgressModel(ctx context.Context, download service.ClientDownloadService) *ProgressModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &ProgressModel{ctx: ctx, download: download, spinner: s}
}

func (m *ProgressModel) Init() tea.Cmd {
	return nil
}

func (m *ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startDownloadMsg:
		m.running = true
		m.startedAt = time.Now()
		m.url = msg.req.URL
		return m, tea.Batch(m.spinner.Tick, m.cmdDownload(msg.req))

	case DownloadResult:
		m.running = false
		return m, func() tea.Msg { return NavigateTo{Page: "result", Payload: msg} }

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *ProgressModel) View() string {
	if !m.running {
		return renderPage("ЗАГРУЗКА", "Подготовка запроса...", "")
	}

	elapsed := time.Since(m.startedAt).Round(time.Second)

	data := m.spinner.View() + " Генерация EPUB... " + elapsed.String() + "\n\n" +
		"Ссылка: " + fitText(m.url, 70) + "\n\n" +
		"Сервер собирает книгу, это может занять несколько минут."

	return renderPage("ЗАГРУЗКА", data, "")
}

func (m *ProgressModel) cmdDownload(req models.EpubRequest) tea.Cmd {
	ctx := m.ctx
	download := m.download
	started := time.Now()

	return func() tea.Msg {
		path, err := download.Download(ctx, req)

		return DownloadResult{
			Path:    path,
			Elapsed: time.Since(started).Round(time.Second),
			Err:     err,
		}
	}
}
