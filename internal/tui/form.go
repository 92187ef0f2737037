// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/jncep-web/internal/service"
	"github.com/MKhiriev/jncep-web/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Form field order. Focus cycles through these with tab / shift+tab.
const (
	fieldURL = iota
	fieldParts
	fieldEmail
	fieldPassword
	fieldOutputDir
)

// FormModel is the Bubble Tea model for the download form. It renders text
// inputs for the novel URL, the optional part specification, the optional
// credentials pair and the output directory, and dispatches the prepared
// request to the progress page on submission. On entry it pings the server
// so the user sees up front whether the configured address answers.
type FormModel struct {
	ctx      context.Context
	download service.ClientDownloadService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	serverLine string
}

// NewFormModel creates a [FormModel] with pre-configured inputs. The URL
// field receives focus immediately; the password field uses masked echo; the
// output directory is pre-filled from the client configuration.
func NewFormModel(ctx context.Context, download service.ClientDownloadService) *FormModel {
	urlInput := textinput.New()
	urlInput.Placeholder = "https://j-novel.club/series/..."
	urlInput.CharLimit = 256
	urlInput.Width = 60
	urlInput.Focus()

	partsInput := textinput.New()
	partsInput.Placeholder = "например 3.2 или 1:3, пусто = всё"
	partsInput.CharLimit = 32
	partsInput.Width = 40

	emailInput := textinput.New()
	emailInput.Placeholder = "пусто = учётная запись сервера"
	emailInput.CharLimit = 256
	emailInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "пусто = учётная запись сервера"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	outputInput := textinput.New()
	outputInput.CharLimit = 256
	outputInput.Width = 40
	outputInput.SetValue(download.OutputDir())

	return &FormModel{
		ctx:        ctx,
		download:   download,
		inputs:     []textinput.Model{urlInput, partsInput, emailInput, passwordInput, outputInput},
		serverLine: "Проверка соединения с сервером...",
	}
}

// Init implements [tea.Model]. Re-arms the form after a previous download and
// starts the cursor blink plus a server reachability probe.
func (m *FormModel) Init() tea.Cmd {
	m.submitting = false
	m.errMsg = ""
	m.serverLine = "Проверка соединения с сервером..."

	return tea.Batch(textinput.Blink, m.cmdPingServer())
}

// Update implements [tea.Model]. Handled messages:
//   - [serverStatusMsg] — refreshes the server reachability line.
//   - tab / shift+tab   — moves focus between inputs.
//   - esc               — clears the validation error.
//   - enter             — validates inputs and navigates to the progress page.
//
// All other key events are forwarded to the focused input widget.
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if status, ok := msg.(serverStatusMsg); ok {
		switch {
		case status.err != nil:
			m.serverLine = "Сервер: " + humanizeServerUnavailableError(status.err)
		case status.version.Version != "":
			m.serverLine = "Сервер доступен, версия " + status.version.Version
		default:
			m.serverLine = "Сервер доступен"
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.errMsg = ""
			return m, nil
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the form as a two-column table with a
// server reachability line and an optional validation error.
func (m *FormModel) View() string {
	var b strings.Builder
	b.WriteString("Поле    │ Значение\n")
	b.WriteString("────────┼────────────────────────────────────────────\n")
	b.WriteString("Ссылка  │ [")
	b.WriteString(m.inputs[fieldURL].View())
	b.WriteString("]\n")
	b.WriteString("Части   │ [")
	b.WriteString(m.inputs[fieldParts].View())
	b.WriteString("]\n")
	b.WriteString("Email   │ [")
	b.WriteString(m.inputs[fieldEmail].View())
	b.WriteString("]\n")
	b.WriteString("Пароль  │ [")
	b.WriteString(m.inputs[fieldPassword].View())
	b.WriteString("]\n")
	b.WriteString("Папка   │ [")
	b.WriteString(m.inputs[fieldOutputDir].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Скачать...]\n")
	} else {
		b.WriteString("\n[Скачать]\n")
	}

	b.WriteString("\n")
	b.WriteString(m.serverLine)
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("НОВАЯ ЗАГРУЗКА", strings.TrimRight(b.String(), "\n"), "tab: след. поле │ enter: скачать")
}

// submit validates the form and hands the prepared request over to the
// progress page. The credentials pair must be complete or fully absent, the
// same rule the server applies to request parameters.
func (m *FormModel) submit() tea.Cmd {
	novelURL := strings.TrimSpace(m.inputs[fieldURL].Value())
	parts := strings.TrimSpace(m.inputs[fieldParts].Value())
	email := strings.TrimSpace(m.inputs[fieldEmail].Value())
	password := m.inputs[fieldPassword].Value()
	outputDir := strings.TrimSpace(m.inputs[fieldOutputDir].Value())

	if novelURL == "" {
		m.errMsg = "Укажите ссылку на книгу"
		return nil
	}
	if (email == "") != (password == "") {
		m.errMsg = "Email и пароль указываются вместе (или оба пустые)"
		return nil
	}

	m.errMsg = ""
	m.submitting = true
	m.download.SetOutputDir(outputDir)

	req := models.EpubRequest{
		URL:      novelURL,
		Parts:    parts,
		Email:    email,
		Password: password,
	}

	return func() tea.Msg {
		return NavigateTo{Page: "progress", Payload: startDownloadMsg{req: req}}
	}
}

// cmdPingServer checks reachability and fetches the server version. The probe
// gets its own short deadline: the shared request timeout is sized for EPUB
// generation, not for a liveness check.
func (m *FormModel) cmdPingServer() tea.Cmd {
	parentCtx := m.ctx
	download := m.download

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parentCtx, 5*time.Second)
		defer cancel()

		if err := download.CheckServer(ctx); err != nil {
			return serverStatusMsg{err: err}
		}

		version, err := download.ServerVersion(ctx)
		return serverStatusMsg{version: version, err: err}
	}
}

func (m *FormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *FormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
