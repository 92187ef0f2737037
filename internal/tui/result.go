// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/jncep-web/internal/adapter"
	"github.com/MKhiriev/jncep-web/internal/service"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ResultModel shows where the finished download landed, or what went wrong
// and what to do about it.
type ResultModel struct {
	result DownloadResult
	status string
}

func NewResultModel() *ResultModel {
	return &ResultModel{}
}

func (m *ResultModel) Init() tea.Cmd {
	return nil
}

func (m *ResultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DownloadResult:
		m.result = msg
		m.status = ""
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.copy) && m.result.Err == nil:
			if err := clipboard.WriteAll(m.result.Path); err != nil {
				m.status = "Ошибка копирования: " + err.Error()
				return m, nil
			}
			m.status = "Путь скопирован"
			return m, clearStatusAfter(2 * time.Second)

		case key.Matches(msg, keys.enter), key.Matches(msg, keys.newItem), key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: "form"} }

		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *ResultModel) View() string {
	if m.result.Err != nil {
		return m.viewError()
	}
	return m.viewSuccess()
}

func (m *ResultModel) viewSuccess() string {
	var b strings.Builder
	b.WriteString("EPUB сохранён\n\n")
	b.WriteString("Файл: ")
	b.WriteString(fitText(m.result.Path, 70))
	b.WriteString("\n")
	b.WriteString("Время: ")
	b.WriteString(m.result.Elapsed.String())

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	return renderPage("ГОТОВО", b.String(), "c: скопировать путь │ enter: новая загрузка │ q: выход")
}

func (m *ResultModel) viewError() string {
	var b strings.Builder
	b.WriteString(errorStyle.Render("Ошибка: " + humanizeServerUnavailableError(m.result.Err)))

	if advice := adviceFor(m.result.Err); advice != "" {
		b.WriteString("\n\n")
		b.WriteString(advice)
	}

	return renderPage("ОШИБКА", b.String(), "enter: назад к форме │ q: выход")
}

// adviceFor supplies a next step for the errors a user can actually fix.
func adviceFor(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidNovelURL):
		return "Нужна ссылка на серию или часть: https://j-novel.club/series/..."
	case errors.Is(err, service.ErrNoCredentials),
		errors.Is(err, service.ErrPartialCredentials),
		errors.Is(err, service.ErrInvalidCredentials):
		return "Проверьте email и пароль учётной записи J-Novel Club"
	case errors.Is(err, service.ErrNoPermission):
		return "Книга не куплена, а автопокупка не прошла: проверьте монеты на счету"
	case errors.Is(err, service.ErrNoEpubsFound):
		return "Сервер ничего не собрал: проверьте ссылку и номер части"
	case errors.Is(err, adapter.ErrServerUnavailable):
		return "Проверьте адрес сервера и что он запущен"
	}
	return ""
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
