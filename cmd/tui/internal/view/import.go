package view

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/manchego/internal/audit"
	"github.com/MrJamesThe3rd/manchego/internal/importer"
)

const importTimeout = 10 * time.Minute

type importState int

const (
	importStateConfirm importState = iota
	importStateImporting
	importStateResult
)

type ImportModel struct {
	CommonModel
	importService *importer.Service

	state   importState
	spinner spinner.Model
	summary *importer.Summary
	err     error
}

func NewImportModel(impSvc *importer.Service) ImportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return ImportModel{
		importService: impSvc,
		spinner:       s,
	}
}

func (m ImportModel) Title() string { return "Import Transactions" }

func (m ImportModel) ShortHelp() string {
	if m.state == importStateConfirm {
		return "Enter: start import | Esc: back"
	}

	return "Esc: back"
}

func (m ImportModel) Init() tea.Cmd {
	return nil
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			if m.state == importStateImporting {
				return m, nil
			}

			m.state = importStateConfirm
			m.summary = nil
			m.err = nil

			return m, Back
		case tea.KeyEnter:
			if m.state != importStateConfirm {
				return m, nil
			}

			m.state = importStateImporting

			return m, tea.Batch(m.spinner.Tick, m.runCmd())
		}

	case runResultMsg:
		m.state = importStateResult
		m.summary = msg.summary
		m.err = msg.err

		return m, nil

	case spinner.TickMsg:
		if m.state != importStateImporting {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m ImportModel) View() string {
	style := lipgloss.NewStyle().Padding(2)

	switch m.state {
	case importStateConfirm:
		dirs := m.importService.Dirs()

		return style.Render(fmt.Sprintf(
			"Import every statement waiting in\n  %s\n\nProcessed files are moved to\n  %s\n\n%s",
			dirs.Raw, dirs.Imported, faintStyle.Render("Enter to start, Esc to go back"),
		))
	case importStateImporting:
		return style.Render(fmt.Sprintf("%s Importing statements...", m.spinner.View()))
	case importStateResult:
		return style.Render(m.viewResult())
	}

	return ""
}

func (m ImportModel) viewResult() string {
	if m.err != nil {
		return errStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n(Esc to go back)"
	}

	s := m.summary

	var b strings.Builder

	if s.Success {
		b.WriteString(okStyle.Render("Import completed successfully"))
	} else {
		b.WriteString(errStyle.Render("Import completed with errors"))
	}

	fmt.Fprintf(&b, "\n\nTotal files: %d\nSucceeded: %d\nFailed: %d\nTime: %.2fs\n",
		s.Total, s.Succeeded, s.Failed, s.ElapsedS)

	for _, f := range s.Failures {
		fmt.Fprintf(&b, "\n%s %s: %s", errStyle.Render("x"), f.File, f.Reason)
	}

	b.WriteString("\n\n(Esc to go back)")

	return b.String()
}

// Messages

type runResultMsg struct {
	summary *importer.Summary
	err     error
}

func (m ImportModel) runCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		summary, err := m.importService.Run(ctx, audit.NewOperationID("tui_import"))

		return runResultMsg{summary: summary, err: err}
	}
}
