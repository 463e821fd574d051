package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/manchego/internal/account"
	"github.com/MrJamesThe3rd/manchego/internal/importer"
	"github.com/MrJamesThe3rd/manchego/internal/importer/cibc"
)

type intakeState int

const (
	intakeStateBrowse intakeState = iota
	intakeStateLabel
)

// IntakeModel lists files waiting in the intake directory and lets the user
// label the ones no heuristic recognises.
type IntakeModel struct {
	CommonModel
	importService *importer.Service

	state intakeState
	table table.Model
	files []importer.PendingFile
	form  *huh.Form

	formLabel string

	err    error
	status string
}

func NewIntakeModel(impSvc *importer.Service) IntakeModel {
	columns := []table.Column{
		{Title: "File", Width: 45},
		{Title: "Size", Width: 10},
		{Title: "Account", Width: 20},
		{Title: "Matched By", Width: 16},
	}

	return IntakeModel{
		importService: impSvc,
		table:         newTable(columns),
	}
}

func (m IntakeModel) Title() string { return "Intake" }

func (m IntakeModel) ShortHelp() string {
	if m.state == intakeStateLabel {
		return "Enter: apply | Esc: cancel"
	}

	return "Esc: back | l: label file | r: refresh"
}

func (m IntakeModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m IntakeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadIntakeMsg:
		m.err = msg.err
		m.files = msg.files
		m.refreshTable()

		return m, nil

	case labelResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Renamed to %s", msg.renamed)
		}

		m.state = intakeStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == intakeStateLabel {
		return m.updateLabel(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.status = ""
			return m, m.loadCmd()
		case "l":
			return m.enterLabelMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m IntakeModel) enterLabelMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.files) {
		return m, nil
	}

	if m.files[idx].Identified && m.files[idx].By == cibc.ByFilename {
		m.status = "File name already carries an account label"
		return m, nil
	}

	options := make([]huh.Option[string], 0, len(account.Labels()))
	for _, l := range account.Labels() {
		options = append(options, huh.NewOption(l.String(), l.String()))
	}

	m.formLabel = ""
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("label").
				Title("Account").
				Options(options...).
				Value(&m.formLabel),
		),
	).WithWidth(40).WithShowHelp(false)

	m.state = intakeStateLabel
	m.table.Blur()

	return m, m.form.Init()
}

func (m IntakeModel) updateLabel(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = intakeStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.labelCmd(m.files[m.table.Cursor()].Name, m.formLabel)
}

func (m IntakeModel) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	header := fmt.Sprintf("Waiting in %s: %s", m.importService.Dirs().Raw, activeStyle(fmt.Sprint(len(m.files))))

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableBorder.Render(m.table.View()),
	)

	if m.state == intakeStateLabel && m.form != nil {
		panel := panelStyle.Render(
			fmt.Sprintf("Label %s\n\n%s", m.files[m.table.Cursor()].Name, m.form.View()),
		)

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = faintStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *IntakeModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.files))

	for _, f := range m.files {
		label, by := "unidentified", "-"
		if f.Identified {
			label, by = f.Label.String(), string(f.By)
		}

		rows = append(rows, table.Row{f.Name, FormatSize(f.Size), label, by})
	}

	m.table.SetRows(rows)
}

// Messages

type loadIntakeMsg struct {
	files []importer.PendingFile
	err   error
}

func (m IntakeModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		files, err := m.importService.Pending()
		return loadIntakeMsg{files: files, err: err}
	}
}

type labelResultMsg struct {
	renamed string
	err     error
}

func (m IntakeModel) labelCmd(name, label string) tea.Cmd {
	return func() tea.Msg {
		renamed, err := m.importService.Label(name, label)
		return labelResultMsg{renamed: renamed, err: err}
	}
}
