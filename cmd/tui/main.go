package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/manchego/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/manchego/internal/app"
	"github.com/MrJamesThe3rd/manchego/internal/config"
	"github.com/MrJamesThe3rd/manchego/internal/importer"
	"github.com/MrJamesThe3rd/manchego/internal/ledger"
	"github.com/MrJamesThe3rd/manchego/internal/logging"
)

type model struct {
	ledgerService *ledger.Service
	importService *importer.Service

	currentView View

	importView view.ImportModel
	intakeView view.IntakeModel
	listView   view.ListModel
}

type View int

const (
	ViewMenu   View = 0
	ViewImport View = 1
	ViewIntake View = 2
	ViewList   View = 3
)

func initialModel() (model, func() error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// keep log output from drawing over the UI
	log := logging.Setup("error", cfg.Log.Format)

	a, err := app.Open(cfg, log)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	return model{
		ledgerService: a.Ledger,
		importService: a.Importer,
		currentView:   ViewMenu,
		importView:    view.NewImportModel(a.Importer),
		intakeView:    view.NewIntakeModel(a.Importer),
		listView:      view.NewListModel(a.Ledger),
	}, a.Close
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.importService)

				return m, m.importView.Init()
			case "2":
				m.currentView = ViewIntake
				m.intakeView = view.NewIntakeModel(m.importService)

				return m, m.intakeView.Init()
			case "3":
				m.currentView = ViewList
				m.listView = view.NewListModel(m.ledgerService)

				return m, m.listView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewIntake:
		var newModel tea.Model
		newModel, cmd = m.intakeView.Update(msg)
		m.intakeView = newModel.(view.IntakeModel)
	case ViewList:
		var newModel tea.Model
		newModel, cmd = m.listView.Update(msg)
		m.listView = newModel.(view.ListModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Manchego\n\n" +
				"1. Import Transactions\n" +
				"2. Intake Files\n" +
				"3. Browse Ledger\n\n" +
				"q. Quit",
		)
	case ViewImport:
		return m.importView.View()
	case ViewIntake:
		return m.intakeView.View()
	case ViewList:
		return m.listView.View()
	}

	return "Unknown View"
}

func main() {
	m, closeDB := initialModel()
	defer closeDB()

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
