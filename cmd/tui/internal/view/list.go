package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/manchego/internal/account"
	"github.com/MrJamesThe3rd/manchego/internal/ledger"
)

var (
	tableBorder = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	panelStyle = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(44)
)

func newTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// ListModel browses imported ledger entries.
type ListModel struct {
	CommonModel
	ledgerService *ledger.Service

	table   table.Model
	entries []*ledger.Entry
	labels  map[string]account.Label

	// Filter cycling; accountIdx 0 means all accounts
	accountIdx int
	timeframe  Timeframe

	filter  ledger.Filter
	loading bool
	err     error
}

func NewListModel(ledgerSvc *ledger.Service) ListModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Account", Width: 18},
		{Title: "Amount", Width: 12},
		{Title: "Description", Width: 40},
		{Title: "Source", Width: 40},
	}

	labels := make(map[string]account.Label, len(account.Labels()))
	for _, l := range account.Labels() {
		id, _ := account.ID(l)
		labels[id] = l
	}

	return ListModel{
		ledgerService: ledgerSvc,
		table:         newTable(columns),
		labels:        labels,
		loading:       true,
	}
}

func (m ListModel) Title() string { return "Ledger" }

func (m ListModel) ShortHelp() string {
	return "Esc: back | a: account filter | d: date filter | r: refresh"
}

func (m ListModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadListMsg:
		m.loading = false
		m.err = msg.err
		m.entries = msg.entries
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "a":
			m.accountIdx = (m.accountIdx + 1) % (len(account.Labels()) + 1)
			m.applyFilter()

			return m, m.loadCmd()
		case "d":
			m.timeframe = m.timeframe.Next()
			m.applyFilter()

			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ListModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading ledger...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	accountName := "All"
	if m.accountIdx > 0 {
		accountName = account.Labels()[m.accountIdx-1].String()
	}

	header := fmt.Sprintf(
		"Filter: [a] Account: %s | [d] Date: %s | %d entries",
		activeStyle(accountName),
		activeStyle(m.timeframe.String()),
		len(m.entries),
	)

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableBorder.Render(m.table.View()),
	))
}

func (m *ListModel) applyFilter() {
	m.filter.AccountID = ""

	if m.accountIdx > 0 {
		m.filter.AccountID, _ = account.ID(account.Labels()[m.accountIdx-1])
	}

	m.filter.StartDate, m.filter.EndDate = m.timeframe.DateRange(time.Now())
}

func (m *ListModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.entries))

	for _, e := range m.entries {
		rows = append(rows, table.Row{
			e.TransactionDate,
			m.labels[e.AccountID].String(),
			FormatAmount(e.Amount),
			e.Description,
			e.SourceFilename,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadListMsg struct {
	entries []*ledger.Entry
	err     error
}

func (m ListModel) loadCmd() tea.Cmd {
	filter := m.filter

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		entries, err := m.ledgerService.List(ctx, filter)

		return loadListMsg{entries: entries, err: err}
	}
}
