package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"takeoutpages/internal/models"
)

// Styling
var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#0a84ff")).
			Padding(0, 1)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#30d158")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#ff453a")).
			Padding(0, 1)
)

var sortColumns = []string{"lead_score", "rating", "name", "estimated_monthly_spend"}

// Model defines the application state
type Model struct {
	leadTable   table.Model
	stateInput  textinput.Model
	spinner     spinner.Model
	client      *ApiClient
	leads       *models.LeadsResponse
	stateFilter string
	sortIndex   int
	loading     bool
	filtering   bool
	status      string
	error       string
}

// Initialize the model
func initialModel() Model {
	// Initialize spinner
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	// Initialize lead table
	columns := []table.Column{
		{Title: "Restaurant", Width: 26},
		{Title: "City", Width: 16},
		{Title: "State", Width: 6},
		{Title: "Score", Width: 6},
		{Title: "Rating", Width: 7},
		{Title: "Website", Width: 14},
		{Title: "Est. Spend", Width: 10},
	}
	leadTable := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(14),
	)

	// Initialize state filter input
	ti := textinput.New()
	ti.Placeholder = "State abbreviation (e.g. CA)"
	ti.CharLimit = 2
	ti.Width = 20

	// Initialize API client
	client := NewApiClient()

	return Model{
		leadTable:  leadTable,
		stateInput: ti,
		spinner:    s,
		client:     client,
		loading:    true,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tea.EnterAltScreen, fetchLeads(m.client, "", sortColumns[0]))
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "enter":
				m.filtering = false
				m.stateInput.Blur()
				m.stateFilter = strings.ToUpper(strings.TrimSpace(m.stateInput.Value()))
				m.loading = true
				return m, fetchLeads(m.client, m.stateFilter, sortColumns[m.sortIndex])
			case "esc":
				m.filtering = false
				m.stateInput.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.stateInput, cmd = m.stateInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.status = ""
			return m, fetchLeads(m.client, m.stateFilter, sortColumns[m.sortIndex])
		case "s":
			m.sortIndex = (m.sortIndex + 1) % len(sortColumns)
			m.loading = true
			return m, fetchLeads(m.client, m.stateFilter, sortColumns[m.sortIndex])
		case "/":
			m.filtering = true
			m.stateInput.SetValue(m.stateFilter)
			m.stateInput.Focus()
			return m, nil
		case "e":
			return m, exportLeads(m.client, m.stateFilter, sortColumns[m.sortIndex])
		}
	case leadsMsg:
		m.loading = false
		m.error = ""
		m.leads = msg.leads
		m.leadTable.SetRows(convertLeadsToRows(msg.leads.Items))
		return m, nil
	case errorMsg:
		m.loading = false
		m.error = msg.err
		return m, nil
	case exportedMsg:
		m.status = fmt.Sprintf("Exported leads to %s", msg.path)
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.leadTable, cmd = m.leadTable.Update(msg)
	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	view := titleStyle.Render("Takeout Pages Leads") + "\n\n"

	if m.client.UseMock {
		view += infoStyle.Render("Offline mode: showing sample data") + "\n\n"
	}

	if m.loading {
		view += m.spinner.View() + " Loading leads...\n"
		return docStyle.Render(view)
	}

	view += m.leadTable.View() + "\n"

	if m.leads != nil {
		stats := m.leads.Stats
		view += fmt.Sprintf(
			"\n%d restaurants | %d no website | %d broken | avg score %.1f\n",
			stats.TotalRestaurants, stats.NoWebsiteCount, stats.BrokenWebsiteCount, stats.AvgLeadScore,
		)
		view += fmt.Sprintf("Page %d of %d | sorted by %s\n", m.leads.Page, m.leads.TotalPages, sortColumns[m.sortIndex])
	}

	if m.filtering {
		view += "\nFilter by state: " + m.stateInput.View() + "\n"
	} else if m.stateFilter != "" {
		view += "\nFiltered to " + m.stateFilter + "\n"
	}

	if m.status != "" {
		view += "\n" + successStyle.Render(m.status) + "\n"
	}
	if m.error != "" {
		view += "\n" + errorStyle.Render(m.error) + "\n"
	}

	view += "\nPress 'r' to refresh, 's' to change sort, '/' to filter by state, 'e' to export CSV, 'q' to quit"

	return docStyle.Render(view)
}

// Custom message types for the tea.Model
type leadsMsg struct {
	leads *models.LeadsResponse
}

type errorMsg struct {
	err string
}

type exportedMsg struct {
	path string
}

// fetchLeads retrieves the lead board from the API
func fetchLeads(client *ApiClient, state, sortBy string) tea.Cmd {
	return func() tea.Msg {
		leads, err := client.GetLeads(state, sortBy, "desc", 1, 50)
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching leads: %v", err)}
		}
		return leadsMsg{leads: leads}
	}
}

// exportLeads downloads the current lead board as CSV
func exportLeads(client *ApiClient, state, sortBy string) tea.Cmd {
	return func() tea.Msg {
		path := fmt.Sprintf("leads-%s.csv", time.Now().Format("2006-01-02"))
		if err := client.ExportLeadsCSV(state, sortBy, "desc", path); err != nil {
			return errorMsg{err: fmt.Sprintf("Error exporting leads: %v", err)}
		}
		return exportedMsg{path: path}
	}
}

// convertLeadsToRows converts API lead items to table rows
func convertLeadsToRows(items []models.LeadItem) []table.Row {
	rows := make([]table.Row, len(items))
	for i, lead := range items {
		rating := "-"
		if lead.Rating != nil {
			rating = fmt.Sprintf("%.1f", *lead.Rating)
		}

		website := "none"
		if lead.WebsiteURL != "" {
			website = lead.Platform
			if lead.AuditError != "" {
				website = "broken"
			}
		}

		rows[i] = table.Row{
			lead.Name,
			lead.City,
			lead.State,
			fmt.Sprintf("%d", lead.LeadScore),
			rating,
			website,
			fmt.Sprintf("$%d", lead.EstimatedMonthlySpend),
		}
	}
	return rows
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v", err)
		os.Exit(1)
	}
}
