// Package tui is the terminal front end: a tabbed view over the REST API with
// controlled forms for logging spots and sessions.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kainoa/surftrack/pkg/client"
	"github.com/kainoa/surftrack/pkg/models"
)

// Tab identifies the visible pane
type Tab int

const (
	TabDashboard Tab = iota
	TabSpots
	TabSessions
	TabWeather
)

var tabNames = []string{"Dashboard", "Spots", "Sessions", "Weather"}

// Mode distinguishes browsing from form entry
type Mode int

const (
	ModeBrowse Mode = iota
	ModeSpotForm
	ModeSessionForm
)

// Model represents the application's state
type Model struct {
	client *client.Client
	now    func() time.Time

	tab    Tab
	mode   Mode
	width  int
	height int

	// Dashboard
	stats        *models.DashboardStats
	loadingStats bool
	statsErr     error

	// Spots
	spots        []models.SurfSpot
	loadingSpots bool
	spotsErr     error

	// Sessions
	sessions        []models.SurfSession
	loadingSessions bool
	sessionsErr     error

	// Forms
	spotForm    spotForm
	sessionForm sessionForm
	formErr     error
	submitting  bool
	flash       string
}

// NewModel creates the application model backed by the given API client
func NewModel(c *client.Client) Model {
	return Model{
		client:          c,
		now:             time.Now,
		spotForm:        newSpotForm(),
		sessionForm:     newSessionForm(),
		loadingStats:    true,
		loadingSpots:    true,
		loadingSessions: true,
	}
}

// Init kicks off the initial data load for every tab
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		fetchDashboard(m.client),
		fetchSpots(m.client),
		fetchSessions(m.client),
		textinput.Blink,
	)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	switch msg := msg.(type) {
	case dashboardFetchedMsg:
		m.loadingStats = false
		m.stats = msg.stats
		m.statsErr = msg.err
		return m, nil

	case spotsFetchedMsg:
		m.loadingSpots = false
		m.spots = msg.spots
		m.spotsErr = msg.err
		return m, nil

	case sessionsFetchedMsg:
		m.loadingSessions = false
		m.sessions = msg.sessions
		m.sessionsErr = msg.err
		return m, nil

	case spotCreatedMsg:
		m.submitting = false
		if msg.err != nil {
			m.formErr = msg.err
			return m, nil
		}
		m.spotForm.reset()
		m.formErr = nil
		m.mode = ModeBrowse
		m.flash = "Spot added: " + msg.spot.Name
		m.loadingSpots = true
		return m, fetchSpots(m.client)

	case sessionCreatedMsg:
		m.submitting = false
		if msg.err != nil {
			m.formErr = msg.err
			return m, nil
		}
		m.sessionForm.reset()
		m.formErr = nil
		m.mode = ModeBrowse
		m.flash = "Session logged"
		m.loadingSessions = true
		m.loadingStats = true
		m.loadingSpots = true
		// session writes move spot counters and dashboard stats too
		return m, tea.Batch(
			fetchSessions(m.client),
			fetchDashboard(m.client),
			fetchSpots(m.client),
		)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch m.mode {
		case ModeBrowse:
			return m.handleBrowseKeys(keyMsg)
		case ModeSpotForm, ModeSessionForm:
			return m.handleFormKeys(keyMsg)
		}
	}

	return m, nil
}

func (m Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.flash = ""

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab":
		m.tab = (m.tab + 1) % Tab(len(tabNames))
		return m, nil

	case "1":
		m.tab = TabDashboard
		return m, nil
	case "2":
		m.tab = TabSpots
		return m, nil
	case "3":
		m.tab = TabSessions
		return m, nil
	case "4":
		m.tab = TabWeather
		return m, nil

	case "n":
		switch m.tab {
		case TabSpots:
			m.mode = ModeSpotForm
			m.formErr = nil
			return m, textinput.Blink
		case TabSessions:
			m.mode = ModeSessionForm
			m.formErr = nil
			return m, textinput.Blink
		}
		return m, nil

	case "r":
		return m.refreshCurrent()
	}

	return m, nil
}

func (m Model) refreshCurrent() (tea.Model, tea.Cmd) {
	switch m.tab {
	case TabDashboard:
		m.loadingStats = true
		return m, fetchDashboard(m.client)
	case TabSpots, TabWeather:
		m.loadingSpots = true
		return m, fetchSpots(m.client)
	case TabSessions:
		m.loadingSessions = true
		return m, fetchSessions(m.client)
	}
	return m, nil
}

func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	isSpot := m.mode == ModeSpotForm

	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		m.mode = ModeBrowse
		m.formErr = nil
		if isSpot {
			m.spotForm.reset()
		} else {
			m.sessionForm.reset()
		}
		return m, nil

	case tea.KeyShiftTab:
		if isSpot {
			m.spotForm.prev()
		} else {
			m.sessionForm.prev()
		}
		return m, nil

	case tea.KeyTab:
		if isSpot {
			m.spotForm.next()
		} else {
			m.sessionForm.next()
		}
		return m, nil

	case tea.KeyEnter:
		if isSpot {
			if !m.spotForm.onLastField() {
				m.spotForm.next()
				return m, nil
			}
			in, err := m.spotForm.input()
			if err != nil {
				m.formErr = err
				return m, nil
			}
			m.formErr = nil
			m.submitting = true
			return m, createSpot(m.client, in)
		}
		if !m.sessionForm.onLastField() {
			m.sessionForm.next()
			return m, nil
		}
		in, err := m.sessionForm.input()
		if err != nil {
			m.formErr = err
			return m, nil
		}
		m.formErr = nil
		m.submitting = true
		return m, createSession(m.client, in)
	}

	var cmd tea.Cmd
	if isSpot {
		cmd = m.spotForm.update(msg)
	} else {
		cmd = m.sessionForm.update(msg)
	}
	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	var body string
	switch m.mode {
	case ModeSpotForm:
		body = m.renderFormPane(m.spotForm.view())
	case ModeSessionForm:
		body = m.renderFormPane(m.sessionForm.view())
	default:
		switch m.tab {
		case TabDashboard:
			body = m.renderDashboardPane()
		case TabSpots:
			body = m.renderSpotsPane()
		case TabSessions:
			body = m.renderSessionsPane()
		case TabWeather:
			body = m.renderWeatherPane()
		}
	}
	b.WriteString(body)

	if m.flash != "" {
		b.WriteString("\n")
		b.WriteString(successStyle.Render(m.flash))
	}

	b.WriteString("\n")
	if m.mode == ModeBrowse {
		b.WriteString(helpStyle.Render("tab/1-4 switch · n new · r refresh · q quit"))
	}

	return b.String()
}

func (m Model) renderTabs() string {
	parts := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.tab && m.mode == ModeBrowse {
			parts = append(parts, activeTabStyle.Render(name))
		} else {
			parts = append(parts, tabStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderFormPane(content string) string {
	if m.formErr != nil {
		content += "\n" + errorStyle.Render("Error: "+m.formErr.Error())
	}
	if m.submitting {
		content += "\n" + mutedStyle.Render("Saving...")
	}
	return paneStyle.Render(content)
}
