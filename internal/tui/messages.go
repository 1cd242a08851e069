package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kainoa/surftrack/pkg/client"
	"github.com/kainoa/surftrack/pkg/models"
)

// Message types for async API calls

// dashboardFetchedMsg is sent when dashboard stats have been fetched
type dashboardFetchedMsg struct {
	stats *models.DashboardStats
	err   error
}

// spotsFetchedMsg is sent when the spot list has been fetched
type spotsFetchedMsg struct {
	spots []models.SurfSpot
	err   error
}

// sessionsFetchedMsg is sent when the session list has been fetched
type sessionsFetchedMsg struct {
	sessions []models.SurfSession
	err      error
}

// spotCreatedMsg is sent when a spot create call completes
type spotCreatedMsg struct {
	spot *models.SurfSpot
	err  error
}

// sessionCreatedMsg is sent when a session create call completes
type sessionCreatedMsg struct {
	session *models.SurfSession
	err     error
}

const requestTimeout = 10 * time.Second

// fetchDashboard loads dashboard stats in the background
func fetchDashboard(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		stats, err := c.Dashboard(ctx)
		return dashboardFetchedMsg{stats: stats, err: err}
	}
}

// fetchSpots loads the active spot list in the background
func fetchSpots(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		spots, err := c.ListSpots(ctx)
		return spotsFetchedMsg{spots: spots, err: err}
	}
}

// fetchSessions loads the session list in the background
func fetchSessions(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		sessions, err := c.ListSessions(ctx)
		return sessionsFetchedMsg{sessions: sessions, err: err}
	}
}

// createSpot submits a new spot in the background
func createSpot(c *client.Client, in client.CreateSpotInput) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		spot, err := c.CreateSpot(ctx, in)
		return spotCreatedMsg{spot: spot, err: err}
	}
}

// createSession submits a new session log in the background
func createSession(c *client.Client, in client.CreateSessionInput) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		session, err := c.CreateSession(ctx, in)
		return sessionCreatedMsg{session: session, err: err}
	}
}
