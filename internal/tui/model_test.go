package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kainoa/surftrack/pkg/client"
	"github.com/kainoa/surftrack/pkg/models"
)

func newTestModel() Model {
	return NewModel(client.New("http://localhost:0"))
}

func TestNewModel(t *testing.T) {
	m := newTestModel()

	if m.tab != TabDashboard {
		t.Errorf("NewModel() tab = %v, want TabDashboard", m.tab)
	}
	if m.mode != ModeBrowse {
		t.Errorf("NewModel() mode = %v, want ModeBrowse", m.mode)
	}
	if !m.loadingStats || !m.loadingSpots || !m.loadingSessions {
		t.Error("NewModel() should start with every pane loading")
	}
}

func TestModel_Update_WindowSize(t *testing.T) {
	m := newTestModel()

	updatedModel, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updatedModel.(Model)

	if m.width != 120 || m.height != 40 {
		t.Errorf("After WindowSizeMsg, size = %dx%d, want 120x40", m.width, m.height)
	}
}

func TestModel_CtrlC_Quits(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("Expected Ctrl+C to return quit command")
	}
}

func TestModel_TabSwitching(t *testing.T) {
	m := newTestModel()

	updatedModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	m = updatedModel.(Model)
	if m.tab != TabSessions {
		t.Errorf("After '3', tab = %v, want TabSessions", m.tab)
	}

	updatedModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updatedModel.(Model)
	if m.tab != TabWeather {
		t.Errorf("After tab key, tab = %v, want TabWeather", m.tab)
	}

	// tab wraps around
	updatedModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updatedModel.(Model)
	if m.tab != TabDashboard {
		t.Errorf("After wrap, tab = %v, want TabDashboard", m.tab)
	}
}

func TestModel_SpotsFetchedMsg(t *testing.T) {
	m := newTestModel()

	updatedModel, _ := m.Update(spotsFetchedMsg{spots: []models.SurfSpot{{ID: 1, Name: "Malibu Beach"}}})
	m = updatedModel.(Model)

	if m.loadingSpots {
		t.Error("loadingSpots should clear after fetch")
	}
	if len(m.spots) != 1 || m.spots[0].Name != "Malibu Beach" {
		t.Errorf("unexpected spots: %#v", m.spots)
	}
	if m.spotsErr != nil {
		t.Errorf("unexpected error: %v", m.spotsErr)
	}
}

func TestModel_FetchErrorKeepsPaneUsable(t *testing.T) {
	m := newTestModel()

	updatedModel, _ := m.Update(sessionsFetchedMsg{err: errors.New("connection refused")})
	m = updatedModel.(Model)

	if m.loadingSessions {
		t.Error("loadingSessions should clear on error")
	}
	if m.sessionsErr == nil {
		t.Error("expected stored fetch error")
	}

	m.tab = TabSessions
	view := m.View()
	if !strings.Contains(view, "connection refused") {
		t.Errorf("expected error surfaced in view, got: %s", view)
	}
}

func TestModel_OpenSpotFormOnlyFromSpotsTab(t *testing.T) {
	m := newTestModel()

	// 'n' on the dashboard does nothing
	updatedModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = updatedModel.(Model)
	if m.mode != ModeBrowse {
		t.Errorf("mode = %v, want ModeBrowse", m.mode)
	}

	m.tab = TabSpots
	updatedModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = updatedModel.(Model)
	if m.mode != ModeSpotForm {
		t.Errorf("mode = %v, want ModeSpotForm", m.mode)
	}

	// esc backs out and resets
	updatedModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updatedModel.(Model)
	if m.mode != ModeBrowse {
		t.Errorf("after esc, mode = %v, want ModeBrowse", m.mode)
	}
}

func TestModel_SpotFormValidation(t *testing.T) {
	m := newTestModel()
	m.tab = TabSpots
	m.mode = ModeSpotForm

	// jump to the last field and submit with everything blank
	for !m.spotForm.onLastField() {
		m.spotForm.next()
	}
	updatedModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updatedModel.(Model)

	if cmd != nil {
		t.Error("expected no submit command for invalid form")
	}
	if m.formErr == nil {
		t.Error("expected validation error for empty form")
	}
	if m.mode != ModeSpotForm {
		t.Errorf("mode = %v, want ModeSpotForm", m.mode)
	}
}

func TestModel_SpotCreatedRefreshesList(t *testing.T) {
	m := newTestModel()
	m.mode = ModeSpotForm

	updatedModel, cmd := m.Update(spotCreatedMsg{spot: &models.SurfSpot{ID: 9, Name: "Rincon"}})
	m = updatedModel.(Model)

	if m.mode != ModeBrowse {
		t.Errorf("mode = %v, want ModeBrowse after create", m.mode)
	}
	if !m.loadingSpots {
		t.Error("expected spot list refetch in flight")
	}
	if cmd == nil {
		t.Error("expected refetch command")
	}
	if m.flash == "" {
		t.Error("expected confirmation flash")
	}
	if m.spotForm.inputs[spotFieldName].Value() != "" {
		t.Error("expected form reset after successful submit")
	}
}

func TestModel_SessionCreatedRefreshesEverything(t *testing.T) {
	m := newTestModel()
	m.mode = ModeSessionForm

	updatedModel, cmd := m.Update(sessionCreatedMsg{session: &models.SurfSession{ID: 3}})
	m = updatedModel.(Model)

	if m.mode != ModeBrowse {
		t.Errorf("mode = %v, want ModeBrowse after create", m.mode)
	}
	// session writes move dashboard stats and spot counters too
	if !m.loadingSessions || !m.loadingStats || !m.loadingSpots {
		t.Error("expected session, stats and spot refetches in flight")
	}
	if cmd == nil {
		t.Error("expected refetch command")
	}
}

func TestModel_CreateErrorStaysInForm(t *testing.T) {
	m := newTestModel()
	m.mode = ModeSessionForm
	m.submitting = true

	updatedModel, _ := m.Update(sessionCreatedMsg{err: errors.New("API returned status 500")})
	m = updatedModel.(Model)

	if m.mode != ModeSessionForm {
		t.Errorf("mode = %v, want ModeSessionForm on error", m.mode)
	}
	if m.submitting {
		t.Error("submitting should clear")
	}
	if m.formErr == nil {
		t.Error("expected form error")
	}
}

func TestView_RendersEveryTab(t *testing.T) {
	m := newTestModel()
	m.loadingStats = false
	m.loadingSpots = false
	m.loadingSessions = false
	m.stats = &models.DashboardStats{FavoriteSpot: "No sessions yet", RecentSessions: []models.RecentSession{}}
	m.spots = []models.SurfSpot{{ID: 1, Name: "Malibu Beach", BreakType: models.BreakPoint}}
	m.sessions = []models.SurfSession{{ID: 1, SessionDate: "2026-08-30"}}

	for tab, want := range map[Tab]string{
		TabDashboard: "No sessions yet",
		TabSpots:     "Malibu Beach",
		TabSessions:  "2026-08-30",
		TabWeather:   "Outlook",
	} {
		m.tab = tab
		view := m.View()
		if !strings.Contains(view, want) {
			t.Errorf("tab %v: expected view to contain %q", tab, want)
		}
	}
}
