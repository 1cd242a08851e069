package tui

import (
	"fmt"
	"strings"
)

// renderSessionsPane renders the session history, most recent first
func (m Model) renderSessionsPane() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Surf Sessions"))
	b.WriteString("\n\n")

	switch {
	case m.loadingSessions:
		b.WriteString(mutedStyle.Render("Loading sessions..."))
	case m.sessionsErr != nil:
		b.WriteString(errorStyle.Render("Failed to load sessions: " + m.sessionsErr.Error()))
	case len(m.sessions) == 0:
		b.WriteString(mutedStyle.Render("No sessions yet. Press n to log one."))
	default:
		for _, s := range m.sessions {
			spot := "(unknown spot)"
			if s.SpotName != nil && *s.SpotName != "" {
				spot = *s.SpotName
			}
			b.WriteString(valueStyle.Render(fmt.Sprintf("%s  %s", s.SessionDate, spot)))
			b.WriteString("\n")

			details := make([]string, 0, 3)
			if s.DurationMinutes != nil {
				details = append(details, fmt.Sprintf("%d min", *s.DurationMinutes))
			}
			if s.WavesCaught != nil {
				details = append(details, fmt.Sprintf("%d waves", *s.WavesCaught))
			}
			if s.PerformanceRating != nil {
				details = append(details, fmt.Sprintf("rated %d/10", *s.PerformanceRating))
			}
			if len(details) > 0 {
				b.WriteString(mutedStyle.Render("  " + strings.Join(details, " · ")))
				b.WriteString("\n")
			}
			if s.SessionNotes != "" {
				b.WriteString(mutedStyle.Render("  " + s.SessionNotes))
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}

	return paneStyle.Render(strings.TrimRight(b.String(), "\n"))
}
