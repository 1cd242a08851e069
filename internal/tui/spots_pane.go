package tui

import (
	"fmt"
	"strings"
)

// renderSpotsPane renders the active spot list
func (m Model) renderSpotsPane() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Surf Spots"))
	b.WriteString("\n\n")

	switch {
	case m.loadingSpots:
		b.WriteString(mutedStyle.Render("Loading spots..."))
	case m.spotsErr != nil:
		b.WriteString(errorStyle.Render("Failed to load spots: " + m.spotsErr.Error()))
	case len(m.spots) == 0:
		b.WriteString(mutedStyle.Render("No spots yet. Press n to add one."))
	default:
		for _, s := range m.spots {
			b.WriteString(valueStyle.Render(s.Name))
			b.WriteString("\n")
			b.WriteString(mutedStyle.Render(fmt.Sprintf("  %s break · %s · %.4f, %.4f",
				s.BreakType, s.SkillRequirement, s.Latitude, s.Longitude)))
			b.WriteString("\n")
			b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d sessions, avg rating %.1f",
				s.TotalSessions, s.AverageRating)))
			b.WriteString("\n\n")
		}
	}

	return paneStyle.Render(strings.TrimRight(b.String(), "\n"))
}
