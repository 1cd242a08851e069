package tui

import (
	"fmt"
	"strings"
)

// renderDashboardPane renders the aggregate stats pane
func (m Model) renderDashboardPane() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Dashboard"))
	b.WriteString("\n\n")

	switch {
	case m.loadingStats:
		b.WriteString(mutedStyle.Render("Loading stats..."))
	case m.statsErr != nil:
		b.WriteString(errorStyle.Render("Failed to load stats: " + m.statsErr.Error()))
	case m.stats == nil:
		b.WriteString(mutedStyle.Render("No stats available"))
	default:
		b.WriteString(labelStyle.Render("Total sessions: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%d", m.stats.TotalSessions)))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Average rating: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.1f", m.stats.AvgRating)))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Favorite spot:  "))
		b.WriteString(valueStyle.Render(m.stats.FavoriteSpot))
		b.WriteString("\n\n")

		b.WriteString(labelStyle.Render("Recent sessions"))
		b.WriteString("\n")
		if len(m.stats.RecentSessions) == 0 {
			b.WriteString(mutedStyle.Render("  none yet"))
		}
		for _, s := range m.stats.RecentSessions {
			rating := "-"
			if s.Rating != nil {
				rating = fmt.Sprintf("%d/10", *s.Rating)
			}
			spot := s.Spot
			if spot == "" {
				spot = "(unknown spot)"
			}
			b.WriteString(valueStyle.Render(fmt.Sprintf("  %s  %s  %s", s.Date, spot, rating)))
			b.WriteString("\n")
		}
	}

	return paneStyle.Render(b.String())
}
