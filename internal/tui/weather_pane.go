package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kainoa/surftrack/internal/weather"
)

// renderWeatherPane renders synthesized conditions per spot plus a short
// outlook. Data is local, not fetched, so the pane only waits on the spot
// list.
func (m Model) renderWeatherPane() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Surf Conditions"))
	b.WriteString("\n\n")

	switch {
	case m.loadingSpots:
		b.WriteString(mutedStyle.Render("Loading spots..."))
	case m.spotsErr != nil:
		b.WriteString(errorStyle.Render("Failed to load spots: " + m.spotsErr.Error()))
	case len(m.spots) == 0:
		b.WriteString(mutedStyle.Render("Add a spot to see conditions."))
	default:
		names := make([]string, 0, len(m.spots))
		for _, s := range m.spots {
			names = append(names, s.Name)
		}

		for _, c := range weather.Conditions(names, m.now()) {
			quality := weather.QualityFor(c)
			b.WriteString(valueStyle.Render(c.SpotName))
			b.WriteString("  ")
			b.WriteString(qualityStyle(quality).Render(strings.ToUpper(string(quality))))
			b.WriteString("\n")
			b.WriteString(mutedStyle.Render(fmt.Sprintf("  %.1f ft @ %d sec · wind %.1f mph %s",
				c.WaveHeight, c.WavePeriod, c.WindSpeed, c.WindDirection)))
			b.WriteString("\n")
			b.WriteString(mutedStyle.Render(fmt.Sprintf("  tide %.1f ft · water %.1f°F",
				c.TideHeight, c.WaterTemp)))
			b.WriteString("\n\n")
		}

		b.WriteString(labelStyle.Render("Outlook"))
		b.WriteString("\n")
		for _, d := range weather.Forecast(3, m.now()) {
			b.WriteString(valueStyle.Render(fmt.Sprintf("  %-12s %.1f ft, wind %.0f mph",
				d.Label, d.WaveHeight, d.WindSpeed)))
			b.WriteString("\n")
		}
	}

	return paneStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func qualityStyle(q weather.Quality) lipgloss.Style {
	switch q {
	case weather.QualityExcellent:
		return qualityExcellentStyle
	case weather.QualityGood:
		return qualityGoodStyle
	case weather.QualityFair:
		return qualityFairStyle
	default:
		return qualityPoorStyle
	}
}
