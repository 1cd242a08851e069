// Package weather synthesizes surf conditions for display. There is no real
// forecast feed behind it: values are generated locally so the weather panes
// have something to render.
package weather

import (
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/kainoa/surftrack/pkg/models"
)

type Quality string

const (
	QualityExcellent Quality = "excellent"
	QualityGood      Quality = "good"
	QualityFair      Quality = "fair"
	QualityPoor      Quality = "poor"
)

const (
	DirectionOffshore   = "offshore"
	DirectionOnshore    = "onshore"
	DirectionCrossShore = "cross-shore"
)

// Score rates a condition with a fixed point rubric: +2 for wave height
// within [3,6] ft, +2 for wind at or under 10 mph, +2 for offshore wind,
// +1 for cross-shore.
func Score(c models.WeatherCondition) int {
	score := 0
	if c.WaveHeight >= 3 && c.WaveHeight <= 6 {
		score += 2
	}
	if c.WindSpeed <= 10 {
		score += 2
	}
	switch c.WindDirection {
	case DirectionOffshore:
		score += 2
	case DirectionCrossShore:
		score++
	}
	return score
}

// Rate maps a rubric score onto a quality label.
func Rate(score int) Quality {
	switch {
	case score >= 5:
		return QualityExcellent
	case score >= 3:
		return QualityGood
	case score >= 1:
		return QualityFair
	default:
		return QualityPoor
	}
}

// QualityFor scores and rates a condition in one step.
func QualityFor(c models.WeatherCondition) Quality {
	return Rate(Score(c))
}

// ForecastDay is one synthesized day of the outlook strip.
type ForecastDay struct {
	Label      string
	WaveHeight float64
	WindSpeed  float64
}

// Conditions synthesizes a current-conditions snapshot per spot name. Values
// are seeded from the spot name and the hour so a re-render within the same
// hour shows the same numbers.
func Conditions(spotNames []string, now time.Time) []models.WeatherCondition {
	hour := now.Truncate(time.Hour)
	out := make([]models.WeatherCondition, 0, len(spotNames))
	directions := []string{DirectionOffshore, DirectionOnshore, DirectionCrossShore}

	for i, name := range spotNames {
		rng := rand.New(rand.NewSource(seed(name, hour)))
		out = append(out, models.WeatherCondition{
			ID:            int64(i + 1),
			SpotName:      name,
			WaveHeight:    round1(2 + rng.Float64()*5),
			WavePeriod:    8 + rng.Intn(7),
			WindSpeed:     round1(4 + rng.Float64()*12),
			WindDirection: directions[rng.Intn(len(directions))],
			TideHeight:    round1(0.5 + rng.Float64()*2.5),
			WaterTemp:     round1(58 + rng.Float64()*14),
			Timestamp:     hour.Format("2006-01-02 15:04"),
		})
	}

	return out
}

// Forecast synthesizes the multi-day outlook shown under the condition cards.
func Forecast(days int, now time.Time) []ForecastDay {
	day := now.Truncate(24 * time.Hour)
	rng := rand.New(rand.NewSource(seed("forecast", day)))

	out := make([]ForecastDay, 0, days)
	for i := 0; i < days; i++ {
		label := day.AddDate(0, 0, i).Format("Mon Jan 2")
		switch i {
		case 0:
			label = "Today"
		case 1:
			label = "Tomorrow"
		}
		out = append(out, ForecastDay{
			Label:      label,
			WaveHeight: round1(3 + rng.Float64()*3),
			WindSpeed:  float64(5 + rng.Intn(10)),
		})
	}

	return out
}

func seed(name string, t time.Time) int64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return int64(h.Sum64()) ^ t.Unix()
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
