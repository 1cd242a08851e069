package models

// Domain models matching the database schema in db/migrations/0001_init.sql

// BreakType is the physical category of wave-breaking feature at a spot.
type BreakType string

const (
	BreakBeach      BreakType = "beach"
	BreakPoint      BreakType = "point"
	BreakReef       BreakType = "reef"
	BreakRiverMouth BreakType = "river_mouth"
	BreakJetty      BreakType = "jetty"
	BreakShore      BreakType = "shore"
	BreakSandbar    BreakType = "sandbar"
)

// SkillRequirement is the minimum rider proficiency tier suited to a spot.
type SkillRequirement string

const (
	SkillBeginner     SkillRequirement = "beginner"
	SkillIntermediate SkillRequirement = "intermediate"
	SkillAdvanced     SkillRequirement = "advanced"
	SkillExpert       SkillRequirement = "expert"
)

// BreakTypes lists every valid break type, in display order.
func BreakTypes() []BreakType {
	return []BreakType{BreakBeach, BreakPoint, BreakReef, BreakRiverMouth, BreakJetty, BreakShore, BreakSandbar}
}

// SkillRequirements lists every valid skill tier, easiest first.
func SkillRequirements() []SkillRequirement {
	return []SkillRequirement{SkillBeginner, SkillIntermediate, SkillAdvanced, SkillExpert}
}

type User struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	CreatedAt    int64  `json:"created_at" db:"created_at"`
}

// SurfSpot rows serialize with their snake_case column names, as stored.
// TotalSessions and AverageRating are maintained by the repository on every
// session write and must not be set by clients.
type SurfSpot struct {
	ID               int64            `json:"id" db:"id"`
	UserID           int64            `json:"user_id" db:"user_id"`
	Name             string           `json:"name" db:"name"`
	Latitude         float64          `json:"latitude" db:"latitude"`
	Longitude        float64          `json:"longitude" db:"longitude"`
	BreakType        BreakType        `json:"break_type" db:"break_type"`
	SkillRequirement SkillRequirement `json:"skill_requirement" db:"skill_requirement"`
	Notes            string           `json:"notes" db:"notes"`
	TotalSessions    int64            `json:"total_sessions" db:"total_sessions"`
	AverageRating    float64          `json:"average_rating" db:"average_rating"`
	IsActive         bool             `json:"is_active" db:"is_active"`
	CreatedAt        int64            `json:"created_at" db:"created_at"`
}

// SurfSession references its spot through a nullable surf_spot_id: a session
// logged against an unknown spot name keeps a NULL reference instead of
// failing. SpotName is populated from the join when listing.
type SurfSession struct {
	ID                int64   `json:"id" db:"id"`
	UserID            int64   `json:"user_id" db:"user_id"`
	SurfSpotID        *int64  `json:"surf_spot_id" db:"surf_spot_id"`
	SessionDate       string  `json:"session_date" db:"session_date"`
	DurationMinutes   *int64  `json:"duration_minutes" db:"duration_minutes"`
	WavesCaught       *int64  `json:"waves_caught" db:"waves_caught"`
	PerformanceRating *int64  `json:"performance_rating" db:"performance_rating"`
	WaveQualityRating *int64  `json:"wave_quality_rating" db:"wave_quality_rating"`
	SessionNotes      string  `json:"session_notes" db:"session_notes"`
	CreatedAt         int64   `json:"created_at" db:"created_at"`
	SpotName          *string `json:"spot_name,omitempty" db:"-"`
}

// WeatherCondition is a display-only placeholder: values are synthesized, not
// read from an external feed, and never persisted.
type WeatherCondition struct {
	ID            int64   `json:"id"`
	SpotName      string  `json:"spot_name"`
	WaveHeight    float64 `json:"wave_height"`
	WavePeriod    int     `json:"wave_period"`
	WindSpeed     float64 `json:"wind_speed"`
	WindDirection string  `json:"wind_direction"`
	TideHeight    float64 `json:"tide_height"`
	WaterTemp     float64 `json:"water_temp"`
	Timestamp     string  `json:"timestamp"`
}

// DashboardStats is derived from session history, never stored. Its JSON
// field names are camelCase, unlike row payloads.
type DashboardStats struct {
	TotalSessions  int64           `json:"totalSessions"`
	AvgRating      float64         `json:"avgRating"`
	FavoriteSpot   string          `json:"favoriteSpot"`
	RecentSessions []RecentSession `json:"recentSessions"`
}

type RecentSession struct {
	ID     int64  `json:"id"`
	Spot   string `json:"spot"`
	Date   string `json:"date"`
	Rating *int64 `json:"rating"`
}

// DatabaseHealth is the health-check report for the pooled store connection.
type DatabaseHealth struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp,omitempty"`
	Error     string `json:"error,omitempty"`
}
