package sqlite

import (
	"context"

	"github.com/kainoa/surftrack/pkg/models"
)

// NoSessionsPlaceholder is the favourite-spot fallback when the user has no
// session history yet.
const NoSessionsPlaceholder = "No sessions yet"

func (r *SQLiteRepo) DashboardStats(ctx context.Context, userID int64) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{RecentSessions: []models.RecentSession{}}

	row := r.conn.QueryRow(ctx, `
		SELECT
			COUNT(*) AS total_sessions,
			COALESCE(AVG(performance_rating), 0) AS avg_rating,
			COALESCE((SELECT sp.name FROM surf_spots sp
				JOIN surf_sessions ss ON sp.id = ss.surf_spot_id
				WHERE ss.user_id = ?
				GROUP BY sp.name
				ORDER BY COUNT(*) DESC
				LIMIT 1), ?) AS favorite_spot
		FROM surf_sessions
		WHERE user_id = ?`,
		userID, NoSessionsPlaceholder, userID)
	if err := row.Scan(&stats.TotalSessions, &stats.AvgRating, &stats.FavoriteSpot); err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryRows(ctx, `
		SELECT ss.id, COALESCE(sp.name, '') AS spot_name, ss.session_date, ss.performance_rating
		FROM surf_sessions ss
		LEFT JOIN surf_spots sp ON ss.surf_spot_id = sp.id
		WHERE ss.user_id = ?
		ORDER BY ss.session_date DESC
		LIMIT 3`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rs models.RecentSession
		if err := rows.Scan(&rs.ID, &rs.Spot, &rs.Date, &rs.Rating); err != nil {
			return nil, err
		}
		stats.RecentSessions = append(stats.RecentSessions, rs)
	}

	return stats, rows.Err()
}
