package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kainoa/surftrack/pkg/models"
)

const sessionColumns = `s.id, s.user_id, s.surf_spot_id, s.session_date, s.duration_minutes,
	s.waves_caught, s.performance_rating, s.wave_quality_rating, s.session_notes, s.created_at,
	sp.name AS spot_name`

const sessionFrom = ` FROM surf_sessions s LEFT JOIN surf_spots sp ON s.surf_spot_id = sp.id`

func (r *SQLiteRepo) CreateSession(ctx context.Context, s *models.SurfSession) (int64, error) {
	if s == nil {
		return 0, fmt.Errorf("session is nil")
	}

	userID := s.UserID
	if userID <= 0 {
		userID = 1
	}

	res, err := r.conn.Exec(ctx, `
		INSERT INTO surf_sessions (
			user_id, surf_spot_id, session_date, duration_minutes,
			waves_caught, performance_rating, wave_quality_rating, session_notes
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		userID, s.SurfSpotID, s.SessionDate, s.DurationMinutes,
		s.WavesCaught, s.PerformanceRating, s.WaveQualityRating, s.SessionNotes)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if s.SurfSpotID != nil {
		if err := r.refreshSpotCounters(ctx, *s.SurfSpotID); err != nil {
			return 0, err
		}
	}

	return id, nil
}

func (r *SQLiteRepo) ListSessions(ctx context.Context) ([]models.SurfSession, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT `+sessionColumns+sessionFrom+` ORDER BY s.session_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.SurfSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) GetSessionByID(ctx context.Context, id int64) (*models.SurfSession, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+sessionColumns+sessionFrom+` WHERE s.id = ?`, id)
	s, err := scanSession(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

func (r *SQLiteRepo) ListSessionsBySpot(ctx context.Context, spotID int64) ([]models.SurfSession, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT `+sessionColumns+sessionFrom+` WHERE s.surf_spot_id = ? ORDER BY s.session_date DESC`, spotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.SurfSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateSession(ctx context.Context, s *models.SurfSession) error {
	if s == nil {
		return fmt.Errorf("session is nil")
	}

	// remember the previous spot so its counters can be refreshed when the
	// session moves to a different one
	var prevSpotID *int64
	row := r.conn.QueryRow(ctx, `SELECT surf_spot_id FROM surf_sessions WHERE id = ?`, s.ID)
	if err := row.Scan(&prevSpotID); err != nil && err != sql.ErrNoRows {
		return err
	}

	_, err := r.conn.Exec(ctx, `
		UPDATE surf_sessions
		SET surf_spot_id = ?, session_date = ?, duration_minutes = ?, waves_caught = ?,
		    performance_rating = ?, wave_quality_rating = ?, session_notes = ?
		WHERE id = ?`,
		s.SurfSpotID, s.SessionDate, s.DurationMinutes, s.WavesCaught,
		s.PerformanceRating, s.WaveQualityRating, s.SessionNotes, s.ID)
	if err != nil {
		return err
	}

	if prevSpotID != nil {
		if err := r.refreshSpotCounters(ctx, *prevSpotID); err != nil {
			return err
		}
	}
	if s.SurfSpotID != nil && (prevSpotID == nil || *prevSpotID != *s.SurfSpotID) {
		if err := r.refreshSpotCounters(ctx, *s.SurfSpotID); err != nil {
			return err
		}
	}

	return nil
}

func (r *SQLiteRepo) DeleteSession(ctx context.Context, id int64) error {
	var spotID *int64
	row := r.conn.QueryRow(ctx, `SELECT surf_spot_id FROM surf_sessions WHERE id = ?`, id)
	if err := row.Scan(&spotID); err != nil {
		if err == sql.ErrNoRows {
			return nil
		}
		return err
	}

	if _, err := r.conn.Exec(ctx, `DELETE FROM surf_sessions WHERE id = ?`, id); err != nil {
		return err
	}

	if spotID != nil {
		return r.refreshSpotCounters(ctx, *spotID)
	}
	return nil
}

// refreshSpotCounters recomputes the derived total_sessions and average_rating
// columns for one spot in a single statement.
func (r *SQLiteRepo) refreshSpotCounters(ctx context.Context, spotID int64) error {
	_, err := r.conn.Exec(ctx, `
		UPDATE surf_spots
		SET total_sessions = (SELECT COUNT(*) FROM surf_sessions WHERE surf_spot_id = ?),
		    average_rating = (SELECT COALESCE(AVG(performance_rating), 0) FROM surf_sessions WHERE surf_spot_id = ?)
		WHERE id = ?`,
		spotID, spotID, spotID)
	return err
}

func scanSession(sc scanner) (*models.SurfSession, error) {
	var s models.SurfSession
	if err := sc.Scan(
		&s.ID, &s.UserID, &s.SurfSpotID, &s.SessionDate, &s.DurationMinutes,
		&s.WavesCaught, &s.PerformanceRating, &s.WaveQualityRating,
		&s.SessionNotes, &s.CreatedAt, &s.SpotName,
	); err != nil {
		return nil, err
	}
	return &s, nil
}
