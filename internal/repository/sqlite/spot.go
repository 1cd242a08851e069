package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kainoa/surftrack/pkg/models"
)

const spotColumns = `id, user_id, name, latitude, longitude, break_type, skill_requirement,
	notes, total_sessions, average_rating, is_active, created_at`

func (r *SQLiteRepo) CreateSpot(ctx context.Context, s *models.SurfSpot) (int64, error) {
	if s == nil {
		return 0, fmt.Errorf("spot is nil")
	}

	breakType := s.BreakType
	if breakType == "" {
		breakType = models.BreakBeach
	}
	skill := s.SkillRequirement
	if skill == "" {
		skill = models.SkillBeginner
	}
	userID := s.UserID
	if userID <= 0 {
		userID = 1
	}

	res, err := r.conn.Exec(ctx, `
		INSERT INTO surf_spots (user_id, name, latitude, longitude, break_type, skill_requirement, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		userID, s.Name, s.Latitude, s.Longitude, breakType, skill, s.Notes)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) ListActiveSpots(ctx context.Context) ([]models.SurfSpot, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT `+spotColumns+` FROM surf_spots WHERE is_active = 1 ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.SurfSpot
	for rows.Next() {
		s, err := scanSpot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) GetSpotByID(ctx context.Context, id int64) (*models.SurfSpot, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+spotColumns+` FROM surf_spots WHERE id = ?`, id)
	s, err := scanSpot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

func (r *SQLiteRepo) GetSpotIDByName(ctx context.Context, name string) (*int64, error) {
	// first match wins; active spots are considered before deactivated ones
	row := r.conn.QueryRow(ctx, `SELECT id FROM surf_spots WHERE name = ? ORDER BY is_active DESC, id LIMIT 1`, name)
	var id int64
	if err := row.Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &id, nil
}

func (r *SQLiteRepo) UpdateSpot(ctx context.Context, s *models.SurfSpot) error {
	if s == nil {
		return fmt.Errorf("spot is nil")
	}

	_, err := r.conn.Exec(ctx, `
		UPDATE surf_spots
		SET name = ?, latitude = ?, longitude = ?, break_type = ?, skill_requirement = ?, notes = ?
		WHERE id = ?`,
		s.Name, s.Latitude, s.Longitude, s.BreakType, s.SkillRequirement, s.Notes, s.ID)
	return err
}

func (r *SQLiteRepo) DeactivateSpot(ctx context.Context, id int64) error {
	_, err := r.conn.Exec(ctx, `UPDATE surf_spots SET is_active = 0 WHERE id = ?`, id)
	return err
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSpot(sc scanner) (*models.SurfSpot, error) {
	var s models.SurfSpot
	if err := sc.Scan(
		&s.ID, &s.UserID, &s.Name, &s.Latitude, &s.Longitude,
		&s.BreakType, &s.SkillRequirement, &s.Notes,
		&s.TotalSessions, &s.AverageRating, &s.IsActive, &s.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}
