package db

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/qri-io/jsonschema"
)

// Migrate applies migrations and optional seed files found in the repository.
// It creates a `schema_migrations` table to track applied migrations and applies
// any SQL files in `db/migrations/` that have not yet been recorded. Seed files
// in seedFS are applied idempotently.
func Migrate(ctx context.Context, d *DB, migrationFS embed.FS, seedFS embed.FS) error {
	// ensure migrations table exists
	if _, err := d.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied INTEGER NOT NULL)`); err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}
	// embedded migrations are provided under "migrations/..." in the top-level db package
	migDir := "migrations"

	entries, err := fs.ReadDir(migrationFS, migDir)
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	// collect .sql files and sort
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(strings.ToLower(name), ".sql") {
			files = append(files, name)
		}
	}
	sort.Strings(files)

	for _, fname := range files {
		// use filename (without extension) as migration version key
		version := strings.TrimSuffix(fname, path.Ext(fname))

		var count int
		row := d.QueryRow(ctx, `SELECT COUNT(1) FROM schema_migrations WHERE version = ?`, version)
		if err := row.Scan(&count); err != nil {
			return fmt.Errorf("scan migration applied count: %w", err)
		}
		if count > 0 {
			// already applied
			continue
		}

		p := path.Join(migDir, fname)
		b, err := fs.ReadFile(migrationFS, p)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", fname, err)
		}
		if _, err := d.Exec(ctx, string(b)); err != nil {
			return fmt.Errorf("exec migration %s: %w", fname, err)
		}

		if _, err := d.Exec(ctx, `INSERT INTO schema_migrations (version, applied) VALUES (?, strftime('%s','now'))`, version); err != nil {
			return fmt.Errorf("record migration %s: %w", fname, err)
		}
	}

	return seedSpots(ctx, d, seedFS)
}

type seedSpot struct {
	Name             string  `json:"name"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	BreakType        string  `json:"break_type"`
	SkillRequirement string  `json:"skill_requirement"`
	Notes            string  `json:"notes"`
}

// seedSpots loads the demo spot list, validates it against the embedded JSON
// schema and inserts any spot whose name is not present yet. Missing seed
// files are not an error; a seed file that fails validation is.
func seedSpots(ctx context.Context, d *DB, seedFS embed.FS) error {
	data, err := fs.ReadFile(seedFS, path.Join("seed", "spots.json"))
	if err != nil {
		return nil
	}

	schemaData, err := fs.ReadFile(seedFS, path.Join("seed", "spots_schema.json"))
	if err != nil {
		return fmt.Errorf("read seed schema: %w", err)
	}
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(schemaData, rs); err != nil {
		return fmt.Errorf("compile seed schema: %w", err)
	}
	verrs, err := rs.ValidateBytes(ctx, data)
	if err != nil {
		return fmt.Errorf("validate seed spots: %w", err)
	}
	if len(verrs) > 0 {
		return fmt.Errorf("seed spots do not match schema: %s", verrs[0].Error())
	}

	var spots []seedSpot
	if err := json.Unmarshal(data, &spots); err != nil {
		return fmt.Errorf("parse seed spots: %w", err)
	}

	for _, s := range spots {
		breakType := s.BreakType
		if breakType == "" {
			breakType = "beach"
		}
		skill := s.SkillRequirement
		if skill == "" {
			skill = "beginner"
		}
		_, err := d.Exec(ctx, `
			INSERT INTO surf_spots (user_id, name, latitude, longitude, break_type, skill_requirement, notes)
			SELECT 1, ?, ?, ?, ?, ?, ?
			WHERE NOT EXISTS (SELECT 1 FROM surf_spots WHERE name = ?)`,
			s.Name, s.Latitude, s.Longitude, breakType, skill, s.Notes, s.Name)
		if err != nil {
			return fmt.Errorf("seed spot %q: %w", s.Name, err)
		}
	}

	return nil
}
