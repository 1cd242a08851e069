package sqlite_test

import (
	"context"
	"strings"
	"testing"

	dbfs "github.com/kainoa/surftrack/db"
	dbpkg "github.com/kainoa/surftrack/internal/db"
	sqlite "github.com/kainoa/surftrack/internal/repository/sqlite"
	"github.com/kainoa/surftrack/pkg/models"
)

func setupRepo(t *testing.T) (*sqlite.SQLiteRepo, func()) {
	t.Helper()
	ctx := context.Background()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	d, err := dbpkg.New(ctx, dsn, dbpkg.PoolConfig{})
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}

	if err := dbpkg.Migrate(ctx, d, dbfs.Migrations, dbfs.SeedFiles); err != nil {
		d.Close()
		t.Fatalf("migrate: %v", err)
	}

	repo := sqlite.New(d, nil)
	return repo, func() { d.Close() }
}

func int64ptr(v int64) *int64 { return &v }

func TestSpotCRUD(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	// nil spot should error
	if _, err := repo.CreateSpot(ctx, nil); err == nil {
		t.Fatalf("expected error when creating nil spot")
	}

	// non-existing ID should return nil, nil
	got, err := repo.GetSpotByID(ctx, 9999)
	if err != nil {
		t.Fatalf("expected no error for non-existing ID, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for non-existing ID got: %#v", got)
	}

	s := &models.SurfSpot{Name: "Trestles", Latitude: 33.38, Longitude: -117.59,
		BreakType: models.BreakPoint, SkillRequirement: models.SkillAdvanced, Notes: "lowers"}
	id, err := repo.CreateSpot(ctx, s)
	if err != nil {
		t.Fatalf("CreateSpot error: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected non-zero id")
	}

	got, err = repo.GetSpotByID(ctx, id)
	if err != nil {
		t.Fatalf("GetSpotByID error: %v", err)
	}
	if got == nil || got.Name != "Trestles" || got.BreakType != models.BreakPoint {
		t.Fatalf("unexpected spot: %#v", got)
	}
	if !got.IsActive {
		t.Fatalf("expected new spot active")
	}
	if got.UserID != 1 {
		t.Fatalf("expected owner 1 got %d", got.UserID)
	}

	got.Name = "Upper Trestles"
	if err := repo.UpdateSpot(ctx, got); err != nil {
		t.Fatalf("UpdateSpot error: %v", err)
	}
	updated, err := repo.GetSpotByID(ctx, id)
	if err != nil || updated == nil {
		t.Fatalf("reload after update: %v", err)
	}
	if updated.Name != "Upper Trestles" {
		t.Fatalf("expected updated name got %q", updated.Name)
	}

	if err := repo.DeactivateSpot(ctx, id); err != nil {
		t.Fatalf("DeactivateSpot error: %v", err)
	}
	spots, err := repo.ListActiveSpots(ctx)
	if err != nil {
		t.Fatalf("ListActiveSpots error: %v", err)
	}
	for _, sp := range spots {
		if sp.ID == id {
			t.Fatalf("deactivated spot still listed")
		}
	}
	// the row itself survives for session joins
	kept, err := repo.GetSpotByID(ctx, id)
	if err != nil || kept == nil {
		t.Fatalf("expected deactivated row to survive, got %v %v", kept, err)
	}
	if kept.IsActive {
		t.Fatalf("expected is_active false")
	}
}

func TestCreateSpotDefaults(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	id, err := repo.CreateSpot(ctx, &models.SurfSpot{Name: "Plain", Latitude: 1, Longitude: 2})
	if err != nil {
		t.Fatalf("CreateSpot error: %v", err)
	}
	got, err := repo.GetSpotByID(ctx, id)
	if err != nil || got == nil {
		t.Fatalf("reload: %v", err)
	}
	if got.BreakType != models.BreakBeach {
		t.Fatalf("expected default break type beach got %q", got.BreakType)
	}
	if got.SkillRequirement != models.SkillBeginner {
		t.Fatalf("expected default skill beginner got %q", got.SkillRequirement)
	}
}

func TestGetSpotIDByName(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	// seeded spot resolves
	id, err := repo.GetSpotIDByName(ctx, "Malibu Beach")
	if err != nil {
		t.Fatalf("GetSpotIDByName error: %v", err)
	}
	if id == nil {
		t.Fatalf("expected id for seeded spot")
	}

	// no match is nil, nil
	id, err = repo.GetSpotIDByName(ctx, "Atlantis")
	if err != nil {
		t.Fatalf("expected no error for missing spot, got %v", err)
	}
	if id != nil {
		t.Fatalf("expected nil id for missing spot got %d", *id)
	}
}

func TestSessionLifecycleMovesSpotCounters(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	malibuID, err := repo.GetSpotIDByName(ctx, "Malibu Beach")
	if err != nil || malibuID == nil {
		t.Fatalf("resolve Malibu Beach: %v", err)
	}
	veniceID, err := repo.GetSpotIDByName(ctx, "Venice Beach")
	if err != nil || veniceID == nil {
		t.Fatalf("resolve Venice Beach: %v", err)
	}

	id1, err := repo.CreateSession(ctx, &models.SurfSession{
		SurfSpotID:        malibuID,
		SessionDate:       "2026-08-01",
		PerformanceRating: int64ptr(6),
	})
	if err != nil {
		t.Fatalf("CreateSession error: %v", err)
	}
	_, err = repo.CreateSession(ctx, &models.SurfSession{
		SurfSpotID:        malibuID,
		SessionDate:       "2026-08-02",
		PerformanceRating: int64ptr(10),
	})
	if err != nil {
		t.Fatalf("CreateSession error: %v", err)
	}

	spot, err := repo.GetSpotByID(ctx, *malibuID)
	if err != nil || spot == nil {
		t.Fatalf("reload spot: %v", err)
	}
	if spot.TotalSessions != 2 {
		t.Fatalf("expected 2 sessions got %d", spot.TotalSessions)
	}
	if spot.AverageRating != 8 {
		t.Fatalf("expected average 8 got %v", spot.AverageRating)
	}

	// retargeting a session refreshes both spots
	sess, err := repo.GetSessionByID(ctx, id1)
	if err != nil || sess == nil {
		t.Fatalf("load session: %v", err)
	}
	sess.SurfSpotID = veniceID
	if err := repo.UpdateSession(ctx, sess); err != nil {
		t.Fatalf("UpdateSession error: %v", err)
	}

	malibu, _ := repo.GetSpotByID(ctx, *malibuID)
	if malibu.TotalSessions != 1 || malibu.AverageRating != 10 {
		t.Fatalf("expected 1 session avg 10 got %d/%v", malibu.TotalSessions, malibu.AverageRating)
	}
	venice, _ := repo.GetSpotByID(ctx, *veniceID)
	if venice.TotalSessions != 1 || venice.AverageRating != 6 {
		t.Fatalf("expected 1 session avg 6 got %d/%v", venice.TotalSessions, venice.AverageRating)
	}

	// deleting drops the counters back
	if err := repo.DeleteSession(ctx, id1); err != nil {
		t.Fatalf("DeleteSession error: %v", err)
	}
	venice, _ = repo.GetSpotByID(ctx, *veniceID)
	if venice.TotalSessions != 0 || venice.AverageRating != 0 {
		t.Fatalf("expected counters reset got %d/%v", venice.TotalSessions, venice.AverageRating)
	}

	gone, err := repo.GetSessionByID(ctx, id1)
	if err != nil {
		t.Fatalf("expected no error for deleted session, got %v", err)
	}
	if gone != nil {
		t.Fatalf("expected nil for deleted session got %#v", gone)
	}
}

func TestSessionNullSpotReference(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	id, err := repo.CreateSession(ctx, &models.SurfSession{
		SessionDate: "2026-08-03",
	})
	if err != nil {
		t.Fatalf("CreateSession error: %v", err)
	}

	got, err := repo.GetSessionByID(ctx, id)
	if err != nil || got == nil {
		t.Fatalf("load session: %v", err)
	}
	if got.SurfSpotID != nil {
		t.Fatalf("expected null spot reference got %v", *got.SurfSpotID)
	}
	if got.SpotName != nil {
		t.Fatalf("expected no joined name got %v", *got.SpotName)
	}
	if got.DurationMinutes != nil || got.PerformanceRating != nil {
		t.Fatalf("expected omitted numerics to stay null: %#v", got)
	}
}

func TestListSessionsOrdering(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	for _, date := range []string{"2026-07-01", "2026-07-20", "2026-07-10"} {
		if _, err := repo.CreateSession(ctx, &models.SurfSession{SessionDate: date}); err != nil {
			t.Fatalf("CreateSession: %v", err)
		}
	}

	sessions, err := repo.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions error: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("expected 3 sessions got %d", len(sessions))
	}
	want := []string{"2026-07-20", "2026-07-10", "2026-07-01"}
	for i, w := range want {
		if sessions[i].SessionDate != w {
			t.Fatalf("position %d: expected %s got %s", i, w, sessions[i].SessionDate)
		}
	}
}

func TestDashboardStats(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	// empty history falls back to the placeholder
	stats, err := repo.DashboardStats(ctx, 1)
	if err != nil {
		t.Fatalf("DashboardStats error: %v", err)
	}
	if stats.TotalSessions != 0 || stats.AvgRating != 0 {
		t.Fatalf("expected zeroes got %#v", stats)
	}
	if stats.FavoriteSpot != sqlite.NoSessionsPlaceholder {
		t.Fatalf("expected placeholder favorite got %q", stats.FavoriteSpot)
	}
	if stats.RecentSessions == nil || len(stats.RecentSessions) != 0 {
		t.Fatalf("expected empty non-nil recent list got %#v", stats.RecentSessions)
	}

	malibuID, _ := repo.GetSpotIDByName(ctx, "Malibu Beach")
	veniceID, _ := repo.GetSpotIDByName(ctx, "Venice Beach")
	history := []models.SurfSession{
		{SurfSpotID: malibuID, SessionDate: "2026-08-01", PerformanceRating: int64ptr(4)},
		{SurfSpotID: malibuID, SessionDate: "2026-08-02", PerformanceRating: int64ptr(8)},
		{SurfSpotID: veniceID, SessionDate: "2026-08-03", PerformanceRating: int64ptr(6)},
		{SurfSpotID: malibuID, SessionDate: "2026-08-04", PerformanceRating: int64ptr(10)},
	}
	for i := range history {
		if _, err := repo.CreateSession(ctx, &history[i]); err != nil {
			t.Fatalf("CreateSession: %v", err)
		}
	}

	stats, err = repo.DashboardStats(ctx, 1)
	if err != nil {
		t.Fatalf("DashboardStats error: %v", err)
	}
	if stats.TotalSessions != 4 {
		t.Fatalf("expected 4 sessions got %d", stats.TotalSessions)
	}
	if stats.AvgRating != 7 {
		t.Fatalf("expected avg 7 got %v", stats.AvgRating)
	}
	if stats.FavoriteSpot != "Malibu Beach" {
		t.Fatalf("expected favorite Malibu Beach got %q", stats.FavoriteSpot)
	}
	if len(stats.RecentSessions) != 3 {
		t.Fatalf("expected 3 recent got %d", len(stats.RecentSessions))
	}
	if stats.RecentSessions[0].Date != "2026-08-04" {
		t.Fatalf("expected newest first got %s", stats.RecentSessions[0].Date)
	}
	if stats.RecentSessions[0].Spot != "Malibu Beach" {
		t.Fatalf("expected joined name got %q", stats.RecentSessions[0].Spot)
	}
}

func TestUserRepo(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	// the migration seeds the local account
	u, err := repo.GetUserByID(ctx, 1)
	if err != nil {
		t.Fatalf("GetUserByID error: %v", err)
	}
	if u == nil || u.Email != "surfer@localhost" {
		t.Fatalf("unexpected seeded user: %#v", u)
	}
	if u.PasswordHash != "" {
		t.Fatalf("expected empty password hash on seeded user")
	}

	if err := repo.SetUserPassword(ctx, 1, "hash-value"); err != nil {
		t.Fatalf("SetUserPassword error: %v", err)
	}
	u, err = repo.GetUserByEmail(ctx, "surfer@localhost")
	if err != nil || u == nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if u.PasswordHash != "hash-value" {
		t.Fatalf("expected stored hash got %q", u.PasswordHash)
	}

	// unknown address is nil, nil
	missing, err := repo.GetUserByEmail(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("expected no error for unknown email, got %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown email got %#v", missing)
	}

	id, err := repo.CreateUser(ctx, &models.User{Name: "Kai", Email: "kai@example.com"})
	if err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}
	if id <= 1 {
		t.Fatalf("expected fresh id got %d", id)
	}
}
