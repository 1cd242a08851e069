package repository

import (
	"context"

	"github.com/kainoa/surftrack/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type UserRepo interface {
	CreateUser(ctx context.Context, u *models.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	SetUserPassword(ctx context.Context, id int64, hash string) error
}

type SpotRepo interface {
	CreateSpot(ctx context.Context, s *models.SurfSpot) (int64, error)
	// ListActiveSpots returns rows with is_active = 1 ordered by id ascending.
	ListActiveSpots(ctx context.Context) ([]models.SurfSpot, error)
	GetSpotByID(ctx context.Context, id int64) (*models.SurfSpot, error)
	// GetSpotIDByName resolves a spot by exact name match, first row wins.
	// A nil result with nil error means no spot carries that name.
	GetSpotIDByName(ctx context.Context, name string) (*int64, error)
	UpdateSpot(ctx context.Context, s *models.SurfSpot) error
	// DeactivateSpot soft-deletes: the row stays for session joins but stops
	// being listed.
	DeactivateSpot(ctx context.Context, id int64) error
}

type SessionRepo interface {
	CreateSession(ctx context.Context, s *models.SurfSession) (int64, error)
	// ListSessions returns every session joined with its spot name, most
	// recent session date first.
	ListSessions(ctx context.Context) ([]models.SurfSession, error)
	GetSessionByID(ctx context.Context, id int64) (*models.SurfSession, error)
	ListSessionsBySpot(ctx context.Context, spotID int64) ([]models.SurfSession, error)
	UpdateSession(ctx context.Context, s *models.SurfSession) error
	DeleteSession(ctx context.Context, id int64) error
}

type DashboardRepo interface {
	// DashboardStats aggregates session history for one user: total count,
	// average performance rating, most-surfed spot name and the three most
	// recent sessions.
	DashboardStats(ctx context.Context, userID int64) (*models.DashboardStats, error)
}
