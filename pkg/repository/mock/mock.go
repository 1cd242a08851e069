package mock

import (
	"context"
	"sort"

	"github.com/kainoa/surftrack/pkg/models"
)

// Test helpers and mocks
type Mocks struct {
	SpotRepo    *SpotRepo
	SessionRepo *SessionRepo
	DashRepo    *DashboardRepo
	UserRepo    *UserRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		SpotRepo:    &SpotRepo{},
		SessionRepo: &SessionRepo{},
		DashRepo:    &DashboardRepo{},
		UserRepo:    &UserRepo{},
	}
}

type SpotRepo struct {
	Spots     []models.SurfSpot
	CreateErr error
	ListErr   error
	GetErr    error
	UpdateErr error
	nextID    int64
}

func (m *SpotRepo) CreateSpot(ctx context.Context, s *models.SurfSpot) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.nextID++
	s.ID = m.nextID
	m.Spots = append(m.Spots, *s)
	return s.ID, nil
}

func (m *SpotRepo) ListActiveSpots(ctx context.Context) ([]models.SurfSpot, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []models.SurfSpot
	for _, s := range m.Spots {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *SpotRepo) GetSpotByID(ctx context.Context, id int64) (*models.SurfSpot, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for i := range m.Spots {
		if m.Spots[i].ID == id {
			s := m.Spots[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (m *SpotRepo) GetSpotIDByName(ctx context.Context, name string) (*int64, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for i := range m.Spots {
		if m.Spots[i].Name == name {
			id := m.Spots[i].ID
			return &id, nil
		}
	}
	return nil, nil
}

func (m *SpotRepo) UpdateSpot(ctx context.Context, s *models.SurfSpot) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	for i := range m.Spots {
		if m.Spots[i].ID == s.ID {
			m.Spots[i] = *s
			return nil
		}
	}
	return nil
}

func (m *SpotRepo) DeactivateSpot(ctx context.Context, id int64) error {
	for i := range m.Spots {
		if m.Spots[i].ID == id {
			m.Spots[i].IsActive = false
		}
	}
	return nil
}

type SessionRepo struct {
	Sessions  []models.SurfSession
	CreateErr error
	ListErr   error
	GetErr    error
	UpdateErr error
	DeleteErr error
	nextID    int64
}

func (m *SessionRepo) CreateSession(ctx context.Context, s *models.SurfSession) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.nextID++
	s.ID = m.nextID
	m.Sessions = append(m.Sessions, *s)
	return s.ID, nil
}

func (m *SessionRepo) ListSessions(ctx context.Context) ([]models.SurfSession, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]models.SurfSession, len(m.Sessions))
	copy(out, m.Sessions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SessionDate > out[j].SessionDate
	})
	return out, nil
}

func (m *SessionRepo) GetSessionByID(ctx context.Context, id int64) (*models.SurfSession, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for i := range m.Sessions {
		if m.Sessions[i].ID == id {
			s := m.Sessions[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (m *SessionRepo) ListSessionsBySpot(ctx context.Context, spotID int64) ([]models.SurfSession, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []models.SurfSession
	for _, s := range m.Sessions {
		if s.SurfSpotID != nil && *s.SurfSpotID == spotID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *SessionRepo) UpdateSession(ctx context.Context, s *models.SurfSession) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	for i := range m.Sessions {
		if m.Sessions[i].ID == s.ID {
			m.Sessions[i] = *s
			return nil
		}
	}
	return nil
}

func (m *SessionRepo) DeleteSession(ctx context.Context, id int64) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	for i := range m.Sessions {
		if m.Sessions[i].ID == id {
			m.Sessions = append(m.Sessions[:i], m.Sessions[i+1:]...)
			return nil
		}
	}
	return nil
}

type DashboardRepo struct {
	Stats    *models.DashboardStats
	StatsErr error
}

func (m *DashboardRepo) DashboardStats(ctx context.Context, userID int64) (*models.DashboardStats, error) {
	if m.StatsErr != nil {
		return nil, m.StatsErr
	}
	if m.Stats != nil {
		return m.Stats, nil
	}
	return &models.DashboardStats{
		FavoriteSpot:   "No sessions yet",
		RecentSessions: []models.RecentSession{},
	}, nil
}

type UserRepo struct {
	Stored    *models.User
	CreateErr error
	GetErr    error
}

func (m *UserRepo) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.Stored = &models.User{ID: 1, Name: u.Name, Email: u.Email, PasswordHash: u.PasswordHash}
	return 1, nil
}

func (m *UserRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Stored != nil && m.Stored.ID == id {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Stored != nil && m.Stored.Email == email {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *UserRepo) SetUserPassword(ctx context.Context, id int64, hash string) error {
	if m.Stored != nil && m.Stored.ID == id {
		m.Stored.PasswordHash = hash
	}
	return nil
}
