package server

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-advisor/internal/assistant"
	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/db"
	"github.com/jonathan/career-advisor/internal/discovery"
	"github.com/jonathan/career-advisor/internal/extract"
	"github.com/jonathan/career-advisor/internal/trends"
)

// fakeStore is an in-memory Store implementation for handler tests.
type fakeStore struct {
	users    map[uuid.UUID]*db.User
	byEmail  map[string]uuid.UUID
	analyses map[uuid.UUID][]byte
	roadmaps map[uuid.UUID][]byte
	progress map[uuid.UUID]*db.ProgressRecord
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    make(map[uuid.UUID]*db.User),
		byEmail:  make(map[string]uuid.UUID),
		analyses: make(map[uuid.UUID][]byte),
		roadmaps: make(map[uuid.UUID][]byte),
		progress: make(map[uuid.UUID]*db.ProgressRecord),
	}
}

func (f *fakeStore) CreateUser(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now()
	f.users[id] = &db.User{
		ID: id, Name: name, Email: email, PasswordHash: passwordHash,
		CreatedAt: now, UpdatedAt: now,
	}
	f.byEmail[email] = id
	return id, nil
}

func (f *fakeStore) GetUser(ctx context.Context, id uuid.UUID) (*db.User, error) {
	return f.users[id], nil
}

func (f *fakeStore) GetUserByEmail(ctx context.Context, email string) (*db.User, error) {
	id, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	return f.users[id], nil
}

func (f *fakeStore) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeStore) SaveAnalysis(ctx context.Context, userID uuid.UUID, analysis any) error {
	data, err := json.Marshal(analysis)
	if err != nil {
		return err
	}
	f.analyses[userID] = data
	return nil
}

func (f *fakeStore) LatestAnalysis(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	return f.analyses[userID], nil
}

func (f *fakeStore) SaveRoadmap(ctx context.Context, userID uuid.UUID, targetRole string, roadmap any) error {
	data, err := json.Marshal(roadmap)
	if err != nil {
		return err
	}
	f.roadmaps[userID] = data
	return nil
}

func (f *fakeStore) LatestRoadmap(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	return f.roadmaps[userID], nil
}

func (f *fakeStore) GetProgress(ctx context.Context, userID uuid.UUID) (*db.ProgressRecord, error) {
	return f.progress[userID], nil
}

func (f *fakeStore) SaveProgress(ctx context.Context, userID uuid.UUID, completedCourses []string, phaseTotals map[string]int) error {
	f.progress[userID] = &db.ProgressRecord{
		UserID:           userID,
		CompletedCourses: completedCourses,
		PhaseTotals:      phaseTotals,
		UpdatedAt:        time.Now(),
	}
	return nil
}

// testServerCatalog backs handler tests with a small fixed data set.
func testServerCatalog() *catalog.Catalog {
	return catalog.New(
		[]string{"python", "sql", "react", "docker", "javascript", "git"},
		[]catalog.RoleSkills{
			{Role: "Backend Developer", RequiredSkills: []string{"python", "sql", "docker", "git"}},
			{Role: "Frontend Developer", RequiredSkills: []string{"javascript", "react", "git"}},
		},
		map[string][]catalog.Course{
			"Backend Developer": {
				{Title: "Python for Everybody", Provider: "Coursera", DurationHours: 40, Rating: 4.8, Level: "Beginner"},
				{Title: "SQL Bootcamp", Provider: "Udemy", DurationHours: 20, Rating: 4.7, Level: "All Levels"},
			},
		},
		catalog.Fallbacks{
			GenericSkills: []string{"communication", "problem solving"},
			DefaultStats: catalog.StatsEntry{
				JobOpenings: 12000, AvgSalary: 120000, GrowthRate: 25, RemotePercentage: 65,
			},
			TopCompanies: []string{"Google", "Amazon"},
			TopLocations: []string{"Remote", "San Francisco, CA"},
		},
	)
}

// newTestServer builds a Server wired to in-memory fakes and no LLM.
func newTestServer(_ *testing.T, store Store) *Server {
	cat := testServerCatalog()

	jwtSvc := NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-key-for-jwt-signing-minimum-32-bytes",
		ExpirationHours: 24,
	})
	userSvc := NewUserService(store, &config.PasswordConfig{BcryptCost: 10})

	return &Server{
		store:       store,
		catalog:     cat,
		extractor:   extract.NewExtractor(cat.Skills()),
		trends:      trends.NewService(nil, cat),
		assistant:   assistant.NewService(nil, cat),
		discovery:   discovery.NewService(nil, cat),
		jwtService:  jwtSvc,
		userService: userSvc,
		authHandler: NewAuthHandler(userSvc, jwtSvc),
	}
}
