package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"onewave/route-compass/internal/models"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	mu      sync.Mutex
	users   map[uuid.UUID]*models.User
	details map[uuid.UUID]*models.UserDetails
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:   make(map[uuid.UUID]*models.User),
		details: make(map[uuid.UUID]*models.UserDetails),
	}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByID(id uuid.UUID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ExistsByEmail(email string) (bool, error) {
	user, err := f.FindByEmail(email)
	return user != nil, err
}

func (f *fakeUserRepo) Update(user *models.User) error {
	return f.Create(user)
}

func (f *fakeUserRepo) CreateDetails(details *models.UserDetails) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *details
	f.details[details.UserID] = &copied
	return nil
}

func (f *fakeUserRepo) FindDetailsByUser(userID uuid.UUID) (*models.UserDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	details, ok := f.details[userID]
	if !ok {
		return nil, nil
	}
	copied := *details
	return &copied, nil
}

func (f *fakeUserRepo) UpdateDetails(details *models.UserDetails) error {
	return f.CreateDetails(details)
}

type fakeRouteRepo struct {
	routes []models.Route
}

func (f *fakeRouteRepo) Create(route *models.Route) error {
	f.routes = append(f.routes, *route)
	return nil
}

func (f *fakeRouteRepo) FindAll() ([]models.Route, error) {
	return append([]models.Route(nil), f.routes...), nil
}

func (f *fakeRouteRepo) FindFiltered(job, background string) ([]models.Route, error) {
	var out []models.Route
	for _, route := range f.routes {
		if job != "" && string(route.Job) != job {
			continue
		}
		if background != "" && string(route.Background) != background {
			continue
		}
		out = append(out, route)
	}
	return out, nil
}

func (f *fakeRouteRepo) FindByID(id uint) (*models.Route, error) {
	for i := range f.routes {
		if f.routes[i].ID == id {
			copied := f.routes[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeRouteRepo) Count() (int64, error) {
	return int64(len(f.routes)), nil
}

type fakeAnalysisRepo struct {
	mu      sync.Mutex
	results []models.AnalysisResult
}

func (f *fakeAnalysisRepo) Create(result *models.AnalysisResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results = append(f.results, *result)
	return nil
}

func (f *fakeAnalysisRepo) FindLatestByUser(userID uuid.UUID) (*models.AnalysisResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var latest *models.AnalysisResult
	for i := range f.results {
		if f.results[i].UserID != userID {
			continue
		}
		if latest == nil || f.results[i].CreatedAt.After(latest.CreatedAt) {
			latest = &f.results[i]
		}
	}
	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

func (f *fakeAnalysisRepo) FindPageByUser(userID uuid.UUID, page, size int) ([]models.AnalysisResult, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []models.AnalysisResult
	for i := len(f.results) - 1; i >= 0; i-- {
		if f.results[i].UserID == userID {
			all = append(all, f.results[i])
		}
	}
	total := int64(len(all))
	start := page * size
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (f *fakeAnalysisRepo) DeleteAllByUser(userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var kept []models.AnalysisResult
	for _, result := range f.results {
		if result.UserID != userID {
			kept = append(kept, result)
		}
	}
	f.results = kept
	return nil
}

func (f *fakeAnalysisRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.results)
}

// fakeInsightService counts invocations and can be told to fail.
type fakeInsightService struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeInsightService) GenerateInsight(ctx context.Context, profile *models.UserDetails, route *models.Route, similarity int) (*Insight, error) {
	f.mu.Lock()
	f.calls++
	err := f.err
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return &Insight{
		Reason:          fmt.Sprintf("route %d matches at %d%%", route.ID, similarity),
		Strengths:       []string{"shared stack", "bootcamp experience"},
		Weaknesses:      []string{"fewer projects", "no internship"},
		Recommendations: []string{"ship one more project", "contribute to open source", "practice interviews"},
	}, nil
}

func (f *fakeInsightService) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeGeminiService returns a canned response or error for insight tests.
type fakeGeminiService struct {
	response   string
	err        error
	lastPrompt string
}

func (f *fakeGeminiService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}
