package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"onewave/route-compass/internal/models"
	"onewave/route-compass/internal/repositories"
)

type UserService interface {
	GetMe(userID uuid.UUID) (*models.UserResponse, error)
	// CompleteOnboarding creates the career profile exactly once.
	CompleteOnboarding(userID uuid.UUID, req *models.OnboardingRequest) error
	// UpdateProfile applies a partial edit and invalidates cached analyses,
	// so the next analysis request recomputes against the new profile.
	UpdateProfile(userID uuid.UUID, req *models.UserUpdateRequest) error
}

// analysisInvalidator is the slice of AnalyzerService the user flow needs.
type analysisInvalidator interface {
	Invalidate(userID uuid.UUID) error
}

type userService struct {
	userRepo    repositories.UserRepository
	invalidator analysisInvalidator
}

func NewUserService(userRepo repositories.UserRepository, invalidator analysisInvalidator) UserService {
	return &userService{
		userRepo:    userRepo,
		invalidator: invalidator,
	}
}

// GetMe implements UserService.
func (s *userService) GetMe(userID uuid.UUID) (*models.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	response := &models.UserResponse{
		ID:                  user.ID.String(),
		Email:               user.Email,
		Nickname:            user.Nickname,
		OnboardingCompleted: user.OnboardingCompleted,
	}

	details, err := s.userRepo.FindDetailsByUser(userID)
	if err != nil {
		return nil, err
	}
	if details != nil {
		response.Details = &models.UserDetailsResponse{
			Job:          string(details.Job),
			Background:   string(details.Background),
			CompanySizes: details.CompanySizeList(),
			Skills:       details.SkillList(),
			Projects:     details.Projects,
			Intern:       details.Intern,
			Bootcamp:     details.Bootcamp,
			Awards:       details.Awards,
		}
	}

	return response, nil
}

// CompleteOnboarding implements UserService.
func (s *userService) CompleteOnboarding(userID uuid.UUID, req *models.OnboardingRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.OnboardingCompleted {
		return ErrOnboardingDone
	}

	details := &models.UserDetails{
		UserID:       userID,
		Job:          models.Job(req.Job),
		Background:   models.Background(req.Background),
		CompanySizes: models.JoinCSV(req.CompanySizes),
		Skills:       models.JoinCSV(normalizeSkills(req.Skills)),
		Projects:     req.Projects,
		Intern:       req.Intern,
		Bootcamp:     req.Bootcamp,
		Awards:       req.Awards,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.userRepo.CreateDetails(details); err != nil {
		return err
	}

	user.OnboardingCompleted = true
	user.UpdatedAt = time.Now()
	return s.userRepo.Update(user)
}

// UpdateProfile implements UserService.
func (s *userService) UpdateProfile(userID uuid.UUID, req *models.UserUpdateRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if req.Nickname != nil && strings.TrimSpace(*req.Nickname) != "" {
		user.Nickname = *req.Nickname
		user.UpdatedAt = time.Now()
		if err := s.userRepo.Update(user); err != nil {
			return err
		}
	}

	details, err := s.userRepo.FindDetailsByUser(userID)
	if err != nil {
		return err
	}
	if details == nil {
		return ErrProfileNotFound
	}

	if req.Job != nil {
		details.Job = models.Job(*req.Job)
	}
	if req.Background != nil {
		details.Background = models.Background(*req.Background)
	}
	if req.CompanySizes != nil {
		details.CompanySizes = models.JoinCSV(*req.CompanySizes)
	}
	if req.Skills != nil {
		details.Skills = models.JoinCSV(normalizeSkills(*req.Skills))
	}
	if req.Projects != nil {
		details.Projects = *req.Projects
	}
	if req.Intern != nil {
		details.Intern = *req.Intern
	}
	if req.Bootcamp != nil {
		details.Bootcamp = *req.Bootcamp
	}
	if req.Awards != nil {
		details.Awards = *req.Awards
	}
	details.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateDetails(details); err != nil {
		return err
	}

	// The stored analyses were computed from the old profile.
	return s.invalidator.Invalidate(userID)
}

func normalizeSkills(skills []string) []string {
	var out []string
	for _, skill := range skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill != "" {
			out = append(out, skill)
		}
	}
	return out
}
