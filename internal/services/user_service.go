package services

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"brainhealth/internal/authz"
	"brainhealth/internal/models"
	"brainhealth/internal/repositories"
)

// RegisterRequest — payload регистрации; роль выбирается один раз и навсегда.
type RegisterRequest struct {
	Username      string `json:"username" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6"`
	Role          string `json:"role" binding:"required,oneof=patient caregiver"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	Conditions    string `json:"conditions"`
	LicenseNumber string `json:"license_number"`
}

type Profile struct {
	User      *models.User      `json:"user"`
	Patient   *models.Patient   `json:"patient,omitempty"`
	Caregiver *models.Caregiver `json:"caregiver,omitempty"`
}

type UserService interface {
	Register(req *RegisterRequest) (*models.User, error)
	GetUserByID(id int) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetProfile(userID int) (*Profile, error)
	UpdateTelegramLink(userID int, chatID int64, enable bool) error

	// refresh helpers
	UpdateRefresh(userID int, token string, expiresAt time.Time) error
	RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.User, error)
	GetByRefreshToken(token string) (*models.User, error)
}

type userService struct {
	repo         repositories.UserRepository
	patients     repositories.PatientRepository
	caregivers   repositories.CaregiverRepository
	emailService EmailService
	authService  AuthService
}

func NewUserService(
	repo repositories.UserRepository,
	patients repositories.PatientRepository,
	caregivers repositories.CaregiverRepository,
	emailService EmailService,
	authService AuthService,
) UserService {
	return &userService{
		repo:         repo,
		patients:     patients,
		caregivers:   caregivers,
		emailService: emailService,
		authService:  authService,
	}
}

// Register создаёт учётку и профиль роли за один вызов.
func (s *userService) Register(req *RegisterRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(strings.ToLower(req.Email))

	if existing, err := s.repo.GetByUsername(username); err == nil && existing != nil {
		return nil, ErrUsernameTaken
	} else if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("username check: %w", err)
	}
	if existing, err := s.repo.GetByEmail(email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("email check: %w", err)
	}

	hash, err := s.authService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	roleID := authz.RolePatient
	if req.Role == "caregiver" {
		roleID = authz.RoleCaregiver
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		RoleID:       roleID,
	}
	if err := s.repo.Create(user); err != nil {
		// гонка с параллельной регистрацией: уникальный индекс решает
		if repositories.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	switch roleID {
	case authz.RolePatient:
		p := &models.Patient{UserID: user.ID, Age: req.Age, Gender: req.Gender, Conditions: req.Conditions}
		if err := s.patients.Create(p); err != nil {
			return nil, fmt.Errorf("create patient profile: %w", err)
		}
	case authz.RoleCaregiver:
		cg := &models.Caregiver{UserID: user.ID, LicenseNumber: req.LicenseNumber}
		if err := s.caregivers.Create(cg); err != nil {
			return nil, fmt.Errorf("create caregiver profile: %w", err)
		}
	}

	if s.emailService != nil {
		if err := s.emailService.SendWelcomeEmail(user.Email, user.Username); err != nil {
			// warn but do not fail registration
			log.Printf("Register: warning: failed to send welcome email to %s: %v", user.Email, err)
		}
	}

	return user, nil
}

func (s *userService) GetUserByID(id int) (*models.User, error) {
	return s.repo.GetByID(id)
}

func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	return s.repo.GetByEmail(email)
}

func (s *userService) GetProfile(userID int) (*Profile, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}

	profile := &Profile{User: user}
	switch user.RoleID {
	case authz.RolePatient:
		profile.Patient, err = s.patients.GetByUserID(userID)
	case authz.RoleCaregiver:
		profile.Caregiver, err = s.caregivers.GetByUserID(userID)
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *userService) UpdateTelegramLink(userID int, chatID int64, enable bool) error {
	return s.repo.UpdateTelegramLink(userID, chatID, enable)
}

// ===== refresh helpers =====

func (s *userService) UpdateRefresh(userID int, token string, expiresAt time.Time) error {
	return s.repo.UpdateRefresh(userID, token, expiresAt)
}

func (s *userService) RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.User, error) {
	return s.repo.RotateRefresh(oldToken, newToken, newExpiresAt)
}

func (s *userService) GetByRefreshToken(token string) (*models.User, error) {
	return s.repo.GetByRefreshToken(token)
}
