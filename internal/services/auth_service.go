package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mssola/user_agent"
	"github.com/sirupsen/logrus"
	"github.com/swifttransit/bus-ticket-backend/internal/models"
	"github.com/swifttransit/bus-ticket-backend/pkg/jwt"
	"github.com/swifttransit/bus-ticket-backend/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when login fails. The message is the
// same for unknown email and wrong password so accounts cannot be probed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserStore persists and reads user accounts
type UserStore interface {
	Create(user *models.User) error
	GetByID(userID string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// SessionStore records issued login sessions
type SessionStore interface {
	Create(session *models.UserSession) error
}

// AuthService handles registration, login and token refresh. The booking
// core never sees credentials; it only consumes the userID and role carried
// in validated tokens.
type AuthService struct {
	users      UserStore
	sessions   SessionStore
	tokens     *jwt.Service
	contacts   *validator.ContactValidator
	bcryptCost int
	logger     *logrus.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	users UserStore,
	sessions SessionStore,
	tokens *jwt.Service,
	contacts *validator.ContactValidator,
	bcryptCost int,
	logger *logrus.Logger,
) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		tokens:     tokens,
		contacts:   contacts,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register creates a customer account and issues tokens
func (s *AuthService) Register(req *models.RegisterRequest) (*models.AuthResponse, error) {
	if err := req.Validate(s.contacts.IsValidEmail, s.contacts.IsValidPhone); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        s.contacts.NormalizeEmail(req.Email),
		Name:         req.Name,
		Role:         models.RoleCustomer,
		PasswordHash: string(hash),
	}
	if req.Phone != "" {
		phone := req.Phone
		user.Phone = &phone
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("User registered")

	return s.issueTokens(user)
}

// Login verifies credentials, records a session, and issues tokens
func (s *AuthService) Login(req *models.LoginRequest, userAgent, ipAddress string) (*models.AuthResponse, error) {
	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	session := &models.UserSession{
		UserID:    user.ID,
		UserAgent: summarizeUserAgent(userAgent),
		IPAddress: ipAddress,
	}
	if err := s.sessions.Create(session); err != nil {
		// A failed audit record should not block the login itself
		s.logger.WithError(err).WithField("user_id", user.ID).Warn("Failed to record login session")
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": user.ID,
		"ip":      ipAddress,
	}).Info("User logged in")

	return s.issueTokens(user)
}

// Refresh validates a refresh token and issues a new access token
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	// Re-read the user so a role change takes effect on refresh
	user, err := s.users.GetByID(claims.UserID.String())
	if err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.GenerateAccessToken(claims.UserID, user.Email, string(user.Role))
}

func (s *AuthService) issueTokens(user *models.User) (*models.AuthResponse, error) {
	userID, err := uuid.Parse(user.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", user.ID, err)
	}

	access, err := s.tokens.GenerateAccessToken(userID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	refresh, err := s.tokens.GenerateRefreshToken(userID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// summarizeUserAgent reduces a raw User-Agent header to a short
// browser-and-platform summary for the session audit trail
func summarizeUserAgent(raw string) string {
	if raw == "" {
		return "unknown"
	}
	ua := user_agent.New(raw)
	browser, version := ua.Browser()
	if browser == "" {
		return raw
	}
	return fmt.Sprintf("%s %s (%s)", browser, version, ua.OS())
}
