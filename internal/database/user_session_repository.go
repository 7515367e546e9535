package database

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/swifttransit/bus-ticket-backend/internal/models"
)

// UserSessionRepository handles database operations for the user_sessions
// table. Sessions are an audit trail of issued logins.
type UserSessionRepository struct {
	db DB
}

// NewUserSessionRepository creates a new UserSessionRepository
func NewUserSessionRepository(db DB) *UserSessionRepository {
	return &UserSessionRepository{db: db}
}

// Create inserts a new session record
func (r *UserSessionRepository) Create(session *models.UserSession) error {
	query := `
		INSERT INTO user_sessions (id, user_id, user_agent, ip_address)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	if session.ID == "" {
		session.ID = uuid.New().String()
	}

	err := r.db.QueryRow(
		query,
		session.ID, session.UserID, session.UserAgent, session.IPAddress,
	).Scan(&session.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}
