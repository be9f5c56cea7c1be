package database

import (
	"database/sql"
	"fmt"

	"github.com/example/limudbot/pkg/models"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const userColumns = "telegram_id, username, first_name, last_name, is_admin, notification_enabled, notification_hour, created_at, updated_at"

// GetByID returns a user by Telegram id, or nil when unknown
func (r *UserRepository) GetByID(id int64) (*models.User, error) {
	var user models.User
	err := DB.Get(&user, rebind("SELECT "+userColumns+" FROM users WHERE telegram_id = ?"), id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}
	return &user, nil
}

// GetAll returns all users
func (r *UserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	err := DB.Select(&users, "SELECT "+userColumns+" FROM users ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %v", err)
	}
	return users, nil
}

// Upsert inserts a user or refreshes the profile fields of an existing one
func (r *UserRepository) Upsert(user *models.User) error {
	query := rebind(`
		INSERT INTO users (telegram_id, username, first_name, last_name, is_admin, notification_enabled, notification_hour)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (telegram_id) DO UPDATE SET
			username = EXCLUDED.username,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			updated_at = CURRENT_TIMESTAMP
	`)
	_, err := DB.Exec(query,
		user.ID, user.Username, user.FirstName, user.LastName,
		user.IsAdmin, user.NotificationEnabled, user.NotificationHour,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %v", err)
	}
	return nil
}

// UpdateNotificationSettings changes a user's reminder preferences
func (r *UserRepository) UpdateNotificationSettings(userID int64, enabled bool, hour int) error {
	query := rebind(`
		UPDATE users SET notification_enabled = ?, notification_hour = ?, updated_at = CURRENT_TIMESTAMP
		WHERE telegram_id = ?
	`)
	_, err := DB.Exec(query, enabled, hour, userID)
	if err != nil {
		return fmt.Errorf("failed to update notification settings: %v", err)
	}
	return nil
}

// GetUsersForNotification returns users who want a reminder at the given hour
func (r *UserRepository) GetUsersForNotification(hour int) ([]models.User, error) {
	var users []models.User
	query := rebind("SELECT " + userColumns + " FROM users WHERE notification_enabled = true AND notification_hour = ?")
	err := DB.Select(&users, query, hour)
	if err != nil {
		return nil, fmt.Errorf("failed to get users for notification: %v", err)
	}
	return users, nil
}
