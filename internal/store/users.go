package store

import (
	"fmt"
	"log"
	"strings"

	"taskboard/internal/models"

	"gorm.io/gorm/clause"
)

// ListUsersByName returns all users ordered by username, for the assignee
// dropdowns and the listing filter.
func (s *Store) ListUsersByName() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("username asc").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// ListUsersByID returns all users ordered by id, for the management view.
func (s *Store) ListUsersByID() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id asc").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// CreateUser inserts a user if the username is not already taken. The insert
// is idempotent: an existing username is silently left alone.
func (s *Store) CreateUser(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrValidation
	}

	user := models.User{Username: username}
	err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&user).Error
	if err != nil {
		return fmt.Errorf("create user %q: %w", username, err)
	}
	return nil
}

// SeedUsers ensures the given usernames exist. Individual failures are
// logged and swallowed; seeding is best-effort and never fatal.
func (s *Store) SeedUsers(names ...string) {
	for _, name := range names {
		if err := s.CreateUser(name); err != nil {
			log.Printf("seed user %q: %v", name, err)
		}
	}
}

// DeleteUser removes a user. A user that still has tasks assigned is
// rejected with ErrUserHasTasks rather than orphaning the tasks. Deleting a
// missing id is a no-op.
func (s *Store) DeleteUser(id uint) error {
	var count int64
	err := s.db.Model(&models.Task{}).Where("assigned_user_id = ?", id).Count(&count).Error
	if err != nil {
		return fmt.Errorf("count tasks for user %d: %w", id, err)
	}
	if count > 0 {
		return ErrUserHasTasks
	}

	if err := s.db.Delete(&models.User{}, id).Error; err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}
