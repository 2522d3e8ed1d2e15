package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"taskboard/internal/models"

	"gorm.io/gorm"
)

// FilterAll is the wildcard value a filter parameter may carry; it is
// equivalent to leaving the filter out entirely.
const FilterAll = "all"

// TaskFilter narrows the task listing. Each field is either empty, the
// wildcard "all" (both mean "don't filter"), or a concrete value.
type TaskFilter struct {
	UserID   string
	Status   string
	Priority string
}

// predicate pairs one WHERE fragment with its bound value so the two can
// never drift apart.
type predicate struct {
	expr string
	arg  any
}

func present(v string) bool {
	return v != "" && v != FilterAll
}

func (f TaskFilter) predicates() []predicate {
	var preds []predicate
	if present(f.UserID) {
		preds = append(preds, predicate{"tasks.assigned_user_id = ?", f.UserID})
	}
	if present(f.Status) {
		preds = append(preds, predicate{"tasks.status = ?", f.Status})
	}
	if present(f.Priority) {
		preds = append(preds, predicate{"tasks.priority = ?", f.Priority})
	}
	return preds
}

// priorityOrder ranks High before Medium before Low; unknown values sink to
// the bottom. Ties break on id descending, so newer tasks come first.
const priorityOrder = "CASE tasks.priority " +
	"WHEN 'High' THEN 1 WHEN 'Medium' THEN 2 WHEN 'Low' THEN 3 ELSE 4 END, " +
	"tasks.id DESC"

// TaskRow is a task joined with its assignee's username, as shown in the
// listing and edit views.
type TaskRow struct {
	ID             uint
	Title          string
	AssignedUserID uint
	Status         models.TaskStatus
	Priority       models.TaskPriority
	CreatedAt      time.Time
	Username       string
}

func (s *Store) taskRows() *gorm.DB {
	return s.db.Model(&models.Task{}).
		Select("tasks.id, tasks.title, tasks.assigned_user_id, tasks.status, tasks.priority, tasks.created_at, users.username").
		Joins("JOIN users ON users.id = tasks.assigned_user_id")
}

// ListTasks returns all tasks matching the filter, joined with their
// assignees, in priority order then newest first. An empty result is not an
// error.
func (s *Store) ListTasks(f TaskFilter) ([]TaskRow, error) {
	query := s.taskRows()
	for _, p := range f.predicates() {
		query = query.Where(p.expr, p.arg)
	}

	var rows []TaskRow
	if err := query.Order(priorityOrder).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return rows, nil
}

// GetTask returns a single task with its assignee, or ErrTaskNotFound.
func (s *Store) GetTask(id uint) (TaskRow, error) {
	var row TaskRow
	err := s.taskRows().Where("tasks.id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TaskRow{}, ErrTaskNotFound
		}
		return TaskRow{}, fmt.Errorf("get task %d: %w", id, err)
	}
	return row, nil
}

// userExists reports whether a user row with the given id exists. SQLite's
// foreign_keys pragma is off under the glebarez driver, so the declared FK
// constraint does not enforce this; the store has to.
func (s *Store) userExists(id uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check user %d: %w", id, err)
	}
	return count > 0, nil
}

// CreateTask inserts a new Open task. Title, assignee and priority are all
// required; the assignee must be an existing user and the priority one of the
// known values.
func (s *Store) CreateTask(title string, userID uint, priority models.TaskPriority) error {
	title = strings.TrimSpace(title)
	if title == "" || userID == 0 || !models.ValidPriority(priority) {
		return ErrValidation
	}
	if ok, err := s.userExists(userID); err != nil {
		return err
	} else if !ok {
		return ErrValidation
	}

	task := models.Task{
		Title:          title,
		AssignedUserID: userID,
		Status:         models.StatusOpen,
		Priority:       priority,
	}
	if err := s.db.Create(&task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// UpdateTask overwrites title, assignee and priority of an existing task.
// The new assignee must be an existing user. Status and creation time are
// never touched. Updating a missing id affects zero rows and is not an error.
func (s *Store) UpdateTask(id uint, title string, userID uint, priority models.TaskPriority) error {
	title = strings.TrimSpace(title)
	if title == "" || userID == 0 || !models.ValidPriority(priority) {
		return ErrValidation
	}
	if ok, err := s.userExists(userID); err != nil {
		return err
	} else if !ok {
		return ErrValidation
	}

	err := s.db.Model(&models.Task{}).Where("id = ?", id).Updates(map[string]any{
		"title":            title,
		"assigned_user_id": userID,
		"priority":         priority,
	}).Error
	if err != nil {
		return fmt.Errorf("update task %d: %w", id, err)
	}
	return nil
}

// CompleteTask marks a task Complete. Completing a missing or already
// complete task is a no-op.
func (s *Store) CompleteTask(id uint) error {
	err := s.db.Model(&models.Task{}).Where("id = ?", id).
		Update("status", models.StatusComplete).Error
	if err != nil {
		return fmt.Errorf("complete task %d: %w", id, err)
	}
	return nil
}

// DeleteTask removes a task. Deleting a missing id is a no-op.
func (s *Store) DeleteTask(id uint) error {
	if err := s.db.Delete(&models.Task{}, id).Error; err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}
