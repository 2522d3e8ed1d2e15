package web

import (
	"taskboard/internal/models"
	"taskboard/internal/store"
)

// Priorities and Statuses drive the select controls in the templates.
var (
	Priorities = []models.TaskPriority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow}
	Statuses   = []models.TaskStatus{models.StatusOpen, models.StatusComplete}
)

// ListingView is the data for the task listing page.
type ListingView struct {
	Tasks      []store.TaskRow
	Users      []models.User
	Filter     store.TaskFilter
	Priorities []models.TaskPriority
	Statuses   []models.TaskStatus
}

// NewListingView maps listing results and the active filter to template data.
// The filter is echoed back so the form controls keep their selection.
func NewListingView(tasks []store.TaskRow, users []models.User, filter store.TaskFilter) ListingView {
	return ListingView{
		Tasks:      tasks,
		Users:      users,
		Filter:     filter,
		Priorities: Priorities,
		Statuses:   Statuses,
	}
}

// EditView is the data for the single-task edit form.
type EditView struct {
	Task       store.TaskRow
	Users      []models.User
	Priorities []models.TaskPriority
}

// NewEditView maps one task and the assignee choices to template data.
func NewEditView(task store.TaskRow, users []models.User) EditView {
	return EditView{Task: task, Users: users, Priorities: Priorities}
}

// UsersView is the data for the user-management page.
type UsersView struct {
	Users []models.User
	Error string
}
