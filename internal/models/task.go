package models

import (
	"time"
)

// TaskStatus represents the status of a task
type TaskStatus string

const (
	StatusOpen     TaskStatus = "Open"
	StatusComplete TaskStatus = "Complete"
)

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	PriorityHigh   TaskPriority = "High"
	PriorityMedium TaskPriority = "Medium"
	PriorityLow    TaskPriority = "Low"
)

// ValidPriority reports whether p is one of the known task priorities.
func ValidPriority(p TaskPriority) bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Task represents a task in the system
type Task struct {
	ID             uint         `gorm:"primaryKey"`
	Title          string       `gorm:"not null"`
	AssignedUserID uint         `gorm:"column:assigned_user_id;not null"`
	AssignedUser   User         `gorm:"foreignKey:AssignedUserID"`
	Status         TaskStatus   `gorm:"not null;default:'Open'"`
	Priority       TaskPriority `gorm:"not null;default:'Medium'"`
	CreatedAt      time.Time    `gorm:"autoCreateTime"`
}

// TableName specifies the table name for Task Model
func (Task) TableName() string {
	return "tasks"
}
