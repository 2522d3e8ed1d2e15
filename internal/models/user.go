package models

// User represents a named actor that tasks can be assigned to
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"unique;not null"`
}

// TableName specifies the table name for User Model
func (User) TableName() string {
	return "users"
}
