// Package model defines the persisted radiator settings.
package model

import "time"

// Repository is one tracked repository. The resolved team list is cached
// here so restarts do not repay the expensive permission walk; Ignored
// hides a repository from the board without forgetting it.
type Repository struct {
	Name      string    `gorm:"primaryKey;column:name;type:varchar(255)" json:"name"`
	Ignored   bool      `gorm:"column:ignored;not null;default:false"    json:"ignored"`
	UpdatedAt time.Time `gorm:"column:updated_at"                        json:"updatedAt"`
}

// TableName specifies the table name for GORM.
func (Repository) TableName() string {
	return "repositories"
}
