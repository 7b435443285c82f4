package models

import (
	"time"
)

// SyncLogModel is the persistence model for one sync audit entry.
type SyncLogModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Status    string    `gorm:"type:varchar(50);not null;index"`
	Message   string    `gorm:"type:text"`
	Error     string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (SyncLogModel) TableName() string {
	return "sync_logs"
}

// SyncSettingsModel is the single-row persistence model for sync state.
// The fixed primary key keeps it one row; the payout cursor lives here.
type SyncSettingsModel struct {
	ID             uint       `gorm:"primaryKey"`
	LastPayoutSync *time.Time `gorm:""`
	UpdatedAt      time.Time  `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SyncSettingsModel) TableName() string {
	return "sync_settings"
}
