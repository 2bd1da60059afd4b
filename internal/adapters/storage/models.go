package storage

import "time"

// SettingModel is the GORM model for the settings table
type SettingModel struct {
	CreatedAt time.Time
	Key       string `gorm:"primaryKey"`
	UpdatedAt time.Time
	Value     string `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (SettingModel) TableName() string { return "settings" }
