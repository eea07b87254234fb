// Package model holds GORM persistence models mirroring database tables.
package model

import "time"

// AccountModel mirrors the 'accounts' table. The bigserial ID is the opaque
// identity handed back to callers; username and email carry unique indexes
// so duplicate registrations fail at the database, not in application code.
type AccountModel struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(24);uniqueIndex;not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
