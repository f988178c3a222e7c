package model

import (
	"time"

	"gorm.io/gorm"
)

type SyncStatus string

const (
	StatusSuccess SyncStatus = "SUCCESS"
	StatusFailed  SyncStatus = "FAILED"
)

// History is one recorded transfer, bulk or incremental.
type History struct {
	gorm.Model
	Status     SyncStatus `gorm:"not null"`
	Direction  string     `gorm:"not null"`
	Service    string     `gorm:"not null"`
	Path       string     `gorm:"not null"`
	ErrMsg     string
	DurationMS int64
	SyncedAt   time.Time `gorm:"not null"`
}
