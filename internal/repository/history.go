package repository

import (
	"time"

	"dockrsync/internal/db"
	"dockrsync/internal/model"
)

type HistoryRepository struct{}

func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{}
}

type Entry struct {
	Direction string
	Service   string
	Path      string
	Duration  time.Duration
	Err       error
}

func (r *HistoryRepository) Save(e Entry) error {
	status := model.StatusSuccess
	errMsg := ""
	if e.Err != nil {
		status = model.StatusFailed
		errMsg = e.Err.Error()
	}

	history := model.History{
		Status:     status,
		Direction:  e.Direction,
		Service:    e.Service,
		Path:       e.Path,
		ErrMsg:     errMsg,
		DurationMS: e.Duration.Milliseconds(),
		SyncedAt:   time.Now(),
	}

	return db.DB.Create(&history).Error
}

type Stats struct {
	Total   int64
	Success int64
	Failed  int64
}

func (r *HistoryRepository) GetStats() (Stats, error) {
	var stats Stats
	if err := db.DB.Model(&model.History{}).Count(&stats.Total).Error; err != nil {
		return stats, err
	}

	if err := db.DB.Model(&model.History{}).
		Where("status = ?", model.StatusSuccess).
		Count(&stats.Success).Error; err != nil {
		return stats, err
	}

	stats.Failed = stats.Total - stats.Success
	return stats, nil
}

func (r *HistoryRepository) GetRecent(limit int) ([]model.History, error) {
	var histories []model.History
	result := db.DB.
		Order("synced_at desc").
		Limit(limit).
		Find(&histories)

	return histories, result.Error
}
