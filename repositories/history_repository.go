package repositories

import (
	"appeals-api/config"
	"appeals-api/models"
)

// HistoryRepo is deliberately append-and-read only. Update and delete do
// not exist so the audit trail cannot be rewritten from anywhere.
type HistoryRepo interface {
	Create(entry *models.AppealHistory) error
	ListByAppeal(appealID int) ([]models.AppealHistory, error)
}

type DBHistoryRepo struct{}

func (r *DBHistoryRepo) Create(entry *models.AppealHistory) error {
	return config.DB.Create(entry).Error
}

func (r *DBHistoryRepo) ListByAppeal(appealID int) ([]models.AppealHistory, error) {
	var entries []models.AppealHistory
	err := config.DB.Preload("Status").Preload("ChangedBy").
		Where("appeal_id = ?", appealID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}
