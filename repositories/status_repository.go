package repositories

import (
	"appeals-api/config"
	"appeals-api/models"
)

type StatusRepo interface {
	FindAll() ([]models.AppealStatus, error)
	FindByCode(code string) (*models.AppealStatus, error)
	Create(status *models.AppealStatus) error
}

type DBStatusRepo struct{}

func (r *DBStatusRepo) FindAll() ([]models.AppealStatus, error) {
	var statuses []models.AppealStatus
	err := config.DB.Order("status_order ASC").Find(&statuses).Error
	return statuses, err
}

func (r *DBStatusRepo) FindByCode(code string) (*models.AppealStatus, error) {
	var status models.AppealStatus
	if err := config.DB.Where("code = ?", code).First(&status).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *DBStatusRepo) Create(status *models.AppealStatus) error {
	return config.DB.Create(status).Error
}
