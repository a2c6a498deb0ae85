package repositories

import (
	"appeals-api/config"
	"appeals-api/models"
)

type NotificationRepo interface {
	Create(n *models.Notification) error
}

type DBNotificationRepo struct{}

func (r *DBNotificationRepo) Create(n *models.Notification) error {
	return config.DB.Create(n).Error
}
