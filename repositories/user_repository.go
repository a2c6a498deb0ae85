package repositories

import (
	"appeals-api/config"
	"appeals-api/models"
)

type UserRepo interface {
	FindByID(id int) (*models.User, error)
}

type DBUserRepo struct{}

func (r *DBUserRepo) FindByID(id int) (*models.User, error) {
	var user models.User
	if err := config.DB.Preload("Role").
		Where("user_id = ? AND deleted_at IS NULL", id).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
