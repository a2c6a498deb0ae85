package repositories

import (
	"appeals-api/config"
	"appeals-api/models"
)

type FileRepo interface {
	// ResolveMany returns the file rows matching ids. Callers compare the
	// returned count against the requested count to detect missing files.
	ResolveMany(ids []int) ([]models.FileUpload, error)
}

type DBFileRepo struct{}

func (r *DBFileRepo) ResolveMany(ids []int) ([]models.FileUpload, error) {
	if len(ids) == 0 {
		return []models.FileUpload{}, nil
	}
	var files []models.FileUpload
	err := config.DB.Where("file_id IN ? AND deleted_at IS NULL", ids).Find(&files).Error
	return files, err
}
