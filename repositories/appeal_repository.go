package repositories

import (
	"time"

	"gorm.io/gorm"

	"appeals-api/config"
	"appeals-api/models"
)

// AppealFilter narrows List results. Time bounds are inclusive and
// already converted to day boundaries by the service.
type AppealFilter struct {
	StatusID *int
	DateFrom *time.Time
	DateTo   *time.Time
}

type AppealRepo interface {
	// CreateWithHistory persists a new appeal together with its creation
	// history entry in one transaction.
	CreateWithHistory(appeal *models.Appeal, entry *models.AppealHistory) error
	// SaveWithHistory persists appeal mutations together with the history
	// entry for the observed status transition in one transaction.
	SaveWithHistory(appeal *models.Appeal, entry *models.AppealHistory) error
	Save(appeal *models.Appeal) error
	FindAll(ownerID *int, filter AppealFilter) ([]models.Appeal, error)
	FindByID(id int) (*models.Appeal, error)
	Delete(appeal *models.Appeal) error
}

type DBAppealRepo struct{}

func appealQuery(db *gorm.DB) *gorm.DB {
	return db.Preload("User").Preload("User.Role").Preload("Status").
		Preload("RespondedBy").Preload("Attachments")
}

func (r *DBAppealRepo) CreateWithHistory(appeal *models.Appeal, entry *models.AppealHistory) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(appeal).Error; err != nil {
			return err
		}
		entry.AppealID = appeal.AppealID
		return tx.Create(entry).Error
	})
}

func (r *DBAppealRepo) SaveWithHistory(appeal *models.Appeal, entry *models.AppealHistory) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Attachments", "User", "Status", "RespondedBy").Save(appeal).Error; err != nil {
			return err
		}
		entry.AppealID = appeal.AppealID
		return tx.Create(entry).Error
	})
}

func (r *DBAppealRepo) Save(appeal *models.Appeal) error {
	return config.DB.Omit("Attachments", "User", "Status", "RespondedBy").Save(appeal).Error
}

func (r *DBAppealRepo) FindAll(ownerID *int, filter AppealFilter) ([]models.Appeal, error) {
	var appeals []models.Appeal
	query := appealQuery(config.DB)

	if ownerID != nil {
		query = query.Where("appeals.user_id = ?", *ownerID)
	}
	if filter.StatusID != nil {
		query = query.Where("appeals.status_id = ?", *filter.StatusID)
	}
	if filter.DateFrom != nil {
		query = query.Where("appeals.created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("appeals.created_at <= ?", *filter.DateTo)
	}

	err := query.Order("appeals.created_at DESC").Find(&appeals).Error
	return appeals, err
}

func (r *DBAppealRepo) FindByID(id int) (*models.Appeal, error) {
	var appeal models.Appeal
	if err := appealQuery(config.DB).Where("appeal_id = ?", id).First(&appeal).Error; err != nil {
		return nil, err
	}
	return &appeal, nil
}

func (r *DBAppealRepo) Delete(appeal *models.Appeal) error {
	// Only the join rows go with the appeal. File rows and history rows
	// stay: files belong to the uploads module, history is an audit trail.
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(appeal).Association("Attachments").Clear(); err != nil {
			return err
		}
		return tx.Delete(appeal).Error
	})
}
