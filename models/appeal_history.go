package models

import "time"

// AppealHistory records one observed status transition, including the
// initial one at creation. Rows are append-only: nothing in the codebase
// updates or deletes them.
type AppealHistory struct {
	HistoryID   int       `gorm:"primaryKey;column:history_id" json:"history_id"`
	AppealID    int       `gorm:"column:appeal_id" json:"appeal_id"`
	StatusID    int       `gorm:"column:status_id" json:"status_id"`
	ChangedByID *int      `gorm:"column:changed_by_id" json:"changed_by_id,omitempty"`
	Comment     *string   `gorm:"column:comment" json:"comment,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`

	// Relations
	Status    AppealStatus `gorm:"foreignKey:StatusID" json:"status,omitempty"`
	ChangedBy *User        `gorm:"foreignKey:ChangedByID" json:"changed_by,omitempty"`
}

func (AppealHistory) TableName() string {
	return "appeal_history"
}
