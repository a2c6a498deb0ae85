package models

import "time"

type Appeal struct {
	AppealID      int        `gorm:"primaryKey;column:appeal_id" json:"appeal_id"`
	UserID        int        `gorm:"column:user_id" json:"user_id"`
	Subject       string     `gorm:"column:subject" json:"subject"`
	Message       string     `gorm:"column:message" json:"message"`
	StatusID      int        `gorm:"column:status_id" json:"status_id"`
	Response      *string    `gorm:"column:response" json:"response,omitempty"`
	RespondedAt   *time.Time `gorm:"column:responded_at" json:"responded_at,omitempty"`
	RespondedByID *int       `gorm:"column:responded_by_id" json:"responded_by_id,omitempty"`
	CreatedAt     time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at" json:"updated_at"`

	// Relations
	User        User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Status      AppealStatus `gorm:"foreignKey:StatusID" json:"status,omitempty"`
	RespondedBy *User        `gorm:"foreignKey:RespondedByID" json:"responded_by,omitempty"`
	Attachments []FileUpload `gorm:"many2many:appeal_attachments;foreignKey:AppealID;joinForeignKey:appeal_id;References:FileID;joinReferences:file_id" json:"attachments,omitempty"`
}

func (Appeal) TableName() string {
	return "appeals"
}
