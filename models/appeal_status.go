package models

// Canonical lifecycle codes. The rows behind them are seeded at startup
// and never created or deleted through the API.
const (
	StatusCodeReceived   = "received"
	StatusCodeInProgress = "in_progress"
	StatusCodeResponded  = "responded"
	StatusCodeClosed     = "closed"
)

// AppealStatus is one of the four canonical lifecycle states with its
// display metadata for the admin UI status picker.
type AppealStatus struct {
	StatusID    int    `gorm:"primaryKey;column:status_id" json:"status_id"`
	Code        string `gorm:"column:code;unique" json:"code"`
	Name        string `gorm:"column:name;unique" json:"name"`
	Color       string `gorm:"column:color" json:"color"`
	StatusOrder int    `gorm:"column:status_order" json:"status_order"`
}

func (AppealStatus) TableName() string {
	return "appeal_statuses"
}
