package services

import (
	"fmt"
	"html/template"
	"log"

	"appeals-api/config"
	"appeals-api/models"
	"appeals-api/repositories"
)

// Mailer sends one email. config.SendMail satisfies it in production;
// tests substitute a recording fake.
type Mailer interface {
	Send(to []string, subject, html string) error
}

// SMTPMailer delivers through the configured SMTP relay.
type SMTPMailer struct{}

func (SMTPMailer) Send(to []string, subject, html string) error {
	return config.SendMail(to, subject, html)
}

// NotificationService delivers the best-effort side effects of appeal
// lifecycle events: an email to the owner plus an in-app notification
// row. Every failure is logged and swallowed; callers never see it.
type NotificationService struct {
	mailer        Mailer
	notifications repositories.NotificationRepo
}

func NewNotificationService(mailer Mailer, notifications repositories.NotificationRepo) *NotificationService {
	return &NotificationService{mailer: mailer, notifications: notifications}
}

// AppealReceived notifies the owner that their appeal was registered.
func (s *NotificationService) AppealReceived(appeal *models.Appeal) {
	subject := fmt.Sprintf("Appeal #%d received", appeal.AppealID)
	body := fmt.Sprintf(
		"<p>Dear %s,</p><p>Your appeal <strong>%s</strong> has been received and will be reviewed shortly.</p>",
		template.HTMLEscapeString(appeal.User.FullName()),
		template.HTMLEscapeString(appeal.Subject),
	)
	s.deliver(appeal, subject, body, "info")
}

// AppealStatusChanged notifies the owner about a status transition. The
// appeal already carries the new status; response, when present, is the
// text recorded by the administrator.
func (s *NotificationService) AppealStatusChanged(appeal *models.Appeal, response *string) {
	subject := fmt.Sprintf("Appeal #%d: %s", appeal.AppealID, appeal.Status.Name)
	body := fmt.Sprintf(
		"<p>Dear %s,</p><p>The status of your appeal <strong>%s</strong> is now <strong>%s</strong>.</p>",
		template.HTMLEscapeString(appeal.User.FullName()),
		template.HTMLEscapeString(appeal.Subject),
		template.HTMLEscapeString(appeal.Status.Name),
	)
	if response != nil && *response != "" {
		body += fmt.Sprintf("<p>Response:</p><blockquote>%s</blockquote>", template.HTMLEscapeString(*response))
	}
	s.deliver(appeal, subject, body, "success")
}

func (s *NotificationService) deliver(appeal *models.Appeal, subject, body, kind string) {
	if err := s.mailer.Send([]string{appeal.User.Email}, subject, body); err != nil {
		log.Printf("Warning: failed to email appeal %d notification to %s: %v",
			appeal.AppealID, appeal.User.Email, err)
	}

	appealID := appeal.AppealID
	notification := &models.Notification{
		UserID:          appeal.UserID,
		Title:           subject,
		Message:         appeal.Status.Name,
		Type:            kind,
		RelatedAppealID: &appealID,
	}
	if err := s.notifications.Create(notification); err != nil {
		log.Printf("Warning: failed to record notification for appeal %d: %v", appeal.AppealID, err)
	}
}
